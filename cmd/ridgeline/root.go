package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/ridgeline/internal/config"
	"github.com/katalvlaran/ridgeline/internal/logger"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "ridgeline",
		Short:         "Shortest climbing paths on elevation maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, cfgFile)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./ridgeline.yaml or $HOME/.config/ridgeline/ridgeline.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", logger.FormatConsole, "log format: console or json")
	_ = a.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))

	root.AddCommand(newSolveCmd(a), newVersionCmd())
	return root
}
