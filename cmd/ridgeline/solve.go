package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ridgeline/internal/config"
	"github.com/katalvlaran/ridgeline/internal/runner"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Solve one or more maps; \"-\" or no file reads stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.ClimbOptions()
			if err != nil {
				return err
			}

			// stdin is read at most once, however many times "-" appears.
			var sources []runner.Source
			stdin := false
			for _, arg := range args {
				if arg != "-" {
					sources = append(sources, runner.FileSource(arg))
					continue
				}
				if !stdin {
					stdin = true
					sources = append(sources, runner.ReaderSource("stdin", cmd.InOrStdin()))
				}
			}
			if len(sources) == 0 {
				sources = append(sources, runner.ReaderSource("stdin", cmd.InOrStdin()))
			}

			a.log.Debug("solving", zap.Int("inputs", len(sources)), zap.Int("workers", a.cfg.Solve.Workers))
			reports, runErr := runner.New(a.log, a.cfg.Solve.Workers, opts...).Run(cmd.Context(), sources)
			if err := runner.Write(cmd.OutOrStdout(), reports, a.cfg.Solve.ReturnPath); err != nil {
				return err
			}
			return runErr
		},
	}

	f := cmd.Flags()
	f.String("tie-break", "distance", "ordering of equal-cost candidates: distance or fifo")
	f.Bool("path", false, "print the path after each result")
	f.Int("max-extractions", 0, "abort a search after this many frontier extractions (0 = unbounded)")
	f.Int("workers", 4, "maps solved concurrently")
	_ = a.v.BindPFlag(config.KeyTieBreak, f.Lookup("tie-break"))
	_ = a.v.BindPFlag(config.KeyReturnPath, f.Lookup("path"))
	_ = a.v.BindPFlag(config.KeyMaxExtractions, f.Lookup("max-extractions"))
	_ = a.v.BindPFlag(config.KeyWorkers, f.Lookup("workers"))

	return cmd
}
