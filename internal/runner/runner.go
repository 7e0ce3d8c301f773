// Package runner solves a batch of elevation maps concurrently. Each map is
// read, validated into a heightmap.Grid and searched on its own goroutine; the
// searches themselves stay single-threaded.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ridgeline/climb"
	"github.com/katalvlaran/ridgeline/heightmap"
)

// Source names one input map and knows how to open it.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource reads the map at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// ReaderSource wraps an already open reader, typically stdin. The reader is
// not closed by the runner.
func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// Report is the outcome for one source. Err is set when the map could not be
// read or was malformed, or when the search failed; Result is nil then.
type Report struct {
	Name   string
	Result *climb.Result
	Err    error
}

// Runner solves sources with a bounded number of concurrent workers.
type Runner struct {
	log     *zap.Logger
	workers int
	opts    []climb.Option
}

// New returns a Runner. workers < 1 is treated as 1. A nil logger is replaced
// by a no-op logger.
func New(log *zap.Logger, workers int, opts ...climb.Option) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{log: log, workers: workers, opts: opts}
}

// Run solves every source and returns one report per source, in input order.
// Per-source failures do not stop the batch; they are recorded in the reports
// and joined into the returned error. Cancelling ctx stops sources that have
// not started yet.
func (r *Runner) Run(ctx context.Context, sources []Source) ([]Report, error) {
	reports := make([]Report, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				reports[i] = Report{Name: src.Name, Err: err}
				return err
			}
			reports[i] = r.solve(src)
			return nil
		})
	}
	groupErr := g.Wait()

	errs := make([]error, 0, len(reports)+1)
	for _, rep := range reports {
		if rep.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rep.Name, rep.Err))
		}
	}
	if groupErr != nil && len(errs) == 0 {
		errs = append(errs, groupErr)
	}
	return reports, errors.Join(errs...)
}

func (r *Runner) solve(src Source) Report {
	log := r.log.With(zap.String("input", src.Name))

	g, err := r.load(src)
	if err != nil {
		log.Error("load failed", zap.Error(err))
		return Report{Name: src.Name, Err: err}
	}

	opts := append([]climb.Option{climb.WithLogger(log.Named("climb"))}, r.opts...)
	res, err := climb.Climb(g, opts...)
	if err != nil {
		log.Error("search failed", zap.Error(err))
		return Report{Name: src.Name, Err: err}
	}

	log.Info("search done",
		zap.Stringer("state", res.State),
		zap.Int("steps", res.Steps),
		zap.Int("extracted", res.Stats.Extracted),
		zap.Int("max_frontier", res.Stats.MaxFrontier),
	)
	return Report{Name: src.Name, Result: res}
}

func (r *Runner) load(src Source) (*heightmap.Grid, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadGrid(rc)
}

// ReadGrid reads a character map, one row per line. Carriage returns and
// trailing blank lines are ignored; blank lines inside the map are not.
func ReadGrid(rd io.Reader) (*heightmap.Grid, error) {
	var rows []string
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("runner: read: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return heightmap.FromRows(rows)
}

// Write prints one line per report: "<name>: <steps>", "<name>: no path" or
// "<name>: error: <err>". With showPath, found paths follow on an indented line.
func Write(w io.Writer, reports []Report, showPath bool) error {
	bw := bufio.NewWriter(w)
	for _, rep := range reports {
		switch {
		case rep.Err != nil:
			fmt.Fprintf(bw, "%s: error: %v\n", rep.Name, rep.Err)
		case !rep.Result.Reachable():
			fmt.Fprintf(bw, "%s: no path\n", rep.Name)
		default:
			fmt.Fprintf(bw, "%s: %d\n", rep.Name, rep.Result.Steps)
			if showPath && rep.Result.Path != nil {
				cells := make([]string, len(rep.Result.Path))
				for i, p := range rep.Result.Path {
					cells[i] = p.String()
				}
				fmt.Fprintf(bw, "  %s\n", strings.Join(cells, " "))
			}
		}
	}
	return bw.Flush()
}
