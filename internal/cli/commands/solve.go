package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/andersquist/aoc2021/internal/days"
	_ "github.com/andersquist/aoc2021/internal/days/all"
	"github.com/andersquist/aoc2021/pkg/input"
	"github.com/andersquist/aoc2021/pkg/output"
	"github.com/andersquist/aoc2021/pkg/watch"
)

// SolveOptions holds command-line options for the solve command.
type SolveOptions struct {
	Day    int
	Part   int
	Input  string
	All    bool
	Output string
	Quiet  bool
	Watch  bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(g *GlobalOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run puzzle solvers",
		Long: `Run the solver for one day, or every registered day with --all.

Inputs are read from the configured input directory as input-NN.txt unless
--input is given. Malformed input records are skipped with a diagnostic on
stderr; they never stop a solver.

Exit codes:
  0 - All parts solved
  2 - Configuration or runtime error, or a part failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Day, "day", "d", 0, "Puzzle day (1-25)")
	cmd.Flags().IntVarP(&opts.Part, "part", "p", 0, "Solve only part 1 or 2")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Input file (default: input-NN.txt in the input directory)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Solve every registered day concurrently")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print answers only")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Solve again whenever an input file changes")

	return cmd
}

// job is one part of one day against one input file.
type job struct {
	day  days.Day
	part int
	path string
}

func runSolve(cmd *cobra.Command, g *GlobalOptions, opts *SolveOptions) error {
	ctx := commandContext(cmd)
	logger := g.logger()

	if opts.All == (opts.Day != 0) {
		return errors.New("exactly one of --day or --all is required")
	}
	if opts.All && opts.Input != "" {
		return errors.New("--input cannot be combined with --all")
	}
	if opts.Part != 0 && opts.Part != 1 && opts.Part != 2 {
		return fmt.Errorf("invalid part %d (must be 1 or 2)", opts.Part)
	}

	formatter, err := output.New(opts.Output, output.FormatOptions{Verbose: g.Verbose, Quiet: opts.Quiet})
	if err != nil {
		return err
	}

	jobs, inputDir, err := planJobs(ctx, g, opts)
	if err != nil {
		return err
	}

	diagnostics := &lockedWriter{w: cmd.ErrOrStderr()}
	solveOpts := []input.Option{input.WithDiagnostics(diagnostics), input.WithLogger(logger)}

	report := solveAll(ctx, jobs, inputDir, solveOpts, logger)
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if opts.Watch {
		return watchAndSolve(ctx, cmd.OutOrStdout(), formatter, jobs, inputDir, solveOpts, logger)
	}

	if report.HasFailures() {
		return fmt.Errorf("%d part(s) failed", report.Summary.PartsFailed)
	}
	return nil
}

func planJobs(ctx context.Context, g *GlobalOptions, opts *SolveOptions) ([]job, string, error) {
	var selected []days.Day
	if opts.All {
		selected = days.All()
	} else {
		if err := validateDay(opts.Day); err != nil {
			return nil, "", err
		}
		d, err := days.Lookup(opts.Day)
		if err != nil {
			return nil, "", err
		}
		selected = []days.Day{d}
	}

	var inputFor func(day int) string
	inputDir := ""
	if opts.Input != "" {
		inputFor = func(int) string { return opts.Input }
	} else {
		cfg, err := g.loadConfig(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("loading config: %w", err)
		}
		inputFor = cfg.InputFor
		inputDir = cfg.InputDir()
	}

	parts := []int{1, 2}
	if opts.Part != 0 {
		parts = []int{opts.Part}
	}

	var jobs []job
	for _, d := range selected {
		for _, p := range parts {
			jobs = append(jobs, job{day: d, part: p, path: inputFor(d.Number)})
		}
	}
	return jobs, inputDir, nil
}

// solveAll runs every job concurrently. Each solver opens its own input, so
// jobs share nothing but the diagnostics writer. A failing part is recorded
// in its result and does not cancel the others.
func solveAll(ctx context.Context, jobs []job, inputDir string, opts []input.Option, logger *zap.Logger) *output.Report {
	start := time.Now()
	results := make([]*output.Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		g.Go(func() error {
			results[i] = solveOne(ctx, j, opts, logger)
			return nil
		})
	}
	_ = g.Wait()

	return output.NewReport(results, inputDir, start, time.Now())
}

func solveOne(ctx context.Context, j job, opts []input.Option, logger *zap.Logger) *output.Result {
	result := &output.Result{Day: j.day.Number, Title: j.day.Title, Part: j.part, Input: j.path}

	fn, err := j.day.Part(j.part)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	start := time.Now()
	answer, err := fn(ctx, j.path, opts...)
	result.Duration = time.Since(start)
	if err != nil {
		logger.Debug("part failed",
			zap.Int("day", j.day.Number),
			zap.Int("part", j.part),
			zap.Error(err))
		result.Error = err.Error()
		return result
	}

	result.Answer = answer
	logger.Debug("part solved",
		zap.Int("day", j.day.Number),
		zap.Int("part", j.part),
		zap.Int64("answer", answer),
		zap.Duration("duration", result.Duration))
	return result
}

func watchAndSolve(ctx context.Context, w io.Writer, formatter output.Formatter, jobs []job, inputDir string, opts []input.Option, logger *zap.Logger) error {
	paths := make([]string, 0, len(jobs))
	for _, j := range jobs {
		paths = append(paths, j.path)
	}

	watcher, err := watch.New(paths, watch.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("watching inputs", zap.Strings("paths", paths))
	return watcher.Run(ctx, func(ctx context.Context, changed string) error {
		var rerun []job
		for _, j := range jobs {
			if samePath(j.path, changed) {
				rerun = append(rerun, j)
			}
		}
		if len(rerun) == 0 {
			rerun = jobs
		}
		return formatter.Format(ctx, solveAll(ctx, rerun, inputDir, opts, logger), w)
	})
}
