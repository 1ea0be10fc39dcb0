package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2023/internal/ctxlog"
)

// Defaults for locating input files: inputs/day1.txt, inputs/day2.txt, …
const (
	DefaultInputDir     = "inputs"
	DefaultInputPattern = "day%d.txt"
)

// Option configures a Runner.
type Option func(*Runner)

// WithInputDir sets the directory holding input files. Empty is ignored.
func WithInputDir(dir string) Option {
	return func(r *Runner) {
		if dir != "" {
			r.inputDir = dir
		}
	}
}

// WithInputPattern sets the fmt pattern turning a day number into a file
// name, e.g. "day%02d.txt". Empty is ignored.
func WithInputPattern(pattern string) Option {
	return func(r *Runner) {
		if pattern != "" {
			r.pattern = pattern
		}
	}
}

// WithLogger sets the logger used for timing diagnostics. When unset the
// logger carried by the context (see internal/ctxlog) is used.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// withReadFile replaces os.ReadFile; used by tests.
func withReadFile(fn func(string) ([]byte, error)) Option {
	return func(r *Runner) {
		r.readFile = fn
	}
}

// Runner reads puzzle inputs from disk and solves registered days.
// A Runner is safe for concurrent use.
type Runner struct {
	inputDir string
	pattern  string
	logger   *slog.Logger
	readFile func(string) ([]byte, error)
}

// NewRunner returns a Runner reading inputs/day<N>.txt unless configured
// otherwise.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		inputDir: DefaultInputDir,
		pattern:  DefaultInputPattern,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// InputPath returns the file the Runner reads for day.
func (r *Runner) InputPath(day int) string {
	return filepath.Join(r.inputDir, fmt.Sprintf(r.pattern, day))
}

// Run solves a single registered day from its input file.
func (r *Runner) Run(ctx context.Context, day int) (Result, error) {
	sol, err := Lookup(day)
	if err != nil {
		return Result{}, err
	}
	path := r.InputPath(day)
	data, err := r.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: day %d: %s", ErrInputNotFound, day, path)
		}
		return Result{}, fmt.Errorf("puzzle: day %d: read %s: %w", day, path, err)
	}

	return r.solve(ctx, sol, string(data))
}

// RunAll solves the given days concurrently and returns their results
// in the order of days. The first failure cancels the remaining days.
func (r *Runner) RunAll(ctx context.Context, days []int) ([]Result, error) {
	results := make([]Result, len(days))
	g, ctx := errgroup.WithContext(ctx)
	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			res, err := r.Run(ctx, day)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// SolveInput runs both parts of s against an in-memory input.
func SolveInput(s Solution, input string) (Result, error) {
	return NewRunner().solve(context.Background(), s, input)
}

// solve runs Part1 then Part2, checking ctx before each part.
func (r *Runner) solve(ctx context.Context, s Solution, input string) (Result, error) {
	log := r.logger
	if log == nil {
		log = ctxlog.FromContext(ctx)
	}
	res := Result{Day: s.Day}
	start := time.Now()

	parts := []struct {
		n   int
		fn  PartFunc
		out *int
	}{
		{1, s.Part1, &res.Part1},
		{2, s.Part2, &res.Part2},
	}
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		t0 := time.Now()
		v, err := p.fn(input)
		if err != nil {
			return Result{}, fmt.Errorf("%w: day %d part %d: %w", ErrPartFailed, s.Day, p.n, err)
		}
		*p.out = v
		log.Debug("day.solved", "day", s.Day, "part", p.n, "elapsed", time.Since(t0))
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
