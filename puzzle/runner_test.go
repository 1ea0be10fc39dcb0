package puzzle

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// lineCount and byteCount are trivial parts used by the fake days below.
func lineCount(input string) (int, error) { return strings.Count(input, "\n"), nil }
func byteCount(input string) (int, error) { return len(input), nil }
func failing(string) (int, error)         { return 0, errBoom }

func init() {
	Register(Solution{Day: 23, Title: "Counting", Part1: lineCount, Part2: byteCount})
	Register(Solution{Day: 24, Title: "Failing", Part1: lineCount, Part2: failing})
	Register(Solution{Day: 25, Title: "Counting Again", Part1: byteCount, Part2: lineCount})
}

//----------------------------------------------------------------------------//
// Registry
//----------------------------------------------------------------------------//

func TestRegistry(t *testing.T) {
	days := Days()
	assert.Subset(t, days, []int{23, 24, 25})
	for i := 1; i < len(days); i++ {
		assert.Less(t, days[i-1], days[i], "Days must be sorted")
	}

	s, err := Lookup(23)
	require.NoError(t, err)
	assert.Equal(t, "Counting", s.Title)

	_, err = Lookup(22)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestRegister_Panics(t *testing.T) {
	assert.Panics(t, func() { Register(Solution{Day: 23, Part1: lineCount, Part2: lineCount}) }, "duplicate")
	assert.Panics(t, func() { Register(Solution{Day: 0, Part1: lineCount, Part2: lineCount}) }, "day 0")
	assert.Panics(t, func() { Register(Solution{Day: 26, Part1: lineCount, Part2: lineCount}) }, "day 26")
	assert.Panics(t, func() { Register(Solution{Day: 22, Part1: lineCount}) }, "nil part")
}

//----------------------------------------------------------------------------//
// Runner
//----------------------------------------------------------------------------//

func TestRunner_InputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "day7.txt"), NewRunner().InputPath(7))

	r := NewRunner(WithInputDir("data"), WithInputPattern("%02d.in"), WithInputDir(""))
	assert.Equal(t, filepath.Join("data", "07.in"), r.InputPath(7))
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day23.txt"), []byte("a\nbb\n"), 0o600))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRunner(WithInputDir(dir), WithLogger(logger))

	res, err := r.Run(context.Background(), 23)
	require.NoError(t, err)
	assert.Equal(t, 23, res.Day)
	assert.Equal(t, 2, res.Part1)
	assert.Equal(t, 5, res.Part2)
	assert.Contains(t, logs.String(), "day.solved")

	var out bytes.Buffer
	_, err = res.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 2\nPart 2: 5\n", out.String())
}

func TestRunner_RunErrors(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(WithInputDir(dir))

	_, err := r.Run(context.Background(), 22)
	assert.ErrorIs(t, err, ErrUnknownDay)

	_, err = r.Run(context.Background(), 23)
	assert.ErrorIs(t, err, ErrInputNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "day24.txt"), []byte("x\n"), 0o600))
	_, err = r.Run(context.Background(), 24)
	assert.ErrorIs(t, err, ErrPartFailed)
	assert.ErrorIs(t, err, errBoom)

	permission := NewRunner(withReadFile(func(string) ([]byte, error) { return nil, fs.ErrPermission }))
	_, err = permission.Run(context.Background(), 23)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, ErrInputNotFound)
}

func TestRunner_Canceled(t *testing.T) {
	r := NewRunner(withReadFile(func(string) ([]byte, error) { return []byte("x"), nil }))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, 23)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_RunAll(t *testing.T) {
	inputs := map[string]string{
		filepath.Join("in", "day23.txt"): "one\ntwo\nthree\n",
		filepath.Join("in", "day25.txt"): "z",
	}
	r := NewRunner(WithInputDir("in"), withReadFile(func(path string) ([]byte, error) {
		s, ok := inputs[path]
		if !ok {
			return nil, fs.ErrNotExist
		}
		return []byte(s), nil
	}))

	results, err := r.RunAll(context.Background(), []int{25, 23})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, Result{Day: 25, Part1: 1, Part2: 0}, withoutElapsed(results[0]))
	assert.Equal(t, Result{Day: 23, Part1: 3, Part2: 14}, withoutElapsed(results[1]))

	_, err = r.RunAll(context.Background(), []int{23, 24})
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestSolveInput(t *testing.T) {
	s, err := Lookup(25)
	require.NoError(t, err)
	res, err := SolveInput(s, "ab\n")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Part1)
	assert.Equal(t, 1, res.Part2)
}

func withoutElapsed(r Result) Result {
	r.Elapsed = 0
	return r
}
