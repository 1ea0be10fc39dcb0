// Package cli wires the puzzle runner, configuration and logging into the
// aoc2023 command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2023/config"
	_ "github.com/katalvlaran/aoc2023/days"
	"github.com/katalvlaran/aoc2023/internal/ctxlog"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// Execute runs the root command and exits 1 on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds state resolved once in PersistentPreRunE and shared by
// every subcommand.
type app struct {
	configPath string
	inputDir   string
	debug      bool

	cfg    config.Config
	runner *puzzle.Runner
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "aoc2023",
		Short:        "Advent of Code 2023 solutions, days 1 to 10",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "YAML config file (optional)")
	cmd.PersistentFlags().StringVar(&a.inputDir, "inputs", "", "directory holding day<N>.txt input files")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log per-part timings to stderr")

	cmd.AddCommand(runCmd(a), listCmd(), verifyCmd(a))
	return cmd
}

// setup loads config, applies flag overrides and installs the logger on
// the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("inputs") {
		cfg.InputDir = a.inputDir
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = a.debug
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	a.runner = puzzle.NewRunner(cfg.RunnerOptions()...)
	logger.Debug("config.loaded", "path", a.configPath, "inputs", cfg.InputDir, "pattern", cfg.InputPattern)

	return nil
}
