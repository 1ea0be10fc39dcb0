// Package aoc2023 collects solutions to the first ten days of
// Advent of Code 2023, each one a small pipeline:
//
//	read input → parse → Part 1 / Part 2 → print
//
// What lives where:
//
//	cmd/aoc2023/ — command-line entry point (run, list, verify)
//	internal/    — cobra commands, lipgloss styling, context logger
//	config/      — YAML config file + AOC_* environment overrides
//	puzzle/      — Solution registry, Runner, Result printing
//	parse/       — line/block splitting and integer field parsing
//	numeric/     — GCD / LCM / Abs over integer constraints
//	grid/        — byte grids, 4/8 connectivity, BFS over cells
//	interval/    — half-open ranges and range remapping tables
//	days/dayNN/  — one package per puzzle day
//
// Every day is independent: no day imports another, and each registers
// itself with the puzzle registry from its init function. Import
// github.com/katalvlaran/aoc2023/days to load all of them.
//
//	go run ./cmd/aoc2023 run 10
//	Part 1: <n>
//	Part 2: <n>
package aoc2023
