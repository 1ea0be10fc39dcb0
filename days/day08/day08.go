// Package day08 solves "Haunted Wasteland": walking a directed graph of
// left/right forks by a repeating instruction string.
package day08

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/parse"
	"github.com/katalvlaran/aoc2023/puzzle"
)

var (
	// ErrMalformed indicates input that is not instructions, a blank line and nodes.
	ErrMalformed = errors.New("day08: malformed network")
	// ErrUnknownNode indicates a walk reached a node that has no definition.
	ErrUnknownNode = errors.New("day08: unknown node")
	// ErrNoExit indicates a walk that cycles without ever reaching an exit.
	ErrNoExit = errors.New("day08: walk never reaches an exit")
	// ErrMisaligned indicates ghosts that each reach exits but never all at once.
	ErrMisaligned = errors.New("day08: ghosts never stand on exits together")
)

func init() {
	puzzle.Register(puzzle.Solution{Day: 8, Title: "Haunted Wasteland", Part1: Part1, Part2: Part2})
}

// Fork is a node's pair of successors.
type Fork struct {
	Left, Right string
}

// Network is the instruction string plus the node table.
type Network struct {
	Instructions string
	Nodes        map[string]Fork
}

// Parse reads the instruction line and every "AAA = (BBB, CCC)" node.
func Parse(input string) (*Network, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: want instructions and nodes", ErrMalformed)
	}
	ins := strings.TrimSpace(blocks[0][0])
	if ins == "" || strings.Trim(ins, "LR") != "" {
		return nil, fmt.Errorf("%w: instructions %q", ErrMalformed, ins)
	}

	n := &Network{Instructions: ins, Nodes: make(map[string]Fork, len(blocks[1]))}
	for _, line := range blocks[1] {
		id, rest, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: node %q", ErrMalformed, line)
		}
		rest = strings.TrimSpace(rest)
		if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
			return nil, fmt.Errorf("%w: node %q", ErrMalformed, line)
		}
		l, r, ok := strings.Cut(rest[1:len(rest)-1], ",")
		if !ok {
			return nil, fmt.Errorf("%w: node %q", ErrMalformed, line)
		}
		n.Nodes[strings.TrimSpace(id)] = Fork{Left: strings.TrimSpace(l), Right: strings.TrimSpace(r)}
	}

	return n, nil
}

// Walk counts steps from start until exit reports true, cycling through
// the instructions. A walk longer than nodes × instructions steps has
// entered a loop with no exit.
func (n *Network) Walk(start string, exit func(string) bool) (int, error) {
	steps, _, err := n.walk(start, 0, 0, exit)
	return steps, err
}

// walk starts at instruction offset and ignores exits before minSteps.
// It returns the step count and the exit node reached.
func (n *Network) walk(start string, offset, minSteps int, exit func(string) bool) (int, string, error) {
	limit := minSteps + len(n.Nodes)*len(n.Instructions)
	cur := start
	for steps := 0; steps <= limit; steps++ {
		if steps >= minSteps && exit(cur) {
			return steps, cur, nil
		}
		next, err := n.step(cur, offset+steps)
		if err != nil {
			return 0, "", err
		}
		cur = next
	}

	return 0, "", fmt.Errorf("%w: from %q", ErrNoExit, start)
}

// step follows instruction i (mod the instruction count) from id.
func (n *Network) step(id string, i int) (string, error) {
	fork, ok := n.Nodes[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	if n.Instructions[i%len(n.Instructions)] == 'L' {
		return fork.Left, nil
	}

	return fork.Right, nil
}

// periodic returns d, the steps from start to its first exit, and reports
// whether the ghost is back in the same state d steps later with no exit
// in between. Exits then fall exactly on multiples of d.
func (n *Network) periodic(start string, exit func(string) bool) (int, bool, error) {
	d, node, err := n.walk(start, 0, 0, exit)
	if err != nil {
		return 0, false, err
	}
	if d == 0 || d%len(n.Instructions) != 0 {
		return d, false, nil
	}
	again, node2, err := n.walk(node, d, 1, exit)
	if err != nil {
		return d, false, nil
	}

	return d, again == d && node2 == node, nil
}

// maxLockStates bounds the lock-step fallback's memory.
const maxLockStates = 1 << 22

// lockStep moves every ghost together until all stand on exits. Seeing
// the same joint state twice means they never will.
func (n *Network) lockStep(starts []string, exit func(string) bool) (int, error) {
	cur := append([]string(nil), starts...)
	seen := make(map[string]struct{})
	for steps := 0; ; steps++ {
		done := true
		for _, id := range cur {
			if !exit(id) {
				done = false
				break
			}
		}
		if done {
			return steps, nil
		}

		key := strconv.Itoa(steps%len(n.Instructions)) + "|" + strings.Join(cur, ",")
		if _, ok := seen[key]; ok {
			return 0, fmt.Errorf("%w: exits never coincide", ErrMisaligned)
		}
		if len(seen) >= maxLockStates {
			return 0, fmt.Errorf("%w: no common exit within %d states", ErrMisaligned, maxLockStates)
		}
		seen[key] = struct{}{}

		for i, id := range cur {
			next, err := n.step(id, steps)
			if err != nil {
				return 0, err
			}
			cur[i] = next
		}
	}
}

// Part1 counts steps from AAA to ZZZ.
func Part1(input string) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return n.Walk("AAA", func(id string) bool { return id == "ZZZ" })
}

// Part2 walks every ..A node at once and returns the first step at which
// all stand on ..Z nodes. When every ghost returns to its first exit
// after the same distance again, the answer is the LCM of those
// distances; otherwise the ghosts are walked in lock step.
func Part2(input string) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}

	var starts []string
	for id := range n.Nodes {
		if strings.HasSuffix(id, "A") {
			starts = append(starts, id)
		}
	}
	sort.Strings(starts)
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no start nodes ending in A", ErrMalformed)
	}

	exit := func(id string) bool { return strings.HasSuffix(id, "Z") }
	dists := make([]int, 0, len(starts))
	aligned := true
	for _, s := range starts {
		d, ok, err := n.periodic(s, exit)
		if err != nil {
			return 0, err
		}
		aligned = aligned && ok
		dists = append(dists, d)
	}
	if !aligned {
		return n.lockStep(starts, exit)
	}

	return numeric.LCMAll(dists...), nil
}
