package puzzle

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = map[int]Solution{}
)

// Register makes a solution available by day number. It is meant to be
// called from a day package's init function and panics if the day is out
// of range, either part is nil, or the day is already registered.
func Register(s Solution) {
	if s.Day < FirstDay || s.Day > LastDay {
		panic(fmt.Sprintf("puzzle: Register day %d outside %d..%d", s.Day, FirstDay, LastDay))
	}
	if s.Part1 == nil || s.Part2 == nil {
		panic(fmt.Sprintf("puzzle: Register day %d with nil part", s.Day))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[s.Day]; dup {
		panic(fmt.Sprintf("puzzle: Register called twice for day %d", s.Day))
	}
	registry[s.Day] = s
}

// Lookup returns the solution registered for day.
func Lookup(day int) (Solution, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[day]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered day numbers in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}
