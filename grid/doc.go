// Package grid treats a rectangular block of text as a 2D grid of byte
// cells, enabling neighbor lookups and breadth-first traversal.
//
// What:
//
//   - Grid wraps the rows of a puzzle input as [][]byte (Cells[y][x]).
//   - Point and Direction give compass movement (North, East, South, West).
//   - Conn4 / Conn8 select orthogonal or orthogonal+diagonal neighbors.
//   - BFS explores cells from a start point, with a pluggable edge filter,
//     and reports visit order, depth and parent links.
//
// Why:
//
//   - Engine schematics: find symbols adjacent (Conn8) to digit runs.
//   - Pipe mazes: follow only mutually connected pipes (Conn4 + filter)
//     and measure the farthest point of a loop.
//
// Complexity:
//
//   - New / Parse:  O(W×H) time and memory (deep copy).
//   - Neighbors:    O(d), d = 4 or 8.
//   - BFS:          O(W×H×d) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a start point lies outside the grid.
package grid
