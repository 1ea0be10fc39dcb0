package grid

// BFS performs a breadth-first traversal of g starting at start.
//
// Behavior:
//  1. Validate start lies inside the grid.
//  2. Expand each dequeued cell to its in-bounds neighbors under Conn.
//  3. Skip steps rejected by Filter (if any) and cells already seen.
//  4. Record visit order, depth and parent for every reached cell.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (g *Grid) BFS(start Point, opts ...Option) (*BFSResult, error) {
	if !g.InBounds(start) {
		return nil, ErrOutOfBounds
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &BFSResult{
		Order:  []Point{},
		Depth:  map[Point]int{start: 0},
		Parent: map[Point]Point{},
	}
	queue := []Point{start}
	offs := Offsets(o.Conn)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		res.Order = append(res.Order, u)
		for _, d := range offs {
			v := u.Add(d)
			if !g.InBounds(v) {
				continue
			}
			if _, seen := res.Depth[v]; seen {
				continue
			}
			if o.Filter != nil && !o.Filter(g, u, v) {
				continue
			}
			res.Depth[v] = res.Depth[u] + 1
			res.Parent[v] = u
			queue = append(queue, v)
		}
	}

	return res, nil
}
