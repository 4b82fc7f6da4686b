package occgrid

// DistanceField computes the BFS geodesic distance (in cells) from the
// seed cell (x,y) to every cell of the grid, traversing Free cells only.
// Frontier cells are Free by definition, so every reachable frontier
// gets a finite distance. Entries for unreachable, Occupied, or Unknown
// cells are -1. If the seed itself is not Free, every entry is -1.
//
// Behavior:
//  1. Validate the seed coordinates.
//  2. BFS from the seed, expanding into Free neighbors only:
//     each step costs 1 regardless of direction.
//  3. Return the distance slice indexed by row-major cell index.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the distance slice and queue.
func (g *Grid) DistanceField(x, y int) ([]int, error) {
	if !g.InBounds(x, y) {
		return nil, ErrCellIndex
	}

	total := g.Width * g.Height
	dist := make([]int, total)
	for i := range dist {
		dist[i] = -1
	}
	if g.StateAt(x, y) != Free {
		return dist, nil
	}

	seed := g.Index(x, y)
	dist[seed] = 0
	queue := []int{seed}
	offsets := g.neighborOffsets

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := g.Coordinate(u)
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) || g.StateAt(vx, vy) != Free {
				continue
			}
			v := g.Index(vx, vy)
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist, nil
}
