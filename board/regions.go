package board

// regionOffsets are the orthogonal neighbor offsets used by region analysis.
var regionOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}

// OpenRegions finds all contiguous regions of open (non-Obstacle) cells under
// 4-connectivity. Returns a slice of regions; each region is a slice of
// row-major cell indices in discovery order. The Start cell counts as open
// here even though IsTraversable rejects it: region membership answers "could
// a route exist", for which the origin itself must participate.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W×H).
// Memory: O(W×H) for visited flags and output.
func (b *Board) OpenRegions() [][]int {
	total := b.Width * b.Height
	seen := make([]bool, total)
	var regions [][]int

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			i0 := b.index(x, y)
			if seen[i0] || b.cells[i0] == Obstacle {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var region []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region = append(region, u)
				uc := b.Coordinate(u)
				for _, d := range regionOffsets {
					vx, vy := uc.X+d[0], uc.Y+d[1]
					if !b.InBounds(vx, vy) || b.cells[b.index(vx, vy)] == Obstacle {
						continue
					}
					vi := b.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// CanReach reports whether from and to lie in the same open region, i.e.
// whether any obstacle-free orthogonal route connects them. Out-of-bounds or
// Obstacle endpoints are never reachable. This is a preflight check only: a
// traversal may still be run regardless of its answer.
// Complexity: O(W×H).
func (b *Board) CanReach(from, to Coord) bool {
	if !b.InBounds(from.X, from.Y) || !b.InBounds(to.X, to.Y) {
		return false
	}
	if b.cells[b.index(from.X, from.Y)] == Obstacle || b.cells[b.index(to.X, to.Y)] == Obstacle {
		return false
	}
	fi, ti := b.index(from.X, from.Y), b.index(to.X, to.Y)
	for _, region := range b.OpenRegions() {
		var hasFrom, hasTo bool
		for _, idx := range region {
			if idx == fi {
				hasFrom = true
			}
			if idx == ti {
				hasTo = true
			}
		}
		if hasFrom || hasTo {
			return hasFrom && hasTo
		}
	}
	return false
}
