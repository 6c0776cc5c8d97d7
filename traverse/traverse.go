package traverse

import (
	"fmt"

	"github.com/katalvlaran/gridpath/board"
)

// Run performs one depth-first search over b from its Start cell toward its
// End cell, applying any number of functional Options. The board is mutated
// in place: expanded cells become Explored, and on success the intermediate
// route cells become SolutionPath (the Start and End stamps are preserved).
//
// The returned Result is Solved with the origin-to-target path when End was
// reached, or Exhausted with an empty path when no route exists — the latter
// is a legitimate outcome, not an error. Board access errors inside the loop
// indicate a broken move-generation invariant and surface wrapped.
//
// Two runs over identical boards produce identical results.
// Complexity: O(W×H) time and memory.
func Run(b *board.Board, opts ...Option) (Result, error) {
	if b == nil {
		return Result{Status: Idle}, ErrNilBoard
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	total := b.Width * b.Height

	// Arena slot 0 is the synthetic root at Start. The root is never
	// classified or visited-marked; it exists only to anchor parent chains.
	start := b.Start()
	arena := make([]node, 1, total)
	arena[0] = node{x: start.X, y: start.Y, parent: -1}

	visited := make([]bool, total)
	stack := pushMoves(make([]pendingMove, 0, total), possibleMoves(b, arena, 0))

	res := Result{Status: Running}
	for len(stack) > 0 {
		// Pop the most recently pushed pending move.
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Materialize the node; its parent index is frozen here.
		arena = append(arena, node{x: m.x, y: m.y, parent: m.parent})
		cur := int32(len(arena) - 1)

		kind, err := b.Classify(m.x, m.y)
		if err != nil {
			// Unreachable when possibleMoves filtered correctly.
			return res, fmt.Errorf("traverse: classify (%d,%d): %w", m.x, m.y, err)
		}
		if kind == board.End {
			res.Status = Solved
			res.Solved = true
			res.Path = rebuildPath(arena, cur)
			markSolution(b, res.Path)
			o.OnSolution(res.Path)

			return res, nil
		}

		// Deduplicate by packed row-major key; a grid is cyclic, so the same
		// cell can sit in the stack several times.
		key := m.y*b.Width + m.x
		if visited[key] {
			continue
		}
		visited[key] = true

		if err = b.SetClassification(m.x, m.y, board.Explored); err != nil {
			return res, fmt.Errorf("traverse: mark explored (%d,%d): %w", m.x, m.y, err)
		}
		res.Explored++
		o.OnExplore(m.x, m.y)

		stack = pushMoves(stack, possibleMoves(b, arena, cur))
	}

	res.Status = Exhausted

	return res, nil
}

// rebuildPath walks the ancestor chain of arena[last] up to the root,
// collecting coordinates target-to-origin, then reverses them so the first
// coordinate is Start and the last is End.
// Complexity: O(path length).
func rebuildPath(arena []node, last int32) []board.Coord {
	var path []board.Coord
	for at := last; at >= 0; at = arena[at].parent {
		path = append(path, board.Coord{X: arena[at].x, Y: arena[at].y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// markSolution stamps the route cells SolutionPath. Only Unvisited and
// Explored cells are overwritten, which leaves the Start and End stamps (the
// path's endpoints) intact.
func markSolution(b *board.Board, path []board.Coord) {
	for _, c := range path {
		k, err := b.Classify(c.X, c.Y)
		if err != nil {
			continue
		}
		if k == board.Unvisited || k == board.Explored {
			_ = b.SetClassification(c.X, c.Y, board.SolutionPath)
		}
	}
}
