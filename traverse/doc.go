// Package traverse implements depth-first route discovery over a board.Board,
// from its Start cell to its End cell, with an explicit stack and no recursion.
//
// What:
//
//   - Run(b, opts...): one full search from Start; mutates the board in place,
//     marking expanded cells Explored and the discovered route SolutionPath.
//   - Moves are generated per cell in the fixed order East, West, North, South
//     and consumed LIFO, so the East candidate of the newest expansion is
//     always processed first. Output is fully deterministic for a given board.
//   - A visited set keyed by packed row-major index prevents re-expansion of
//     cycles inherent to an undirected grid.
//   - Parent linkage lives in an append-only node arena; each node's parent
//     index is assigned once at creation, and the winning node's ancestor
//     chain yields the origin-to-target path.
//
// Why:
//
//   - Obstacle-course puzzles: find one route, not necessarily the shortest.
//   - Visual front-ends: OnExplore and OnSolution hooks animate the search.
//
// Complexity:
//
//   - Time:   O(W×H) — each cell expands at most once after deduplication.
//   - Memory: O(W×H) for the visited set, the stack, and the node arena.
//
// Options:
//
//   - WithOnExplore(fn)   hook fired when a cell is first marked Explored.
//   - WithOnSolution(fn)  hook fired once with the discovered path.
//
// Errors:
//
//   - ErrNilBoard         if b is nil.
//
// Absence of a route is not an error: the run terminates Exhausted with an
// empty path. The search is single-threaded and runs to completion within one
// call; the board must not be touched by anyone else while it runs.
package traverse
