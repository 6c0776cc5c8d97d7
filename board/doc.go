// Package board models a rectangular grid of classified cells for
// single-source, single-target pathfinding.
//
// What:
//
//   - Board wraps a fixed Width×Height grid where every cell carries exactly
//     one Kind (Unvisited, Obstacle, Explored, SolutionPath, Start, End).
//   - Exactly one cell is Start and exactly one is End; Start ≠ End.
//   - IsTraversable encodes the movement rule: out-of-bounds, Obstacle and
//     Start cells are closed, everything else is open.
//   - Reset reinitializes a board in place for a fresh run ("new game").
//   - OpenRegions / CanReach analyze connectivity of open cells, letting a
//     caller detect a walled-off End before running a traversal.
//
// Why:
//
//   - Puzzle and game boards: paint obstacles, then search for a route.
//   - Editor front-ends: read cell kinds to render, write Obstacle on click.
//   - Preflight checks: warn when no route can exist at all.
//
// Complexity:
//
//   - Classify / SetClassification / IsTraversable: O(1).
//   - New / Reset / Clone / Equal / String: O(W×H).
//   - OpenRegions / CanReach: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyBoard: width or height below one cell.
//   - ErrInvalidConfiguration: start and end coincide or fall outside the grid.
//   - ErrOutOfBounds: cell access outside [0,Width)×[0,Height).
package board
