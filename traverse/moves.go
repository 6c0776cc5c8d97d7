package traverse

import "github.com/katalvlaran/gridpath/board"

// node is one arena entry: a reached coordinate plus the arena index of the
// node it was expanded from. parent is assigned exactly once, at creation,
// and never changed; the root carries parent == -1.
type node struct {
	x, y   int
	parent int32
}

// pendingMove is a deferred expansion candidate sitting in the work stack:
// a target coordinate plus the arena index of its originating node.
// Each pending move is consumed exactly once.
type pendingMove struct {
	x, y   int
	parent int32
}

// moveOffsets enumerates the four orthogonal directions in the fixed order
// East, West, North, South. This order is part of the observable contract:
// it decides which of several equally valid routes is discovered first.
var moveOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}

// possibleMoves expands the node at arena index parent into pending moves for
// each traversable orthogonal neighbor, in East, West, North, South order.
// Pure with respect to the board: validity checks only, no mutation.
// Complexity: O(1).
func possibleMoves(b *board.Board, arena []node, parent int32) []pendingMove {
	n := arena[parent]
	moves := make([]pendingMove, 0, len(moveOffsets))
	for _, d := range moveOffsets {
		nx, ny := n.x+d[0], n.y+d[1]
		if b.IsTraversable(nx, ny) {
			moves = append(moves, pendingMove{x: nx, y: ny, parent: parent})
		}
	}
	return moves
}

// pushMoves appends moves to the stack in reverse, so that the first-generated
// candidate (East) is the first one popped. The LIFO preference
// East, West, North, South over the newest expansion is what makes the
// depth-first discovery order reproducible.
func pushMoves(stack, moves []pendingMove) []pendingMove {
	for i := len(moves) - 1; i >= 0; i-- {
		stack = append(stack, moves[i])
	}
	return stack
}
