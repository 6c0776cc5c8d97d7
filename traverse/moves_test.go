// File: traverse/moves_test.go
package traverse

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/board"
)

// arenaWith seeds an arena holding a single root node at (x,y).
func arenaWith(x, y int) []node {
	return []node{{x: x, y: y, parent: -1}}
}

// TestPossibleMoves_Order verifies the fixed East, West, North, South
// enumeration from an interior cell with all four neighbors open.
func TestPossibleMoves_Order(t *testing.T) {
	b, err := board.New(3, 3, board.Coord{X: 0, Y: 0}, board.Coord{X: 2, Y: 2})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	arena := arenaWith(1, 1)

	got := possibleMoves(b, arena, 0)
	want := []pendingMove{
		{x: 2, y: 1, parent: 0}, // East
		{x: 0, y: 1, parent: 0}, // West
		{x: 1, y: 0, parent: 0}, // North
		{x: 1, y: 2, parent: 0}, // South
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("possibleMoves = %v; want %v", got, want)
	}
}

// TestPossibleMoves_Filtering drops out-of-bounds, Obstacle, and Start
// neighbors while keeping Explored and End cells.
func TestPossibleMoves_Filtering(t *testing.T) {
	// Root sits at (1,0) beside the Start stamp; North is out of bounds,
	// West is Start, South is an obstacle, East is End.
	b, err := board.New(3, 2, board.Coord{X: 0, Y: 0}, board.Coord{X: 2, Y: 0})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err = b.SetClassification(1, 1, board.Obstacle); err != nil {
		t.Fatalf("SetClassification error: %v", err)
	}
	arena := arenaWith(1, 0)

	got := possibleMoves(b, arena, 0)
	want := []pendingMove{{x: 2, y: 0, parent: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("possibleMoves = %v; want %v", got, want)
	}
}

// TestPossibleMoves_NoMutation asserts the generator leaves the board untouched.
func TestPossibleMoves_NoMutation(t *testing.T) {
	b, _ := board.New(3, 3, board.Coord{X: 0, Y: 0}, board.Coord{X: 2, Y: 2})
	snapshot := b.Clone()
	_ = possibleMoves(b, arenaWith(1, 1), 0)
	if !b.Equal(snapshot) {
		t.Error("possibleMoves mutated the board")
	}
}

// TestPushMoves_LIFOPreference checks that the first-generated candidate is
// the last pushed, i.e. the first popped.
func TestPushMoves_LIFOPreference(t *testing.T) {
	moves := []pendingMove{
		{x: 2, y: 1, parent: 0},
		{x: 0, y: 1, parent: 0},
		{x: 1, y: 0, parent: 0},
	}
	stack := pushMoves(nil, moves)
	if len(stack) != 3 {
		t.Fatalf("stack length = %d; want 3", len(stack))
	}
	if top := stack[len(stack)-1]; top != moves[0] {
		t.Errorf("stack top = %v; want first candidate %v", top, moves[0])
	}
}

// TestRebuildPath walks a hand-built ancestor chain and expects the
// origin-to-target ordering.
func TestRebuildPath(t *testing.T) {
	arena := []node{
		{x: 0, y: 0, parent: -1},
		{x: 1, y: 0, parent: 0},
		{x: 1, y: 1, parent: 1},
	}
	got := rebuildPath(arena, 2)
	want := []board.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rebuildPath = %v; want %v", got, want)
	}
}
