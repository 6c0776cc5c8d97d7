// Package board defines core types and sentinel errors for the board
// subpackage of github.com/katalvlaran/gridpath.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board operations.
var (
	// ErrEmptyBoard indicates width or height below one cell.
	ErrEmptyBoard = errors.New("board: width and height must be at least one cell")
	// ErrInvalidConfiguration indicates start/end cells that coincide or lie outside the grid.
	ErrInvalidConfiguration = errors.New("board: start and end must be distinct in-bounds cells")
	// ErrOutOfBounds indicates a cell access outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("board: coordinate outside the grid")
	// ErrUnknownKind indicates a cell kind name that does not parse.
	ErrUnknownKind = errors.New("board: unknown cell kind")
)

// Kind is the classification of a single grid cell.
// The set is closed and mutually exclusive: every cell holds exactly one Kind.
type Kind uint8

const (
	// Unvisited is the default kind of a fresh cell.
	Unvisited Kind = iota
	// Obstacle blocks movement through the cell.
	Obstacle
	// Explored marks a cell the traversal engine expanded.
	Explored
	// SolutionPath marks a cell on the discovered route.
	SolutionPath
	// Start is the traversal origin; exactly one per board.
	Start
	// End is the traversal target; exactly one per board.
	End
)

// kindNames maps each Kind to its canonical lowercase name.
var kindNames = [...]string{
	Unvisited:    "unvisited",
	Obstacle:     "obstacle",
	Explored:     "explored",
	SolutionPath: "solution",
	Start:        "start",
	End:          "end",
}

// String returns the canonical name of k, or "kind(N)" for values outside the set.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a canonical name back to its Kind.
// Returns ErrUnknownKind for anything outside the closed set.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Unvisited, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Coord addresses one grid cell: X is the column, Y the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Board is a rectangular grid of classified cells. Width and Height are fixed
// at construction; cell contents mutate in place during a traversal.
// Cells are stored row-major: index = y*Width + x.
type Board struct {
	Width, Height int
	cells         []Kind
	start, end    Coord
}

// Start returns the coordinate currently stamped Start.
func (b *Board) Start() Coord { return b.start }

// End returns the coordinate currently stamped End.
func (b *Board) End() Coord { return b.end }
