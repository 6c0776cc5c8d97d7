package board

import "strings"

// New constructs a Board of the given dimensions with every cell Unvisited
// except the stamped Start and End cells.
// Returns ErrEmptyBoard if width or height is below one,
// ErrInvalidConfiguration if start and end coincide or fall outside the grid.
// Complexity: O(W×H) time and memory.
func New(width, height int, start, end Coord) (*Board, error) {
	b := &Board{}
	if err := b.init(width, height, start, end); err != nil {
		return nil, err
	}
	return b, nil
}

// init validates the configuration and (re)allocates cell storage.
// Shared by New and Reset so both enforce the same invariants.
func (b *Board) init(width, height int, start, end Coord) error {
	if width < 1 || height < 1 {
		return ErrEmptyBoard
	}
	if start == end {
		return ErrInvalidConfiguration
	}
	if !inBounds(width, height, start) || !inBounds(width, height, end) {
		return ErrInvalidConfiguration
	}
	cells := make([]Kind, width*height)
	cells[start.Y*width+start.X] = Start
	cells[end.Y*width+end.X] = End

	b.Width, b.Height = width, height
	b.cells = cells
	b.start, b.end = start, end

	return nil
}

// inBounds reports whether c lies within a width×height rectangle.
func inBounds(width, height int, c Coord) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (b *Board) Coordinate(idx int) Coord {
	return Coord{X: idx % b.Width, Y: idx / b.Width}
}

// Classify returns the Kind of cell (x,y).
// Returns ErrOutOfBounds outside the rectangle.
// Complexity: O(1).
func (b *Board) Classify(x, y int) (Kind, error) {
	if !b.InBounds(x, y) {
		return Unvisited, ErrOutOfBounds
	}
	return b.cells[b.index(x, y)], nil
}

// SetClassification overwrites the Kind of cell (x,y).
// Beyond the bounds check there is no validity rule here: callers own the
// single-Start/single-End invariant (the traversal engine only ever writes
// Explored or SolutionPath over open cells).
// Complexity: O(1).
func (b *Board) SetClassification(x, y int, k Kind) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	b.cells[b.index(x, y)] = k
	return nil
}

// IsTraversable reports whether a move may enter cell (x,y):
// false for out-of-bounds, Obstacle, and Start cells; true for Unvisited,
// Explored, SolutionPath, and End. Re-entering an already-explored cell is
// allowed by this rule — deduplication belongs to the traversal engine's
// visited set, not to the board.
// Complexity: O(1).
func (b *Board) IsTraversable(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	switch b.cells[b.index(x, y)] {
	case Obstacle, Start:
		return false
	default:
		return true
	}
}

// Reset reinitializes the board in place: every cell becomes Unvisited, then
// Start and End are stamped at the given coordinates. All prior exploration
// and solution markings are discarded. Validation matches New, and resetting
// twice with equal arguments yields equal boards.
// Complexity: O(W×H).
func (b *Board) Reset(width, height int, start, end Coord) error {
	return b.init(width, height, start, end)
}

// Clone returns a deep copy of the board.
// Complexity: O(W×H).
func (b *Board) Clone() *Board {
	cells := make([]Kind, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		Width:  b.Width,
		Height: b.Height,
		cells:  cells,
		start:  b.start,
		end:    b.end,
	}
}

// Equal reports whether two boards have identical dimensions and cell contents.
// Complexity: O(W×H).
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Width != other.Width || b.Height != other.Height {
		return false
	}
	for i, k := range b.cells {
		if other.cells[i] != k {
			return false
		}
	}
	return true
}

// cellRunes maps each Kind to its single-rune render used by String.
var cellRunes = [...]rune{
	Unvisited:    '.',
	Obstacle:     '#',
	Explored:     '*',
	SolutionPath: '+',
	Start:        'S',
	End:          'E',
}

// String renders the board as Height lines of Width runes:
// '.' Unvisited, '#' Obstacle, '*' Explored, '+' SolutionPath, 'S' Start, 'E' End.
// Complexity: O(W×H).
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sb.WriteRune(cellRunes[b.cells[b.index(x, y)]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
