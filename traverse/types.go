// Package traverse defines types, options, and sentinel errors for the
// depth-first traversal engine of github.com/katalvlaran/gridpath.
package traverse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/board"
)

// ErrNilBoard is returned when a nil *board.Board is passed to Run.
var ErrNilBoard = errors.New("traverse: board is nil")

// Status is the terminal (or in-flight) state of a traversal.
type Status uint8

const (
	// Idle: no traversal has started.
	Idle Status = iota
	// Running: the engine is mid-search. Only ever observable from hooks.
	Running
	// Solved: the End cell was reached; Result.Path holds the route.
	Solved
	// Exhausted: the stack emptied without reaching End; no route exists.
	Exhausted
)

// statusNames maps each Status to its lowercase name.
var statusNames = [...]string{
	Idle:      "idle",
	Running:   "running",
	Solved:    "solved",
	Exhausted: "exhausted",
}

// String returns the lowercase name of s, or "status(N)" for values outside the set.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Result captures the outcome of one traversal.
type Result struct {
	// Status is Solved or Exhausted on return from Run.
	Status Status
	// Solved mirrors Status == Solved for callers that only care about success.
	Solved bool
	// Path is the discovered route in origin-to-target order, first coordinate
	// Start and last End; empty when the run exhausted.
	Path []board.Coord
	// Explored counts cells the engine expanded (Start and End excluded).
	Explored int
}

// Option configures optional behavior of Run via functional arguments.
type Option func(*Options)

// Options holds hooks observed during a traversal.
// Hooks run synchronously inside the search loop; keep them O(1) to preserve
// the engine's O(W×H) bound.
type Options struct {
	// OnExplore is called when a cell is first marked Explored.
	OnExplore func(x, y int)

	// OnSolution is called once with the full path when the End cell is reached.
	OnSolution func(path []board.Coord)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExplore:  func(int, int) {},
		OnSolution: func([]board.Coord) {},
	}
}

// WithOnExplore registers fn to run when a cell is first marked Explored.
func WithOnExplore(fn func(x, y int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}

// WithOnSolution registers fn to run once with the discovered path.
func WithOnSolution(fn func(path []board.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSolution = fn
		}
	}
}
