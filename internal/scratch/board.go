package scratch

import (
	"fmt"
	"math/rand/v2"
)

// Board is the grid controller. It owns the shuffled outcomes, the set of
// revealed cells and the final result. A Board is not safe for concurrent
// use; its owner drives it from a single goroutine.
type Board struct {
	params   Params
	surface  Surface
	layout   Layout
	rnd      *rand.Rand
	outcomes []Outcome
	cells    []*Cell
	revealed map[int]struct{}
	result   *Result
	onResult func(Result)
}

// NewBoard shuffles the outcomes for p and mounts one cell per position.
// onResult, if not nil, is called once when the last cell is revealed.
func NewBoard(p Params, rnd *rand.Rand, onResult func(Result)) (*Board, error) {
	return NewBoardWithSurface(p, DefaultSurface(), rnd, onResult)
}

func NewBoardWithSurface(
	p Params, surface Surface, rnd *rand.Rand, onResult func(Result),
) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		surface:  surface,
		rnd:      rnd,
		onResult: onResult,
	}
	b.initialize(p)
	return b, nil
}

func (b *Board) initialize(p Params) {
	b.unmountCells()
	b.params = p
	b.layout = NewLayout(p.Cols, b.surface)
	b.outcomes = NewOutcomes(p, b.rnd)
	b.revealed = make(map[int]struct{}, p.Total())
	b.result = nil
	b.cells = make([]*Cell, len(b.outcomes))
	for i, o := range b.outcomes {
		b.cells[i] = newCell(b.surface, o, func() { b.OnCellRevealed(i) })
	}
}

// Configure re-deals the board when p differs from the current params and
// reports whether it did. Identical params leave the board untouched.
func (b *Board) Configure(p Params) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if p == b.params {
		return false, nil
	}
	b.initialize(p)
	return true, nil
}

// OnCellRevealed records index as revealed. Repeated calls for the same
// index have no further effect.
func (b *Board) OnCellRevealed(index int) {
	if index < 0 || index >= len(b.outcomes) {
		return
	}
	if _, ok := b.revealed[index]; ok {
		return
	}
	b.revealed[index] = struct{}{}
	if len(b.revealed) != len(b.outcomes) || b.result != nil {
		return
	}
	wins := 0
	for i := range b.revealed {
		if b.outcomes[i] == Win {
			wins++
		}
	}
	b.result = &Result{Wins: wins}
	if b.onResult != nil {
		b.onResult(*b.result)
	}
}

// Scratch applies a pointer move in the cell's local coordinates.
func (b *Board) Scratch(index int, p Point) (bool, error) {
	if index < 0 || index >= len(b.cells) {
		return false, fmt.Errorf("%w (index = %d, cells = %d)", ErrCellOutOfRange, index, len(b.cells))
	}
	return b.cells[index].Scratch(p), nil
}

// ScratchAt applies a pointer move given in grid coordinates. Moves that do
// not land on a cell surface are dropped.
func (b *Board) ScratchAt(p Point) (index int, revealed bool) {
	index, local, ok := b.layout.Locate(p, len(b.cells))
	if !ok {
		return -1, false
	}
	return index, b.cells[index].Scratch(local)
}

// Unmount detaches every cell from pointer input.
func (b *Board) Unmount() {
	b.unmountCells()
}

func (b *Board) unmountCells() {
	for _, c := range b.cells {
		c.Unmount()
	}
}

func (b *Board) Params() Params {
	return b.params
}

func (b *Board) Layout() Layout {
	return b.layout
}

// Outcomes returns a copy of the dealt outcomes.
func (b *Board) Outcomes() []Outcome {
	out := make([]Outcome, len(b.outcomes))
	copy(out, b.outcomes)
	return out
}

func (b *Board) Cell(index int) (*Cell, bool) {
	if index < 0 || index >= len(b.cells) {
		return nil, false
	}
	return b.cells[index], true
}

func (b *Board) RevealedCount() int {
	return len(b.revealed)
}

// Result is nil until every cell has been revealed.
func (b *Board) Result() *Result {
	return b.result
}

func (b *Board) Finished() bool {
	return b.result != nil
}
