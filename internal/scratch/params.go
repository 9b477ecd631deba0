package scratch

import (
	"errors"
	"fmt"
)

var (
	ErrBadDimensions  = errors.New("rows and cols must be positive")
	ErrBadWinCount    = errors.New("win count must be between 0 and rows*cols")
	ErrCellOutOfRange = errors.New("cell index out of range")
)

const (
	DefaultRows     = 4
	DefaultCols     = 3
	DefaultWinCount = 1
)

type Params struct {
	Rows     int `json:"rows"`
	Cols     int `json:"cols"`
	WinCount int `json:"win_count"`
}

func DefaultParams() Params {
	return Params{Rows: DefaultRows, Cols: DefaultCols, WinCount: DefaultWinCount}
}

func (p Params) Total() int {
	return p.Rows * p.Cols
}

func (p Params) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("%w (rows = %d, cols = %d)", ErrBadDimensions, p.Rows, p.Cols)
	}
	if p.WinCount < 0 || p.WinCount > p.Total() {
		return fmt.Errorf("%w (win_count = %d, cells = %d)", ErrBadWinCount, p.WinCount, p.Total())
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Cols, p.Rows, p.WinCount)
}
