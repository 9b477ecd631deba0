package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/scratchcard/internal/scratch"
)

const defaultMaxCells = 100

type Card struct {
	Defaults scratch.Params
	MaxCells int
}

func lookupInt(key string, def int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s: %w", key, err)
	}
	return n, nil
}

func NewCard() (*Card, error) {
	rows, err := lookupInt("CARD_ROWS", scratch.DefaultRows)
	if err != nil {
		return nil, err
	}

	cols, err := lookupInt("CARD_COLS", scratch.DefaultCols)
	if err != nil {
		return nil, err
	}

	winCount, err := lookupInt("CARD_WIN_COUNT", scratch.DefaultWinCount)
	if err != nil {
		return nil, err
	}

	maxCells, err := lookupInt("CARD_MAX_CELLS", defaultMaxCells)
	if err != nil {
		return nil, err
	}

	card := &Card{
		Defaults: scratch.Params{Rows: rows, Cols: cols, WinCount: winCount},
		MaxCells: maxCells,
	}

	if err := card.Validate(card.Defaults); err != nil {
		return nil, fmt.Errorf("invalid default card: %w", err)
	}

	return card, nil
}

var ErrTooManyCells = fmt.Errorf("too many cells")

// Validate checks p on its own and against the configured cell limit.
func (c *Card) Validate(p scratch.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if c.MaxCells > 0 && p.Total() > c.MaxCells {
		return fmt.Errorf("%w (cells = %d, max = %d)", ErrTooManyCells, p.Total(), c.MaxCells)
	}
	return nil
}
