package scratch

type CellView struct {
	Index    int     `json:"index"`
	Revealed bool    `json:"revealed"`
	Progress float64 `json:"progress"`
	Content  *Glyph  `json:"content,omitempty"`
}

type View struct {
	Rows     int        `json:"rows"`
	Cols     int        `json:"cols"`
	WinCount int        `json:"win_count"`
	Cells    []CellView `json:"cells"`
	Finished bool       `json:"finished"`
	Result   string     `json:"result,omitempty"`
	Wins     *int       `json:"wins,omitempty"`
}

// Render snapshots the board. Content is only filled in for revealed cells
// and the result text only once the whole card is revealed.
func (b *Board) Render() View {
	v := View{
		Rows:     b.params.Rows,
		Cols:     b.params.Cols,
		WinCount: b.params.WinCount,
		Cells:    make([]CellView, len(b.cells)),
	}
	for i, c := range b.cells {
		cv := CellView{Index: i, Revealed: c.Revealed(), Progress: c.Progress()}
		if glyph, visible := c.Content(); visible {
			cv.Content = &glyph
		}
		v.Cells[i] = cv
	}
	if b.Finished() {
		wins := b.result.Wins
		v.Finished = true
		v.Result = b.result.String()
		v.Wins = &wins
	}
	return v
}
