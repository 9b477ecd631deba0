package scratch

import "strconv"

type Outcome int8

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "lose"
}

// Glyph is the content a cell shows once revealed.
type Glyph struct {
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
}

var (
	WinGlyph  = Glyph{Symbol: "😊", Label: "smile"}
	LoseGlyph = Glyph{Symbol: "😢", Label: "sad"}
)

func (o Outcome) Glyph() Glyph {
	if o == Win {
		return WinGlyph
	}
	return LoseGlyph
}

type Result struct {
	Wins int `json:"wins"`
}

func (r Result) NoWins() bool {
	return r.Wins == 0
}

func (r Result) String() string {
	if r.NoWins() {
		return "Out of luck!"
	}
	return "Total Wins: " + strconv.Itoa(r.Wins)
}
