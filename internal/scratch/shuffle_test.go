package scratch

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func countWins(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o == Win {
			n++
		}
	}
	return n
}

func TestNewOutcomes(t *testing.T) {
	tests := []Params{
		{Rows: 4, Cols: 3, WinCount: 0},
		{Rows: 4, Cols: 3, WinCount: 1},
		{Rows: 4, Cols: 3, WinCount: 3},
		{Rows: 4, Cols: 3, WinCount: 12},
		{Rows: 1, Cols: 1, WinCount: 1},
		{Rows: 10, Cols: 10, WinCount: 37},
	}

	r := newTestRand()
	for _, p := range tests {
		t.Run(p.String(), func(t *testing.T) {
			for range 50 {
				outcomes := NewOutcomes(p, r)
				assert.Len(t, outcomes, p.Total())
				assert.Equal(t, p.WinCount, countWins(outcomes))
			}
		})
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := newTestRand()
	in := []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	orig := slices.Clone(in)

	for range 100 {
		out := Shuffle(in, r)
		assert.Equal(t, orig, in, "input must not be modified")

		sorted := slices.Clone(out)
		slices.Sort(sorted)
		assert.Equal(t, orig, sorted)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	in := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	a := Shuffle(in, rand.New(rand.NewPCG(7, 7)))
	b := Shuffle(in, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
}

func TestShuffleCoversEveryPosition(t *testing.T) {
	r := newTestRand()
	in := []Outcome{Win, Lose, Lose, Lose}
	seen := make([]bool, len(in))
	for range 200 {
		out := Shuffle(in, r)
		seen[slices.Index(out, Win)] = true
	}
	for i, ok := range seen {
		assert.True(t, ok, "win never landed at %d", i)
	}
}

func TestShuffleEmpty(t *testing.T) {
	assert.Empty(t, Shuffle([]Outcome{}, newTestRand()))
	assert.Equal(t, []Outcome{Win}, Shuffle([]Outcome{Win}, newTestRand()))
}
