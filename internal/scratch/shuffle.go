package scratch

import "math/rand/v2"

// Shuffle returns a uniformly permuted copy of s. s itself is left untouched.
func Shuffle[T any](s []T, rnd *rand.Rand) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewOutcomes lays out p.WinCount wins followed by losses and shuffles them.
func NewOutcomes(p Params, rnd *rand.Rand) []Outcome {
	outcomes := make([]Outcome, p.Total())
	for i := range p.WinCount {
		outcomes[i] = Win
	}
	return Shuffle(outcomes, rnd)
}
