package quiz

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/smartkids/internal/bank"
)

// shuffle returns a uniformly random permutation of qs without touching the
// input. A nil rng uses the global source.
func shuffle(qs []bank.Question, rng *rand.Rand) []bank.Question {
	out := slices.Clone(qs)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rng != nil {
		rng.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	return out
}
