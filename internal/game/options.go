package game

import (
	"math/rand/v2"
	"slices"

	"guessthelang/internal/lang"
)

// optionCount is the size of the multiple-choice set.
const optionCount = 4

// BuildOptions returns the option set for a round: the correct language
// plus three distinct random distractors, uniformly shuffled. Termination
// is guaranteed because the catalog is far larger than the set.
func BuildOptions(correct string) []string {
	options := make([]string, 0, optionCount)
	options = append(options, correct)

	for len(options) < optionCount {
		candidate := lang.Catalog[rand.IntN(len(lang.Catalog))]
		if !slices.Contains(options, candidate) {
			options = append(options, candidate)
		}
	}

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
