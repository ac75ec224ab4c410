package quizgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/vocabquiz/internal/vocab"
)

// Choices builds a shuffled set of count distinct values taken from side of
// the vocabulary. The target pair's value is always included.
//
// Distractors come from the other pairs, visited in a random order without
// replacement, so the loop makes at most len(v)-1 draws. When merged
// definitions collide and the vocabulary holds fewer than count distinct
// values, ErrInsufficientVocabulary is returned.
func Choices(rng *rand.Rand, v vocab.Vocabulary, target, count int, side vocab.Side) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidChoiceCount
	}
	if count > len(v) {
		return nil, fmt.Errorf("%w: %d choices requested, %d pairs available",
			ErrInsufficientVocabulary, count, len(v))
	}
	if target < 0 || target >= len(v) {
		return nil, fmt.Errorf("target index %d out of range [0, %d)", target, len(v))
	}

	correct := v[target].Value(side)
	choices := make([]string, 0, count)
	choices = append(choices, correct)
	seen := map[string]bool{correct: true}

	for _, i := range rng.Perm(len(v)) {
		if len(choices) == count {
			break
		}
		if i == target {
			continue
		}
		value := v[i].Value(side)
		if seen[value] {
			continue
		}
		seen[value] = true
		choices = append(choices, value)
	}

	if len(choices) < count {
		return nil, fmt.Errorf("%w: only %d distinct %ss for %d choices",
			ErrInsufficientVocabulary, len(choices), side, count)
	}

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices, nil
}
