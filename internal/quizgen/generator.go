package quizgen

import (
	"math/rand/v2"

	"github.com/abhisek/vocabquiz/internal/vocab"
)

// Generator builds questions from a vocabulary.
type Generator struct {
	rng       *rand.Rand
	choices   int
	direction Direction
}

// New creates a Generator producing questions with the given number of
// choices in the given direction.
func New(rng *rand.Rand, choices int, direction Direction) *Generator {
	if direction == "" {
		direction = DefaultDirection
	}
	return &Generator{rng: rng, choices: choices, direction: direction}
}

// Generate builds the question for pair index. number is the question's
// position in the pass and is copied into the result.
func (g *Generator) Generate(v vocab.Vocabulary, index, number int) (*Question, error) {
	dir := g.resolve()

	choices, err := Choices(g.rng, v, index, g.choices, dir.AnswerSide())
	if err != nil {
		return nil, err
	}

	pair := v[index]
	return &Question{
		Number:    number,
		Prompt:    pair.Value(dir.PromptSide()),
		Answer:    pair.Value(dir.AnswerSide()),
		Choices:   choices,
		PairIndex: index,
		Direction: dir,
	}, nil
}

func (g *Generator) resolve() Direction {
	if g.direction != Random {
		return g.direction
	}
	if g.rng.IntN(2) == 0 {
		return TermToDefinition
	}
	return DefinitionToTerm
}
