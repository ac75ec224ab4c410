package quizgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/vocabquiz/internal/vocab"
)

var (
	// ErrInsufficientVocabulary means the vocabulary cannot fill a choice set
	// of the requested size with distinct values.
	ErrInsufficientVocabulary = errors.New("not enough distinct words for the requested number of choices")

	// ErrInvalidChoiceCount is returned when too few choices are requested.
	ErrInvalidChoiceCount = errors.New("too few choices")
)

// Question is a single multiple-choice question ready for display.
type Question struct {
	// Number is the 1-based position of the question in the pass.
	Number int

	// Prompt is the half of the pair shown to the user.
	Prompt string

	// Answer is the half of the pair the user must pick.
	Answer string

	// Choices holds the shuffled options. Answer appears exactly once.
	Choices []string

	// PairIndex is the index of the source pair in the vocabulary.
	PairIndex int

	// Direction is the resolved direction of this question, never Random.
	Direction Direction
}

// CorrectIndex returns the position of Answer in Choices, or -1.
func (q *Question) CorrectIndex() int {
	for i, c := range q.Choices {
		if c == q.Answer {
			return i
		}
	}
	return -1
}

// Direction selects which half of a pair is asked for.
type Direction string

const (
	// TermToDefinition shows the term and asks for the definition.
	TermToDefinition Direction = "term"

	// DefinitionToTerm shows the definition and asks for the term.
	DefinitionToTerm Direction = "definition"

	// Random flips a coin for every question.
	Random Direction = "random"
)

// DefaultDirection is used when no direction is configured.
const DefaultDirection = TermToDefinition

// ParseDirection parses a direction name. Empty input yields DefaultDirection.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultDirection, nil
	case TermToDefinition:
		return TermToDefinition, nil
	case DefinitionToTerm:
		return DefinitionToTerm, nil
	case Random:
		return Random, nil
	}
	return "", fmt.Errorf("unknown direction %q (want term, definition or random)", s)
}

// PromptSide returns the side shown to the user.
func (d Direction) PromptSide() vocab.Side {
	if d == DefinitionToTerm {
		return vocab.SideDefinition
	}
	return vocab.SideTerm
}

// AnswerSide returns the side the user must pick.
func (d Direction) AnswerSide() vocab.Side {
	return d.PromptSide().Opposite()
}

// AnswerSides returns every side a question in direction d may ask for.
// Random can ask for either.
func (d Direction) AnswerSides() []vocab.Side {
	if d == Random {
		return []vocab.Side{vocab.SideDefinition, vocab.SideTerm}
	}
	return []vocab.Side{d.AnswerSide()}
}

// Label is a short human-readable description.
func (d Direction) Label() string {
	switch d {
	case DefinitionToTerm:
		return "definition → term"
	case Random:
		return "mixed"
	default:
		return "term → definition"
	}
}
