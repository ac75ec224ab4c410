package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabquiz/internal/vocab"
)

func TestGenerate_TermToDefinition(t *testing.T) {
	v := testVocab(4)
	g := New(testRand(10), 3, TermToDefinition)

	q, err := g.Generate(v, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, "term2", q.Prompt)
	assert.Equal(t, "def2", q.Answer)
	assert.Equal(t, 2, q.PairIndex)
	assert.Equal(t, 1, q.Number)
	assert.Equal(t, TermToDefinition, q.Direction)
	assert.Len(t, q.Choices, 3)
	assert.Equal(t, q.Answer, q.Choices[q.CorrectIndex()])
}

func TestGenerate_DefinitionToTerm(t *testing.T) {
	v := testVocab(4)
	g := New(testRand(11), 4, DefinitionToTerm)

	q, err := g.Generate(v, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "def1", q.Prompt)
	assert.Equal(t, "term1", q.Answer)
	assert.Contains(t, q.Choices, "term1")
	assert.NotContains(t, q.Choices, "def1")
}

func TestGenerate_RandomResolvesBothDirections(t *testing.T) {
	v := testVocab(3)
	g := New(testRand(12), 2, Random)

	seen := make(map[Direction]bool)
	for i := range 50 {
		q, err := g.Generate(v, i%3, i+1)
		require.NoError(t, err)
		assert.NotEqual(t, Random, q.Direction)
		seen[q.Direction] = true
	}

	assert.True(t, seen[TermToDefinition])
	assert.True(t, seen[DefinitionToTerm])
}

func TestGenerate_DefaultDirection(t *testing.T) {
	g := New(testRand(13), 2, "")
	q, err := g.Generate(testVocab(2), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, TermToDefinition, q.Direction)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", TermToDefinition, false},
		{"term", TermToDefinition, false},
		{" Definition ", DefinitionToTerm, false},
		{"RANDOM", Random, false},
		{"sideways", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestQuestion_CorrectIndexMissing(t *testing.T) {
	q := &Question{Answer: "x", Choices: []string{"a", "b"}}
	assert.Equal(t, -1, q.CorrectIndex())
}

func TestDirection_AnswerSides(t *testing.T) {
	assert.Equal(t, []vocab.Side{vocab.SideDefinition}, TermToDefinition.AnswerSides())
	assert.Equal(t, []vocab.Side{vocab.SideTerm}, DefinitionToTerm.AnswerSides())
	assert.ElementsMatch(t, []vocab.Side{vocab.SideTerm, vocab.SideDefinition}, Random.AnswerSides())
}
