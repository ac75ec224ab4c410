package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabquiz/internal/vocab"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExamples_AllParse(t *testing.T) {
	examples := Examples()
	require.NotEmpty(t, examples)

	for _, ex := range examples {
		t.Run(ex.Name, func(t *testing.T) {
			raw, err := ExampleText(ex.Name)
			require.NoError(t, err)

			v, err := vocab.Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, ex.Pairs, len(v))
			assert.NotEmpty(t, ex.Title)
		})
	}
}

func TestExamples_SortedAndTitled(t *testing.T) {
	examples := Examples()
	for i := 1; i < len(examples); i++ {
		assert.Less(t, examples[i-1].Name, examples[i].Name)
	}

	raw, err := ExampleText("spanish-basics")
	require.NoError(t, err)
	v, err := vocab.Parse(raw)
	require.NoError(t, err)
	assert.Contains(t, v.Terms(), "por favor")
}

func TestExampleText_Unknown(t *testing.T) {
	_, err := ExampleText("klingon")
	assert.Error(t, err)
}

func TestLoadFile_Text(t *testing.T) {
	path := writeFile(t, "words.txt", "cat 고양이\ndog 개\n")
	raw, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cat 고양이\ndog 개\n", raw)
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeFile(t, "words.json", `{
		"name": "phrases",
		"pairs": [
			{"term": "ice cream", "definition": "아이스크림"},
			{"term": "hot dog", "definition": "핫도그\n(food)"}
		]
	}`)

	raw, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ice cream\t아이스크림\nhot dog\t핫도그 (food)", raw)

	v, err := vocab.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"ice cream", "hot dog"}, v.Terms())
}

func TestParseJSON_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{pairs:`},
		{"missing pairs", `{"name": "x"}`},
		{"empty pairs", `{"pairs": []}`},
		{"missing definition", `{"pairs": [{"term": "a"}]}`},
		{"empty term", `{"pairs": [{"term": "", "definition": "b"}]}`},
		{"unknown field", `{"pairs": [{"term": "a", "definition": "b", "note": "c"}]}`},
		{"wrong type", `{"pairs": [{"term": 1, "definition": "b"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "words.yaml", `name: animals
pairs:
  - term: cat
    definition: 고양이
  - term: dog
    definition: 개
`)

	raw, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cat\t고양이\ndog\t개", raw)
}

func TestParseYAML_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "pairs:\n  - term: a\n    definition: b\n    extra: c\n"},
		{"no pairs", "name: empty\n"},
		{"two documents", "pairs:\n  - term: a\n    definition: b\n---\npairs: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	path := writeFile(t, "words.csv", "a,b\n")
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
