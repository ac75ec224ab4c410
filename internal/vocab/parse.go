package vocab

import (
	"strings"
	"unicode"
)

// MinPairs is the smallest vocabulary a quiz can run on.
const MinPairs = 2

// definitionSeparator joins definitions of a term that appears more than once.
const definitionSeparator = ", "

// Parse turns free-form text into a Vocabulary.
//
// Multi-line input is read one pair per line: a tab separates term from
// definition when present, then a run of two or more spaces (aligned
// columns, or tabs expanded by an editor), otherwise the first run of
// whitespace does.
// Single-line input is read as a flat list of whitespace-separated tokens
// consumed two at a time; an odd trailing token is dropped.
//
// Terms are compared after trimming. A repeated term keeps its first
// position and gains the new definition, joined with ", ".
func Parse(raw string) (Vocabulary, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &ParseError{Err: ErrEmptyInput}
	}

	var candidates []Pair
	if strings.Contains(raw, "\n") {
		candidates = splitLines(raw)
	} else {
		candidates = splitTokens(raw)
	}

	v := merge(candidates)
	if len(v) < MinPairs {
		return nil, &ParseError{Pairs: len(v), Err: ErrInsufficientPairs}
	}
	return v, nil
}

func splitLines(raw string) []Pair {
	var pairs []Pair
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var term, def string
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			term, def = line[:i], line[i+1:]
		} else if i := strings.Index(line, "  "); i >= 0 {
			term, def = line[:i], line[i:]
		} else if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			term, def = line[:i], line[i:]
		} else {
			continue
		}
		pairs = append(pairs, Pair{Term: term, Definition: def})
	}
	return pairs
}

func splitTokens(raw string) []Pair {
	tokens := strings.Fields(raw)
	pairs := make([]Pair, 0, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		pairs = append(pairs, Pair{Term: tokens[i], Definition: tokens[i+1]})
	}
	return pairs
}

// merge trims, drops incomplete pairs, and folds duplicate terms.
func merge(candidates []Pair) Vocabulary {
	index := make(map[string]int, len(candidates))
	v := make(Vocabulary, 0, len(candidates))

	for _, c := range candidates {
		term := strings.TrimSpace(c.Term)
		def := strings.TrimSpace(c.Definition)
		if term == "" || def == "" {
			continue
		}

		if i, ok := index[term]; ok {
			v[i].Definition += definitionSeparator + def
			continue
		}
		index[term] = len(v)
		v = append(v, Pair{Term: term, Definition: def})
	}
	return v
}
