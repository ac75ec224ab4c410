package vocab

// Pair is a single term and its definition.
type Pair struct {
	Term       string
	Definition string
}

// Value returns the half of the pair named by side.
func (p Pair) Value(side Side) string {
	if side == SideTerm {
		return p.Term
	}
	return p.Definition
}

// Side names one half of a Pair.
type Side int

const (
	SideDefinition Side = iota
	SideTerm
)

// Opposite returns the other half.
func (s Side) Opposite() Side {
	if s == SideTerm {
		return SideDefinition
	}
	return SideTerm
}

func (s Side) String() string {
	if s == SideTerm {
		return "term"
	}
	return "definition"
}

// Vocabulary is an ordered list of pairs with unique terms.
// It is built once by Parse and never modified afterwards.
type Vocabulary []Pair

// Distinct counts the different values on side. Terms are unique, but
// merged definitions may repeat.
func (v Vocabulary) Distinct(side Side) int {
	seen := make(map[string]struct{}, len(v))
	for _, p := range v {
		seen[p.Value(side)] = struct{}{}
	}
	return len(seen)
}

// Terms returns the terms in order.
func (v Vocabulary) Terms() []string {
	terms := make([]string, len(v))
	for i, p := range v {
		terms[i] = p.Term
	}
	return terms
}
