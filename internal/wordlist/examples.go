package wordlist

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/samber/lo"
)

//go:embed examples/*.txt
var examplesFS embed.FS

// Example describes a bundled word list.
type Example struct {
	Name  string
	Title string
	Pairs int
}

var exampleTitles = map[string]string{
	"korean-animals": "Korean: animals",
	"spanish-basics": "Spanish: everyday words",
	"english-verbs":  "English: verbs with definitions",
}

// Examples lists the bundled word lists sorted by name.
func Examples() []Example {
	entries, err := examplesFS.ReadDir("examples")
	if err != nil {
		return nil
	}

	names := lo.FilterMap(entries, func(e fs.DirEntry, _ int) (string, bool) {
		return strings.TrimSuffix(e.Name(), ".txt"), !e.IsDir()
	})
	sort.Strings(names)

	return lo.Map(names, func(name string, _ int) Example {
		raw, _ := ExampleText(name)
		return Example{
			Name:  name,
			Title: lo.ValueOr(exampleTitles, name, name),
			Pairs: countLines(raw),
		}
	})
}

// ExampleText returns the raw text of a bundled word list. The text goes
// through the same parser as anything a user types.
func ExampleText(name string) (string, error) {
	data, err := examplesFS.ReadFile(path.Join("examples", name+".txt"))
	if err != nil {
		return "", fmt.Errorf("unknown example %q", name)
	}
	return string(data), nil
}

func countLines(raw string) int {
	return len(lo.Filter(strings.Split(raw, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	}))
}
