package wordlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// File is the structured word-list format shared by JSON and YAML files.
type File struct {
	Name  string  `json:"name" yaml:"name"`
	Pairs []Entry `json:"pairs" yaml:"pairs"`
}

// Entry is one term/definition in a structured file.
type Entry struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

// ErrUnsupportedFormat is returned for file extensions LoadFile does not know.
var ErrUnsupportedFormat = errors.New("unsupported word list format")

// LoadFile reads a word list and returns it as raw text.
//
// Plain text files are returned as written. JSON and YAML files are decoded,
// validated, and rendered one tab-separated pair per line so that the
// result parses exactly like typed input.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read word list: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".txt", ".text":
		return string(data), nil
	case ".json":
		f, err := ParseJSON(data)
		if err != nil {
			return "", fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return f.Raw(), nil
	case ".yaml", ".yml":
		f, err := ParseYAML(data)
		if err != nil {
			return "", fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return f.Raw(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ParseJSON decodes and schema-validates a JSON word list.
func ParseJSON(data []byte) (*File, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode word list: %w", err)
	}
	return &f, nil
}

// ParseYAML decodes a single-document YAML word list, rejecting unknown fields.
func ParseYAML(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse word list: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse word list: %w", err)
	}
	if len(f.Pairs) == 0 {
		return nil, fmt.Errorf("parse word list: no pairs")
	}
	return &f, nil
}

// Raw renders the file as tab-separated lines. Tabs and newlines inside a
// value are replaced by spaces so every entry stays on its own line.
func (f *File) Raw() string {
	lines := lo.Map(f.Pairs, func(e Entry, _ int) string {
		return flatten(e.Term) + "\t" + flatten(e.Definition)
	})
	return strings.Join(lines, "\n")
}

func flatten(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == '\t' || r == '\n' || r == '\r'
	}), " ")
}
