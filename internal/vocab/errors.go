package vocab

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the raw text is blank.
	ErrEmptyInput = errors.New("no words entered")

	// ErrInsufficientPairs is returned when fewer than MinPairs pairs survive parsing.
	ErrInsufficientPairs = errors.New("need at least 2 word pairs")
)

// ParseError reports a failed parse along with how many pairs were usable.
type ParseError struct {
	Pairs int
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrInsufficientPairs) {
		return fmt.Sprintf("%v (found %d)", e.Err, e.Pairs)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
