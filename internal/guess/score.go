package guess

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is wrapped by every FormatError.
var ErrInvalidFormat = errors.New("invalid guess")

// Reason says why a guess was rejected.
type Reason int

const (
	ReasonEmpty Reason = iota + 1
	ReasonNotNumeric
	ReasonLength
	ReasonDuplicate
)

func (r Reason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonNotNumeric:
		return "not numeric"
	case ReasonLength:
		return "wrong length"
	case ReasonDuplicate:
		return "repeated digit"
	default:
		return "unknown"
	}
}

// FormatError describes a guess that was rejected before scoring.
type FormatError struct {
	Reason Reason
	Input  string
	Length int // expected number of digits
}

func (e *FormatError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "please enter a number"
	case ReasonNotNumeric:
		return fmt.Sprintf("%q is not a number", e.Input)
	case ReasonLength:
		return fmt.Sprintf("enter exactly %d digits", e.Length)
	case ReasonDuplicate:
		return "digits must not repeat"
	default:
		return ErrInvalidFormat.Error()
	}
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// Score is the result of one valid guess.
type Score struct {
	Strikes int
	Balls   int
	Length  int
}

// Exact reports whether the guess matched the secret digit for digit.
func (s Score) Exact() bool {
	return s.Strikes == s.Length
}

// String renders the umpire's call, e.g. "1 strike 2 balls".
func (s Score) String() string {
	if s.Exact() {
		return "Home run!"
	}
	if s.Strikes == 0 && s.Balls == 0 {
		return "Out"
	}

	var parts []string
	if s.Strikes > 0 {
		parts = append(parts, plural(s.Strikes, "strike"))
	}
	if s.Balls > 0 {
		parts = append(parts, plural(s.Balls, "ball"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// ValidateAndScore checks input and, if it is a well-formed guess, scores it.
//
// Input must be exactly Length() decimal digits with no digit repeated.
// Surrounding whitespace is ignored. Rejections return a *FormatError.
func (e *Engine) ValidateAndScore(input string) (Score, error) {
	digits, err := e.parse(input)
	if err != nil {
		return Score{}, err
	}
	return e.score(digits), nil
}

func (e *Engine) parse(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, &FormatError{Reason: ReasonEmpty, Length: e.length}
	}

	digits := make([]int, 0, len(input))
	for _, r := range input {
		if r < '0' || r > '9' {
			return nil, &FormatError{Reason: ReasonNotNumeric, Input: input, Length: e.length}
		}
		digits = append(digits, int(r-'0'))
	}
	if len(digits) != e.length {
		return nil, &FormatError{Reason: ReasonLength, Input: input, Length: e.length}
	}

	var seen [10]bool
	for _, d := range digits {
		if seen[d] {
			return nil, &FormatError{Reason: ReasonDuplicate, Input: input, Length: e.length}
		}
		seen[d] = true
	}
	return digits, nil
}

// score compares a validated guess to the secret. Strikes are positional
// matches; balls are the remaining guess digits found among the non-strike
// secret digits, each secret digit used at most once.
func (e *Engine) score(guess []int) Score {
	s := Score{Length: e.length}

	var remaining [10]bool
	for i, d := range e.secret {
		if guess[i] == d {
			s.Strikes++
		} else {
			remaining[d] = true
		}
	}
	for i, d := range guess {
		if d == e.secret[i] {
			continue
		}
		if remaining[d] {
			s.Balls++
			remaining[d] = false
		}
	}
	return s
}
