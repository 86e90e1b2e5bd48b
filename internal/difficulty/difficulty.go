package difficulty

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidOption is returned when an option number does not select anything.
var ErrInvalidOption = errors.New("invalid option")

// Mode is a difficulty level. Length is the number of digits in the secret.
type Mode struct {
	Option int    `yaml:"option"`
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

// String returns e.g. "Normal (4 digits)".
func (m Mode) String() string {
	return fmt.Sprintf("%s (%d digits)", m.Name, m.Length)
}

// Defaults returns the built-in difficulty levels.
func Defaults() []Mode {
	return []Mode{
		{Option: 1, Name: "Easy", Length: 3},
		{Option: 2, Name: "Normal", Length: 4},
		{Option: 3, Name: "Hard", Length: 5},
	}
}

// Table holds the configured modes, ordered by option number.
type Table struct {
	modes []Mode
}

// NewTable validates modes and builds a lookup table.
//
// Lengths above 10 are accepted: they cannot produce a secret of distinct
// digits, which is reported when a round is started with that mode.
func NewTable(modes []Mode) (*Table, error) {
	if len(modes) == 0 {
		return nil, fmt.Errorf("no difficulty modes configured")
	}

	seen := make(map[int]bool, len(modes))
	sorted := make([]Mode, 0, len(modes))
	for _, m := range modes {
		if seen[m.Option] {
			return nil, fmt.Errorf("duplicate difficulty option %d", m.Option)
		}
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("difficulty option %d has no name", m.Option)
		}
		if m.Length < 1 {
			return nil, fmt.Errorf("difficulty %s: length must be >= 1, got %d", m.Name, m.Length)
		}
		seen[m.Option] = true
		sorted = append(sorted, m)
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Option < sorted[j].Option })
	return &Table{modes: sorted}, nil
}

// FindByOption returns the mode registered under option.
func (t *Table) FindByOption(option int) (Mode, error) {
	for _, m := range t.modes {
		if m.Option == option {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("difficulty %d: %w", option, ErrInvalidOption)
}

// Modes returns a copy of the configured modes in option order.
func (t *Table) Modes() []Mode {
	out := make([]Mode, len(t.modes))
	copy(out, t.modes)
	return out
}

// ParseOption parses a menu selection typed by the user.
func ParseOption(line string) (int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, fmt.Errorf("empty selection: %w", ErrInvalidOption)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", line, ErrInvalidOption)
	}
	return n, nil
}
