// Package guess implements the number baseball engine: it picks a secret of
// distinct digits and scores guesses against it in strikes and balls.
//
// A strike is a digit in the right position; a ball is a digit that appears in
// the secret at another position. A guess equal to the secret is a home run and
// ends the round.
package guess

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// MaxLength is the longest secret that can be built from distinct decimal digits.
const MaxLength = 10

// ErrInitialization is returned when an engine cannot be built for a length.
var ErrInitialization = errors.New("game initialization failed")

// Engine holds the secret for one round. Build a new engine for every round.
type Engine struct {
	length int
	secret []int
}

type options struct {
	intN   func(n int) int
	secret []int
}

// Option configures New.
type Option func(*options)

// WithRand draws the secret from r instead of the package-level source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.intN = r.IntN
	}
}

// WithSecret fixes the secret. The digits must satisfy the same rules as a
// generated secret.
func WithSecret(digits ...int) Option {
	return func(o *options) {
		o.secret = append([]int(nil), digits...)
	}
}

// New creates an engine for secrets of the given length and draws the secret.
func New(length int, opts ...Option) (*Engine, error) {
	if length < 1 || length > MaxLength {
		return nil, fmt.Errorf("%w: secret length %d outside 1..%d", ErrInitialization, length, MaxLength)
	}

	o := options{intN: rand.IntN}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{length: length}
	if o.secret != nil {
		if err := checkSecret(o.secret, length); err != nil {
			return nil, err
		}
		e.secret = o.secret
		return e, nil
	}

	e.secret = generateSecret(length, o.intN)
	return e, nil
}

// Length returns the number of digits in the secret.
func (e *Engine) Length() int {
	return e.length
}

// generateSecret samples length distinct digits without replacement, keeping
// them in the order they were drawn (a partial Fisher-Yates shuffle).
func generateSecret(length int, intN func(int) int) []int {
	var pool [10]int
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < length; i++ {
		j := i + intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	secret := make([]int, length)
	copy(secret, pool[:length])
	return secret
}

func checkSecret(digits []int, length int) error {
	if len(digits) != length {
		return fmt.Errorf("%w: secret has %d digits, want %d", ErrInitialization, len(digits), length)
	}
	var seen [10]bool
	for _, d := range digits {
		if d < 0 || d > 9 {
			return fmt.Errorf("%w: %d is not a digit", ErrInitialization, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: digit %d repeats", ErrInitialization, d)
		}
		seen[d] = true
	}
	return nil
}
