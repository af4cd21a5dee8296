package mixer

import (
	"context"
	"errors"
)

// Offsets of the three grove coordinates, counted from the zero element.
var GroveOffsets = [3]int{1000, 2000, 3000}

var (
	// ErrEmptyInput indicates that no values were supplied.
	ErrEmptyInput = errors.New("mixer: input sequence must be non-empty")

	// ErrBadRounds indicates a non-positive round count.
	ErrBadRounds = errors.New("mixer: rounds must be at least 1")

	// ErrBadKey indicates a zero decryption key, which would erase every value.
	ErrBadKey = errors.New("mixer: decryption key must be non-zero")

	// ErrNoZero indicates that no element carries the value 0.
	ErrNoZero = errors.New("mixer: no element with value 0")

	// ErrMultipleZeros indicates that more than one element carries the value 0,
	// so the grove coordinates have no unique origin.
	ErrMultipleZeros = errors.New("mixer: more than one element with value 0")

	// ErrUnknownPart indicates a part designation other than a/A/b/B.
	ErrUnknownPart = errors.New("mixer: unknown part")

	// ErrValueOverflow indicates that a keyed value or the grove sum does not
	// fit in an int64.
	ErrValueOverflow = errors.New("mixer: value overflows int64")
)

// Option configures a Mixer.
type Option func(*Options)

// Options holds the resolved Mixer configuration.
type Options struct {
	// Ctx is checked between rounds; defaults to context.Background().
	Ctx context.Context

	// DecryptionKey multiplies every input value once, before mixing. Default 1.
	DecryptionKey int64

	// Rounds is the number of full mixing passes. Default 1.
	Rounds int

	// Jump is the ring stride J; 0 picks ring.DefaultJump(N).
	Jump int

	// OnRound, if non-nil, is called after each completed round (1-based).
	// Returning an error stops mixing with that error.
	OnRound func(round int) error
}

// DefaultOptions returns the PartA configuration with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		DecryptionKey: 1,
		Rounds:        1,
		Jump:          0,
		OnRound:       nil,
	}
}

// WithContext sets the context checked between rounds. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDecryptionKey sets the value multiplier.
func WithDecryptionKey(key int64) Option {
	return func(o *Options) {
		o.DecryptionKey = key
	}
}

// WithRounds sets the number of mixing passes.
func WithRounds(rounds int) Option {
	return func(o *Options) {
		o.Rounds = rounds
	}
}

// WithJump overrides the ring stride.
func WithJump(j int) Option {
	return func(o *Options) {
		o.Jump = j
	}
}

// WithOnRound installs a hook run after every round.
func WithOnRound(fn func(round int) error) Option {
	return func(o *Options) {
		o.OnRound = fn
	}
}
