// SPDX-License-Identifier: MIT
// Package: ringmix/mixer
//
// mixer.go: the mixing driver.
//
// Contract:
//   • Node i of the ring carries input value i (times the key) for its whole life.
//   • Rounds always walk nodes 0..N-1, i.e. the original input order.
//   • Each move is relative to the node's current predecessor with the node
//     itself detached; amount = value mod (N-1), Euclidean.

package mixer

import (
	"fmt"

	"github.com/katalvlaran/ringmix/ring"
)

// Mixer owns one ring and the decrypted values of its nodes.
// It is not safe for concurrent use.
type Mixer struct {
	ring   *ring.Ring
	values []int64
	opts   Options
	rounds int // rounds completed so far
}

// New decrypts values and lays them out on a fresh ring in input order.
// values is not retained.
func New(values []int64, opts ...Option) (*Mixer, error) {
	// 1. Validate input and options
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Rounds < 1 {
		return nil, fmt.Errorf("New: rounds=%d: %w", o.Rounds, ErrBadRounds)
	}
	if o.DecryptionKey == 0 {
		return nil, ErrBadKey
	}

	// 2. Build the ring
	r, err := ring.New(len(values), ring.WithJump(o.Jump))
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	// 3. Apply the key once
	decrypted := make([]int64, len(values))
	for i, v := range values {
		p, ok := mulInt64(v, o.DecryptionKey)
		if !ok {
			return nil, fmt.Errorf("New: value %d at index %d times key %d: %w", v, i, o.DecryptionKey, ErrValueOverflow)
		}
		decrypted[i] = p
	}

	return &Mixer{ring: r, values: decrypted, opts: o}, nil
}

// Len returns the number of elements.
func (m *Mixer) Len() int { return len(m.values) }

// Jump returns the stride of the underlying ring.
func (m *Mixer) Jump() int { return m.ring.Jump() }

// RoundsDone returns how many rounds have been applied.
func (m *Mixer) RoundsDone() int { return m.rounds }

// Options returns the resolved configuration.
func (m *Mixer) Options() Options { return m.opts }

// Amount returns how far v moves on a ring of n elements: v mod (n-1),
// always in [0, n-1). Rings of fewer than two elements never move.
func Amount(v int64, n int) int {
	if n < 2 {
		return 0
	}
	m := int64(n - 1)
	a := v % m
	if a < 0 {
		a += m
	}

	return int(a)
}

// Round performs one mixing pass over the original order.
func (m *Mixer) Round() {
	n := len(m.values)
	for i, v := range m.values {
		m.ring.Shift(ring.Node(i), Amount(v, n))
	}
	m.rounds++
}

// Mix runs the configured number of rounds. It stops early, returning the
// error, when the context is done or the OnRound hook fails.
func (m *Mixer) Mix() error {
	for round := 1; round <= m.opts.Rounds; round++ {
		// cancellation is only observed between rounds
		select {
		case <-m.opts.Ctx.Done():
			return m.opts.Ctx.Err()
		default:
		}

		m.Round()

		if m.opts.OnRound != nil {
			if err := m.opts.OnRound(round); err != nil {
				return err
			}
		}
	}

	return nil
}

// Values returns the current order of values, starting at the zero element,
// or at the first input element when there is no unique zero.
func (m *Mixer) Values() []int64 {
	start, err := m.zero()
	if err != nil {
		start = 0
	}
	order := m.ring.Order(start)
	out := make([]int64, len(order))
	for i, node := range order {
		out[i] = m.values[node]
	}

	return out
}

// Solve builds a Mixer, runs all rounds and returns the grove-coordinate sum.
func Solve(values []int64, opts ...Option) (int64, error) {
	m, err := New(values, opts...)
	if err != nil {
		return 0, err
	}
	if err = m.Mix(); err != nil {
		return 0, err
	}

	return m.GroveSum()
}
