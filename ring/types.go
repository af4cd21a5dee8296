// SPDX-License-Identifier: MIT
// Package: ringmix/ring
//
// types.go: node identity, ring storage, sentinel errors and options.

package ring

import (
	"errors"
	"math"
)

// Node is the stable identity of one ring element.
type Node uint32

// minSpliceNodes is the smallest ring in which a node can change position.
const minSpliceNodes = 3

var (
	// ErrTooFewNodes is returned when a ring of fewer than one node is requested.
	ErrTooFewNodes = errors.New("ring: at least one node is required")

	// ErrTooManyNodes is returned when N exceeds the Node identity space.
	ErrTooManyNodes = errors.New("ring: node count exceeds identity space")

	// ErrBadJump indicates a stride outside [1, N-2] was requested for a ring of N ≥ 3.
	ErrBadJump = errors.New("ring: stride out of range")

	// ErrBrokenCycle indicates the prev relation is not a single N-cycle.
	ErrBrokenCycle = errors.New("ring: prev relation is not a single cycle")

	// ErrStrideMismatch indicates stride(n) is not exactly J steps ahead of n.
	ErrStrideMismatch = errors.New("ring: stride relation out of sync")
)

// Ring is a circular ordering of N nodes backed by two index arrays.
//
// prev[n] is the node immediately before n; stride[n] is the node jump
// positions after n. Both arrays have length N and never grow.
type Ring struct {
	prev   []Node
	stride []Node
	jump   int
}

// Options holds construction parameters for New.
type Options struct {
	// Jump is the stride J. Zero selects DefaultJump(n).
	Jump int
}

// Option configures New.
type Option func(*Options)

// DefaultOptions returns Options with an automatically chosen stride.
func DefaultOptions() Options {
	return Options{Jump: 0}
}

// WithJump fixes the stride J. Zero (or a negative value) keeps the default.
func WithJump(j int) Option {
	return func(o *Options) {
		if j > 0 {
			o.Jump = j
		}
	}
}

// DefaultJump returns floor(sqrt(n/2)), but never less than 1.
// For every n ≥ 3 the result also satisfies J ≤ n-2.
func DefaultJump(n int) int {
	j := int(math.Sqrt(float64(n) / 2))
	if j < 1 {
		return 1
	}

	return j
}
