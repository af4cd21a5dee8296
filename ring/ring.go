package ring

import (
	"fmt"
	"math"
)

// New builds a ring of n nodes in identity order 0, 1, …, n-1.
//
// Steps:
//  1. Validate n and resolve the stride J (DefaultJump unless WithJump is given).
//  2. prev[i] = i-1 (mod n), stride[i] = i+J (mod n).
//
// For n < 3 the stride is always 1 and Move/Shift are no-ops.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*Ring, error) {
	// 1. Validate size
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrTooFewNodes)
	}
	if uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrTooManyNodes)
	}

	// 2. Resolve options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	jump := o.Jump
	if jump == 0 {
		jump = DefaultJump(n)
	}
	if jump < 1 || jump > maxJump(n) {
		return nil, fmt.Errorf("New(%d): jump=%d not in [1,%d]: %w", n, jump, maxJump(n), ErrBadJump)
	}

	// 3. Lay out identity order
	r := &Ring{
		prev:   make([]Node, n),
		stride: make([]Node, n),
		jump:   jump,
	}
	for i := 0; i < n; i++ {
		r.prev[i] = Node((i + n - 1) % n)
		r.stride[i] = Node((i + jump) % n)
	}

	return r, nil
}

// maxJump is the largest stride that keeps splice repairs inside the ring.
func maxJump(n int) int {
	if n < minSpliceNodes {
		return 1
	}

	return n - 2
}

// Len returns the number of nodes.
func (r *Ring) Len() int { return len(r.prev) }

// Jump returns the stride J.
func (r *Ring) Jump() int { return r.jump }

// Prev returns the node immediately before n. n must be < Len().
func (r *Ring) Prev(n Node) Node {
	r.mustHave(n)
	return r.prev[n]
}

// Stride returns the node J positions after n. n must be < Len().
func (r *Ring) Stride(n Node) Node {
	r.mustHave(n)
	return r.stride[n]
}

// mustHave panics when n is not a node of r.
func (r *Ring) mustHave(n Node) {
	if int(n) >= len(r.prev) {
		panic(fmt.Sprintf("ring: node %d out of range [0, %d)", n, len(r.prev)))
	}
}

// Advance returns the node k positions after from in the current order.
// k is reduced modulo Len (Euclidean), so negative k move backwards.
// from must be < Len().
//
// Complexity: O(J + k/J).
func (r *Ring) Advance(from Node, k int) Node {
	r.mustHave(from)
	n := len(r.prev)
	k %= n
	if k < 0 {
		k += n
	}

	return r.walk(from, k)
}

// walk jumps ceil(k/J) strides forward from n, then steps back the overshoot,
// which is always in [0, J). It does not reduce k.
func (r *Ring) walk(n Node, k int) Node {
	q := (k + r.jump - 1) / r.jump
	for i := 0; i < q; i++ {
		n = r.stride[n]
	}
	for back := q*r.jump - k; back > 0; back-- {
		n = r.prev[n]
	}

	return n
}

// Order returns all nodes in forward order starting at from.
// from must be < Len().
//
// Complexity: O(N) time, one allocation.
func (r *Ring) Order(from Node) []Node {
	r.mustHave(from)
	n := len(r.prev)
	out := make([]Node, n)
	out[0] = from
	// walking backwards from `from` yields the forward order in reverse
	x := from
	for i := n - 1; i >= 1; i-- {
		x = r.prev[x]
		out[i] = x
	}

	return out
}
