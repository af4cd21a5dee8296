// SPDX-License-Identifier: MIT
// Package: ringmix/ring
//
// splice.go: remove-and-reinsert with O(J) stride repair.
//
// Detaching node c at position p shifts every later position down by one,
// so the nodes at p-1 … p-J (exactly those whose stride jumped over c)
// must now land one node further on. Attaching c after t shifts positions
// the other way for c, t, t-1 … t-J+2. Both cases are the same lockstep
// backward walk, implemented once in repair.

package ring

// Move detaches cur and reinserts it immediately after target.
// target must be a node other than cur; target == Prev(cur) leaves the
// order unchanged. Rings of fewer than three nodes are left untouched.
// Both nodes must be < Len().
//
// Complexity: O(J).
func (r *Ring) Move(cur, target Node) {
	r.mustHave(cur)
	r.mustHave(target)
	if len(r.prev) < minSpliceNodes || cur == target {
		return
	}
	r.detach(cur)
	r.attach(cur, target)
	r.check()
}

// Shift moves cur forward by amount positions among the other N-1 nodes.
// The destination is resolved from cur's current predecessor after cur has
// been detached, so amount ≡ 0 (mod N-1) is a true no-op. amount is reduced
// with Euclidean remainder modulo N-1. cur must be < Len().
//
// Complexity: O(J + amount/J).
func (r *Ring) Shift(cur Node, amount int) {
	r.mustHave(cur)
	n := len(r.prev)
	if n < minSpliceNodes {
		return
	}
	amount %= n - 1
	if amount < 0 {
		amount += n - 1
	}

	r.detach(cur)
	target := r.walk(r.prev[cur], amount)
	r.attach(cur, target)
	r.check()
}

// detach unlinks cur. Afterwards the other N-1 nodes form a consistent ring
// and no prev/stride entry refers to cur; cur's own entries are stale except
// prev[cur], which still names its former predecessor.
func (r *Ring) detach(cur Node) {
	r.repair(r.prev[cur], r.stride[cur], cur)
}

// attach links a detached cur right after target.
func (r *Ring) attach(cur, target Node) {
	r.prev[cur] = target
	r.repair(cur, r.stride[target], target)
}

// repair walks (before, after) backwards in lockstep from (left, right),
// pointing stride[before] at after, until after's predecessor is stop.
// It then hooks left in front of that last after and points the stride
// chain that ends at left back onto it.
func (r *Ring) repair(left, right, stop Node) {
	before, after := left, right
	for {
		r.stride[before] = after
		if r.prev[after] == stop {
			break
		}
		before, after = r.prev[before], r.prev[after]
	}
	r.prev[after] = left
	r.stride[r.prev[before]] = left
}
