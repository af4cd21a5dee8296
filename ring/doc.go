// Package ring implements a fixed-membership circular ordering of N nodes that
// supports "advance by k" in O(J + k/J) and "move a node elsewhere" in O(J),
// where J ≈ sqrt(N/2) is a stride chosen once at construction.
//
// What:
//
//   - Every node is a stable uint32 identity 0..N-1.
//   - Two parallel index arrays describe the current order:
//     prev(n)   the node one step behind n,
//     stride(n) the node exactly J steps ahead of n.
//   - Advance walks forward with stride jumps, then corrects the overshoot
//     with at most J-1 backward steps.
//   - Move detaches a node and reinserts it after another one, repairing the
//     (at most J) stride pointers whose jump spanned either splice point.
//
// Why:
//
//	A doubly-linked list needs O(k) steps to move k positions. A balanced
//	tree needs allocation and rebalancing. Two flat arrays with a stride
//	relation keep every operation allocation-free and bounds-checkable while
//	bringing a full "remove, seek, reinsert" cycle down to O(sqrt N).
//
// Invariants (checked by Validate):
//
//   - single cycle: following prev N times from any node returns to it, visiting all nodes.
//   - stride consistency: applying prev J times to stride(n) yields n, for every n.
//
// Builds tagged `ringdebug` re-check both invariants after every Move and
// panic on the first violation.
//
// Complexity:
//
//   - New:      O(N) time, O(N) memory
//   - Advance:  O(J + k/J)
//   - Move:     O(J)
//   - Shift:    O(J + amount/J)
//   - Validate: O(N·J)
//
// Errors:
//
//   - ErrTooFewNodes     N < 1
//   - ErrTooManyNodes    N does not fit in a Node
//   - ErrBadJump         requested stride outside [1, N-2]
//   - ErrBrokenCycle     prev is not a single N-cycle
//   - ErrStrideMismatch  some stride(n) is not J ahead of n
//
// Node arguments must be below Len(); out-of-range nodes panic with the
// offending node and the ring size.
//
// A Ring is not safe for concurrent mutation.
package ring
