package ring

import "fmt"

// Validate checks that prev forms one N-cycle and that every stride entry
// is exactly J nodes ahead.
// It returns ErrBrokenCycle or ErrStrideMismatch wrapped with the first
// offending node.
//
// Complexity: O(N·J) time, O(N) memory.
func (r *Ring) Validate() error {
	n := len(r.prev)
	if n == 0 {
		return ErrBrokenCycle
	}

	// a single cycle through every node
	seen := make([]bool, n)
	x := Node(0)
	for i := 0; i < n; i++ {
		if int(x) >= n || seen[x] {
			return fmt.Errorf("Validate: node %d after %d steps: %w", x, i, ErrBrokenCycle)
		}
		seen[x] = true
		x = r.prev[x]
	}
	if x != 0 {
		return fmt.Errorf("Validate: walk ended at %d: %w", x, ErrBrokenCycle)
	}

	// J backward steps from stride(v) land on v
	for v := 0; v < n; v++ {
		y := r.stride[v]
		if int(y) >= n {
			return fmt.Errorf("Validate: stride(%d)=%d: %w", v, y, ErrStrideMismatch)
		}
		for j := 0; j < r.jump; j++ {
			y = r.prev[y]
		}
		if y != Node(v) {
			return fmt.Errorf("Validate: stride(%d) is not %d ahead: %w", v, r.jump, ErrStrideMismatch)
		}
	}

	return nil
}
