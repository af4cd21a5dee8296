package mixer

import (
	"fmt"

	"github.com/katalvlaran/ringmix/ring"
)

// zero returns the node carrying value 0, which must be unique.
func (m *Mixer) zero() (ring.Node, error) {
	found := -1
	for i, v := range m.values {
		if v != 0 {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("zero: elements %d and %d: %w", found, i, ErrMultipleZeros)
		}
		found = i
	}
	if found < 0 {
		return 0, ErrNoZero
	}

	return ring.Node(found), nil
}

// GroveCoordinates returns the values GroveOffsets positions after the zero
// element in the current order. Offsets wrap around the ring.
func (m *Mixer) GroveCoordinates() ([3]int64, error) {
	var coords [3]int64
	z, err := m.zero()
	if err != nil {
		return coords, err
	}
	for i, off := range GroveOffsets {
		coords[i] = m.values[m.ring.Advance(z, off)]
	}

	return coords, nil
}

// GroveSum returns the sum of GroveCoordinates.
func (m *Mixer) GroveSum() (int64, error) {
	coords, err := m.GroveCoordinates()
	if err != nil {
		return 0, err
	}

	sum := coords[0]
	for _, c := range coords[1:] {
		var ok bool
		if sum, ok = addInt64(sum, c); !ok {
			return 0, fmt.Errorf("GroveSum: %v: %w", coords, ErrValueOverflow)
		}
	}

	return sum, nil
}
