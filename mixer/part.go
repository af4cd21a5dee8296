package mixer

import (
	"fmt"
	"strings"
)

// PartBDecryptionKey is the multiplier used by PartB.
const PartBDecryptionKey int64 = 811589153

// PartBRounds is the number of rounds used by PartB.
const PartBRounds = 10

// Part selects one of the two standard configurations.
type Part int

const (
	// PartA mixes the raw values once.
	PartA Part = iota
	// PartB applies PartBDecryptionKey and mixes PartBRounds times.
	PartB
)

// ParsePart accepts "a", "A", "b" or "B", ignoring surrounding whitespace.
func ParsePart(s string) (Part, error) {
	switch strings.TrimSpace(s) {
	case "a", "A":
		return PartA, nil
	case "b", "B":
		return PartB, nil
	default:
		return 0, fmt.Errorf("ParsePart(%q): expected one of a, A, b, B: %w", s, ErrUnknownPart)
	}
}

// String returns "a" or "b".
func (p Part) String() string {
	switch p {
	case PartA:
		return "a"
	case PartB:
		return "b"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// Options returns the key and round options for p.
func (p Part) Options() []Option {
	if p == PartB {
		return []Option{WithDecryptionKey(PartBDecryptionKey), WithRounds(PartBRounds)}
	}

	return []Option{WithDecryptionKey(1), WithRounds(1)}
}
