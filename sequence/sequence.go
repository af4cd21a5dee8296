// Package sequence reads the integer sequence that seeds a mixing run.
//
// Input is plain text: signed 64-bit integers separated by whitespace,
// usually one per line. Blank lines are ignored. The first token that is not
// an integer aborts the read with its 1-based line number.
package sequence

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedValue indicates a token that does not parse as int64.
	ErrMalformedValue = errors.New("sequence: malformed value")

	// ErrEmptyInput indicates the input held no integers at all.
	ErrEmptyInput = errors.New("sequence: no values in input")
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Read parses every integer from r in order.
func Read(r io.Reader) ([]int64, error) {
	var values []int64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		for _, field := range strings.Fields(sc.Text()) {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedValue, "line %d: could not parse %q as a 64-bit signed integer", line, field)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read line %d", line+1)
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	return values, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input %s", path)
	}
	defer f.Close()

	values, err := Read(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return values, nil
}
