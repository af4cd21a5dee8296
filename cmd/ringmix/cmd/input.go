package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"

	"github.com/katalvlaran/ringmix/mixer"
)

// puzzleDay is the day number that default input file names start with.
const puzzleDay = 20

// ErrNoInputFile is returned when no default input file matches in the input directory.
var ErrNoInputFile = errors.New("no default input file")

// inputPattern matches e.g. 20a.txt or 020A.txt for the given part.
func inputPattern(day int, part mixer.Part) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)^0*%d%s\.txt$`, day, regexp.QuoteMeta(part.String())))
}

// findInput returns the first file in dir, by name, whose name matches the
// default input pattern for part.
func findInput(dir string, part mixer.Part) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to list input directory %s", dir)
	}

	re := inputPattern(puzzleDay, part)
	for _, e := range entries {
		if e.IsDir() || !re.MatchString(e.Name()) {
			continue
		}
		return filepath.Join(dir, e.Name()), nil
	}

	return "", errors.Wrapf(ErrNoInputFile,
		"for day %d part %s in %s, make sure a file such as %s exists",
		puzzleDay, part, dir, filepath.Join(dir, fmt.Sprintf("%d%s.txt", puzzleDay, part)))
}
