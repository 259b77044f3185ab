package discover

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v2"
	"github.com/pkg/errors"
)

// DefaultPattern selects the shunit scripts below a directory.
const DefaultPattern = "**/*_test.sh"

// Suites returns the scripts to run for the given paths. A path naming
// a file is taken as is, a directory is searched for files matching
// pattern. The result is sorted and contains each script once.
func Suites(paths []string, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	seen := map[string]bool{}
	var result []string
	add := func(path string) {
		path = filepath.Clean(path)
		if seen[path] {
			return
		}
		seen[path] = true
		result = append(result, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrap(err, "error discovering suites")
		}
		if !info.IsDir() {
			add(path)
			continue
		}

		matches, err := doublestar.Glob(filepath.Join(path, pattern))
		if err != nil {
			return nil, errors.Wrapf(err, "error discovering suites in %s", path)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			add(m)
		}
	}

	sort.Strings(result)
	return result, nil
}
