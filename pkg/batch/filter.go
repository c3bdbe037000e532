// pkg/batch/filter.go
package batch

import (
	"fmt"
	"os"

	ignore "github.com/sabhiram/go-gitignore"
)

// Filter decides whether a path is worth handing to the compressor. It
// fails closed: anything that does not resolve to an existing regular file
// of at least MinSize bytes is rejected.
type Filter struct {
	MinSize int64
	exclude *ignore.GitIgnore
}

// NewFilter returns a filter with the given minimum-size threshold.
func NewFilter(minSize int64) *Filter {
	return &Filter{MinSize: minSize}
}

// LoadExcludes compiles an exclude-pattern file (gitignore syntax).
// Matching paths become a skip condition like any other.
func (f *Filter) LoadExcludes(path string) error {
	matcher, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return fmt.Errorf("load exclude patterns %s: %w", path, err)
	}
	f.exclude = matcher
	return nil
}

// Check reports whether path is eligible for compression, with a
// human-readable reason when it is not. Ineligibility is never an error;
// the caller logs the reason and moves on.
func (f *Filter) Check(path string) (bool, string) {
	if f.exclude != nil && f.exclude.MatchesPath(path) {
		return false, "excluded by pattern"
	}

	fi, err := os.Stat(path)
	if err != nil {
		return false, "does not exist"
	}
	if !fi.Mode().IsRegular() {
		return false, "not a regular file"
	}
	if fi.Size() < f.MinSize {
		return false, "too small"
	}
	return true, ""
}
