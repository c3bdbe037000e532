// pkg/batch/errors.go
package batch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputRequired is returned when no path stream is provided
	ErrInputRequired = errors.New("input path stream is required")

	// ErrUnknownProfile is returned when the requested compressor profile
	// does not exist
	ErrUnknownProfile = errors.New("unknown compressor profile")

	// ErrTooSmall is returned by the invoker when a file is below the
	// minimum-size threshold. Unlike the pre-filter's skip, this is an error:
	// invoking the compressor directly on a too-small file is a caller bug.
	ErrTooSmall = errors.New("file too small")

	// ErrNotRegular is returned by the invoker when the path does not name
	// a regular file
	ErrNotRegular = errors.New("not a regular file")
)

// ParseError reports a compressor summary line that does not match the
// profile's expected format. Parsing fails loudly rather than producing
// zeroed statistics.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse compressor summary %q: %s", e.Line, e.Reason)
}

// InvokeError wraps a failed compressor invocation together with its
// combined output. Any invocation failure is fatal to the batch: a non-zero
// exit usually means a systemic problem (disk full, artifact collision)
// that retrying would not fix.
type InvokeError struct {
	Path   string
	Output string
	Err    error
}

func (e *InvokeError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("compressor failed on %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("compressor failed on %s: %v: %s", e.Path, e.Err, out)
}

func (e *InvokeError) Unwrap() error { return e.Err }
