// pkg/batch/invoker.go
package batch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Invoker runs the external compressor against one file at a time. Only one
// invocation is ever in flight; the compressor itself may use every core to
// work on a single file.
type Invoker struct {
	Profile Profile

	// MinSize guards against compressing files not worth the overhead.
	// Zero means DefaultMinSize, matching the pre-filter's default.
	MinSize int64
}

// Invoke compresses path in place and returns the parsed measurements.
//
// The minimum-size threshold is re-validated here so the invoker is safe to
// call without the pre-filter; a violation at this point is an error, not a
// skip. On success the original file has been replaced by the artifact at
// Result.PathCompressed. Any subprocess failure aborts the batch.
//
// The path is passed as a single argv element behind a "--" guard, so
// embedded whitespace and leading dashes never reach a shell.
func (inv *Invoker) Invoke(ctx context.Context, path string) (Result, error) {
	minSize := inv.MinSize
	if minSize <= 0 {
		minSize = DefaultMinSize
	}

	fi, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return Result{}, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	if fi.Size() < minSize {
		return Result{}, fmt.Errorf("%s (%d bytes): %w", path, fi.Size(), ErrTooSmall)
	}

	args := make([]string, 0, len(inv.Profile.Args)+2)
	args = append(args, inv.Profile.Args...)
	args = append(args, "--", path)

	cmd := exec.CommandContext(ctx, inv.Profile.Command, args...)
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	// Blocks until the compressor exits and its output is flushed; a large
	// file can hold this for hours.
	if err := cmd.Run(); err != nil {
		return Result{}, &InvokeError{Path: path, Output: combined.String(), Err: err}
	}

	return inv.Profile.Parse(combined.String())
}
