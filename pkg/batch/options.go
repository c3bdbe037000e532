// pkg/batch/options.go
package batch

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Options configures a batch run.
type Options struct {
	// Input is the newline-separated path stream, normally os.Stdin.
	// The caller is responsible for rejecting interactive sources.
	Input io.Reader

	// Output receives the per-file result lines and defaults to os.Stdout.
	// Diagnostics go through Log instead, keeping the two streams separate.
	Output io.Writer

	// MinSize is the eligibility threshold in bytes.
	// Default: DefaultMinSize (1 MiB).
	MinSize int64

	// ProfileName selects the compressor profile ("xz" or "zstd").
	// Default: "xz".
	ProfileName string

	// Compressor overrides the profile's command when non-empty, for
	// deployments with wrapper scripts (and for tests).
	Compressor string

	// ExcludeFile is an optional gitignore-syntax pattern file; matching
	// paths are skipped.
	ExcludeFile string

	// ManifestPath, when non-empty, appends one JSON line per compressed
	// file with byte counts and the artifact's BLAKE3 digest.
	ManifestPath string

	// VerifyArtifacts decodes each artifact right after compression. A
	// verification failure is fatal: the original is already gone.
	VerifyArtifacts bool

	// Progress, when non-nil, is called after every path with the number
	// of paths handled so far and the batch total.
	Progress func(done, total int)

	// Log receives skip diagnostics and batch progress. Defaults to a
	// no-op logger.
	Log *zap.SugaredLogger
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Input:       os.Stdin,
		Output:      os.Stdout,
		MinSize:     DefaultMinSize,
		ProfileName: "xz",
	}
}

// Validate checks the options and fills unset fields with defaults.
func (o *Options) Validate() error {
	if o.Input == nil {
		return ErrInputRequired
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.MinSize <= 0 {
		o.MinSize = DefaultMinSize
	}
	if o.ProfileName == "" {
		o.ProfileName = "xz"
	}
	if _, err := LookupProfile(o.ProfileName); err != nil {
		return err
	}
	if o.Log == nil {
		o.Log = zap.NewNop().Sugar()
	}
	return nil
}
