// pkg/batch/profile.go
package batch

import "fmt"

const (
	xzSuffix   = ".xz"
	zstdSuffix = ".zst"
)

// DefaultMinSize is the minimum file size worth handing to the compressor.
// Tiny files gain little and the artifact overhead can exceed the savings.
const DefaultMinSize = 1 << 20 // 1 MiB

// Profile bundles everything that couples the pipeline to one external
// compressor: the command line, the artifact suffix, and the parser for its
// summary output. The parser is deliberately narrow; if a tool changes its
// output format, only the profile changes.
type Profile struct {
	Name    string
	Command string
	Args    []string
	Suffix  string
	Parse   func(raw string) (Result, error)
}

// Built-in profiles. Both request maximum compression, all-core
// parallelism, and a verbose summary, and replace the original file with
// the artifact on success.
var profiles = map[string]Profile{
	"xz": {
		Name:    "xz",
		Command: "xz",
		Args:    []string{"-9", "--threads=0", "--verbose"},
		Suffix:  xzSuffix,
		Parse:   parseXZSummary,
	},
	"zstd": {
		Name:    "zstd",
		Command: "zstd",
		Args:    []string{"-19", "-T0", "--rm", "-v"},
		Suffix:  zstdSuffix,
		Parse:   parseZstdSummary,
	},
}

// LookupProfile resolves a profile by name.
func LookupProfile(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// ProfileNames lists the built-in profile names for help text.
func ProfileNames() []string {
	return []string{"xz", "zstd"}
}
