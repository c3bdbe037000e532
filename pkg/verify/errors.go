// pkg/verify/errors.go
package verify

import "errors"

var (
	// ErrUnknownContainer is returned when the artifact's magic bytes match
	// no supported compression container
	ErrUnknownContainer = errors.New("unknown compression container")

	// ErrTruncated is returned when the artifact is too short to carry a
	// container header
	ErrTruncated = errors.New("artifact appears truncated")
)
