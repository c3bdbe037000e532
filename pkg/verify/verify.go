// Package verify checks compressed artifacts by detecting their container
// from magic bytes and fully decoding the stream. It never compresses
// anything itself.
package verify

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"

	"xzbatch/internal/format"
)

// Result describes one verified artifact.
type Result struct {
	Path         string
	Container    format.Container
	ArtifactSize int64
	DecodedBytes int64
}

// File verifies the artifact at path: the container is detected from magic
// bytes and the whole stream is decoded and discarded. A decode error at
// any point is a verification failure.
func File(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat artifact: %w", err)
	}

	magic := make([]byte, 6)
	if _, err := io.ReadFull(f, magic); err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrTruncated)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek artifact: %w", err)
	}

	res := &Result{
		Path:         path,
		Container:    format.Detect(magic),
		ArtifactSize: fi.Size(),
	}

	var decoded io.Reader
	switch res.Container {
	case format.XZ:
		decoded, err = xz.NewReader(f)
		if err != nil {
			return res, fmt.Errorf("%s: xz header: %w", path, err)
		}

	case format.Zstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			return res, fmt.Errorf("%s: zstd header: %w", path, err)
		}
		defer dec.Close()
		decoded = dec

	case format.Gzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return res, fmt.Errorf("%s: gzip header: %w", path, err)
		}
		defer gz.Close()
		decoded = gz

	case format.LZ4:
		decoded = lz4.NewReader(f)

	default:
		return res, fmt.Errorf("%s: %w", path, ErrUnknownContainer)
	}

	n, err := io.Copy(io.Discard, decoded)
	res.DecodedBytes = n
	if err != nil {
		return res, fmt.Errorf("%s: decode %s: %w", path, res.Container, err)
	}
	return res, nil
}
