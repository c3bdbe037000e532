// pkg/batch/manifest.go
package batch

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// ManifestEntry is one line of the JSON-lines manifest.
type ManifestEntry struct {
	Original     string  `json:"original"`
	Artifact     string  `json:"artifact"`
	Uncompressed int64   `json:"uncompressed_bytes"`
	Compressed   int64   `json:"compressed_bytes"`
	Ratio        float64 `json:"ratio"`
	Blake3       string  `json:"blake3"`
}

// ManifestWriter appends one JSON object per compressed file, in batch
// order, including the artifact's BLAKE3 hex digest.
type ManifestWriter struct {
	f   *os.File
	enc *json.Encoder
}

// NewManifestWriter opens (or creates) the manifest for appending.
func NewManifestWriter(path string) (*ManifestWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open manifest %s: %w", path, err)
	}
	return &ManifestWriter{f: f, enc: json.NewEncoder(f)}, nil
}

// Append hashes the artifact and writes one manifest line. A failure here
// is fatal to the batch like any other write failure.
func (w *ManifestWriter) Append(r Result) error {
	digest, err := blake3File(r.PathCompressed)
	if err != nil {
		return err
	}
	return w.enc.Encode(ManifestEntry{
		Original:     r.PathUncompressed,
		Artifact:     r.PathCompressed,
		Uncompressed: r.BytesUncompressed,
		Compressed:   r.BytesCompressed,
		Ratio:        r.Ratio,
		Blake3:       digest,
	})
}

// Close flushes and closes the manifest file.
func (w *ManifestWriter) Close() error {
	return w.f.Close()
}

func blake3File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("hash artifact %s: %w", path, err)
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash artifact %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
