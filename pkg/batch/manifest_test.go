// pkg/batch/manifest_test.go
package batch

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeebo/blake3"
)

func TestManifestAppend(t *testing.T) {
	dir := t.TempDir()

	artifact := filepath.Join(dir, "data.bin.xz")
	payload := []byte("compressed bytes, allegedly")
	if err := os.WriteFile(artifact, payload, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	manifestPath := filepath.Join(dir, "manifest.jsonl")
	w, err := NewManifestWriter(manifestPath)
	if err != nil {
		t.Fatalf("NewManifestWriter failed: %v", err)
	}

	res := Result{
		BytesCompressed:   27,
		BytesUncompressed: 2048,
		Ratio:             0.013,
		PathCompressed:    artifact,
		PathUncompressed:  filepath.Join(dir, "data.bin"),
	}
	if err := w.Append(res); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := os.Open(manifestPath)
	if err != nil {
		t.Fatalf("open manifest: %v", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		t.Fatal("manifest is empty")
	}
	var entry ManifestEntry
	if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
		t.Fatalf("manifest line is not valid JSON: %v", err)
	}
	if sc.Scan() {
		t.Error("manifest has more than one line")
	}

	if entry.Artifact != res.PathCompressed || entry.Original != res.PathUncompressed {
		t.Errorf("paths = %q/%q, want %q/%q",
			entry.Original, entry.Artifact, res.PathUncompressed, res.PathCompressed)
	}
	if entry.Uncompressed != 2048 || entry.Compressed != 27 {
		t.Errorf("sizes = %d/%d, want 2048/27", entry.Uncompressed, entry.Compressed)
	}

	sum := blake3.Sum256(payload)
	if entry.Blake3 != hex.EncodeToString(sum[:]) {
		t.Errorf("digest = %s, want %s", entry.Blake3, hex.EncodeToString(sum[:]))
	}
}

func TestManifestMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	w, err := NewManifestWriter(filepath.Join(dir, "manifest.jsonl"))
	if err != nil {
		t.Fatalf("NewManifestWriter failed: %v", err)
	}
	defer w.Close()

	err = w.Append(Result{PathCompressed: filepath.Join(dir, "nope.xz")})
	if err == nil {
		t.Fatal("Append succeeded with a missing artifact")
	}
}
