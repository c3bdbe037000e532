// pkg/batch/invoker_test.go
package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// stubCompressor writes an executable shell script standing in for the
// external compressor. The real tool is never run in tests.
func stubCompressor(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub compressor scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fakexz")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub compressor: %v", err)
	}
	return path
}

// Replaces the original with the artifact and emits an xz-style summary,
// like xz itself does on success. The path is the last argument, after the
// "--" guard.
const okStub = `#!/bin/sh
for a in "$@"; do in="$a"; done
mv "$in" "$in.xz"
echo "$in: 1.0 KiB / 2.0 KiB = 0.500" >&2
`

const diskFullStub = `#!/bin/sh
echo "fakexz: write error: No space left on device" >&2
exit 1
`

func testProfile(command string) Profile {
	return Profile{Name: "xz", Command: command, Suffix: xzSuffix, Parse: parseXZSummary}
}

func TestInvokeSuccess(t *testing.T) {
	stub := stubCompressor(t, okStub)
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	inv := &Invoker{Profile: testProfile(stub), MinSize: 1024}
	res, err := inv.Invoke(context.Background(), path)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}

	if res.BytesCompressed != 1024 || res.BytesUncompressed != 2048 {
		t.Errorf("sizes = %d/%d, want 1024/2048", res.BytesCompressed, res.BytesUncompressed)
	}
	if res.Ratio != 0.5 {
		t.Errorf("Ratio = %v, want 0.5", res.Ratio)
	}
	if res.PathCompressed != path+".xz" {
		t.Errorf("PathCompressed = %q, want %q", res.PathCompressed, path+".xz")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("original file still exists after compression")
	}
	if _, err := os.Stat(path + ".xz"); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
}

func TestInvokeSpacesInPath(t *testing.T) {
	stub := stubCompressor(t, okStub)
	dir := t.TempDir()
	path := filepath.Join(dir, "with space.bin")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	inv := &Invoker{Profile: testProfile(stub), MinSize: 1024}
	res, err := inv.Invoke(context.Background(), path)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if res.PathUncompressed != path {
		t.Errorf("PathUncompressed = %q, want %q", res.PathUncompressed, path)
	}
}

func TestInvokeCompressorFailure(t *testing.T) {
	stub := stubCompressor(t, diskFullStub)
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	inv := &Invoker{Profile: testProfile(stub), MinSize: 1024}
	_, err := inv.Invoke(context.Background(), path)
	if err == nil {
		t.Fatal("Invoke succeeded, want failure")
	}
	var invErr *InvokeError
	if !errors.As(err, &invErr) {
		t.Fatalf("error is %T, want *InvokeError", err)
	}
	if !strings.Contains(invErr.Output, "No space left") {
		t.Errorf("captured output %q missing compressor message", invErr.Output)
	}
}

func TestInvokeTooSmall(t *testing.T) {
	stub := stubCompressor(t, okStub)
	path := filepath.Join(t.TempDir(), "tiny.bin")
	if err := os.WriteFile(path, make([]byte, 10), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	inv := &Invoker{Profile: testProfile(stub), MinSize: 1024}
	_, err := inv.Invoke(context.Background(), path)
	if !errors.Is(err, ErrTooSmall) {
		t.Fatalf("err = %v, want ErrTooSmall", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Error("too-small file was touched by the invoker")
	}
}

func TestInvokeNotRegular(t *testing.T) {
	stub := stubCompressor(t, okStub)
	inv := &Invoker{Profile: testProfile(stub), MinSize: 1024}
	_, err := inv.Invoke(context.Background(), t.TempDir())
	if !errors.Is(err, ErrNotRegular) {
		t.Fatalf("err = %v, want ErrNotRegular", err)
	}
}

func TestInvokeMissingFile(t *testing.T) {
	stub := stubCompressor(t, okStub)
	inv := &Invoker{Profile: testProfile(stub), MinSize: 1024}
	_, err := inv.Invoke(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Invoke succeeded on missing file")
	}
}
