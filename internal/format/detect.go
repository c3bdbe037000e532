// internal/format/detect.go
package format

// Container identifies the compression container of an artifact.
type Container int

const (
	Unknown Container = iota
	XZ
	Zstd
	Gzip
	LZ4
)

// String returns the string representation of the container.
func (c Container) String() string {
	switch c {
	case XZ:
		return "xz"
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Detect identifies the container from magic bytes.
// Requires at least 6 bytes to detect all containers.
func Detect(magic []byte) Container {
	switch {
	case IsXZ(magic):
		return XZ
	case IsZstd(magic):
		return Zstd
	case IsGzip(magic):
		return Gzip
	case IsLZ4(magic):
		return LZ4
	default:
		return Unknown
	}
}

// IsXZ returns true if the magic bytes indicate an XZ stream
// (magic: 0xFD377A585A00).
func IsXZ(magic []byte) bool {
	return len(magic) >= 6 &&
		magic[0] == 0xFD && magic[1] == '7' && magic[2] == 'z' &&
		magic[3] == 'X' && magic[4] == 'Z' && magic[5] == 0x00
}

// IsZstd returns true if the magic bytes indicate a Zstandard frame
// (little-endian 0xFD2FB528).
func IsZstd(magic []byte) bool {
	return len(magic) >= 4 &&
		magic[0] == 0x28 && magic[1] == 0xB5 && magic[2] == 0x2F && magic[3] == 0xFD
}

// IsGzip returns true if the magic bytes indicate a gzip stream.
func IsGzip(magic []byte) bool {
	return len(magic) >= 2 && magic[0] == 0x1F && magic[1] == 0x8B
}

// IsLZ4 returns true if the magic bytes indicate an LZ4 frame
// (little-endian 0x184D2204).
func IsLZ4(magic []byte) bool {
	return len(magic) >= 4 &&
		magic[0] == 0x04 && magic[1] == 0x22 && magic[2] == 0x4D && magic[3] == 0x18
}
