// pkg/batch/result.go
package batch

// Result holds the measurements parsed from one compressor summary line.
// A Result is immutable after parsing; it is consumed immediately by the
// accumulator and the reporter, never persisted.
type Result struct {
	// Size of the artifact after compression, in bytes
	BytesCompressed int64

	// Original file size in bytes
	BytesUncompressed int64

	// Compressed/uncompressed ratio as reported by the compressor.
	// Values above 1 (the file grew) are reported, not treated as errors.
	Ratio float64

	// Final path of the compressed artifact (original path + suffix)
	PathCompressed string

	// Path of the original file before compression
	PathUncompressed string
}

// Stats tracks running totals across one batch. It is owned exclusively by
// the single batch loop, so no locking is needed. Counters are never
// decremented and are read once at batch end.
type Stats struct {
	FilesProcessed         int
	TotalBytesUncompressed int64
	TotalBytesCompressed   int64
}

// Add folds one successful compression into the running totals. Must be
// called exactly once per Result, never for skipped or failed files.
func (s *Stats) Add(r Result) {
	s.FilesProcessed++
	s.TotalBytesUncompressed += r.BytesUncompressed
	s.TotalBytesCompressed += r.BytesCompressed
}

// BytesSaved returns the aggregate byte difference between originals and
// artifacts. Negative means the batch grew overall.
func (s *Stats) BytesSaved() int64 {
	return s.TotalBytesUncompressed - s.TotalBytesCompressed
}
