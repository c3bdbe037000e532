// pkg/batch/result_test.go
package batch

import "testing"

func TestStatsAdd(t *testing.T) {
	var s Stats
	s.Add(Result{BytesCompressed: 1024, BytesUncompressed: 4096})
	s.Add(Result{BytesCompressed: 2048, BytesUncompressed: 8192})

	if s.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", s.FilesProcessed)
	}
	if s.TotalBytesUncompressed != 12288 {
		t.Errorf("TotalBytesUncompressed = %d, want 12288", s.TotalBytesUncompressed)
	}
	if s.TotalBytesCompressed != 3072 {
		t.Errorf("TotalBytesCompressed = %d, want 3072", s.TotalBytesCompressed)
	}
	if s.BytesSaved() != 9216 {
		t.Errorf("BytesSaved = %d, want 9216", s.BytesSaved())
	}
}

func TestStatsAddOrderIndependent(t *testing.T) {
	results := []Result{
		{BytesCompressed: 10, BytesUncompressed: 100},
		{BytesCompressed: 20, BytesUncompressed: 200},
		{BytesCompressed: 30, BytesUncompressed: 300},
	}

	var forward, backward Stats
	for i := range results {
		forward.Add(results[i])
		backward.Add(results[len(results)-1-i])
	}
	if forward != backward {
		t.Errorf("totals depend on order: %+v vs %+v", forward, backward)
	}
}

func TestStatsGrowingBatch(t *testing.T) {
	// A file the compressor expanded still counts; saved goes negative.
	var s Stats
	s.Add(Result{BytesCompressed: 200, BytesUncompressed: 100, Ratio: 2.0})
	if s.BytesSaved() != -100 {
		t.Errorf("BytesSaved = %d, want -100", s.BytesSaved())
	}
}
