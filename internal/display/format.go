// Package display formats durations, byte counts, and the end-of-batch
// summary block.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"xzbatch/pkg/batch"
)

// FormatDuration renders elapsed whole seconds as the two most significant
// non-zero units, from days+hours down to bare seconds. This is a reporting
// convenience, not a general duration formatter.
func FormatDuration(totalSeconds int64) string {
	days := totalSeconds / 86400
	hours := (totalSeconds % 86400) / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%d days and %d hours", days, hours)
	case hours > 0:
		return fmt.Sprintf("%d hours and %d minutes", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%d minutes and %d seconds", minutes, seconds)
	default:
		return fmt.Sprintf("%d seconds", seconds)
	}
}

// GiB converts a byte count to binary gibibytes (1024³ bytes).
func GiB(bytes int64) float64 {
	return float64(bytes) / (1 << 30)
}

// ParseSize parses a byte count with an optional binary suffix:
// "1048576", "512K", "1M", "2G".
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	mult := int64(1)
	switch s[len(s)-1] {
	case 'K', 'k':
		mult = 1 << 10
		s = s[:len(s)-1]
	case 'M', 'm':
		mult = 1 << 20
		s = s[:len(s)-1]
	case 'G', 'g':
		mult = 1 << 30
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return n * mult, nil
}

// WriteSummary prints the final aggregate report. With zero files updated
// only the count is printed; a batch that compressed nothing has no byte
// totals worth showing.
func WriteSummary(w io.Writer, stats batch.Stats, elapsedSeconds int64) {
	fmt.Fprintf(w, "\nUpdated %d files.\n", stats.FilesProcessed)
	if stats.FilesProcessed == 0 {
		return
	}
	fmt.Fprintf(w, "%7.1f GiB uncompressed\n", GiB(stats.TotalBytesUncompressed))
	fmt.Fprintf(w, "%7.1f GiB compressed\n", GiB(stats.TotalBytesCompressed))
	fmt.Fprintf(w, "%7.1f GiB saved\n", GiB(stats.BytesSaved()))
	fmt.Fprintf(w, "Elapsed time: %s\n", FormatDuration(elapsedSeconds))
}
