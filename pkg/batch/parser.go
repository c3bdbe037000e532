// pkg/batch/parser.go
package batch

import (
	"math"
	"strconv"
	"strings"
)

// Binary multipliers for the size units the compressors emit. An
// unrecognized unit is a parse failure, never a silent guess.
var unitBytes = map[string]float64{
	"B":   1,
	"KiB": 1 << 10,
	"MiB": 1 << 20,
	"GiB": 1 << 30,
}

// summaryLine extracts the summary line from the compressor's combined
// output: the last non-empty line. Verbose compressors may emit progress
// lines before it.
func summaryLine(raw string) string {
	lines := strings.Split(raw, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// sizeBytes converts a size token and its unit token to bytes, stripping
// thousands-separator commas ("2,585.8" KiB -> 2647859).
func sizeBytes(line, value, unit string) (int64, error) {
	mult, ok := unitBytes[unit]
	if !ok {
		return 0, &ParseError{Line: line, Reason: "unrecognized size unit " + strconv.Quote(unit)}
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil || v < 0 {
		return 0, &ParseError{Line: line, Reason: "bad size value " + strconv.Quote(value)}
	}
	return int64(math.Round(v * mult)), nil
}

// parseXZSummary parses xz's verbose summary:
//
//	<path>: <compressed> <unit> / <uncompressed> <unit> = <ratio>
//
// The last seven fields are fixed; everything before them is the original
// path (which may contain spaces) followed by a colon.
func parseXZSummary(raw string) (Result, error) {
	line := summaryLine(raw)
	fields := strings.Fields(line)
	if len(fields) < 8 {
		return Result{}, &ParseError{Line: line, Reason: "expected at least 8 fields"}
	}

	tail := fields[len(fields)-7:]
	if tail[2] != "/" || tail[5] != "=" {
		return Result{}, &ParseError{Line: line, Reason: "missing '/' or '=' separator"}
	}

	path := strings.Join(fields[:len(fields)-7], " ")
	if !strings.HasSuffix(path, ":") {
		return Result{}, &ParseError{Line: line, Reason: "path field not terminated by ':'"}
	}
	path = strings.TrimSuffix(path, ":")

	compressed, err := sizeBytes(line, tail[0], tail[1])
	if err != nil {
		return Result{}, err
	}
	uncompressed, err := sizeBytes(line, tail[3], tail[4])
	if err != nil {
		return Result{}, err
	}
	ratio, err := strconv.ParseFloat(tail[6], 64)
	if err != nil || ratio < 0 {
		return Result{}, &ParseError{Line: line, Reason: "bad ratio " + strconv.Quote(tail[6])}
	}

	return Result{
		BytesCompressed:   compressed,
		BytesUncompressed: uncompressed,
		Ratio:             ratio,
		PathCompressed:    path + xzSuffix,
		PathUncompressed:  path,
	}, nil
}

// parseZstdSummary parses zstd's verbose summary:
//
//	<path> : <pct>% ( <uncompressed> <unit> => <compressed> <unit>, <artifact>)
//
// The line is anchored on the "=>" token; parentheses and trailing commas
// are stripped before tokenizing.
func parseZstdSummary(raw string) (Result, error) {
	line := summaryLine(raw)
	clean := strings.NewReplacer("(", " ", ")", " ", ",", " ").Replace(line)
	fields := strings.Fields(clean)

	arrow := -1
	for i, f := range fields {
		if f == "=>" {
			arrow = i
			break
		}
	}
	if arrow < 3 || arrow+3 >= len(fields) {
		return Result{}, &ParseError{Line: line, Reason: "missing '=>' size report"}
	}

	pct := fields[arrow-3]
	if !strings.HasSuffix(pct, "%") {
		return Result{}, &ParseError{Line: line, Reason: "missing percentage field"}
	}
	ratioPct, err := strconv.ParseFloat(strings.TrimSuffix(pct, "%"), 64)
	if err != nil || ratioPct < 0 {
		return Result{}, &ParseError{Line: line, Reason: "bad percentage " + strconv.Quote(pct)}
	}

	uncompressed, err := sizeBytes(line, fields[arrow-2], fields[arrow-1])
	if err != nil {
		return Result{}, err
	}
	compressed, err := sizeBytes(line, fields[arrow+1], fields[arrow+2])
	if err != nil {
		return Result{}, err
	}

	artifact := fields[len(fields)-1]
	if !strings.HasSuffix(artifact, zstdSuffix) {
		return Result{}, &ParseError{Line: line, Reason: "artifact path missing " + zstdSuffix + " suffix"}
	}

	return Result{
		BytesCompressed:   compressed,
		BytesUncompressed: uncompressed,
		Ratio:             ratioPct / 100,
		PathCompressed:    artifact,
		PathUncompressed:  strings.TrimSuffix(artifact, zstdSuffix),
	}, nil
}
