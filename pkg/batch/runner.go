// Package batch implements the in-place compression pipeline: a stream of
// candidate paths is filtered for eligibility, each eligible file is handed
// to an external compressor, the compressor's summary output is parsed into
// measurements, and space savings are accumulated across the run.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"xzbatch/pkg/verify"
)

// ReadPaths consumes the newline-separated path stream. CRLF line endings
// are tolerated and blank lines are skipped.
func ReadPaths(r io.Reader) ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read path stream: %w", err)
	}
	return paths, nil
}

// Run executes one batch: filter, compress, parse, accumulate, strictly in
// input order with one compressor in flight at a time. Skip conditions are
// logged and the loop continues; everything else aborts the batch.
//
// The returned Stats are only meaningful when err is nil. A fatal error
// loses the statistics accumulated so far: the summary is reserved for a
// clean, complete pass.
func Run(ctx context.Context, opts *Options) (Stats, error) {
	var stats Stats

	if err := opts.Validate(); err != nil {
		return stats, err
	}

	profile, err := LookupProfile(opts.ProfileName)
	if err != nil {
		return stats, err
	}
	if opts.Compressor != "" {
		profile.Command = opts.Compressor
	}

	filter := NewFilter(opts.MinSize)
	if opts.ExcludeFile != "" {
		if err := filter.LoadExcludes(opts.ExcludeFile); err != nil {
			return stats, err
		}
	}

	var manifest *ManifestWriter
	if opts.ManifestPath != "" {
		manifest, err = NewManifestWriter(opts.ManifestPath)
		if err != nil {
			return stats, err
		}
		defer manifest.Close()
	}

	paths, err := ReadPaths(opts.Input)
	if err != nil {
		return stats, err
	}
	opts.Log.Infof("batch of %d paths, profile %s, minimum size %d bytes",
		len(paths), profile.Name, opts.MinSize)

	inv := &Invoker{Profile: profile, MinSize: opts.MinSize}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("batch interrupted: %w", err)
		}

		ok, reason := filter.Check(path)
		if !ok {
			opts.Log.Warnf("skipping %s: %s", path, reason)
			if opts.Progress != nil {
				opts.Progress(i+1, len(paths))
			}
			continue
		}

		res, err := inv.Invoke(ctx, path)
		if err != nil {
			return stats, err
		}

		if opts.VerifyArtifacts {
			if _, err := verify.File(res.PathCompressed); err != nil {
				return stats, fmt.Errorf("artifact verification: %w", err)
			}
		}
		if manifest != nil {
			if err := manifest.Append(res); err != nil {
				return stats, err
			}
		}

		stats.Add(res)
		fmt.Fprintf(opts.Output, "%s (ratio %.3f)\n", res.PathCompressed, res.Ratio)

		if opts.Progress != nil {
			opts.Progress(i+1, len(paths))
		}
	}

	return stats, nil
}
