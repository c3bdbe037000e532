// cmd/xzbatch/run_cmd.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"

	"xzbatch/internal/display"
	"xzbatch/internal/logging"
	"xzbatch/pkg/batch"
)

func runCmd() *cobra.Command {
	var minSize string
	var profileName string
	var compressor string
	var excludeFile string
	var manifestPath string
	var grace time.Duration
	var verifyArtifacts bool
	var noProgress bool
	var verbose bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compress every eligible path read from stdin",
		Long: `Read newline-separated file paths from stdin and compress each one in
place with the selected compressor profile. Paths that do not exist, are
not regular files, or fall below the minimum size are skipped with a
diagnostic; any compressor failure aborts the whole batch.

The original file is replaced by the compressed artifact, so a short grace
period is observed before the first destructive action.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The batch must be fed, not typed.
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("stdin is a terminal; pipe in a list of file paths")
			}

			minBytes, err := display.ParseSize(minSize)
			if err != nil {
				return fmt.Errorf("--min-size: %w", err)
			}

			log, err := logging.New(verbose, quiet)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			start := time.Now()
			fmt.Printf("Starting at %s\n", start.Format(time.RFC1123))

			// Grace period before the first destructive action; the operator
			// can still abort with nothing touched.
			if grace > 0 {
				log.Infof("waiting %s before first compression (ctrl-c to abort)", grace)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(grace):
				}
			}

			opts := batch.DefaultOptions()
			opts.MinSize = minBytes
			opts.ProfileName = profileName
			opts.Compressor = compressor
			opts.ExcludeFile = excludeFile
			opts.ManifestPath = manifestPath
			opts.VerifyArtifacts = verifyArtifacts
			opts.Log = log

			var progress *mpb.Progress
			var bar *mpb.Bar
			if !quiet && !noProgress && term.IsTerminal(int(os.Stderr.Fd())) {
				progress = mpb.New(
					mpb.WithWidth(60),
					mpb.WithRefreshRate(150*time.Millisecond),
					mpb.WithOutput(os.Stderr),
				)
				opts.Progress = func(done, total int) {
					if bar == nil {
						bar = progress.AddBar(int64(total),
							mpb.PrependDecorators(
								decor.Name("Files", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
								decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
							),
							mpb.AppendDecorators(
								decor.Percentage(decor.WC{W: 5}),
							),
						)
					}
					bar.SetCurrent(int64(done))
				}
			}

			stats, runErr := batch.Run(ctx, opts)

			if progress != nil {
				if bar != nil && runErr != nil {
					bar.Abort(true)
				}
				progress.Wait()
			}
			if runErr != nil {
				return runErr
			}

			display.WriteSummary(os.Stdout, stats, int64(time.Since(start).Seconds()))
			return nil
		},
	}

	cmd.Flags().StringVar(&minSize, "min-size", "1M", "Minimum file size worth compressing (bytes, or with K/M/G suffix)")
	cmd.Flags().StringVar(&profileName, "profile", "xz",
		fmt.Sprintf("Compressor profile (%s)", strings.Join(batch.ProfileNames(), ", ")))
	cmd.Flags().StringVar(&compressor, "compressor", "", "Override the profile's compressor command")
	cmd.Flags().StringVar(&excludeFile, "exclude-from", "", "File of exclude patterns (gitignore syntax)")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Append a JSON-lines manifest of compressed artifacts")
	cmd.Flags().DurationVar(&grace, "grace", 5*time.Second, "Pause before the first destructive action")
	cmd.Flags().BoolVar(&verifyArtifacts, "verify", false, "Decode each artifact after compression")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show detailed output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (overrides verbose)")

	return cmd
}
