// cmd/xzbatch/verify_cmd.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xzbatch/pkg/verify"
)

func verifyCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "verify FILE...",
		Short: "Verify compressed artifacts by decoding them",
		Long: `Verify the integrity of compressed artifacts. The container (xz, zstd,
gzip, lz4) is detected from magic bytes and the whole stream is decoded;
any decode error fails the artifact.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				res, err := verify.File(path)
				if err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
					continue
				}
				if !quiet {
					fmt.Printf("OK   %s (%s, %d bytes -> %d bytes)\n",
						path, res.Container, res.ArtifactSize, res.DecodedBytes)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d artifacts failed verification", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Only report failures")

	return cmd
}
