package cli

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tinycodec/mdeflate/blockio"
)

func newDecompressCmd() *cobra.Command {
	var maxBlocks int

	cmd := &cobra.Command{
		Use:   "d <in> <out>",
		Short: "decompress <in> to <out>",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(args[0], args[1], maxBlocks)
		},
	}

	cmd.Flags().IntVar(&maxBlocks, "max-blocks", 0,
		"reject streams with more than this many blocks (0 = unlimited)")

	return cmd
}

func runDecompress(inPath, outPath string, maxBlocks int) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	r := blockio.NewReaderOptions(in, blockio.ReaderOptions{MaxBlocks: maxBlocks})
	written, err := io.Copy(out, r)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	log.WithField("output_bytes", written).Info("mdeflate: decompressed")
	return nil
}
