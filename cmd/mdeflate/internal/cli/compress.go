package cli

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tinycodec/mdeflate/blockio"
)

func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "c <in> <out>",
		Short: "compress <in> to <out>",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args[0], args[1])
		},
	}
}

func runCompress(inPath, outPath string) error {
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

	w := blockio.NewWriter(out)
	written, err := io.Copy(w, in)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	info, err := out.Stat()
	if err == nil {
		ratio := float64(0)
		if written > 0 {
			ratio = float64(info.Size()) / float64(written)
		}
		log.WithFields(log.Fields{
			"in_bytes":  written,
			"out_bytes": info.Size(),
			"ratio":     ratio,
		}).Info("mdeflate: compressed")
	}

	return nil
}
