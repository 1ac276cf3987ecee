// Command edgemap blurs a numbered series of grayscale images and writes
// the Sobel edge map of each blurred image.
//
// Usage:
//
//	edgemap [flags] <input-dir> <blurred-dir> <edges-dir>
//
// With no flags it reads a0.pgm through a30.pgm and writes
// blurred_a<N>.pgm and edge_detection_a<N>.pgm.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/edgemap"
)

type config struct {
	first    int
	count    int
	naming   edgemap.Naming
	binary   bool
	keepOn   bool
	verbose  bool
	jpegQual int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config{naming: edgemap.DefaultNaming}

	cmd := &cobra.Command{
		Use:     "edgemap [flags] <input-dir> <blurred-dir> <edges-dir>",
		Short:   "Gaussian blur and Sobel edge detection for image series",
		Version: edgemap.Version,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, args[0], args[1], args[2], stdout, stderr)
		},
		SilenceUsage: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.IntVar(&cfg.first, "first", 0, "index of the first image")
	f.IntVarP(&cfg.count, "count", "n", edgemap.DefaultCount, "number of images to process")
	f.StringVar(&cfg.naming.Input, "input-pattern", cfg.naming.Input, "input file name pattern (one %d verb)")
	f.StringVar(&cfg.naming.Blurred, "blurred-pattern", cfg.naming.Blurred, "blurred output name pattern")
	f.StringVar(&cfg.naming.Edges, "edges-pattern", cfg.naming.Edges, "edge map output name pattern")
	f.BoolVar(&cfg.binary, "binary", false, "write raw P5 instead of plain P2 PGM")
	f.IntVar(&cfg.jpegQual, "jpeg-quality", 0, "JPEG quality for .jpg outputs (1-100)")
	f.BoolVarP(&cfg.keepOn, "keep-going", "k", false, "skip images that fail instead of stopping")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log per-stage timings")

	return cmd
}

func run(ctx context.Context, cfg config, inDir, blurDir, edgeDir string, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	edgemap.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer edgemap.SetLogger(nil)

	if cfg.count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", cfg.count)
	}
	jobs, err := cfg.naming.Jobs(inDir, blurDir, edgeDir, cfg.first, cfg.count)
	if err != nil {
		return err
	}

	for _, dir := range []string{blurDir, edgeDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	policy := edgemap.FailFast
	if cfg.keepOn {
		policy = edgemap.SkipFailed
	}
	p := edgemap.NewPipeline(
		edgemap.WithFailurePolicy(policy),
		edgemap.WithEncodeOptions(edgemap.EncodeOptions{
			BinaryPGM:   cfg.binary,
			JPEGQuality: cfg.jpegQual,
		}),
	)

	report, err := p.Run(ctx, jobs)

	pr := message.NewPrinter(language.English)
	pr.Fprintf(stdout, "%d of %d images processed, %d failed, %d pixels in %v\n",
		len(report.Processed), len(jobs), len(report.Failed), report.Pixels(), report.Elapsed)
	return err
}
