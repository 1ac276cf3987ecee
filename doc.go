// Package edgemap applies a fixed Gaussian-then-Sobel edge filter to
// single-channel raster images.
//
// # Overview
//
// Every input image yields two derived images of the same size:
//
//   - a blurred image, produced by a 5x5 integer Gaussian mask (divisor 159)
//     with zero padding at the borders
//   - a gradient image, the Sobel magnitude of the blurred image, saturated
//     at 255 and zero on the one-pixel frame
//
// # Quick Start
//
//	src, err := edgemap.Load("a0.pgm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	blurred, gradient := edgemap.Process(src)
//
// # Batches
//
// A Pipeline runs decode, blur, edge detection and both encodes for each
// Job in order. By default the first failure stops the batch; SkipFailed
// records the failure and moves on.
//
//	jobs, _ := edgemap.NumberedJobs("in", "blurred", "edges", 0, 31)
//	report, err := edgemap.NewPipeline().Run(ctx, jobs)
//
// # Formats
//
// PGM (P2 and P5) is read and written natively. PNG, JPEG, GIF, BMP, TIFF
// and WebP inputs are converted to 8-bit luminance; outputs may be PGM,
// PNG, JPEG, BMP or TIFF, chosen by file extension.
package edgemap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
