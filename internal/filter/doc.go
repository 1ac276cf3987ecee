// Package filter implements the fixed two-stage edge filter.
//
// The package contains:
//   - Kernel: an immutable integer convolution mask with an explicit divisor
//   - Gaussian5x5, SobelX, SobelY: the predefined masks
//   - GaussianBlur: 5x5 smoothing with zero padding at the borders
//   - Sobel: gradient magnitude over the interior, zero on the one-pixel frame
//
// Every stage reads its source buffer and returns a newly allocated buffer
// of the same size; the Into variants write a caller-owned buffer instead.
// Sources are never written, so neighbor reads always see unfiltered
// samples.
package filter
