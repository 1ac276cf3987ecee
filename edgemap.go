package edgemap

import (
	"github.com/gogpu/edgemap/internal/filter"
	"github.com/gogpu/edgemap/internal/image"
)

// PixelBuffer is a row-major grid of 8-bit intensity samples.
type PixelBuffer = image.PixelBuffer

// Kernel is an immutable integer convolution mask with a divisor.
type Kernel = filter.Kernel

// EncodeOptions controls how output images are written.
type EncodeOptions = image.EncodeOptions

// Predefined kernels.
var (
	Gaussian5x5 = filter.Gaussian5x5
	SobelX      = filter.SobelX
	SobelY      = filter.SobelY
)

// Errors reported by decoding, encoding and buffer construction.
// Use errors.Is to test for them.
var (
	ErrFormat            = image.ErrFormat
	ErrDimensions        = image.ErrDimensions
	ErrIO                = image.ErrIO
	ErrInvalidDimensions = image.ErrInvalidDimensions
	ErrDataSize          = image.ErrDataSize
)

// NewPixelBuffer creates a zeroed buffer with positive dimensions.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	return image.NewPixelBuffer(width, height)
}

// FromPix wraps a row-major sample slice of length width*height.
func FromPix(width, height int, pix []uint8) (*PixelBuffer, error) {
	return image.FromPix(width, height, pix)
}

// Load decodes the image file at path into a PixelBuffer.
func Load(path string) (*PixelBuffer, error) {
	return image.Load(path)
}

// Save encodes buf to path; the file extension selects the format.
func Save(path string, buf *PixelBuffer, opts EncodeOptions) error {
	return image.Save(path, buf, opts)
}

// Blur returns src smoothed by Gaussian5x5.
func Blur(src *PixelBuffer) *PixelBuffer {
	return filter.GaussianBlur(src)
}

// Edges returns the Sobel gradient magnitude of src.
func Edges(src *PixelBuffer) *PixelBuffer {
	return filter.Sobel(src)
}

// Process runs both stages. The gradient is computed from the blurred
// buffer, never from src.
func Process(src *PixelBuffer) (blurred, gradient *PixelBuffer) {
	blurred = filter.GaussianBlur(src)
	gradient = filter.Sobel(blurred)
	return blurred, gradient
}
