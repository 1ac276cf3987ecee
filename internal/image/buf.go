// Package image provides the single-channel pixel buffer used by edgemap
// and the codecs that move it to and from files.
//
// PixelBuffer owns no I/O. Decoders produce a buffer with positive
// dimensions; encoders accept one and write it out. The filter stages in
// internal/filter read one buffer and allocate another of the same size.
package image

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Buffer errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataSize is returned when a sample slice does not hold exactly
	// width*height samples.
	ErrDataSize = errors.New("image: sample count does not match dimensions")
)

// PixelBuffer is a row-major grid of 8-bit intensity samples.
//
// Pixel (x, y) lives at Pix()[y*Width()+x]. A buffer is owned by whichever
// component holds it; the filter stages never write into their input.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewPixelBuffer creates a zeroed buffer with the given dimensions.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}, nil
}

// FromPix wraps an existing sample slice without copying.
// The buffer takes ownership of pix.
func FromPix(width, height int, pix []uint8) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) != width*height {
		return nil, ErrDataSize
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    pix,
	}, nil
}

// NewLike returns a zeroed buffer with the same dimensions as src.
func NewLike(src *PixelBuffer) *PixelBuffer {
	return &PixelBuffer{
		width:  src.width,
		height: src.height,
		pix:    make([]uint8, len(src.pix)),
	}
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Pix returns the raw row-major samples.
func (b *PixelBuffer) Pix() []uint8 {
	return b.pix
}

// Row returns the samples of row y, or nil if y is out of range.
func (b *PixelBuffer) Row(y int) []uint8 {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.width
	return b.pix[start : start+b.width]
}

// At returns the sample at (x, y). Coordinates outside the buffer read as 0.
func (b *PixelBuffer) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Set stores v at (x, y). Out-of-range coordinates are ignored.
func (b *PixelBuffer) Set(x, y int, v uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = v
}

// Fill sets every sample to v.
func (b *PixelBuffer) Fill(v uint8) {
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	c := NewLike(b)
	copy(c.pix, b.pix)
	return c
}

// SameSize reports whether a and b have identical dimensions.
func SameSize(a, b *PixelBuffer) bool {
	return a.width == b.width && a.height == b.height
}

// ToGray converts the buffer to a standard library *image.Gray.
// The returned image owns a copy of the samples.
func (b *PixelBuffer) ToGray() *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		copy(gray.Pix[y*gray.Stride:], b.Row(y))
	}
	return gray
}

// FromImage creates a buffer from any image.Image, converting color
// sources to 8-bit luminance. Returns ErrInvalidDimensions for empty images.
func FromImage(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	buf, err := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for images that are already 8-bit gray.
	if gray, ok := img.(*image.Gray); ok {
		for y := range buf.height {
			start := (bounds.Min.Y+y-gray.Rect.Min.Y)*gray.Stride + (bounds.Min.X - gray.Rect.Min.X)
			copy(buf.Row(y), gray.Pix[start:start+buf.width])
		}
		return buf, nil
	}

	gray := image.NewGray(image.Rect(0, 0, buf.width, buf.height))
	xdraw.Draw(gray, gray.Bounds(), img, bounds.Min, xdraw.Src)
	for y := range buf.height {
		copy(buf.Row(y), gray.Pix[y*gray.Stride:y*gray.Stride+buf.width])
	}
	return buf, nil
}
