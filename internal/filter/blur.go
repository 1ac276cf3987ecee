package filter

import (
	"github.com/gogpu/edgemap/internal/image"
)

// GaussianBlur smooths src with Gaussian5x5 and returns a new buffer of the
// same size.
//
// Neighbors outside the image contribute 0, so pixels within two samples of
// an edge come out darker than a flat interior. Each sum is divided by 159
// with truncation toward zero and then clamped to [0, 255].
func GaussianBlur(src *image.PixelBuffer) *image.PixelBuffer {
	return Convolve(src, Gaussian5x5)
}

// Convolve applies k at every pixel of src with zero padding. Each sum is
// divided by k.Divisor() (truncating toward zero) and clamped to [0, 255].
func Convolve(src *image.PixelBuffer, k Kernel) *image.PixelBuffer {
	dst := image.NewLike(src)
	ConvolveInto(dst, src, k)
	return dst
}

// ConvolveInto is Convolve writing into dst, which must have the size of
// src and must not be src. Every sample of dst is overwritten.
func ConvolveInto(dst, src *image.PixelBuffer, k Kernel) {
	if !image.SameSize(dst, src) {
		panic("filter: ConvolveInto size mismatch")
	}
	w, h := src.Width(), src.Height()
	out := dst.Pix()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = clampUint8(accumulate(src, k, x, y) / k.divisor)
		}
	}
}

// accumulate returns the unnormalized weighted sum of k centered on (x, y).
// Samples outside src read as 0.
func accumulate(src *image.PixelBuffer, k Kernel, x, y int) int {
	pix := src.Pix()
	w, h := src.Width(), src.Height()
	r := k.radius
	side := 2*r + 1
	sum := 0

	// Interior: the whole neighborhood is in bounds.
	if x >= r && x < w-r && y >= r && y < h-r {
		for ky := 0; ky < side; ky++ {
			row := pix[(y+ky-r)*w+x-r : (y+ky-r)*w+x+r+1]
			kw := k.weights[ky*side : (ky+1)*side]
			for i, v := range row {
				sum += int(v) * kw[i]
			}
		}
		return sum
	}

	for ky := 0; ky < side; ky++ {
		sy := y + ky - r
		if sy < 0 || sy >= h {
			continue
		}
		for kx := 0; kx < side; kx++ {
			sx := x + kx - r
			if sx < 0 || sx >= w {
				continue
			}
			sum += int(pix[sy*w+sx]) * k.weights[ky*side+kx]
		}
	}
	return sum
}

// clampUint8 narrows v to [0, 255].
func clampUint8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
