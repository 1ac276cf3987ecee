package filter

import (
	"math"

	"github.com/gogpu/edgemap/internal/image"
)

// Sobel computes the gradient magnitude of src, normally the output of
// GaussianBlur, and returns a new buffer of the same size.
//
// Only interior pixels are centers; the one-pixel frame is left at 0, so
// no padding is ever read. Magnitude is floor(sqrt(gx*gx + gy*gy)) clamped
// to 255. Images narrower or shorter than 3 have no interior and produce an
// all-zero result.
func Sobel(src *image.PixelBuffer) *image.PixelBuffer {
	dst := image.NewLike(src)
	SobelInto(dst, src)
	return dst
}

// SobelInto is Sobel writing into dst, which must have the size of src and
// must not be src. The frame of dst is zeroed.
func SobelInto(dst, src *image.PixelBuffer) {
	if !image.SameSize(dst, src) {
		panic("filter: SobelInto size mismatch")
	}
	w, h := src.Width(), src.Height()
	out := dst.Pix()

	for y := 0; y < h; y++ {
		if y == 0 || y == h-1 {
			clear(out[y*w : (y+1)*w])
			continue
		}
		out[y*w] = 0
		out[y*w+w-1] = 0
		for x := 1; x < w-1; x++ {
			gx, gy := Gradient(src, x, y)
			out[y*w+x] = Magnitude(gx, gy)
		}
	}
}

// Gradient returns the SobelX and SobelY responses centered on (x, y).
// Neighbors outside src read as 0.
func Gradient(src *image.PixelBuffer, x, y int) (gx, gy int) {
	return accumulate(src, SobelX, x, y), accumulate(src, SobelY, x, y)
}

// Magnitude returns floor(sqrt(gx*gx + gy*gy)) saturated at 255.
func Magnitude(gx, gy int) uint8 {
	sq := gx*gx + gy*gy
	if sq >= 255*255 {
		return 255
	}
	return uint8(math.Sqrt(float64(sq)))
}
