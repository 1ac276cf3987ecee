package edgemap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustBuffer(t *testing.T, w, h int) *PixelBuffer {
	t.Helper()
	buf, err := NewPixelBuffer(w, h)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	return buf
}

func TestProcessAllZero(t *testing.T) {
	blurred, gradient := Process(mustBuffer(t, 5, 5))

	zero := make([]uint8, 25)
	if diff := cmp.Diff(zero, blurred.Pix()); diff != "" {
		t.Errorf("blurred mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(zero, gradient.Pix()); diff != "" {
		t.Errorf("gradient mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessImpulse(t *testing.T) {
	src := mustBuffer(t, 5, 5)
	src.Set(2, 2, 255)

	blurred, gradient := Process(src)

	if got := blurred.At(2, 2); got != 24 {
		t.Errorf("blurred center = %d, want 24 (255*15/159)", got)
	}
	if got := blurred.At(1, 2); got != 19 {
		t.Errorf("blurred (1,2) = %d, want 19 (255*12/159)", got)
	}
	for _, p := range [][2]int{{1, 2}, {3, 2}, {2, 1}, {2, 3}} {
		if gradient.At(p[0], p[1]) == 0 {
			t.Errorf("gradient at %v = 0, want non-zero next to the impulse", p)
		}
	}
	if src.At(2, 2) != 255 {
		t.Error("Process mutated its source")
	}
}

func TestProcessUsesBlurredSource(t *testing.T) {
	// A sharp step edge: Sobel of the raw image saturates, Sobel of the
	// blurred image is softer near the top border.
	src := mustBuffer(t, 8, 8)
	for y := 0; y < 8; y++ {
		for x := 4; x < 8; x++ {
			src.Set(x, y, 255)
		}
	}

	_, gradient := Process(src)
	want := Edges(Blur(src))
	if diff := cmp.Diff(want.Pix(), gradient.Pix()); diff != "" {
		t.Errorf("Process gradient differs from Edges(Blur(src)) (-want +got):\n%s", diff)
	}
	if raw := Edges(src); cmp.Equal(raw.Pix(), gradient.Pix()) {
		t.Error("Process gradient equals Edges(src); it should be computed from the blurred buffer")
	}
}

func TestProcessPreservesDimensions(t *testing.T) {
	for _, s := range [][2]int{{1, 1}, {3, 17}, {40, 2}} {
		src := mustBuffer(t, s[0], s[1])
		blurred, gradient := Process(src)
		if blurred.Width() != s[0] || blurred.Height() != s[1] {
			t.Errorf("blurred %dx%d, want %dx%d", blurred.Width(), blurred.Height(), s[0], s[1])
		}
		if gradient.Width() != s[0] || gradient.Height() != s[1] {
			t.Errorf("gradient %dx%d, want %dx%d", gradient.Width(), gradient.Height(), s[0], s[1])
		}
	}
}

func TestKernelReexports(t *testing.T) {
	if Gaussian5x5.Divisor() != 159 || Gaussian5x5.Radius() != 2 {
		t.Errorf("Gaussian5x5 = radius %d divisor %d, want 2 and 159", Gaussian5x5.Radius(), Gaussian5x5.Divisor())
	}
	if SobelX.Radius() != 1 || SobelY.Radius() != 1 {
		t.Error("Sobel kernels should have radius 1")
	}
}
