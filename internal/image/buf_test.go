package image

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPixelBuffer(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 100, 50, nil},
		{"1x1 minimum", 1, 1, nil},
		{"zero width", 0, 10, ErrInvalidDimensions},
		{"zero height", 10, 0, ErrInvalidDimensions},
		{"negative width", -1, 10, ErrInvalidDimensions},
		{"negative height", 10, -3, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewPixelBuffer(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewPixelBuffer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("dimensions = (%d, %d), want (%d, %d)", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if len(buf.Pix()) != tt.width*tt.height {
				t.Errorf("len(Pix()) = %d, want %d", len(buf.Pix()), tt.width*tt.height)
			}
			for i, v := range buf.Pix() {
				if v != 0 {
					t.Fatalf("Pix()[%d] = %d, want 0", i, v)
				}
			}
		})
	}
}

func TestFromPix(t *testing.T) {
	pix := []uint8{1, 2, 3, 4, 5, 6}

	buf, err := FromPix(3, 2, pix)
	if err != nil {
		t.Fatalf("FromPix() error = %v", err)
	}
	if got := buf.At(2, 1); got != 6 {
		t.Errorf("At(2, 1) = %d, want 6", got)
	}

	// The buffer aliases the caller's slice.
	pix[0] = 42
	if got := buf.At(0, 0); got != 42 {
		t.Errorf("At(0, 0) = %d after external write, want 42", got)
	}

	if _, err := FromPix(4, 2, pix); !errors.Is(err, ErrDataSize) {
		t.Errorf("FromPix(short) error = %v, want ErrDataSize", err)
	}
	if _, err := FromPix(0, 2, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("FromPix(0x2) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPixelBufferRowMajor(t *testing.T) {
	buf, _ := NewPixelBuffer(4, 3)
	buf.Set(1, 2, 200)
	buf.Set(3, 0, 7)

	if got := buf.Pix()[2*4+1]; got != 200 {
		t.Errorf("Pix()[9] = %d, want 200", got)
	}
	if got := buf.Pix()[3]; got != 7 {
		t.Errorf("Pix()[3] = %d, want 7", got)
	}
	if diff := cmp.Diff([]uint8{0, 200, 0, 0}, buf.Row(2)); diff != "" {
		t.Errorf("Row(2) mismatch (-want +got):\n%s", diff)
	}
	if buf.Row(3) != nil || buf.Row(-1) != nil {
		t.Error("Row() out of range should return nil")
	}
}

func TestPixelBufferOutOfBounds(t *testing.T) {
	buf, _ := NewPixelBuffer(2, 2)
	buf.Fill(9)

	coords := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}}
	for _, c := range coords {
		if got := buf.At(c[0], c[1]); got != 0 {
			t.Errorf("At(%d, %d) = %d, want 0", c[0], c[1], got)
		}
		buf.Set(c[0], c[1], 1) // must not panic
	}
	for i, v := range buf.Pix() {
		if v != 9 {
			t.Errorf("Pix()[%d] = %d, want 9", i, v)
		}
	}
}

func TestPixelBufferClone(t *testing.T) {
	buf, _ := NewPixelBuffer(3, 3)
	buf.Set(1, 1, 128)

	c := buf.Clone()
	if !SameSize(buf, c) {
		t.Fatalf("Clone() size = %dx%d, want 3x3", c.Width(), c.Height())
	}
	c.Set(1, 1, 1)
	if buf.At(1, 1) != 128 {
		t.Error("Clone() shares storage with the original")
	}

	like := NewLike(buf)
	if !SameSize(buf, like) || like.At(1, 1) != 0 {
		t.Error("NewLike() should return a zeroed buffer of the same size")
	}
}

func TestToGray(t *testing.T) {
	buf, _ := FromPix(2, 2, []uint8{10, 20, 30, 40})

	gray := buf.ToGray()
	if gray.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("Bounds() = %v, want (0,0)-(2,2)", gray.Bounds())
	}
	if got := gray.GrayAt(1, 1).Y; got != 40 {
		t.Errorf("GrayAt(1, 1) = %d, want 40", got)
	}
}

func TestFromImage_Gray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(2, 3, color.Gray{Y: 99})

	// Sub-image with non-zero origin.
	sub := gray.SubImage(image.Rect(1, 1, 4, 4)).(*image.Gray)

	buf, err := FromImage(sub)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if buf.Width() != 3 || buf.Height() != 3 {
		t.Fatalf("dimensions = (%d, %d), want (3, 3)", buf.Width(), buf.Height())
	}
	if got := buf.At(1, 2); got != 99 {
		t.Errorf("At(1, 2) = %d, want 99", got)
	}
}

func TestFromImage_Color(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 1))
	rgba.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	rgba.Set(1, 0, color.RGBA{A: 255})

	buf, err := FromImage(rgba)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got := buf.At(0, 0); got != 255 {
		t.Errorf("white pixel = %d, want 255", got)
	}
	if got := buf.At(1, 0); got != 0 {
		t.Errorf("black pixel = %d, want 0", got)
	}
}

func TestFromImage_Empty(t *testing.T) {
	empty := image.NewGray(image.Rect(0, 0, 0, 5))
	if _, err := FromImage(empty); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("FromImage(empty) error = %v, want ErrInvalidDimensions", err)
	}
}
