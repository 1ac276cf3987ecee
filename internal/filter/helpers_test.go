package filter

import (
	"testing"

	"github.com/gogpu/edgemap/internal/image"
)

// Test helper functions shared across filter tests.

// uniformBuffer creates a buffer with every sample set to v.
func uniformBuffer(t testing.TB, w, h int, v uint8) *image.PixelBuffer {
	t.Helper()
	buf, err := image.NewPixelBuffer(w, h)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	buf.Fill(v)
	return buf
}

// bufferFromRows builds a buffer from row literals.
func bufferFromRows(t testing.TB, rows [][]uint8) *image.PixelBuffer {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	pix := make([]uint8, 0, w*h)
	for _, r := range rows {
		pix = append(pix, r...)
	}
	buf, err := image.FromPix(w, h, pix)
	if err != nil {
		t.Fatalf("FromPix() error = %v", err)
	}
	return buf
}

// rowsOf returns the buffer contents as rows, for readable diffs.
func rowsOf(buf *image.PixelBuffer) [][]uint8 {
	rows := make([][]uint8, buf.Height())
	for y := range rows {
		rows[y] = append([]uint8(nil), buf.Row(y)...)
	}
	return rows
}
