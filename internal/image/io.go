package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Container identifies an on-disk encoding.
type Container uint8

const (
	// ContainerPGM is the netpbm grayscale format (P2 or P5).
	ContainerPGM Container = iota
	ContainerPNG
	ContainerJPEG
	ContainerBMP
	ContainerTIFF
)

// String returns the conventional lowercase name of the container.
func (c Container) String() string {
	switch c {
	case ContainerPGM:
		return "pgm"
	case ContainerPNG:
		return "png"
	case ContainerJPEG:
		return "jpeg"
	case ContainerBMP:
		return "bmp"
	case ContainerTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Container(%d)", c)
	}
}

// ContainerForPath picks an encoding from a file extension.
func ContainerForPath(path string) (Container, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pgm", ".pnm":
		return ContainerPGM, nil
	case ".png":
		return ContainerPNG, nil
	case ".jpg", ".jpeg":
		return ContainerJPEG, nil
	case ".bmp":
		return ContainerBMP, nil
	case ".tif", ".tiff":
		return ContainerTIFF, nil
	default:
		return 0, fmt.Errorf("%w: no encoder for %q", ErrFormat, filepath.Ext(path))
	}
}

// EncodeOptions controls how buffers are written.
type EncodeOptions struct {
	// BinaryPGM selects P5 output instead of the default plain-text P2.
	BinaryPGM bool

	// JPEGQuality is the JPEG quality (1-100). 0 means jpeg.DefaultQuality.
	JPEGQuality int
}

// Decode reads a single-channel raster from r. PGM streams are parsed
// directly; anything else goes through the image registry (PNG, JPEG, GIF,
// BMP, TIFF, WebP) and is converted to 8-bit luminance.
func Decode(r io.Reader) (*PixelBuffer, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: read magic: %w", ErrIO, err)
	}
	if isPGMMagic(head) {
		return DecodePGM(br)
	}
	if len(head) == 2 && head[0] == 'P' && head[1] >= '1' && head[1] <= '7' {
		return nil, fmt.Errorf("%w: netpbm variant %q is not single-channel grayscale", ErrFormat, head)
	}

	img, _, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrFormat, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, b.Dx(), b.Dy())
	}
	return FromImage(img)
}

// Encode writes buf to w in the given container.
func Encode(w io.Writer, buf *PixelBuffer, c Container, opts EncodeOptions) error {
	if c == ContainerPGM {
		return EncodePGM(w, buf, opts.BinaryPGM)
	}

	gray := buf.ToGray()
	var err error
	switch c {
	case ContainerPNG:
		err = png.Encode(w, gray)
	case ContainerJPEG:
		quality := opts.JPEGQuality
		if quality == 0 {
			quality = jpeg.DefaultQuality
		}
		quality = max(1, min(quality, 100))
		err = jpeg.Encode(w, gray, &jpeg.Options{Quality: quality})
	case ContainerBMP:
		err = bmp.Encode(w, gray)
	case ContainerTIFF:
		err = tiff.Encode(w, gray, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: unknown container %v", ErrFormat, c)
	}
	if err != nil {
		return fmt.Errorf("%w: encode %v: %w", ErrIO, c, err)
	}
	return nil
}

// Load reads and decodes the image at path.
func Load(path string) (*PixelBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open file: %w", ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Save encodes buf into a new file at path, choosing the container from
// the file extension.
func Save(path string, buf *PixelBuffer, opts EncodeOptions) error {
	c, err := ContainerForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: create file: %w", ErrIO, err)
	}

	if err := Encode(f, buf, c, opts); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close file: %w", ErrIO, err)
	}
	return nil
}
