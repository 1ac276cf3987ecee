package image

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Codec errors. Decoders and encoders wrap one of these so callers can
// classify a failure with errors.Is.
var (
	// ErrFormat is returned when the input is not a recognized
	// single-channel raster, or its header is malformed.
	ErrFormat = errors.New("image: unrecognized or malformed format")

	// ErrDimensions is returned when a header declares non-positive or
	// oversized dimensions.
	ErrDimensions = errors.New("image: invalid declared dimensions")

	// ErrIO is returned when reading or writing the underlying stream fails.
	ErrIO = errors.New("image: i/o failure")
)

// MaxPixels bounds the sample count a decoder will allocate for.
const MaxPixels = 1 << 28

// PGM magic numbers.
const (
	magicPlain = "P2"
	magicRaw   = "P5"
)

// isPGMMagic reports whether the first two bytes of a stream name a
// grayscale netpbm variant.
func isPGMMagic(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	m := string(b[:2])
	return m == magicPlain || m == magicRaw
}

// pgmReader reads netpbm header tokens. '#' comments run to end of line
// and may appear anywhere whitespace may.
type pgmReader struct {
	r *bufio.Reader
}

func (p *pgmReader) readByte() (byte, error) {
	c, err := p.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return c, nil
}

// skipSpace consumes whitespace and comments, leaving the next token byte
// unread.
func (p *pgmReader) skipSpace() error {
	for {
		c, err := p.readByte()
		if err != nil {
			return err
		}
		switch {
		case c == '#':
			for c != '\n' && c != '\r' {
				if c, err = p.readByte(); err != nil {
					return err
				}
			}
		case isSpace(c):
		default:
			return p.r.UnreadByte()
		}
	}
}

// readInt reads one optionally signed decimal token. The byte that ends
// the token is consumed if it is whitespace.
func (p *pgmReader) readInt() (int, error) {
	if err := p.skipSpace(); err != nil {
		return 0, err
	}

	var digits []byte
	for {
		c, err := p.r.ReadByte()
		if errors.Is(err, io.EOF) && len(digits) > 0 {
			break
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if c >= '0' && c <= '9' || (c == '-' || c == '+') && len(digits) == 0 {
			digits = append(digits, c)
			continue
		}
		if c == '#' {
			if err := p.r.UnreadByte(); err != nil {
				return 0, err
			}
		} else if !isSpace(c) {
			return 0, fmt.Errorf("%w: unexpected byte %q in number", ErrFormat, c)
		}
		break
	}

	v, err := strconv.Atoi(string(digits))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s out of range", errNumberRange, digits)
		}
		return 0, fmt.Errorf("%w: bad number %q", ErrFormat, digits)
	}
	return v, nil
}

// errNumberRange marks a token too large for int. Header parsing maps it
// to ErrDimensions for width and height and to ErrFormat elsewhere.
var errNumberRange = errors.New("number")

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// classifyHeaderErr maps a low-level read error during header parsing onto the
// codec taxonomy.
func classifyHeaderErr(err error) error {
	switch {
	case errors.Is(err, ErrFormat):
		return err
	case errors.Is(err, errNumberRange):
		return fmt.Errorf("%w: %w", ErrFormat, err)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: truncated header", ErrFormat)
	default:
		return fmt.Errorf("%w: read header: %w", ErrIO, err)
	}
}

// DecodePGM decodes a plain (P2) or raw (P5) PGM image. Samples are
// rescaled to 0..255 when the declared maxval differs from 255.
func DecodePGM(r io.Reader) (*PixelBuffer, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	p := &pgmReader{r: br}

	magic := make([]byte, 2)
	if _, err := io.ReadFull(br, magic); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: missing magic number", ErrFormat)
		}
		return nil, fmt.Errorf("%w: read magic: %w", ErrIO, err)
	}
	if !isPGMMagic(magic) {
		return nil, fmt.Errorf("%w: magic %q is not P2 or P5", ErrFormat, magic)
	}

	var hdr [3]int
	for i := range hdr {
		v, err := p.readInt()
		if err != nil {
			if i < 2 && errors.Is(err, errNumberRange) {
				return nil, fmt.Errorf("%w: %w", ErrDimensions, err)
			}
			return nil, classifyHeaderErr(err)
		}
		hdr[i] = v
	}
	width, height, maxval := hdr[0], hdr[1], hdr[2]

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrDimensions, width, height, MaxPixels)
	}
	if maxval < 1 || maxval > 65535 {
		return nil, fmt.Errorf("%w: maxval %d out of range", ErrFormat, maxval)
	}

	buf, err := NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}

	if string(magic) == magicRaw {
		err = readRawSamples(br, buf.pix, maxval)
	} else {
		err = readPlainSamples(p, buf.pix, maxval)
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func readRawSamples(r io.Reader, pix []uint8, maxval int) error {
	if maxval < 256 {
		if _, err := io.ReadFull(r, pix); err != nil {
			return rasterErr(err)
		}
		if maxval != 255 {
			for i, v := range pix {
				if int(v) > maxval {
					return fmt.Errorf("%w: sample %d exceeds maxval %d", ErrFormat, v, maxval)
				}
				pix[i] = rescale(int(v), maxval)
			}
		}
		return nil
	}

	// Two bytes per sample, most significant first.
	row := make([]byte, 2*4096)
	for off := 0; off < len(pix); {
		n := min(len(pix)-off, len(row)/2)
		if _, err := io.ReadFull(r, row[:2*n]); err != nil {
			return rasterErr(err)
		}
		for i := range n {
			v := int(row[2*i])<<8 | int(row[2*i+1])
			if v > maxval {
				return fmt.Errorf("%w: sample %d exceeds maxval %d", ErrFormat, v, maxval)
			}
			pix[off+i] = rescale(v, maxval)
		}
		off += n
	}
	return nil
}

func readPlainSamples(p *pgmReader, pix []uint8, maxval int) error {
	for i := range pix {
		v, err := p.readInt()
		if err != nil {
			if errors.Is(err, ErrFormat) {
				return err
			}
			if errors.Is(err, errNumberRange) {
				return fmt.Errorf("%w: %w", ErrFormat, err)
			}
			return rasterErr(err)
		}
		if v < 0 || v > maxval {
			return fmt.Errorf("%w: sample %d outside 0..%d", ErrFormat, v, maxval)
		}
		pix[i] = rescale(v, maxval)
	}
	return nil
}

func rasterErr(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: read raster: %w", ErrIO, err)
}

// rescale maps v in 0..maxval onto 0..255, rounding to nearest.
func rescale(v, maxval int) uint8 {
	if maxval == 255 {
		return uint8(v)
	}
	return uint8((v*255 + maxval/2) / maxval)
}

// EncodePGM writes buf as an 8-bit PGM. The plain form is a P2 header
// followed by one line per image row, with every sample followed by a
// single space.
func EncodePGM(w io.Writer, buf *PixelBuffer, binary bool) error {
	bw := bufio.NewWriter(w)

	magic := magicPlain
	if binary {
		magic = magicRaw
	}
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", magic, buf.width, buf.height); err != nil {
		return fmt.Errorf("%w: write header: %w", ErrIO, err)
	}

	if binary {
		if _, err := bw.Write(buf.pix); err != nil {
			return fmt.Errorf("%w: write raster: %w", ErrIO, err)
		}
	} else {
		num := make([]byte, 0, 4)
		for y := range buf.height {
			for _, v := range buf.Row(y) {
				num = strconv.AppendUint(num[:0], uint64(v), 10)
				num = append(num, ' ')
				if _, err := bw.Write(num); err != nil {
					return fmt.Errorf("%w: write raster: %w", ErrIO, err)
				}
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("%w: write raster: %w", ErrIO, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrIO, err)
	}
	return nil
}
