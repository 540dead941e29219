package bmp

import (
	"io"

	"go.uber.org/zap"

	"github.com/anas-shakeel/go-bmp/internal/logging"
)

type decodeOptions struct {
	strict bool
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeOptions)

// Strict makes Decode validate the header (signature, bit count and the
// remaining fixed fields) before reading pixels. Without it the header is
// trusted as long as it can be read.
func Strict() DecodeOption {
	return func(o *decodeOptions) {
		o.strict = true
	}
}

// rowCodec transfers one scanline and its padding through a reusable buffer.
// The padding tail of buf is never written by read and stays zero for write.
type rowCodec struct {
	width int
	buf   []byte
}

func newRowCodec(width uint32) *rowCodec {
	return &rowCodec{
		width: int(width),
		buf:   make([]byte, Stride(width)),
	}
}

// Reads width pixels into dst, then skips the padding bytes
func (c *rowCodec) read(r io.Reader, dst []Pixel) error {
	pixelBytes := c.width * PixelSize
	if _, err := io.ReadFull(r, c.buf[:pixelBytes]); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = PixelFromBGR(c.buf[i*PixelSize:])
	}

	if pad := len(c.buf) - pixelBytes; pad > 0 {
		var spare [4]byte
		if _, err := io.ReadFull(r, spare[:pad]); err != nil {
			return err
		}
	}
	return nil
}

// Writes the pixels of src followed by zero padding
func (c *rowCodec) write(w io.Writer, src []Pixel) error {
	for i, p := range src {
		p.PutBGR(c.buf[i*PixelSize:])
	}
	n, err := w.Write(c.buf)
	if err == nil && n < len(c.buf) {
		err = io.ErrShortWrite
	}
	return err
}

// Reads only the file and info headers, for inspection
func DecodeHeader(r io.Reader) (Header, error) {
	var raw [HeaderSize]byte
	var header Header
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return header, readError(ReadIOError, -1, err)
	}
	if err := header.UnmarshalBinary(raw[:]); err != nil {
		return header, readError(ReadInvalidHeader, -1, err)
	}
	return header, nil
}

// Decodes a bitmap stream positioned at the start of the file header.
// Scanlines are stored bottom-up, so the first one read lands in the last
// row of the image. Errors are *ReadError values.
func Decode(r io.Reader, opts ...DecodeOption) (*Image, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	log := logging.Logger()

	header, err := DecodeHeader(r)
	if err != nil {
		log.Debug("short header read", zap.Error(err))
		return nil, err
	}
	log.Debug("read bitmap header",
		zap.Uint32("width", header.Width),
		zap.Uint32("height", header.Height),
		zap.Uint16("bit_count", header.BitCount),
		zap.Uint32("size_image", header.SizeImage))

	if o.strict {
		if status := header.Validate(); status != ReadOK {
			return nil, readError(status, -1, nil)
		}
	}

	img := NewImage(header.Width, header.Height)
	rows := newRowCodec(img.Width)
	for row := int(img.Height) - 1; row >= 0; row-- {
		if err := rows.read(r, img.Row(row)); err != nil {
			log.Debug("short row read", zap.Int("row", row), zap.Error(err))
			// Drop the partially filled raster
			return nil, readError(ReadIOError, row, err)
		}
	}
	return img, nil
}

// Encodes img as a bitmap stream: the derived header, then every row from
// the bottom one up to row 0, each followed by zero padding.
// Errors are *WriteError values.
func Encode(w io.Writer, img *Image) error {
	log := logging.Logger()

	header := NewHeader(img)
	var raw [HeaderSize]byte
	header.put(raw[:])
	n, err := w.Write(raw[:])
	if err == nil && n < len(raw) {
		err = io.ErrShortWrite
	}
	if err != nil {
		log.Debug("short header write", zap.Error(err))
		return writeError(WriteIOError, -1, err)
	}

	rows := newRowCodec(img.Width)
	for row := int(img.Height) - 1; row >= 0; row-- {
		if err := rows.write(w, img.Row(row)); err != nil {
			log.Debug("short row write", zap.Int("row", row), zap.Error(err))
			return writeError(WriteIOError, row, err)
		}
	}
	log.Debug("wrote bitmap",
		zap.Uint32("width", header.Width),
		zap.Uint32("height", header.Height),
		zap.Uint32("file_size", header.FileSize))
	return nil
}

// Decodes a bitmap stream and reports the outcome as a status tag
func FromBMP(r io.Reader, opts ...DecodeOption) (*Image, ReadStatus) {
	img, err := Decode(r, opts...)
	return img, ReadStatusOf(err)
}

// Encodes img and reports the outcome as a status tag
func ToBMP(w io.Writer, img *Image) WriteStatus {
	return WriteStatusOf(Encode(w, img))
}
