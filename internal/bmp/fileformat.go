// BMP-specific structs and types
package bmp

import (
	"encoding/binary"
	"fmt"
)

// Fixed values of the 24-bit uncompressed, palette-free variant
const (
	HeaderType         uint16 = 0x4d42 // ASCII string "BM"
	HeaderReserved     uint32 = 0
	HeaderOffBits      uint32 = 54 // File header (14) + info header (40)
	HeaderInfoSize     uint32 = 40
	HeaderPlanes       uint16 = 1
	HeaderBitCount     uint16 = 24
	HeaderCompression  uint32 = 0 // BI_RGB
	HeaderXPelsPerM    uint32 = 0
	HeaderYPelsPerM    uint32 = 0
	HeaderClrUsed      uint32 = 0
	HeaderClrImportant uint32 = 0

	// HeaderSize is the on-disk size of the file header plus the info header.
	HeaderSize = 54
)

// Header is the BITMAPFILEHEADER followed by the BITMAPINFOHEADER, as laid
// out on disk (little-endian, no padding between fields).
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapinfoheader
type Header struct {
	Type          uint16 // The file type: must be 0x4d42 (ASCII string "BM").
	FileSize      uint32 // The size, in bytes, of the bitmap file.
	Reserved      uint32 // Reserved; must be zero.
	OffBits       uint32 // Offset (in bytes) from the file start to the pixel array.
	Size          uint32 // The number of bytes required by the info header.
	Width         uint32 // The width of the bitmap, in pixels.
	Height        uint32 // The height of the bitmap, in pixels.
	Planes        uint16 // The number of planes for the target device.
	BitCount      uint16 // The number of bits-per-pixel.
	Compression   uint32 // The type of compression.
	SizeImage     uint32 // The size of the pixel array, row padding included.
	XPelsPerMeter uint32 // The horizontal resolution, in pixels-per-meter.
	YPelsPerMeter uint32 // The vertical resolution, in pixels-per-meter.
	ClrUsed       uint32 // Number of color indexes actually used by the bitmap.
	ClrImportant  uint32 // Number of color indexes required for displaying the bitmap.
}

// Field is a named header value, used for diagnostic dumps.
type Field struct {
	Name  string
	Value uint32
}

// Returns the number of padding bytes after a scanline of width pixels
func Padding(width uint32) int {
	return int((4 - (uint64(width)*3)%4) % 4)
}

// Returns the on-disk size of a scanline of width pixels (padding included)
func Stride(width uint32) int {
	return int(uint64(width)*3) + Padding(width)
}

// Derives the header for an image. Width and height are always taken from
// the image; every other field is a format constant or computed from them.
func NewHeader(img *Image) Header {
	sizeImage := uint32(Stride(img.Width)) * img.Height

	return Header{
		Type:          HeaderType,
		FileSize:      sizeImage + HeaderOffBits,
		Reserved:      HeaderReserved,
		OffBits:       HeaderOffBits,
		Size:          HeaderInfoSize,
		Width:         img.Width,
		Height:        img.Height,
		Planes:        HeaderPlanes,
		BitCount:      HeaderBitCount,
		Compression:   HeaderCompression,
		SizeImage:     sizeImage,
		XPelsPerMeter: HeaderXPelsPerM,
		YPelsPerMeter: HeaderYPelsPerM,
		ClrUsed:       HeaderClrUsed,
		ClrImportant:  HeaderClrImportant,
	}
}

// MarshalBinary encodes the header into its 54-byte on-disk form.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	h.put(b)
	return b, nil
}

func (h Header) put(b []byte) {
	le := binary.LittleEndian
	le.PutUint16(b[0:2], h.Type)
	le.PutUint32(b[2:6], h.FileSize)
	le.PutUint32(b[6:10], h.Reserved)
	le.PutUint32(b[10:14], h.OffBits)
	le.PutUint32(b[14:18], h.Size)
	le.PutUint32(b[18:22], h.Width)
	le.PutUint32(b[22:26], h.Height)
	le.PutUint16(b[26:28], h.Planes)
	le.PutUint16(b[28:30], h.BitCount)
	le.PutUint32(b[30:34], h.Compression)
	le.PutUint32(b[34:38], h.SizeImage)
	le.PutUint32(b[38:42], h.XPelsPerMeter)
	le.PutUint32(b[42:46], h.YPelsPerMeter)
	le.PutUint32(b[46:50], h.ClrUsed)
	le.PutUint32(b[50:54], h.ClrImportant)
}

// UnmarshalBinary decodes a header from its 54-byte on-disk form.
// The field values are not validated; see Validate.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("invalid header: need %d bytes, got %d", HeaderSize, len(b))
	}

	le := binary.LittleEndian
	h.Type = le.Uint16(b[0:2])
	h.FileSize = le.Uint32(b[2:6])
	h.Reserved = le.Uint32(b[6:10])
	h.OffBits = le.Uint32(b[10:14])
	h.Size = le.Uint32(b[14:18])
	h.Width = le.Uint32(b[18:22])
	h.Height = le.Uint32(b[22:26])
	h.Planes = le.Uint16(b[26:28])
	h.BitCount = le.Uint16(b[28:30])
	h.Compression = le.Uint32(b[30:34])
	h.SizeImage = le.Uint32(b[34:38])
	h.XPelsPerMeter = le.Uint32(b[38:42])
	h.YPelsPerMeter = le.Uint32(b[42:46])
	h.ClrUsed = le.Uint32(b[46:50])
	h.ClrImportant = le.Uint32(b[50:54])
	return nil
}

// Checks the header against the only variant this package writes.
// Returns the status of the first failing check, or ReadOK.
func (h Header) Validate() ReadStatus {
	if h.Type != HeaderType {
		return ReadInvalidSignature
	}
	if h.BitCount != HeaderBitCount {
		return ReadInvalidBits
	}

	switch {
	case h.Size != HeaderInfoSize,
		h.Planes != HeaderPlanes,
		h.Compression != HeaderCompression,
		h.OffBits != HeaderOffBits,
		uint64(h.SizeImage) != uint64(Stride(h.Width))*uint64(h.Height):
		return ReadInvalidHeader
	}
	return ReadOK
}

// Returns the header fields in on-disk order
func (h Header) Fields() []Field {
	return []Field{
		{"bfType", uint32(h.Type)},
		{"bfileSize", h.FileSize},
		{"bfReserved", h.Reserved},
		{"bOffBits", h.OffBits},
		{"biSize", h.Size},
		{"biWidth", h.Width},
		{"biHeight", h.Height},
		{"biPlanes", uint32(h.Planes)},
		{"biBitCount", uint32(h.BitCount)},
		{"biCompression", h.Compression},
		{"biSizeImage", h.SizeImage},
		{"biXPelsPerMeter", h.XPelsPerMeter},
		{"biYPelsPerMeter", h.YPelsPerMeter},
		{"biClrUsed", h.ClrUsed},
		{"biClrImportant", h.ClrImportant},
	}
}
