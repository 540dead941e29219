package bmp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds an image where every pixel encodes its own coordinates
func patternImage(width, height uint32) *Image {
	img := NewImage(width, height)
	for y := range int(height) {
		for x := range int(width) {
			img.Set(x, y, Pixel{B: byte(x * 17), G: byte(y * 31), R: byte(x + y*int(width))})
		}
	}
	return img
}

func encodeBytes(t *testing.T, img *Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	sizes := [][2]uint32{{1, 1}, {1, 5}, {2, 3}, {3, 2}, {4, 4}, {5, 7}, {8, 1}, {13, 11}}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {

			// given
			img := patternImage(size[0], size[1])

			// when
			data := encodeBytes(t, img)
			got, err := Decode(bytes.NewReader(data))

			// then
			require.NoError(t, err)
			assert.Len(t, data, int(NewHeader(img).FileSize))
			if diff := cmp.Diff(img, got); diff != "" {
				t.Fatalf("decoded image mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeBottomUp(t *testing.T) {
	img := NewImage(1, 2)
	img.Set(0, 0, Pixel{R: 0xff})       // top
	img.Set(0, 1, Pixel{B: 0xff, G: 1}) // bottom

	data := encodeBytes(t, img)

	pixels := data[HeaderSize:]
	want := []byte{
		0xff, 0x01, 0x00, 0x00, // bottom scanline first, then 1 byte padding
		0x00, 0x00, 0xff, 0x00, // top scanline last
	}
	assert.Equal(t, want, pixels)
}

func TestDecodeIgnoresPaddingContent(t *testing.T) {
	img := patternImage(1, 3)
	data := encodeBytes(t, img)

	// Every scanline of a 1-pixel-wide image has one padding byte
	for row := range 3 {
		data[HeaderSize+row*4+3] = 0xaa
	}

	got, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Pixels, got.Pixels)
}

func TestBlackImageEndToEnd(t *testing.T) {
	img := NewImage(4, 4)

	data := encodeBytes(t, img)
	header, err := DecodeHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint32(48), header.SizeImage)

	got, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint32(4), got.Width)
	assert.Equal(t, uint32(4), got.Height)
	for _, p := range got.Pixels {
		assert.Equal(t, Pixel{}, p)
	}
}

func TestDecodeShortRead(t *testing.T) {
	// 1x3: three scanlines of 3 pixel bytes + 1 padding byte
	data := encodeBytes(t, patternImage(1, 3))

	tests := []struct {
		name   string
		length int
		row    int
	}{
		{name: "empty", length: 0, row: -1},
		{name: "truncated header", length: 10, row: -1},
		{name: "header only", length: HeaderSize, row: 2},
		{name: "truncated pixels", length: HeaderSize + 2, row: 2},
		{name: "missing padding", length: HeaderSize + 3, row: 2},
		{name: "last row truncated", length: HeaderSize + 9, row: 0},
		{name: "last padding missing", length: len(data) - 1, row: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(bytes.NewReader(data[:tt.length]))

			require.Error(t, err)
			assert.Nil(t, img)
			assert.ErrorIs(t, err, ReadIOError)

			var re *ReadError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, ReadIOError, re.Status)
			assert.Equal(t, tt.row, re.Row)
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *Header)
		want   ReadStatus
	}{
		{name: "signature", mutate: func(h *Header) { h.Type = 0x4d4d }, want: ReadInvalidSignature},
		{name: "bit count", mutate: func(h *Header) { h.BitCount = 8 }, want: ReadInvalidBits},
		{name: "compression", mutate: func(h *Header) { h.Compression = 3 }, want: ReadInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := patternImage(2, 2)
			data := encodeBytes(t, img)
			h := NewHeader(img)
			tt.mutate(&h)
			h.put(data)

			// Permissive decoding trusts the header
			got, err := Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, img.Pixels, got.Pixels)

			got, err = Decode(bytes.NewReader(data), Strict())
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want, ReadStatusOf(err))
		})
	}

	got, status := FromBMP(bytes.NewReader(encodeBytes(t, patternImage(3, 3))), Strict())
	assert.Equal(t, ReadOK, status)
	assert.NotNil(t, got)
}

// Accepts limit bytes, then fails
type failingWriter struct {
	limit   int
	written int
	short   bool
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	room := w.limit - w.written
	if len(p) <= room {
		w.written += len(p)
		return len(p), nil
	}
	w.written += room
	if w.short {
		return room, nil
	}
	return room, errDiskFull
}

func TestEncodeShortWrite(t *testing.T) {
	img := patternImage(3, 2) // stride 12

	tests := []struct {
		name  string
		w     *failingWriter
		row   int
		cause error
	}{
		{name: "header", w: &failingWriter{limit: 20}, row: -1, cause: errDiskFull},
		{name: "first scanline", w: &failingWriter{limit: HeaderSize + 5}, row: 1, cause: errDiskFull},
		{name: "last scanline", w: &failingWriter{limit: HeaderSize + 12}, row: 0, cause: errDiskFull},
		{name: "short count without error", w: &failingWriter{limit: HeaderSize + 13, short: true}, row: 0, cause: io.ErrShortWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(tt.w, img)

			require.Error(t, err)
			assert.ErrorIs(t, err, WriteIOError)
			assert.ErrorIs(t, err, tt.cause)

			var we *WriteError
			require.ErrorAs(t, err, &we)
			assert.Equal(t, tt.row, we.Row)
		})
	}
}

func TestStatusWrappers(t *testing.T) {
	img := patternImage(2, 5)

	var buf bytes.Buffer
	assert.Equal(t, WriteOK, ToBMP(&buf, img))
	assert.Equal(t, WriteIOError, ToBMP(&failingWriter{limit: 3}, img))

	got, status := FromBMP(bytes.NewReader(buf.Bytes()))
	assert.Equal(t, ReadOK, status)
	assert.Equal(t, img, got)

	got, status = FromBMP(bytes.NewReader(buf.Bytes()[:40]))
	assert.Equal(t, ReadIOError, status)
	assert.Nil(t, got)
}
