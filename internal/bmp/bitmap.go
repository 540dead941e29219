// bmp package implements a 24-bit uncompressed bitmap codec
package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/anas-shakeel/go-bmp/internal/utils"
)

// PixelSize is the on-disk size of a pixel record.
const PixelSize = 3

// Pixel is a 24-bit color in on-disk channel order.
type Pixel struct {
	B, G, R byte
}

// Returns the Pixel in bytes as BGR (Blue, Green, Red)
func (p Pixel) BytesBGR() []byte {
	return []byte{p.B, p.G, p.R}
}

// Writes the Pixel into the first 3 bytes of dst as BGR
func (p Pixel) PutBGR(dst []byte) {
	_ = dst[2]
	dst[0] = p.B
	dst[1] = p.G
	dst[2] = p.R
}

// Reads a Pixel from the first 3 bytes of src (BGR order)
func PixelFromBGR(src []byte) Pixel {
	_ = src[2]
	return Pixel{B: src[0], G: src[1], R: src[2]}
}

// Image is a width x height grid of pixels, stored row-major.
// Row 0 is the top scanline, whatever the on-disk order.
type Image struct {
	Width  uint32
	Height uint32
	Pixels []Pixel // len(Pixels) == Width*Height
}

// Creates a zeroed (black) image
func NewImage(width, height uint32) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, uint64(width)*uint64(height)),
	}
}

// Returns the number of pixels in the image
func (img *Image) Len() int {
	return len(img.Pixels)
}

// Returns the pixel at column x of row y (0,0 is the top-left)
func (img *Image) At(x, y int) Pixel {
	return img.Pixels[y*int(img.Width)+x]
}

// Sets the pixel at column x of row y
func (img *Image) Set(x, y int, p Pixel) {
	img.Pixels[y*int(img.Width)+x] = p
}

// Returns row y. The slice aliases the image pixels.
func (img *Image) Row(y int) []Pixel {
	start := y * int(img.Width)
	return img.Pixels[start : start+int(img.Width) : start+int(img.Width)]
}

// Returns a Copy of the image
func (img *Image) Copy() *Image {
	dup := NewImage(img.Width, img.Height)
	copy(dup.Pixels, img.Pixels)
	return dup
}

// Returns an image containing a single channel of the source image.
// channel can one of (`red`, `green`, and `blue`)
func (img *Image) GetChannel(channel string) (*Image, error) {
	var keep func(p Pixel) Pixel
	switch channel {
	case "red":
		keep = func(p Pixel) Pixel { return Pixel{R: p.R} }
	case "green":
		keep = func(p Pixel) Pixel { return Pixel{G: p.G} }
	case "blue":
		keep = func(p Pixel) Pixel { return Pixel{B: p.B} }
	default:
		return nil, errors.New("invalid color channel: only red, green, and blue are supported")
	}

	dup := NewImage(img.Width, img.Height)
	for i, p := range img.Pixels {
		dup.Pixels[i] = keep(p)
	}
	return dup, nil
}

// Reads a Bitmap file
func ReadBitmap(filename string, opts ...DecodeOption) (img *Image, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	return Decode(bufio.NewReader(file), opts...)
}

// Saves the bitmap image onto local disk
func (img *Image) Save(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	// Create a buffer (to reduce syscalls)
	w := bufio.NewWriter(file)
	if err := Encode(w, img); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return writeError(WriteIOError, -1, err)
	}
	return nil
}

// Writes the image as rows of colored terminal blocks. Use for small images only
func (img *Image) Preview(w io.Writer) error {
	for y := range int(img.Height) {
		for _, p := range img.Row(y) {
			if _, err := io.WriteString(w, utils.ColoredBlock("  ", int(p.R), int(p.G), int(p.B))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
