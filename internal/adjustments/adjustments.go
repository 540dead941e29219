// Adjusts image dimensions, orientation, or structure.
package adjustments

import (
	"errors"

	"github.com/anas-shakeel/go-bmp/internal/bmp"
)

// Rotates the image by 90 degrees clockwise into a new image.
// The result is src.Height wide and src.Width high; src is not modified.
//
// Destination pixel (x, y) comes from source row (dst.Width-1-x), column y.
func Rotate90(src *bmp.Image) *bmp.Image {
	dst := bmp.NewImage(src.Height, src.Width)
	width, height := int(dst.Width), int(dst.Height)

	for x := range width {
		for y := range height {
			dst.Pixels[y*width+x] = src.Pixels[y+height*(width-x-1)]
		}
	}
	return dst
}

// Rotates the image by quarterTurns * 90 degrees clockwise (negative turns
// rotate counter-clockwise). Always returns a new image.
func Rotate(src *bmp.Image, quarterTurns int) *bmp.Image {
	turns := ((quarterTurns % 4) + 4) % 4
	if turns == 0 {
		return src.Copy()
	}

	dst := Rotate90(src)
	for range turns - 1 {
		dst = Rotate90(dst)
	}
	return dst
}

// Crops a region in the bitmap image (0,0  is at the top-left of the image)
func Crop(src *bmp.Image, x, y, width, height int) (*bmp.Image, error) {
	// Validate bounds
	if x < 0 || y < 0 {
		return nil, errors.New("invalid bounds: negative origin")
	} else if width <= 0 || height <= 0 {
		return nil, errors.New("invalid bounds: empty region")
	} else if width+x > int(src.Width) {
		return nil, errors.New("invalid bounds: width out of bounds")
	} else if height+y > int(src.Height) {
		return nil, errors.New("invalid bounds: height out of bounds")
	}

	// Copy the region row by row
	dst := bmp.NewImage(uint32(width), uint32(height))
	for row := range height {
		copy(dst.Row(row), src.Row(row+y)[x:x+width])
	}
	return dst, nil
}
