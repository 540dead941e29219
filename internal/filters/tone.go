package filters

import (
	"errors"

	"github.com/anas-shakeel/go-bmp/internal/bmp"
	"github.com/anas-shakeel/go-bmp/internal/utils"
)

// Applies fn to every channel of every pixel, clamping the results
func mapChannels(img *bmp.Image, fn func(channel int, v float32) float32) {
	for i, p := range img.Pixels {
		img.Pixels[i] = bmp.Pixel{
			B: utils.ClampByte(fn(0, float32(p.B))),
			G: utils.ClampByte(fn(1, float32(p.G))),
			R: utils.ClampByte(fn(2, float32(p.R))),
		}
	}
}

// Adjusts the Brightness of a Bitmap in-place.
//
// method can be "add" (adds value to each channel) or "multiply" (multiplies each channel by value).
// Pixel values are clipped to [0, 255].
func Brightness(img *bmp.Image, factor float32, method string) error {
	var operation func(x, y float32) float32

	// Select an operation of brightness (additive or multiplicative)
	switch method {
	case "add":
		operation = func(x, y float32) float32 { return x + y }
	case "multiply":
		operation = func(x, y float32) float32 { return x * y }
	default:
		return errors.New("invalid method: method must be add or multiply")
	}

	mapChannels(img, func(_ int, v float32) float32 {
		return operation(v, factor)
	})
	return nil
}

// Adjusts the Contrast of a Bitmap in-place, around the (integer) mean of each channel.
// factor > 1.0 increases Contrast, factor < 1.0 decreases it.
func Contrast(img *bmp.Image, factor float32) {
	if img.Len() == 0 {
		return
	}

	// Channel sums in B, G, R order
	var sums [bmp.PixelSize]int
	for _, p := range img.Pixels {
		sums[0] += int(p.B)
		sums[1] += int(p.G)
		sums[2] += int(p.R)
	}
	var means [bmp.PixelSize]float32
	for c, sum := range sums {
		means[c] = float32(sum / img.Len())
	}

	mapChannels(img, func(channel int, v float32) float32 {
		return v*factor + (1-factor)*means[channel]
	})
}
