package filters

import (
	"github.com/anas-shakeel/go-bmp/internal/bmp"
	"github.com/anas-shakeel/go-bmp/internal/utils"
)

// SepiaMatrix holds the sepia weights. Rows are the target channel (red,
// green, blue); columns weigh the source red, green and blue channels.
var SepiaMatrix = [3][3]float32{
	{.393, .769, .189},
	{.349, .686, .168},
	{.272, .543, .131},
}

// Rows of SepiaMatrix
const (
	targetRed = iota
	targetGreen
	targetBlue
)

// weigh computes r*c[0] + g*c[1] + b*c[2] in float32. Every product is
// rounded before the sum so no target fuses it into a multiply-add.
func weigh(c [3]float32, r, g, b float32) float32 {
	sum := float32(r * c[0])
	sum = float32(sum + float32(g*c[1]))
	return float32(sum + float32(b*c[2]))
}

// Applies the sepia tone to a single pixel.
//
// Each channel is truncated toward zero and saturated to 255. SepiaBatched
// rounds to nearest instead, so the two can differ by one unit per channel.
func SepiaPixel(p bmp.Pixel) bmp.Pixel {
	r, g, b := float32(p.R), float32(p.G), float32(p.B)
	return bmp.Pixel{
		R: utils.ClampByte(weigh(SepiaMatrix[targetRed], r, g, b)),
		G: utils.ClampByte(weigh(SepiaMatrix[targetGreen], r, g, b)),
		B: utils.ClampByte(weigh(SepiaMatrix[targetBlue], r, g, b)),
	}
}

// Returns a sepia-toned copy of the image, one pixel at a time
func Sepia(src *bmp.Image) *bmp.Image {
	dst := bmp.NewImage(src.Width, src.Height)
	for i, p := range src.Pixels {
		dst.Pixels[i] = SepiaPixel(p)
	}
	return dst
}
