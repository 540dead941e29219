// Filters perform color manipulation and per-pixel operations
package filters

import (
	"github.com/anas-shakeel/go-bmp/internal/bmp"
	"github.com/anas-shakeel/go-bmp/internal/utils"
)

// Inverts (negates) the bitmap image in-place
func Invert(img *bmp.Image) {
	for i, p := range img.Pixels {
		img.Pixels[i] = bmp.Pixel{B: 255 - p.B, G: 255 - p.G, R: 255 - p.R}
	}
}

// Converts a bitmap to Black-and-White in-place (channel average)
func Grayscale(img *bmp.Image) {
	for i, p := range img.Pixels {
		avg := byte(utils.Average(int(p.R), int(p.G), int(p.B)))
		img.Pixels[i] = bmp.Pixel{B: avg, G: avg, R: avg}
	}
}

// Converts a bitmap to Black-and-White in-place (with ITU-R 601-2 Luma Transform)
func GrayscaleLuma(img *bmp.Image) {
	for i, p := range img.Pixels {
		L := byte(int(p.R)*299/1000 + int(p.G)*587/1000 + int(p.B)*114/1000)
		img.Pixels[i] = bmp.Pixel{B: L, G: L, R: L}
	}
}
