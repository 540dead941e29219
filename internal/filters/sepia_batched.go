package filters

import (
	"github.com/anas-shakeel/go-bmp/internal/bmp"
	"github.com/anas-shakeel/go-bmp/internal/simd"
	"github.com/anas-shakeel/go-bmp/internal/utils"
)

// groupBytes is the number of channel bytes in a group of simd.Lanes pixels.
const groupBytes = simd.Lanes * bmp.PixelSize

// byteToFloat expands a channel value to float32.
var byteToFloat = func() (t [256]float32) {
	for i := range t {
		t[i] = float32(i)
	}
	return t
}()

// batchCoefficients[d] weighs output bytes 4d..4d+3 of a pixel group.
// The group's bytes run B,G,R,B,G,R,... so byte j belongs to pixel j/3 and
// channel j%3. Lanes 0-3 hold the blue weights, 4-7 green and 8-11 red,
// matching the layout of the input vector.
var batchCoefficients = func() (rows [bmp.PixelSize][groupBytes]float32) {
	for d := range rows {
		for lane := range simd.Lanes {
			c := SepiaMatrix[channelTarget((d*simd.Lanes+lane)%bmp.PixelSize)]
			rows[d][lane] = c[2]
			rows[d][simd.Lanes+lane] = c[1]
			rows[d][2*simd.Lanes+lane] = c[0]
		}
	}
	return rows
}()

// Maps an on-disk channel index (0 blue, 1 green, 2 red) to its SepiaMatrix row
func channelTarget(channel int) int {
	return targetBlue - channel
}

func setChannel(p *bmp.Pixel, channel int, v byte) {
	switch channel {
	case 0:
		p.B = v
	case 1:
		p.G = v
	default:
		p.R = v
	}
}

// Returns a sepia-toned copy of the image, processing 4 pixels at a time
// with packed multiply-accumulates.
//
// Channels are rounded to nearest (halves away from zero) and saturated,
// where SepiaPixel truncates: results differ from Sepia by at most one unit
// per channel. The last len%4 pixels go through SepiaPixel and match Sepia
// exactly.
func SepiaBatched(src *bmp.Image) *bmp.Image {
	dst := bmp.NewImage(src.Width, src.Height)
	n := src.Len()
	groups := n / simd.Lanes

	var in [groupBytes]float32
	var sums [simd.Lanes]float32
	for g := range groups {
		pixels := src.Pixels[g*simd.Lanes : (g+1)*simd.Lanes]
		out := dst.Pixels[g*simd.Lanes : (g+1)*simd.Lanes]

		for d := range bmp.PixelSize {
			for lane := range simd.Lanes {
				p := pixels[(d*simd.Lanes+lane)/bmp.PixelSize]
				in[lane] = byteToFloat[p.B]
				in[simd.Lanes+lane] = byteToFloat[p.G]
				in[2*simd.Lanes+lane] = byteToFloat[p.R]
			}
			simd.MulAcc(sums[:], batchCoefficients[d][:], in[:])
			rounded := simd.Round(simd.Load(sums[:]))

			for lane := range simd.Lanes {
				j := d*simd.Lanes + lane
				setChannel(&out[j/bmp.PixelSize], j%bmp.PixelSize, utils.ClampByte(rounded.Lane(lane)))
			}
		}
	}

	for i := groups * simd.Lanes; i < n; i++ {
		dst.Pixels[i] = SepiaPixel(src.Pixels[i])
	}
	return dst
}
