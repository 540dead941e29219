package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-shakeel/go-bmp/internal/bmp"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		method string
		factor float32
		want   bmp.Pixel
	}{
		{method: "add", factor: 50, want: bmp.Pixel{B: 60, G: 255, R: 150}},
		{method: "add", factor: -20, want: bmp.Pixel{B: 0, G: 230, R: 80}},
		{method: "multiply", factor: 0.5, want: bmp.Pixel{B: 5, G: 125, R: 50}},
		{method: "multiply", factor: 2, want: bmp.Pixel{B: 20, G: 255, R: 200}},
	}

	for _, tt := range tests {
		img := bmp.NewImage(1, 1)
		img.Pixels[0] = bmp.Pixel{B: 10, G: 250, R: 100}

		require.NoError(t, Brightness(img, tt.factor, tt.method))
		assert.Equal(t, tt.want, img.Pixels[0], "%s %v", tt.method, tt.factor)
	}

	err := Brightness(bmp.NewImage(1, 1), 1, "screen")
	assert.EqualError(t, err, "invalid method: method must be add or multiply")
}

func TestContrast(t *testing.T) {
	img := bmp.NewImage(2, 1)
	img.Pixels[0] = bmp.Pixel{B: 0, G: 100, R: 200}
	img.Pixels[1] = bmp.Pixel{B: 100, G: 100, R: 0}

	flat := img.Copy()
	Contrast(flat, 0)
	assert.Equal(t, []bmp.Pixel{{B: 50, G: 100, R: 100}, {B: 50, G: 100, R: 100}}, flat.Pixels)

	Contrast(img, 2)
	assert.Equal(t, []bmp.Pixel{{B: 0, G: 100, R: 255}, {B: 150, G: 100, R: 0}}, img.Pixels)

	// No pixels, no mean
	empty := bmp.NewImage(0, 3)
	Contrast(empty, 2)
	assert.Empty(t, empty.Pixels)
}
