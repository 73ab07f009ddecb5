package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanLightness(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want float64
	}{
		{"white", solidImage(20, 20, color.White), 1},
		{"black", solidImage(20, 20, color.Black), 0},
		{"transparent", image.NewRGBA(image.Rect(0, 0, 20, 20)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MeanLightness(tt.img), 0.01)
		})
	}
}

func TestMeanLightness_HalfAndHalf(t *testing.T) {
	img := solidImage(40, 10, color.White)
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.Black)
		}
	}

	assert.InDelta(t, 0.5, MeanLightness(img), 0.01)
}

func TestMeanLightness_LargeImageSampled(t *testing.T) {
	img := solidImage(2000, 1200, color.Gray{Y: 0})
	assert.InDelta(t, 0, MeanLightness(img), 0.01)
}

func TestIsDarkBackground(t *testing.T) {
	assert.True(t, IsDarkBackground(solidImage(10, 10, color.RGBA{20, 20, 40, 255})),
		"dark navy image should be a dark background")
	assert.False(t, IsDarkBackground(solidImage(10, 10, color.RGBA{240, 240, 230, 255})),
		"off-white image should not be a dark background")
}
