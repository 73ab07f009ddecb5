package imaging

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxSamplesPerAxis bounds the work MeanLightness does on large scans.
const maxSamplesPerAxis = 256

// MeanLightness returns the average perceptual lightness of img in [0, 1],
// using the L component of CIE L*a*b*. 0 is black, 1 is white.
//
// Large images are sampled on a regular grid of at most 256x256 points.
// Fully transparent pixels are skipped. An image with no opaque pixels
// reports 1 (treated as a blank page).
func MeanLightness(img image.Image) float64 {
	bounds := img.Bounds()
	stepX := max(1, bounds.Dx()/maxSamplesPerAxis)
	stepY := max(1, bounds.Dy()/maxSamplesPerAxis)

	var sum float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}

	if n == 0 {
		return 1
	}
	return clamp01(sum / float64(n))
}

// IsDarkBackground reports whether img is predominantly dark, which usually
// means light text on a dark background.
func IsDarkBackground(img image.Image) bool {
	return MeanLightness(img) < 0.5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
