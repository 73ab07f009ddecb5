package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Options selects the preprocessing steps applied before OCR.
// The zero value (with Scale 0 or 1) leaves the image untouched.
type Options struct {
	// Scale resizes the image by this factor. 0 and 1 mean no resize.
	Scale float64

	// Grayscale converts the image to shades of gray.
	Grayscale bool

	// AutoInvert inverts images whose mean lightness is below 0.5.
	AutoInvert bool

	// Contrast adjusts contrast in percent, from -100 to 100. 0 is unchanged.
	Contrast float64

	// Threshold binarizes the image: pixels at or above the level turn white,
	// the rest black. 0 disables.
	Threshold int
}

// Enabled reports whether any step would modify an image.
func (o Options) Enabled() bool {
	return o.scaling() || o.Grayscale || o.AutoInvert || o.Contrast != 0 || o.Threshold > 0
}

func (o Options) scaling() bool {
	return o.Scale > 0 && o.Scale != 1
}

// Preprocess applies the steps selected in opts and returns the result.
// When no step is selected the input image is returned as is.
func Preprocess(img image.Image, opts Options) image.Image {
	if !opts.Enabled() {
		return img
	}

	out := img
	if opts.scaling() {
		bounds := out.Bounds()
		w := max(1, int(float64(bounds.Dx())*opts.Scale))
		h := max(1, int(float64(bounds.Dy())*opts.Scale))
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}
	if opts.Grayscale {
		out = imaging.Grayscale(out)
	}
	if opts.AutoInvert && IsDarkBackground(out) {
		out = imaging.Invert(out)
	}
	if opts.Contrast != 0 {
		out = adjust.Contrast(out, opts.Contrast/100)
	}
	if opts.Threshold > 0 {
		level := opts.Threshold
		if level > 255 {
			level = 255
		}
		out = segment.Threshold(out, uint8(level))
	}

	return out
}
