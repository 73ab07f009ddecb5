package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Loader decodes image files from disk.
type Loader struct{}

// NewLoader returns a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load opens and decodes the image at path.
//
// Returns:
//   - image.Image: The decoded bitmap, rotated according to any EXIF
//     orientation tag.
//   - error: Non-nil if the file cannot be opened or decoded. A missing file
//     wraps fs.ErrNotExist.
func (l *Loader) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// ImageInfo describes a decoded bitmap.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is derived from the file extension ("png", "jpeg", ...), or
	// "unknown" when the extension is not a recognized image type.
	Format string

	// ColorDepth is "8-bit" or "16-bit" per channel.
	ColorDepth string

	// HasAlpha reports whether the bitmap carries an alpha channel.
	HasAlpha bool
}

// Describe returns metadata about img, which was loaded from path.
//
// Color depth and alpha are determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64 -> 16-bit with alpha
//   - *image.Gray16 -> 16-bit
//   - *image.RGBA, *image.NRGBA -> 8-bit with alpha
//   - All other types -> 8-bit
func Describe(path string, img image.Image) ImageInfo {
	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return ImageInfo{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     format,
		ColorDepth: colorDepth,
		HasAlpha:   hasAlpha,
	}
}
