// Package imaging loads image files into bitmaps and prepares them for OCR.
//
// Decoding is delegated to github.com/disintegration/imaging, which honors
// EXIF orientation, plus the decoders registered by the standard library and
// golang.org/x/image. Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// # Preprocessing
//
// Tesseract does its own binarization, so by default a loaded bitmap is
// handed to the OCR engine untouched. Preprocess offers a few opt-in steps
// that help with poor scans:
//   - Scale: resample with a Lanczos filter (small text reads better upscaled)
//   - Grayscale: drop color information
//   - AutoInvert: flip light-on-dark images to dark-on-light
//   - Contrast: stretch or compress contrast (-100 to 100)
//   - Threshold: binarize at a fixed level (1 to 255, 0 disables)
//
// Steps run in that order. Each returns a new image; inputs are never mutated.
//
// # Thread Safety
//
// Loader holds no state and all functions are safe for concurrent use.
package imaging
