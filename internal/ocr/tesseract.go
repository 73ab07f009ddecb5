package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract recognizes text with libtesseract.
//
// Each Recognize call creates and closes its own client, so a Tesseract
// value carries only configuration.
type Tesseract struct {
	// TessdataPrefix is the directory holding *.traineddata files.
	// Empty means Tesseract's compiled-in default or $TESSDATA_PREFIX.
	TessdataPrefix string

	// PageSegMode is passed to Tesseract as-is (3 = fully automatic).
	PageSegMode int
}

// NewTesseract returns a Tesseract engine with automatic page segmentation.
func NewTesseract(tessdataPrefix string, pageSegMode int) *Tesseract {
	return &Tesseract{
		TessdataPrefix: tessdataPrefix,
		PageSegMode:    pageSegMode,
	}
}

// Recognize performs OCR on img.
//
// The bitmap is PNG-encoded in memory and handed to Tesseract; no temporary
// files are written. The returned text keeps Tesseract's line breaks.
func (t *Tesseract) Recognize(img image.Image, language string) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetPageSegMode(gosseract.PageSegMode(t.PageSegMode)); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return text, nil
}

// Version returns the linked Tesseract version.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

// Info describes the OCR backend.
type Info struct {
	Backend string
	Version string
}

// GetInfo returns information about the OCR backend.
func GetInfo() Info {
	return Info{
		Backend: "gosseract",
		Version: Version(),
	}
}
