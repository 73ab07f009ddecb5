// Package ocr recognizes text in bitmaps using Tesseract.
//
// Tesseract satisfies the pipeline's Engine interface on top of gosseract/v2,
// which links against libtesseract through cgo. GetInfo reports the backend
// and the linked Tesseract version.
//
// # Prerequisites
//
// Tesseract and its development headers must be installed:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr
//   - macOS: brew install tesseract
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// A non-standard data directory can be given with Tesseract.TessdataPrefix.
//
// # Languages
//
// Language codes are Tesseract's ISO 639-2 style names:
//   - "eng" - English (default)
//   - "por" - Portuguese
//   - "deu" - German
//   - "chi_sim" - Chinese (Simplified)
//
// Several languages can be combined with "+", e.g. "por+eng".
//
// # Error Handling
//
// Recognize returns an error for unsupported or missing language data,
// Tesseract initialization failures, and images Tesseract cannot read.
// Empty recognized text is not an error.
package ocr
