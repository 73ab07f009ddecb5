// Package config holds the runtime settings shared by the img2str commands.
//
// Functional options (language, output folder, display/save) come from
// command-line flags. A small set of ambient settings, logging and the
// Tesseract data directory, may also be supplied through the environment or
// an optional .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// EnvLogLevel overrides the log level ("debug", "info", "warn", "error").
	EnvLogLevel = "IMG2STR_LOG_LEVEL"

	// EnvTessdataPrefix points Tesseract at a directory of .traineddata files.
	EnvTessdataPrefix = "IMG2STR_TESSDATA_PREFIX"
)

const (
	// DefaultLanguage is the Tesseract language code used when none is given.
	DefaultLanguage = "eng"

	// DefaultOutputFolder is where the batch extractor writes its text files.
	DefaultOutputFolder = "output"

	// DefaultOutputFile is the fixed file name the single-image extractor
	// writes to, relative to the current directory.
	DefaultOutputFile = "extracted_text.txt"

	// DefaultLogLevel keeps stderr quiet unless something breaks.
	DefaultLogLevel = "error"

	// DefaultPageSegMode is Tesseract's fully automatic page segmentation.
	DefaultPageSegMode = 3
)

// Config holds every option either command understands.
type Config struct {
	// Language is the OCR language code, e.g. "eng" or "por+eng".
	Language string

	// Display prints the extracted text (single-image extractor).
	Display bool

	// Save writes the extracted text to OutputFile (single-image extractor).
	Save bool

	// OutputFile is the fixed destination used by Save.
	OutputFile string

	// OutputFolder receives one file per target (batch extractor).
	OutputFolder string

	// LogLevel is the zerolog level name for diagnostics on stderr.
	LogLevel string

	// NoColor disables colored messages on stdout.
	NoColor bool

	// Progress shows a progress bar on stderr during batch runs.
	Progress bool

	// TessdataPrefix overrides where Tesseract looks for language data.
	TessdataPrefix string

	// PageSegMode is the Tesseract page segmentation mode (0-13).
	PageSegMode int

	// Preprocessing applied to each bitmap before recognition.
	Grayscale  bool
	AutoInvert bool
	Contrast   float64
	Threshold  int
	Scale      float64
}

// Default returns a Config populated with the documented defaults.
func Default() *Config {
	return &Config{
		Language:     DefaultLanguage,
		OutputFile:   DefaultOutputFile,
		OutputFolder: DefaultOutputFolder,
		LogLevel:     DefaultLogLevel,
		PageSegMode:  DefaultPageSegMode,
		Scale:        1.0,
	}
}

// Load returns the defaults with ambient environment overrides applied.
// A .env file in the working directory is read if present; variables that
// are already set in the environment take precedence over it.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	cfg := Default()
	cfg.ApplyEnv(os.Getenv)
	return cfg
}

// ApplyEnv copies recognized environment variables into cfg using getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvTessdataPrefix)); v != "" {
		c.TessdataPrefix = v
	}
}

// Validate reports the first option that cannot be used.
// The language code is left to the OCR engine: an unusable code fails per
// target at recognition time, not here.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("threshold must be between 0 and 255, got %d", c.Threshold)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.Contrast < -100 || c.Contrast > 100 {
		return fmt.Errorf("contrast must be between -100 and 100, got %g", c.Contrast)
	}
	if c.PageSegMode < 0 || c.PageSegMode > 13 {
		return fmt.Errorf("page segmentation mode must be between 0 and 13, got %d", c.PageSegMode)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
