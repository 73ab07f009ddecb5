package extract

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/img2str/internal/imaging"
)

// Loader decodes an image file into a bitmap.
type Loader interface {
	Load(path string) (image.Image, error)
}

// Engine converts a bitmap into text.
type Engine interface {
	// Recognize returns the text found in img using the given language code.
	Recognize(img image.Image, language string) (string, error)
}

// Result is the text recognized in one source file.
type Result struct {
	Path string
	Text string
}

// Extractor couples an image loader with an OCR engine.
type Extractor struct {
	loader     Loader
	engine     Engine
	preprocess imaging.Options
	logger     zerolog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the diagnostics logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithPreprocess sets the image preprocessing applied before recognition.
func WithPreprocess(opts imaging.Options) Option {
	return func(e *Extractor) {
		e.preprocess = opts
	}
}

// New returns an Extractor using loader and engine.
func New(loader Loader, engine Engine, opts ...Option) *Extractor {
	e := &Extractor{
		loader: loader,
		engine: engine,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract decodes the image at path and recognizes its text in language.
//
// A missing path yields an *Error of KindNotFound; every other failure is
// KindProcessing. There are no retries.
func (e *Extractor) Extract(path, language string) (*Result, error) {
	start := time.Now()
	log := e.logger.With().Str("path", path).Str("language", language).Logger()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(path, err)
		}
		return nil, processing(path, err)
	}

	img, err := e.loader.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(path, err)
		}
		return nil, processing(path, err)
	}

	info := imaging.Describe(path, img)
	log.Debug().
		Int("width", info.Width).
		Int("height", info.Height).
		Str("format", info.Format).
		Str("color_depth", info.ColorDepth).
		Bool("has_alpha", info.HasAlpha).
		Msg("decoded image")

	if e.preprocess.Enabled() {
		img = imaging.Preprocess(img, e.preprocess)
		log.Debug().Interface("options", e.preprocess).Msg("preprocessed image")
	}

	text, err := e.engine.Recognize(img, language)
	if err != nil {
		return nil, processing(path, fmt.Errorf("recognition failed: %w", err))
	}

	log.Debug().
		Int("chars", len(text)).
		Dur("elapsed", time.Since(start)).
		Msg("recognized text")

	return &Result{Path: path, Text: text}, nil
}

func (e *Extractor) logFailure(err error) {
	var xe *Error
	if !errors.As(err, &xe) {
		e.logger.Warn().Err(err).Msg("extraction failed")
		return
	}
	e.logger.Warn().
		Str("path", xe.Path).
		Str("kind", xe.Kind.String()).
		Err(xe.Err).
		Msg("extraction failed")
}
