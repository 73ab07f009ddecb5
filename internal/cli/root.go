// Package cli builds the cobra commands behind the img2str binaries.
package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/img2str/internal/config"
	"github.com/ironsheep/img2str/internal/extract"
	"github.com/ironsheep/img2str/internal/imaging"
	"github.com/ironsheep/img2str/internal/logging"
	"github.com/ironsheep/img2str/internal/ocr"
)

// BuildInfo is set by ldflags during build.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

var _ extract.Engine = (*ocr.Tesseract)(nil)

// newEngine builds the OCR engine. Tests replace it with a fake.
var newEngine = func(cfg *config.Config) extract.Engine {
	return ocr.NewTesseract(cfg.TessdataPrefix, cfg.PageSegMode)
}

// ocrInfo is called only when --version is requested.
var ocrInfo = ocr.GetInfo

func init() {
	cobra.AddTemplateFunc("ocrInfo", func() ocr.Info { return ocrInfo() })
}

const versionTemplate = `{{.Name}} {{.Version}}
  Build time: {{index .Annotations "buildTime"}}
  Git commit: {{index .Annotations "gitCommit"}}
{{with ocrInfo}}  OCR backend: {{.Backend}}
  Tesseract:  {{.Version}}
{{end}}`

func applyBuildInfo(cmd *cobra.Command, info BuildInfo) {
	cmd.Version = info.Version
	cmd.Annotations = map[string]string{
		"buildTime": info.BuildTime,
		"gitCommit": info.GitCommit,
	}
	cmd.SetVersionTemplate(versionTemplate)
}

// addCommonFlags registers the flags both commands share.
func addCommonFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	flags.StringVarP(&cfg.Language, "language", "l", cfg.Language, "language for OCR")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level on stderr (debug, info, warn, error)")
	flags.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	flags.StringVar(&cfg.TessdataPrefix, "tessdata", cfg.TessdataPrefix, "directory containing Tesseract language data")
	flags.IntVar(&cfg.PageSegMode, "psm", cfg.PageSegMode, "Tesseract page segmentation mode (0-13)")
	flags.BoolVar(&cfg.Grayscale, "grayscale", cfg.Grayscale, "convert images to grayscale before OCR")
	flags.BoolVar(&cfg.AutoInvert, "auto-invert", cfg.AutoInvert, "invert images with a dark background before OCR")
	flags.Float64Var(&cfg.Contrast, "contrast", cfg.Contrast, "adjust contrast before OCR, -100 to 100")
	flags.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "binarize at this gray level before OCR, 1-255 (0 disables)")
	flags.Float64Var(&cfg.Scale, "scale", cfg.Scale, "resize images by this factor before OCR")
}

// setup validates cfg and returns the diagnostics logger.
func setup(cfg *config.Config, stderr io.Writer) (zerolog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return zerolog.Nop(), err
	}
	logger, err := logging.New(cfg.LogLevel, stderr, cfg.NoColor || !isTerminal(stderr))
	if err != nil {
		return zerolog.Nop(), err
	}
	return logger, nil
}

func buildExtractor(cfg *config.Config, logger zerolog.Logger) *extract.Extractor {
	return extract.New(
		imaging.NewLoader(),
		newEngine(cfg),
		extract.WithLogger(logger),
		extract.WithPreprocess(imaging.Options{
			Scale:      cfg.Scale,
			Grayscale:  cfg.Grayscale,
			AutoInvert: cfg.AutoInvert,
			Contrast:   cfg.Contrast,
			Threshold:  cfg.Threshold,
		}),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs cmd and returns the process exit code: 0 once processing
// ran, whatever happened to individual targets, and 2 for usage errors.
func Execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 2
	}
	return 0
}
