package extract

import (
	"errors"

	"github.com/ironsheep/img2str/internal/output"
)

// NoOptionMessage is printed when neither display nor save was requested.
const NoOptionMessage = "No option selected. The text was neither displayed nor saved."

// SingleOptions drives the single-image extractor.
type SingleOptions struct {
	Path     string
	Language string

	// Display prints the text between separator lines.
	Display bool

	// Save writes the text to OutputFile, whatever the input was named.
	Save       bool
	OutputFile string
}

// RunSingle extracts text from one image and emits it as requested.
//
// With neither Display nor Save set it prints NoOptionMessage and does no
// OCR work. Failures are reported on r and returned; they are never fatal.
func (e *Extractor) RunSingle(r *Reporter, opts SingleOptions) error {
	if !opts.Display && !opts.Save {
		r.Infof(NoOptionMessage)
		return nil
	}

	res, err := e.Extract(opts.Path, opts.Language)
	if err != nil {
		e.reportSingle(r, err)
		return err
	}

	if opts.Display {
		if err := output.Display(r.Writer(), res.Text); err != nil {
			err = processing(opts.Path, err)
			e.reportSingle(r, err)
			return err
		}
	}

	if opts.Save {
		if err := output.WriteText(opts.OutputFile, res.Text); err != nil {
			err = processing(opts.Path, err)
			e.reportSingle(r, err)
			return err
		}
		r.Successf("Extracted text saved to '%s'", opts.OutputFile)
	}

	return nil
}

func (e *Extractor) reportSingle(r *Reporter, err error) {
	e.logFailure(err)
	var xe *Error
	if errors.As(err, &xe) && xe.Kind == KindNotFound {
		r.Errorf("File '%s' not found.", xe.Path)
		return
	}
	r.Errorf("Error processing image: %v", causeOf(err))
}
