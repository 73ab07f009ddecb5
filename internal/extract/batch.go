package extract

import (
	"errors"

	"github.com/ironsheep/img2str/internal/output"
	"github.com/ironsheep/img2str/internal/target"
)

// BatchOptions drives the batch extractor.
type BatchOptions struct {
	// Path is an image file or a directory of images.
	Path     string
	Language string

	// OutputFolder receives <stem>_extracted_text.txt per target.
	OutputFolder string

	// Progress, if set, is advanced once per target.
	Progress Progress
}

// Progress observes a batch run.
type Progress interface {
	Start(total int)
	Advance(path string)
	Finish()
}

// Summary counts the outcome of a batch run.
type Summary struct {
	Targets   int
	Processed int
	Failed    int
}

// RunBatch extracts text from every target under opts.Path and writes one
// text file per target into opts.OutputFolder.
//
// The output folder is created once, after the targets are resolved, so a
// missing source path leaves the file system untouched. A failing target is
// reported and counted; the remaining targets are still processed. The
// returned error is non-nil only when the run could not start.
func (e *Extractor) RunBatch(r *Reporter, opts BatchOptions) (Summary, error) {
	var sum Summary

	targets, err := target.Resolve(opts.Path)
	if err != nil {
		if errors.Is(err, target.ErrNotFound) {
			xe := notFound(opts.Path, err)
			e.logFailure(xe)
			r.Errorf("Directory or file '%s' not found.", opts.Path)
			return sum, xe
		}
		xe := processing(opts.Path, err)
		e.logFailure(xe)
		r.Errorf("Error processing image: %v", err)
		return sum, xe
	}
	sum.Targets = len(targets)

	if err := output.EnsureDir(opts.OutputFolder); err != nil {
		xe := processing(opts.Path, err)
		e.logFailure(xe)
		r.Errorf("Error processing image: %v", err)
		return sum, xe
	}

	if opts.Progress != nil {
		opts.Progress.Start(len(targets))
		defer opts.Progress.Finish()
	}

	e.logger.Debug().
		Str("path", opts.Path).
		Int("targets", len(targets)).
		Str("output_folder", opts.OutputFolder).
		Msg("starting batch")

	for _, path := range targets {
		if err := e.extractToFolder(r, path, opts); err != nil {
			e.logFailure(err)
			r.Errorf("Error processing image '%s': %v", path, causeOf(err))
			sum.Failed++
		} else {
			sum.Processed++
		}
		if opts.Progress != nil {
			opts.Progress.Advance(path)
		}
	}

	return sum, nil
}

func (e *Extractor) extractToFolder(r *Reporter, path string, opts BatchOptions) error {
	res, err := e.Extract(path, opts.Language)
	if err != nil {
		return err
	}

	dst := output.DerivedPath(opts.OutputFolder, path)
	if err := output.WriteText(dst, res.Text); err != nil {
		return processing(path, err)
	}

	r.Successf("Text extracted from %s saved to '%s'", path, dst)
	return nil
}
