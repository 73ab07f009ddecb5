package cli

import (
	"io"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// progressBar reports batch progress on a terminal.
type progressBar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w}
}

func (p *progressBar) Start(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription("Extracting"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func (p *progressBar) Advance(path string) {
	if p.bar == nil {
		return
	}
	p.bar.Describe(filepath.Base(path))
	_ = p.bar.Add(1)
}

func (p *progressBar) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}
