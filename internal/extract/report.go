package extract

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints user-facing status messages. Errors are red and
// confirmations green when color output is enabled and supported.
type Reporter struct {
	w       io.Writer
	failure *color.Color
	success *color.Color
}

// NewReporter returns a Reporter writing to w. With colored false, messages
// are always plain; otherwise fatih/color decides based on the terminal.
func NewReporter(w io.Writer, colored bool) *Reporter {
	failure := color.New(color.FgRed)
	success := color.New(color.FgGreen)
	if !colored {
		failure.DisableColor()
		success.DisableColor()
	}
	return &Reporter{w: w, failure: failure, success: success}
}

// Writer returns the underlying writer for extracted text.
func (r *Reporter) Writer() io.Writer {
	return r.w
}

// Infof prints an uncolored message line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Errorf prints a failure message line.
func (r *Reporter) Errorf(format string, args ...any) {
	r.failure.Fprintf(r.w, format+"\n", args...)
}

// Successf prints a confirmation message line.
func (r *Reporter) Successf(format string, args ...any) {
	r.success.Fprintf(r.w, format+"\n", args...)
}
