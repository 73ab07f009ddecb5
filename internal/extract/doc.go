// Package extract runs the OCR pipeline: resolve targets, decode each image,
// recognize its text, and print or save the result.
//
// Targets are processed one at a time, each to completion before the next.
// A failing target is reported as a single message line and never aborts
// the run; callers get the same failure back as an *Error for logging.
package extract
