package extract

import (
	"errors"
	"fmt"
)

// Kind classifies an extraction failure.
type Kind int

const (
	// KindProcessing covers decode, recognition and write failures.
	KindProcessing Kind = iota

	// KindNotFound means the source path does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	default:
		return "processing"
	}
}

// Error is a failure tied to one source path.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Path)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error, or e itself when there is none.
func (e *Error) Cause() error {
	if e.Err != nil {
		return e.Err
	}
	return e
}

func notFound(path string, err error) *Error {
	return &Error{Kind: KindNotFound, Path: path, Err: err}
}

func processing(path string, err error) *Error {
	return &Error{Kind: KindProcessing, Path: path, Err: err}
}

// IsNotFound reports whether err is a NotFound extraction error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// causeOf unwraps an *Error to the message-worthy cause.
func causeOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Cause()
	}
	return err
}
