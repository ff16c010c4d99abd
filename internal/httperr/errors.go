package httperr

import (
	"errors"
	"strings"
)

// Kind is the closed set of failure categories callers branch on.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindIntegrity    Kind = "integrity"
	KindNotFound     Kind = "not_found"
	KindConnectivity Kind = "connectivity"
	KindInternal     Kind = "internal"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Code
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MissingFieldError reports required form fields absent from a submission.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required field(s): " + strings.Join(e.Fields, ", ")
}

func Validation(code, message string) error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NotFound(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Integrity(code, message string, err error) error {
	return &Error{Kind: KindIntegrity, Code: code, Message: message, Err: err}
}

func Connectivity(err error) error {
	return &Error{Kind: KindConnectivity, Code: "database_unavailable", Message: "database unavailable", Err: err}
}

func Internal(err error) error {
	return &Error{Kind: KindInternal, Code: "internal_error", Err: err}
}

// KindOf returns the category of err, or "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return KindValidation
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
