// Package apperr carries status-aware errors from the content, scroll and
// web layers to the HTTP handlers and the CLI.
package apperr

import (
	"errors"
	"net/http"
)

// Error is a typed application error. Code is stable and machine readable,
// Status is the HTTP status a handler should answer with.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message,omitempty"`
	Status  int            `json:"-"`
	Fields  map[string]any `json:"fields,omitempty"`
	Err     error          `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != "":
		return e.Code
	}
	return "error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches on Code so wrapped copies of a sentinel still satisfy errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap copies base and attaches err. A nil base falls back to ErrInternal.
func Wrap(err error, base *Error, message string) *Error {
	if err == nil {
		return nil
	}
	if base == nil {
		base = ErrInternal
	}
	cp := *base
	if message != "" {
		cp.Message = message
	}
	cp.Err = err
	return &cp
}

func WithFields(base *Error, fields map[string]any) *Error {
	if base == nil {
		return nil
	}
	cp := *base
	cp.Fields = fields
	return &cp
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

func Status(err error) int {
	if e, ok := As(err); ok && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

func Code(err error) string {
	if e, ok := As(err); ok && e.Code != "" {
		return e.Code
	}
	return ErrInternal.Code
}

// Payload is the JSON body handlers write for err.
func Payload(err error) map[string]any {
	if err == nil {
		return map[string]any{}
	}
	payload := map[string]any{
		"code":    Code(err),
		"message": err.Error(),
	}
	if e, ok := As(err); ok && len(e.Fields) > 0 {
		payload["fields"] = e.Fields
	}
	return payload
}

var (
	ErrBadRequest = New("bad_request", http.StatusBadRequest, "")
	ErrValidation = New("validation_error", http.StatusUnprocessableEntity, "")
	ErrNotFound   = New("not_found", http.StatusNotFound, "")
	ErrConfig     = New("config_error", http.StatusInternalServerError, "")
	ErrContent    = New("content_error", http.StatusInternalServerError, "")
	ErrInternal   = New("internal_error", http.StatusInternalServerError, "")
)
