// Package faults implements the error taxonomy shared by the service
// and HTTP layers: validation failures, missing lookups, and upstream
// completion-provider failures. Each kind maps to one HTTP status.
package faults

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a fault.
type Kind int

const (
	// KindValidation indicates a rejected input: bad enum value, empty
	// custom scenario, cross-event scenario id. Rejected before any
	// mutation.
	KindValidation Kind = iota

	// KindNotFound indicates a failed lookup: unknown event type key or
	// unknown scenario id. Never silently defaulted.
	KindNotFound

	// KindGateway indicates the completion provider call failed or
	// returned a non-success status. Never retried automatically.
	KindGateway
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindGateway:
		return "gateway"
	}
	return "unknown"
}

// Fault is a classified error carrying a user-presentable message.
type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// HTTPStatus maps the fault kind to a response status code.
func (f *Fault) HTTPStatus() int {
	switch f.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindGateway:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Validationf builds a validation fault.
func Validationf(format string, args ...any) *Fault {
	return &Fault{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found fault.
func NotFoundf(format string, args ...any) *Fault {
	return &Fault{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Gateway wraps a provider error.
func Gateway(msg string, err error) *Fault {
	return &Fault{Kind: KindGateway, Message: msg, Err: err}
}

// As extracts a Fault from an error chain.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
