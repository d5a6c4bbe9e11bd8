package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a user-visible failure signal.
type Kind string

const (
	// KindLocalValidation is a field-scoped failure caught before any remote
	// call; it is rendered inline next to the offending fields.
	KindLocalValidation Kind = "local_validation"
	// KindRemoteRejection is a create/update the record service refused; the
	// draft that caused it is preserved for retry.
	KindRemoteRejection Kind = "remote_rejection"
	// KindTransportFailure is network or service unavailability on
	// list/delete/import/export; local state stays at last-known-good.
	KindTransportFailure Kind = "transport_failure"
)

// Notice is the structured result delivered to the presentation layer instead
// of an ad-hoc alert. Every failure path produces exactly one Notice.
type Notice struct {
	Kind    Kind     `json:"kind"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// NoticeOption is a functional option for configuring notices
type NoticeOption func(*Notice)

// WithDetails adds detail messages to the notice
func WithDetails(details ...string) NoticeOption {
	return func(n *Notice) {
		n.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) NoticeOption {
	return func(n *Notice) {
		n.Message = message
	}
}

// NewNotice creates a notice for the given kind and error code with the
// code's default message. Optional details can be added using functional
// options.
func NewNotice(kind Kind, code ErrorCode, traceID string, opts ...NoticeOption) Notice {
	notice := Notice{
		Kind:    kind,
		Code:    string(code),
		Message: GetErrorMessage(code),
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(&notice)
	}

	return notice
}

// NewValidationNotice creates a local-validation notice carrying the
// field-keyed messages as detail lines.
func NewValidationNotice(details []string, traceID string) Notice {
	return NewNotice(KindLocalValidation, ValidationGeneral, traceID, WithDetails(details...))
}

func (n Notice) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", n.Code, n.Message, n.TraceID)
}

// RemoteError is the error the record-service client returns for failed
// calls, carrying enough classification for the coordinator to pick the
// right notice kind.
type RemoteError struct {
	Kind    Kind
	Code    ErrorCode
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("record service: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("record service: %s", e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteRejection wraps a response in which the service understood the
// request and refused it (client-class status).
func NewRemoteRejection(code ErrorCode, status int, err error) *RemoteError {
	return &RemoteError{
		Kind:    KindRemoteRejection,
		Code:    code,
		Status:  status,
		Message: GetErrorMessage(code),
		Err:     err,
	}
}

// NewTransportFailure wraps network errors and server-class statuses.
func NewTransportFailure(code ErrorCode, status int, err error) *RemoteError {
	return &RemoteError{
		Kind:    KindTransportFailure,
		Code:    code,
		Status:  status,
		Message: GetErrorMessage(code),
		Err:     err,
	}
}

// ClassifyRemote extracts the classification from an error returned by the
// record-service client. Errors that are not RemoteError default to a
// transport failure with the given fallback code.
func ClassifyRemote(err error, fallback ErrorCode) (Kind, ErrorCode) {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Kind, remote.Code
	}
	return KindTransportFailure, fallback
}
