package errors

import (
	"errors"
	"fmt"
)

// Aliases for the standard library helpers so callers need a single import.
var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

// Kind classifies a reconciliation failure.
type Kind string

const (
	KindIdentityMismatch Kind = "identity_mismatch"
	KindVersionMismatch  Kind = "version_mismatch"
	KindImport           Kind = "import_error"
	KindApply            Kind = "apply_error"
	KindBusy             Kind = "busy"
	KindRejected         Kind = "rejected"
	KindNotFound         Kind = "not_found"
)

// Sentinel values for errors.Is checks. They match any *Error of the same kind.
var (
	ErrIdentityMismatch = &Error{Kind: KindIdentityMismatch, Message: "identity mismatch"}
	ErrVersionMismatch  = &Error{Kind: KindVersionMismatch, Message: "version mismatch"}
	ErrImport           = &Error{Kind: KindImport, Message: "import failed"}
	ErrApply            = &Error{Kind: KindApply, Message: "apply failed"}
	ErrBusy             = &Error{Kind: KindBusy, Message: "reconciliation already in progress"}
	ErrRejected         = &Error{Kind: KindRejected, Message: "changes rejected"}
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "not found"}
)

// Error is a structured reconciliation failure.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Message is the human readable reason.
	Message string
	// Name is the offending element name (ApplyError only).
	Name string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Name != "" {
		msg = fmt.Sprintf("%s (element %q)", msg, e.Name)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap implements errors.Unwrap.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IdentityMismatch creates a KindIdentityMismatch error.
func IdentityMismatch(format string, args ...any) *Error {
	return &Error{Kind: KindIdentityMismatch, Message: fmt.Sprintf(format, args...)}
}

// VersionMismatch creates a KindVersionMismatch error.
func VersionMismatch(format string, args ...any) *Error {
	return &Error{Kind: KindVersionMismatch, Message: fmt.Sprintf(format, args...)}
}

// Import wraps an importer failure for path.
func Import(path string, err error) *Error {
	return &Error{Kind: KindImport, Message: fmt.Sprintf("failed to import %s", path), Err: err}
}

// Apply creates a KindApply error naming the element that failed.
func Apply(name, reason string) *Error {
	return &Error{Kind: KindApply, Message: reason, Name: name}
}

// Busy creates a KindBusy error for the given container id.
func Busy(containerID string) *Error {
	return &Error{Kind: KindBusy, Message: fmt.Sprintf("container %s is already being reconciled", containerID)}
}

// Rejected creates a KindRejected error. cause may be nil.
func Rejected(reason string, cause error) *Error {
	return &Error{Kind: KindRejected, Message: reason, Err: cause}
}

// NotFound creates a KindNotFound error.
func NotFound(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", resource, id)}
}
