package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

type Kind string

const (
	KindTranscriptUnavailable Kind = "transcript_unavailable"
	KindDiscoveryFailure      Kind = "discovery_failure"
	KindStorageFailure        Kind = "storage_failure"
	KindInvalidInput          Kind = "invalid_input"
	KindNotFound              Kind = "not_found"
)

type AppError struct {
	Kind    Kind
	Message string
	Op      string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func TranscriptUnavailable(op string, err error, message string) *AppError {
	return &AppError{Kind: KindTranscriptUnavailable, Message: message, Op: op, Err: err}
}

func DiscoveryFailure(op string, err error, message string) *AppError {
	return &AppError{Kind: KindDiscoveryFailure, Message: message, Op: op, Err: err}
}

func StorageFailure(op string, err error, message string) *AppError {
	return &AppError{Kind: KindStorageFailure, Message: message, Op: op, Err: err}
}

func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message, Op: op, Err: err}
}

func NotFound(op string, err error, message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message, Op: op, Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var appErr *AppError
	if pkgerrors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsStorage(err error) bool { return KindOf(err) == KindStorageFailure }
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
