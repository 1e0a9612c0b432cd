package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// ErrNotFound: the requested label record has no matching row.
	ErrNotFound = errors.New("shipping label not found")
	// ErrNoFile: the record exists but has no file attached.
	ErrNoFile = errors.New("no file associated with this shipping label")
	// ErrFileMissing: the record references a file that is gone from storage.
	ErrFileMissing = errors.New("label file not found in storage")
	// ErrPathRejected: the stored filename fails containment or safety checks.
	ErrPathRejected = errors.New("label filename rejected")
	// ErrInvalidPDF: the candidate file fails signature, MIME or size checks.
	ErrInvalidPDF = errors.New("label file is not a valid PDF")
	// ErrStorageIO: an unexpected persistence or filesystem fault. Callers
	// render this as "try again", not "fix your input".
	ErrStorageIO = errors.New("storage i/o failure")
	// ErrEmptyInput: a merge or bulk operation was invoked with no items.
	ErrEmptyInput = errors.New("no items selected")
	// ErrCorruptSource: a source PDF could not be parsed during a merge.
	ErrCorruptSource = errors.New("corrupt source document")
	// ErrNoLabelFiles: none of the selected labels had a usable file.
	ErrNoLabelFiles = errors.New("no valid label files found")
	// ErrCantGenerate: a label-producing collaborator refused or failed.
	ErrCantGenerate = errors.New("cannot generate shipping label")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
