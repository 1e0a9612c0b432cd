package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"labels-tracker/constants"
	"labels-tracker/internal/common"
)

// RejectReason says which validation gate a candidate file failed.
type RejectReason string

const (
	ReasonNotReadable   RejectReason = "not_readable"
	ReasonTooLarge      RejectReason = "too_large"
	ReasonWrongMimeType RejectReason = "wrong_mime_type"
	ReasonBadSignature  RejectReason = "bad_signature"
)

// ValidationError carries the failing path and gate. It unwraps to
// common.ErrInvalidPDF so callers can branch with errors.Is.
type ValidationError struct {
	Path   string
	Reason RejectReason
	Cause  error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid pdf %q (%s): %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid pdf %q (%s)", e.Path, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return common.ErrInvalidPDF
}

// Validator checks that a candidate file is a genuine, bounded-size PDF.
// The gate runs once at ingestion time, not on every read.
type Validator struct {
	maxSize int64
}

// NewValidator builds a validator with the given size cap; non-positive
// values fall back to the 50 MiB default.
func NewValidator(maxSize int64) *Validator {
	if maxSize <= 0 {
		maxSize = constants.MaxLabelFileSize
	}
	return &Validator{maxSize: maxSize}
}

// Validate runs the gates in order, short-circuiting on the first failure:
// readable, size (inclusive bound), sniffed MIME, %PDF signature.
func (v *Validator) Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &ValidationError{Path: path, Reason: ReasonNotReadable, Cause: err}
	}
	if info.Size() > v.maxSize {
		return &ValidationError{
			Path:   path,
			Reason: ReasonTooLarge,
			Cause:  fmt.Errorf("%d bytes exceeds limit of %d", info.Size(), v.maxSize),
		}
	}

	// Content sniffing is best effort: a detection failure skips this gate,
	// the signature check below still runs.
	if mtype, err := mimetype.DetectFile(path); err == nil {
		if !mtype.Is(constants.PDFMimeType) {
			return &ValidationError{
				Path:   path,
				Reason: ReasonWrongMimeType,
				Cause:  fmt.Errorf("detected %s", mtype.String()),
			}
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return &ValidationError{Path: path, Reason: ReasonNotReadable, Cause: err}
	}
	defer f.Close()

	header := make([]byte, len(constants.PDFSignature))
	if _, err := io.ReadFull(f, header); err != nil {
		return &ValidationError{Path: path, Reason: ReasonBadSignature, Cause: err}
	}
	if !bytes.Equal(header, constants.PDFSignature) {
		return &ValidationError{Path: path, Reason: ReasonBadSignature}
	}
	return nil
}
