package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"labels-tracker/internal/common"
)

// minimalPDF is enough for both the signature check and content sniffing.
var minimalPDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func reasonOf(t *testing.T, err error) RejectReason {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v is not a ValidationError", err)
	}
	return verr.Reason
}

func TestValidateAcceptsPDF(t *testing.T) {
	v := NewValidator(0)
	path := writeTemp(t, "ok.pdf", minimalPDF)
	if err := v.Validate(path); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateMissingFile(t *testing.T) {
	v := NewValidator(0)
	err := v.Validate(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := reasonOf(t, err); got != ReasonNotReadable {
		t.Fatalf("reason = %s, want %s", got, ReasonNotReadable)
	}
	if !errors.Is(err, common.ErrInvalidPDF) {
		t.Fatalf("error does not wrap ErrInvalidPDF: %v", err)
	}
}

func TestValidateDirectory(t *testing.T) {
	v := NewValidator(0)
	err := v.Validate(t.TempDir())
	if got := reasonOf(t, err); got != ReasonNotReadable {
		t.Fatalf("reason = %s, want %s", got, ReasonNotReadable)
	}
}

func TestValidateSizeBoundIsInclusive(t *testing.T) {
	v := NewValidator(int64(len(minimalPDF)))

	atLimit := writeTemp(t, "at_limit.pdf", minimalPDF)
	if err := v.Validate(atLimit); err != nil {
		t.Fatalf("file exactly at the limit must pass: %v", err)
	}

	over := writeTemp(t, "over.pdf", append(minimalPDF, '\n'))
	err := v.Validate(over)
	if got := reasonOf(t, err); got != ReasonTooLarge {
		t.Fatalf("reason = %s, want %s", got, ReasonTooLarge)
	}
}

func TestValidateWrongContent(t *testing.T) {
	v := NewValidator(0)

	gif := writeTemp(t, "fake.pdf", []byte("GIF89a\x01\x00\x01\x00"))
	err := v.Validate(gif)
	if err == nil {
		t.Fatal("expected rejection for GIF content")
	}
	if !errors.Is(err, common.ErrInvalidPDF) {
		t.Fatalf("error does not wrap ErrInvalidPDF: %v", err)
	}
	// Sniffing catches this before the signature read; either gate is a
	// correct rejection.
	if got := reasonOf(t, err); got != ReasonWrongMimeType && got != ReasonBadSignature {
		t.Fatalf("unexpected reason %s", got)
	}
}

func TestValidateTruncatedHeader(t *testing.T) {
	v := NewValidator(0)
	short := writeTemp(t, "short.pdf", []byte("%P"))
	err := v.Validate(short)
	if err == nil {
		t.Fatal("expected rejection for a truncated header")
	}
	if !errors.Is(err, common.ErrInvalidPDF) {
		t.Fatalf("error does not wrap ErrInvalidPDF: %v", err)
	}
}
