package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"labels-tracker/internal/common"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestResolveStripsDirectoryComponents(t *testing.T) {
	r := newTestResolver(t)

	cases := []string{
		"label_1.pdf",
		"sub/dir/label_1.pdf",
		"../label_1.pdf",
		"../../label_1.pdf",
		"/etc/label_1.pdf",
	}
	want := filepath.Join(r.Root(), "label_1.pdf")
	for _, in := range cases {
		got, err := r.Resolve(in)
		if err != nil {
			t.Errorf("Resolve(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveRejectsBadNames(t *testing.T) {
	r := newTestResolver(t)

	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"null byte", "label\x00.pdf"},
		{"dot", "."},
		{"dotdot", ".."},
		{"dotfile", ".env"},
		{"hidden pdf", ".hidden.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Resolve(tc.input)
			if err == nil {
				t.Fatalf("Resolve(%q): expected rejection", tc.input)
			}
			if !errors.Is(err, common.ErrPathRejected) {
				t.Fatalf("Resolve(%q): error %v does not wrap ErrPathRejected", tc.input, err)
			}
		})
	}
}

func TestResolveAllowsMissingTarget(t *testing.T) {
	r := newTestResolver(t)

	got, err := r.Resolve("label_42.pdf")
	if err != nil {
		t.Fatalf("Resolve for a not-yet-written file: %v", err)
	}
	if got != filepath.Join(r.Root(), "label_42.pdf") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestResolveRejectsSymlinkEscape(t *testing.T) {
	r := newTestResolver(t)

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.pdf")
	if err := os.WriteFile(secret, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(r.Root(), "label_9.pdf")
	if err := os.Symlink(secret, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	_, err := r.Resolve("label_9.pdf")
	if !errors.Is(err, common.ErrPathRejected) {
		t.Fatalf("expected ErrPathRejected for symlink escape, got %v", err)
	}
}

func TestPlaceAndRemove(t *testing.T) {
	r := newTestResolver(t)

	src := filepath.Join(t.TempDir(), "candidate.pdf")
	content := []byte("%PDF-1.4 test body")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	dst, err := r.Place(src, "label_7.pdf")
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading placed file: %v", err)
	}
	if string(got) != string(content) {
		t.Fatalf("placed content mismatch")
	}

	// No temp leftovers after a successful place.
	entries, err := os.ReadDir(r.Root())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly the placed file in root, found %d entries", len(entries))
	}

	if err := r.Remove("label_7.pdf"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("file still present after Remove")
	}
}

func TestRemoveMissingFile(t *testing.T) {
	r := newTestResolver(t)

	err := r.Remove("label_404.pdf")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !os.IsNotExist(err) {
		t.Fatalf("expected IsNotExist, got %v", err)
	}
}

func TestPlaceMissingSource(t *testing.T) {
	r := newTestResolver(t)

	_, err := r.Place(filepath.Join(t.TempDir(), "nope.pdf"), "label_1.pdf")
	if !errors.Is(err, common.ErrStorageIO) {
		t.Fatalf("expected ErrStorageIO, got %v", err)
	}
}
