// Package storage maps stored label filenames to physical files under a
// single configured root directory and gates what is allowed in.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"labels-tracker/constants"
	"labels-tracker/internal/common"
)

// Resolver turns a stored relative filename into a safe absolute path inside
// the labels root. It is a pure function of the configured root and the input
// string; it never touches records.
//
// For files that do not exist yet, symlink resolution cannot run, so the
// containment check is limited to the constructed path. This TOCTOU gap is
// accepted: stored filenames are derived from record ids (see
// constants.StoredFilename), never taken verbatim from callers.
type Resolver struct {
	root string
}

// NewResolver makes root absolute and creates it if absent.
func NewResolver(root string) (*Resolver, error) {
	if strings.TrimSpace(root) == "" {
		return nil, common.NewAppError("STORAGE_ERROR", "labels root is required", common.ErrInvalidInput)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, common.NewAppError("STORAGE_ERROR", "resolving labels root", err)
	}
	if err := os.MkdirAll(abs, constants.LabelsDirPerm); err != nil {
		return nil, common.NewAppError("STORAGE_ERROR", "creating labels root", err)
	}
	return &Resolver{root: abs}, nil
}

// Root returns the absolute labels root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve computes the absolute path for a stored filename, or rejects it.
// Directory components are stripped (basename only), dotfiles are refused,
// and the result must stay inside the root after symlink resolution when the
// target already exists.
func (r *Resolver) Resolve(storedFilename string) (string, error) {
	name := strings.TrimSpace(storedFilename)
	if name == "" {
		return "", rejected("empty filename")
	}
	if strings.ContainsRune(name, 0) {
		return "", rejected("filename contains a null byte")
	}

	// basename strips ../ sequences and absolute prefixes
	base := filepath.Base(filepath.ToSlash(name))
	if base == "." || base == string(filepath.Separator) {
		return "", rejected("filename reduces to no basename")
	}
	if strings.HasPrefix(base, ".") {
		return "", rejected("hidden filenames are not allowed")
	}

	full := filepath.Join(r.root, base)
	if !r.contains(full) {
		return "", rejected("path escapes the labels directory")
	}

	// When the target exists, follow symlinks and re-check containment.
	real, err := filepath.EvalSymlinks(full)
	if err == nil {
		realRoot, rootErr := filepath.EvalSymlinks(r.root)
		if rootErr != nil {
			realRoot = r.root
		}
		rel, relErr := filepath.Rel(realRoot, real)
		if relErr != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", rejected("resolved path escapes the labels directory")
		}
	} else if !os.IsNotExist(err) {
		return "", rejected("cannot resolve path")
	}
	// Non-existence is fine: the path may be about to be written.

	return full, nil
}

// Place copies the file at srcPath into the root under storedFilename. The
// bytes go to a hidden temp name first and are renamed into place, so a
// half-written file is never resolvable.
func (r *Resolver) Place(srcPath, storedFilename string) (string, error) {
	dst, err := r.Resolve(storedFilename)
	if err != nil {
		return "", err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", common.NewAppError("STORAGE_ERROR", "opening candidate file", common.ErrStorageIO)
	}
	defer src.Close()

	tmp := filepath.Join(r.root, ".tmp-"+uuid.NewString())
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.LabelFilePerm)
	if err != nil {
		return "", common.NewAppError("STORAGE_ERROR", "creating temp file", common.ErrStorageIO)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", common.NewAppError("STORAGE_ERROR", "writing label file", common.ErrStorageIO)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return "", common.NewAppError("STORAGE_ERROR", "flushing label file", common.ErrStorageIO)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", common.NewAppError("STORAGE_ERROR", "placing label file", common.ErrStorageIO)
	}
	return dst, nil
}

// Remove deletes the file for a stored filename. Missing files are reported
// via os.IsNotExist on the returned error.
func (r *Resolver) Remove(storedFilename string) error {
	full, err := r.Resolve(storedFilename)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

func (r *Resolver) contains(path string) bool {
	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func rejected(reason string) error {
	return fmt.Errorf("%w: %s", common.ErrPathRejected, reason)
}
