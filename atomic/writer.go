// writer.go -- atomic, crash-safe cdb construction
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package atomic wraps cdb.Builder so that building a new cdb file
// never leaves a partially-written file at the destination path: all
// writes go to a temporary file on the same filesystem, which is
// renamed over the destination only after a successful Flush.
//
// Atomic replacement, permission adjustment and cleanup-on-abandonment
// are policy rather than part of the cdb file format itself, so they
// live in their own package, built only against cdb.Builder's exported
// surface.
package atomic

import (
	"fmt"
	"os"

	"github.com/opencoff/go-cdb"
)

// Writer owns a destination path and a temporary path, and delegates
// Insert/Flush to an underlying cdb.Builder. Flush renames the
// temporary file over the destination; if Writer is abandoned (the
// owning process exits, or the caller simply stops using it) without a
// successful Flush, Close removes the temporary file.
type Writer struct {
	dst string
	tmp string

	fd *os.File
	b  *cdb.Builder

	closed bool
}

// New creates tmp (truncating it if it already exists) and prepares a
// cdb.Builder to write into it. tmp must be on the same filesystem as
// dst, or Flush's rename will fail.
func New(dst, tmp string) (*Writer, error) {
	fd, err := os.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}

	b, err := cdb.NewBuilderFile(fd)
	if err != nil {
		fd.Close()
		os.Remove(tmp)
		return nil, err
	}

	return &Writer{dst: dst, tmp: tmp, fd: fd, b: b}, nil
}

// Insert delegates to the underlying Builder.
func (w *Writer) Insert(key, val []byte) error {
	return w.b.Insert(key, val)
}

// SetPermissions adjusts the temporary file's mode before finalization.
// It is an error to call this after Flush.
func (w *Writer) SetPermissions(mode os.FileMode) error {
	if w.closed {
		return fmt.Errorf("cdb/atomic: SetPermissions called after Flush")
	}
	return os.Chmod(w.tmp, mode)
}

// Flush finalizes the underlying Builder and renames the temporary
// file over the destination. Once Flush returns successfully, the
// temporary path is cleared so Close will not remove the (now renamed)
// destination file.
func (w *Writer) Flush() error {
	if err := w.b.Flush(); err != nil {
		return err
	}
	if err := w.fd.Close(); err != nil {
		return err
	}

	if err := os.Rename(w.tmp, w.dst); err != nil {
		return err
	}

	w.tmp = ""
	w.closed = true
	return nil
}

// Close is a best-effort cleanup for an abandoned Writer: if Flush was
// never called (or failed), the temporary file is removed. Close is
// safe to call after a successful Flush (it is then a no-op).
func (w *Writer) Close() error {
	if w.tmp == "" {
		return nil
	}

	w.fd.Close()
	err := os.Remove(w.tmp)
	w.tmp = ""
	return err
}
