// errors.go -- sentinel errors for go-cdb
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package cdb

import "errors"

var (
	// ErrArgTooLarge is returned by Insert when a key or value is
	// too large to be represented in the on-disk length field.
	ErrArgTooLarge = errors.New("cdb: key or value too large")

	// ErrFileTooLarge is returned when the cumulative size of the
	// record region and sub-tables would exceed the format's
	// 2^32-1 byte ceiling.
	ErrFileTooLarge = errors.New("cdb: file too large")

	// ErrFrozen is returned when Insert or a second Flush is
	// attempted on a Builder that has already been finalized.
	ErrFrozen = errors.New("cdb: builder already frozen")

	// ErrInvalidFormat is returned when a file being opened is too
	// short, too long, or a computed read would run past EOF.
	ErrInvalidFormat = errors.New("cdb: invalid file format")

	// ErrNoKey is returned by Get when the key has no matching
	// record.
	ErrNoKey = errors.New("cdb: no such key")
)
