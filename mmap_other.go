// mmap_other.go -- non-unix hosts have no mmap; Reader falls back to
// buffered I/O, per spec.
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

//go:build !unix

package cdb

import "errors"

var errMmapUnsupported = errors.New("cdb: mmap not supported on this platform")

func mmapFile(fd int, n int) ([]byte, error) {
	return nil, errMmapUnsupported
}

func munmapFile(b []byte) error {
	return nil
}
