// atomicio.go -- atomically persist an in-memory builder's bytes
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package cdb

import (
	"bytes"

	"github.com/natefinch/atomic"
)

// atomicWriteFile writes b to path via a temp-file-then-rename, so a
// reader can never observe a partially-written file at path.
func atomicWriteFile(path string, b []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(b))
}
