// doc.go -- package overview for go-cdb
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package cdb implements D J Bernstein's "constant database" (cdb) file
// format: an immutable, on-disk associative array mapping byte-string
// keys to byte-string values with fast, lock-free, memory-mappable
// lookup.
//
// A cdb file is built once via Builder, finalized with Flush, and
// thereafter opened read-only via Open. Readers never mutate the file
// and require no locking between themselves; a single Reader's Find
// cursor, however, is not safe for concurrent use.
//
// The on-disk layout is a fixed 2048-byte header of 256 bucket
// descriptors, followed by a record region, followed by 256
// open-addressed sub-hash-tables -- see the package README/spec for the
// exact byte layout. This implementation is bit-for-bit compatible with
// the historical cdb format.
package cdb
