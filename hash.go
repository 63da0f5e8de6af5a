// hash.go -- cdb's key hash function
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package cdb

// hash computes D J Bernstein's cdb hash of k. This exact function --
// not a faster substitute -- is what makes files written by this
// package interoperable with the historical cdb format, so it must
// never change.
func hash(k []byte) uint32 {
	var h uint32 = 5381

	for _, b := range k {
		h = ((h << 5) + h) ^ uint32(b)
	}

	return h
}
