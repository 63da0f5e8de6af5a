// codec.go -- packed little-endian uint32 pair codec
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package cdb

import "encoding/binary"

// pack2 writes a and b as consecutive little-endian uint32s into buf.
// buf must be at least 8 bytes long.
func pack2(buf []byte, a, b uint32) {
	le := binary.LittleEndian
	le.PutUint32(buf[0:4], a)
	le.PutUint32(buf[4:8], b)
}

// unpack2 is the inverse of pack2: it reads a pair of little-endian
// uint32s from the first 8 bytes of buf.
func unpack2(buf []byte) (uint32, uint32) {
	le := binary.LittleEndian
	return le.Uint32(buf[0:4]), le.Uint32(buf[4:8])
}
