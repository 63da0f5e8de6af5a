// mmap_unix.go -- mmap the whole cdb file read-only on unix-like hosts
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

//go:build unix

package cdb

import (
	"golang.org/x/sys/unix"
)

// mmapFile maps the first n bytes of fd read-only, private. x/sys/unix
// wraps the mmap/munmap syscalls with consistent GOOS coverage, so we
// use it instead of hand-rolling per-platform build tags around raw
// syscall constants.
func mmapFile(fd int, n int) ([]byte, error) {
	return unix.Mmap(fd, 0, n, unix.PROT_READ, unix.MAP_PRIVATE)
}

func munmapFile(b []byte) error {
	return unix.Munmap(b)
}
