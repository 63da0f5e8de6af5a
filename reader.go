// reader.go -- Reader for a constant DB (cdb) file
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package cdb

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/golang-lru"
)

// defaultCacheSize is the default number of lookups retained by the
// reader's ARC cache when the caller doesn't specify one.
const defaultCacheSize = 128

// Reader represents the query interface for a previously-built cdb
// file. The only meaningful operations are Find (a lazy iterator over
// all matches for a key) and Get (a convenience wrapper returning the
// first match).
//
// A single Reader's read cursor (used only in the non-mmap fallback
// path) is not safe for concurrent use; Find requires exclusive access
// to the Reader for the lifetime of the returned Cursor. Two Readers
// over the same file are independent.
type Reader struct {
	fd   *os.File
	size int64

	mapped []byte // non-nil when mmap succeeded
	header [headerSize]byte

	// remembered read cursor for the non-mmap fallback, so we only
	// seek when the next read isn't already positioned correctly.
	rdpos int64

	cache *lru.ARCCache
}

// OpenOptions configures Open/New.
type OpenOptions struct {
	// CacheSize bounds the reader's ARC cache of resolved Get()
	// lookups. Zero selects defaultCacheSize; a negative value
	// disables caching entirely.
	CacheSize int
}

// Open opens the cdb file at path for reading, using default options.
func Open(path string) (*Reader, error) {
	return OpenWith(path, OpenOptions{})
}

// OpenWith opens the cdb file at path for reading with explicit
// options.
func OpenWith(path string, opts OpenOptions) (*Reader, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	rd, err := NewWith(fd, opts)
	if err != nil {
		fd.Close()
		return nil, err
	}
	return rd, nil
}

// New wraps an already-open *os.File as a Reader, using default
// options.
func New(fd *os.File) (*Reader, error) {
	return NewWith(fd, OpenOptions{})
}

// NewWith wraps an already-open *os.File as a Reader with explicit
// options.
func NewWith(fd *os.File, opts OpenOptions) (*Reader, error) {
	st, err := fd.Stat()
	if err != nil {
		return nil, err
	}

	sz := st.Size()
	if sz < headerSize+16 || sz > maxFileSize {
		return nil, ErrInvalidFormat
	}

	rd := &Reader{fd: fd, size: sz}

	if b, err := mmapFile(int(fd.Fd()), int(sz)); err == nil {
		rd.mapped = b
	} else {
		if _, err := fd.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		if err := readFull(fd, rd.header[:]); err != nil {
			return nil, err
		}
		rd.rdpos = headerSize
	}

	cacheSize := opts.CacheSize
	switch {
	case cacheSize < 0:
		// caching disabled
	case cacheSize == 0:
		cacheSize = defaultCacheSize
		fallthrough
	default:
		c, err := lru.NewARC(cacheSize)
		if err != nil {
			return nil, err
		}
		rd.cache = c
	}

	return rd, nil
}

// Close releases the Reader's resources: its memory mapping, if any,
// and its file descriptor.
func (rd *Reader) Close() error {
	if rd.mapped != nil {
		munmapFile(rd.mapped)
		rd.mapped = nil
	}
	if rd.cache != nil {
		rd.cache.Purge()
	}
	return rd.fd.Close()
}

// headerBytes returns the 2048-byte header, from the mmap when
// available and from the cached copy otherwise.
func (rd *Reader) headerBytes() []byte {
	if rd.mapped != nil {
		return rd.mapped[:headerSize]
	}
	return rd.header[:]
}

// read copies len(buf) bytes starting at pos into buf.
func (rd *Reader) read(buf []byte, pos uint32) error {
	end := int64(pos) + int64(len(buf))
	if end > rd.size {
		return ErrInvalidFormat
	}

	if rd.mapped != nil {
		copy(buf, rd.mapped[pos:end])
		return nil
	}

	if rd.rdpos != int64(pos) {
		if _, err := rd.fd.Seek(int64(pos), io.SeekStart); err != nil {
			return err
		}
	}

	if err := readFull(rd.fd, buf); err != nil {
		return err
	}
	rd.rdpos = int64(pos) + int64(len(buf))
	return nil
}

// readFull loops a plain Read until buf is full, handling short reads.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return err
}

// hashTable returns the sub-table descriptor and the starting slot
// position for khash's bucket.
func (rd *Reader) hashTable(khash uint32) (hpos, hslots, kpos uint32) {
	x := (khash % numBuckets) * 8
	hpos, hslots = unpack2(rd.headerBytes()[x : x+8])

	if hslots == 0 {
		return hpos, hslots, 0
	}
	kpos = hpos + ((khash>>8)%hslots)*8
	return hpos, hslots, kpos
}

// matchKey compares key against the on-disk key at pos, 32 bytes at a
// time -- the fixed chunk size the historical cdb implementation uses,
// which exercises the split-across-reads path without unbounded stack
// usage.
func (rd *Reader) matchKey(key []byte, pos uint32) (bool, error) {
	const chunk = 32
	var buf [chunk]byte

	remaining := len(key)
	off := 0

	for remaining > 0 {
		n := remaining
		if n > chunk {
			n = chunk
		}

		if err := rd.read(buf[:n], pos); err != nil {
			return false, err
		}
		if string(buf[:n]) != string(key[off:off+n]) {
			return false, nil
		}

		pos += uint32(n)
		off += n
		remaining -= n
	}

	return true, nil
}

// Find returns a lazy cursor over every value whose key equals key. The
// cursor is valid until the Reader is closed, and must not be used
// concurrently with other Find cursors or Get calls on the same
// Reader.
func (rd *Reader) Find(key []byte) *Cursor {
	khash := hash(key)
	hpos, hslots, kpos := rd.hashTable(khash)

	k := make([]byte, len(key))
	copy(k, key)

	return &Cursor{
		rd:     rd,
		key:    k,
		khash:  khash,
		hpos:   hpos,
		hslots: hslots,
		kpos:   kpos,
	}
}

// Get returns the first value matching key. It returns ErrNoKey if no
// record matches.
func (rd *Reader) Get(key []byte) ([]byte, error) {
	if rd.cache != nil {
		if v, ok := rd.cache.Get(string(key)); ok {
			return v.([]byte), nil
		}
	}

	c := rd.Find(key)
	v, err := c.Next()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNoKey
	}

	if rd.cache != nil {
		rd.cache.Add(string(key), v)
	}

	return v, nil
}

// Size returns the total size, in bytes, of the underlying cdb file.
func (rd *Reader) Size() int64 {
	return rd.size
}

// String implements fmt.Stringer, reporting the file size in both raw
// bytes and human-readable form.
func (rd *Reader) String() string {
	return fmt.Sprintf("cdb: %d bytes (%s)", rd.size, humansize(uint64(rd.size)))
}
