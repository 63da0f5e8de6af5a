// sink.go -- write targets for the cdb Builder
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
	"bytes"
	"io"
	"os"
)

// sink is the abstraction Builder writes through: sequential writes,
// absolute seeks and a final flush. The builder never relies on sink
// identity -- a file-backed sink and an in-memory sink are otherwise
// indistinguishable to it.
type sink interface {
	io.Writer
	Seek(offset int64) error
	Flush() error
}

// fileSink writes directly to an *os.File.
type fileSink struct {
	fd *os.File
}

func newFileSink(fd *os.File) *fileSink {
	return &fileSink{fd: fd}
}

func (s *fileSink) Write(p []byte) (int, error) {
	return s.fd.Write(p)
}

func (s *fileSink) Seek(offset int64) error {
	_, err := s.fd.Seek(offset, io.SeekStart)
	return err
}

func (s *fileSink) Flush() error {
	return s.fd.Sync()
}

// memSink writes into a growing in-memory buffer; WriteAll drains it
// into any io.Writer once the Builder has been finalized. Grounded on
// the boxed (in-memory) maker in the original cdb implementation, which
// kept its own distinct constructor rather than asking callers to
// assemble a bytes.Buffer-backed sink by hand.
type memSink struct {
	buf *bytes.Buffer
	pos int64
}

func newMemSink() *memSink {
	return &memSink{buf: new(bytes.Buffer)}
}

func (s *memSink) Write(p []byte) (int, error) {
	// Writes always happen at the current logical position. Builder
	// only ever seeks back to 0 once, to rewrite the header, so we
	// special-case overwrite-from-start and append otherwise.
	if s.pos == int64(s.buf.Len()) {
		n, err := s.buf.Write(p)
		s.pos += int64(n)
		return n, err
	}

	b := s.buf.Bytes()
	n := copy(b[s.pos:], p)
	s.pos += int64(n)
	if n < len(p) {
		nw, err := s.buf.Write(p[n:])
		s.pos += int64(nw)
		return n + nw, err
	}
	return n, nil
}

func (s *memSink) Seek(offset int64) error {
	s.pos = offset
	return nil
}

func (s *memSink) Flush() error {
	return nil
}

// bytes returns the underlying buffer contents, unaltered.
func (s *memSink) bytes() []byte {
	return s.buf.Bytes()
}
