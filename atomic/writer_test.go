// writer_test.go -- test suite for the atomic cdb writer

package atomic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opencoff/go-cdb"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		t.Helper()
		if !cond {
			t.Fatalf(msg, args...)
		}
	}
}

func TestAtomicWriterRenamesOnFlush(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	dst := filepath.Join(dir, "db.cdb")
	tmp := filepath.Join(dir, "db.cdb.tmp")

	w, err := New(dst, tmp)
	assert(err == nil, "can't create writer: %s", err)

	assert(w.Insert([]byte("one"), []byte("Hello")) == nil, "insert failed")
	assert(w.Insert([]byte("two"), []byte("Goodbye")) == nil, "insert failed")

	assert(w.Flush() == nil, "flush failed")

	_, err = os.Stat(tmp)
	assert(os.IsNotExist(err), "exp temp file gone after flush, stat err: %v", err)

	_, err = os.Stat(dst)
	assert(err == nil, "exp destination file to exist: %s", err)

	rd, err := cdb.Open(dst)
	assert(err == nil, "can't open finalized db: %s", err)
	defer rd.Close()

	v, err := rd.Get([]byte("one"))
	assert(err == nil, "get(one) failed: %s", err)
	assert(string(v) == "Hello", "exp Hello, saw %q", v)
}

func TestAtomicWriterCleansUpOnClose(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	dst := filepath.Join(dir, "db.cdb")
	tmp := filepath.Join(dir, "db.cdb.tmp")

	w, err := New(dst, tmp)
	assert(err == nil, "can't create writer: %s", err)

	assert(w.Insert([]byte("one"), []byte("Hello")) == nil, "insert failed")
	assert(w.Close() == nil, "close failed")

	_, err = os.Stat(tmp)
	assert(os.IsNotExist(err), "exp temp file removed, stat err: %v", err)

	_, err = os.Stat(dst)
	assert(os.IsNotExist(err), "exp destination never created, stat err: %v", err)
}

func TestAtomicWriterSetPermissions(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	dst := filepath.Join(dir, "db.cdb")
	tmp := filepath.Join(dir, "db.cdb.tmp")

	w, err := New(dst, tmp)
	assert(err == nil, "can't create writer: %s", err)

	assert(w.SetPermissions(0600) == nil, "set permissions failed")
	assert(w.Insert([]byte("k"), []byte("v")) == nil, "insert failed")
	assert(w.Flush() == nil, "flush failed")

	err = w.SetPermissions(0600)
	assert(err != nil, "exp error setting permissions after flush")
}
