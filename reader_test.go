// reader_test.go -- test suite for Reader/Find

package cdb

import (
	"path/filepath"
	"testing"
)

func buildTestDB(t *testing.T, inserts [][2]string) *Reader {
	t.Helper()
	assert := newAsserter(t)

	dir := t.TempDir()
	fn := filepath.Join(dir, "test.cdb")

	b, err := NewBuilder(fn)
	assert(err == nil, "can't create builder: %s", err)

	for _, kv := range inserts {
		assert(b.Insert([]byte(kv[0]), []byte(kv[1])) == nil, "insert(%s) failed", kv[0])
	}
	assert(b.Flush() == nil, "flush failed")

	rd, err := Open(fn)
	assert(err == nil, "can't open %s: %s", fn, err)

	t.Cleanup(func() { rd.Close() })
	return rd
}

var scenarioInserts = [][2]string{
	{"one", "Hello"},
	{"two", "Goodbye"},
	{"one", ", World!"},
	{"this key will be split across two reads", "Got it."},
}

func TestFindSimple(t *testing.T) {
	assert := newAsserter(t)
	rd := buildTestDB(t, scenarioInserts)

	v, err := rd.Find([]byte("two")).Next()
	assert(err == nil, "find(two) error: %s", err)
	assert(string(v) == "Goodbye", "find(two): exp Goodbye, saw %q", v)
}

func TestFindSplitAcrossReads(t *testing.T) {
	assert := newAsserter(t)
	rd := buildTestDB(t, scenarioInserts)

	key := "this key will be split across two reads"
	v, err := rd.Find([]byte(key)).Next()
	assert(err == nil, "find error: %s", err)
	assert(string(v) == "Got it.", "exp %q, saw %q", "Got it.", v)
}

func TestFindDuplicateKeysInOrder(t *testing.T) {
	assert := newAsserter(t)
	rd := buildTestDB(t, scenarioInserts)

	c := rd.Find([]byte("one"))

	v1, err := c.Next()
	assert(err == nil, "first Next() error: %s", err)
	assert(string(v1) == "Hello", "exp Hello, saw %q", v1)

	v2, err := c.Next()
	assert(err == nil, "second Next() error: %s", err)
	assert(string(v2) == ", World!", "exp ', World!', saw %q", v2)

	v3, err := c.Next()
	assert(err == nil, "third Next() error: %s", err)
	assert(v3 == nil, "exp end-of-sequence, saw %q", v3)
}

func TestFindMiss(t *testing.T) {
	assert := newAsserter(t)
	rd := buildTestDB(t, scenarioInserts)

	v, err := rd.Find([]byte("three")).Next()
	assert(err == nil, "exp no error on miss, saw %s", err)
	assert(v == nil, "exp nil value on miss, saw %q", v)
}

func TestGetConvenience(t *testing.T) {
	assert := newAsserter(t)
	rd := buildTestDB(t, scenarioInserts)

	v, err := rd.Get([]byte("two"))
	assert(err == nil, "get(two) failed: %s", err)
	assert(string(v) == "Goodbye", "exp Goodbye, saw %q", v)

	// cached path
	v2, err := rd.Get([]byte("two"))
	assert(err == nil, "cached get(two) failed: %s", err)
	assert(string(v2) == "Goodbye", "exp Goodbye, saw %q", v2)

	_, err = rd.Get([]byte("absent"))
	assert(err == ErrNoKey, "exp ErrNoKey, saw %v", err)
}

func TestOpenRejectsTruncatedFile(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	fn := filepath.Join(dir, "short.cdb")

	b, err := NewBuilder(fn)
	assert(err == nil, "can't create builder: %s", err)
	assert(b.Flush() == nil, "flush failed")

	// An empty flushed DB is 2048 + 0 bytes of records + 0 bytes of
	// sub-tables = 2048 bytes, which is short of the 2048+16 minimum.
	_, err = Open(fn)
	assert(err == ErrInvalidFormat, "exp ErrInvalidFormat, saw %v", err)
}
