// main.go -- build, verify and query constant DB (cdb) files
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// cdbutil is a command-line front-end over the cdb package. It builds
// a cdb file from delimited-text or CSV input, and can verify or query
// an already-built one.
package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencoff/go-cdb"
	"github.com/opencoff/go-cdb/atomic"

	flag "github.com/spf13/pflag"
)

var (
	delim    string
	asCSV    bool
	comma    string
	comment  string
	keyField int
	valField int

	verify    bool
	checkKey  string
	cacheSize int
)

func main() {
	usage := fmt.Sprintf("%s [options] OUTPUT [INPUT ...]", os.Args[0])

	flag.StringVarP(&delim, "delim", "d", " \t", "Delimiter characters for text input")
	flag.BoolVar(&asCSV, "csv", false, "Treat input as CSV instead of delimited text")
	flag.StringVar(&comma, "comma", ",", "CSV field separator")
	flag.StringVar(&comment, "comment", "#", "CSV comment character")
	flag.IntVar(&keyField, "keyfield", 0, "CSV field# holding the key")
	flag.IntVar(&valField, "valfield", 1, "CSV field# holding the value")

	flag.BoolVarP(&verify, "verify", "V", false, "Verify an existing cdb file")
	flag.StringVar(&checkKey, "check", "", "Look up KEY in OUTPUT and print its value")
	flag.IntVar(&cacheSize, "cache", 0, "Reader lookup cache size (0 = default)")

	flag.Usage = func() {
		fmt.Printf("cdbutil - build and inspect constant DB (cdb) files\nUsage: %s\n", usage)
		flag.PrintDefaults()
	}

	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		die("no output file name!\nUsage: %s\n", usage)
	}

	fn := args[0]
	args = args[1:]

	if verify || checkKey != "" {
		runVerify(fn)
		return
	}

	runBuild(fn, args)
}

func runVerify(fn string) {
	rd, err := cdb.OpenWith(fn, cdb.OpenOptions{CacheSize: cacheSize})
	if err != nil {
		die("can't open %s: %s", fn, err)
	}
	defer rd.Close()

	fmt.Println(rd)

	if checkKey != "" {
		v, err := rd.Get([]byte(checkKey))
		if err != nil {
			die("%s: %s", checkKey, err)
		}
		fmt.Printf("%s => %s\n", checkKey, v)
	}
}

func runBuild(fn string, args []string) {
	tmp := fmt.Sprintf("%s.tmp.%d", fn, os.Getpid())

	w, err := atomic.New(fn, tmp)
	if err != nil {
		die("can't create %s: %s", fn, err)
	}

	var n int
	if len(args) > 0 {
		for _, f := range args {
			c, err := addFile(w, f)
			if err != nil {
				warn("can't add %s: %s", f, err)
				continue
			}
			fmt.Printf("+ %s: %d records\n", f, c)
			n += c
		}
	} else {
		c, err := addStream(w, os.Stdin)
		if err != nil {
			w.Close()
			die("can't add <stdin>: %s", err)
		}
		fmt.Printf("+ <stdin>: %d records\n", c)
		n += c
	}

	if err := w.Flush(); err != nil {
		w.Close()
		die("can't write %s: %s", fn, err)
	}

	fmt.Printf("%s: %d records\n", fn, n)
}

func addFile(w *atomic.Writer, fn string) (int, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return 0, err
	}
	defer fd.Close()

	if asCSV || strings.HasSuffix(fn, ".csv") {
		return addCSV(w, fd)
	}
	return addStream(w, fd)
}

func addStream(w *atomic.Writer, r io.Reader) (int, error) {
	sc := bufio.NewScanner(bufio.NewReader(r))

	var n int
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if len(s) == 0 {
			continue
		}

		i := strings.IndexAny(s, delim)
		if i < 0 {
			continue
		}

		k := strings.TrimSpace(s[:i])
		v := strings.TrimSpace(s[i+1:])

		if err := w.Insert([]byte(k), []byte(v)); err != nil {
			return n, err
		}
		n++
	}

	return n, sc.Err()
}

func addCSV(w *atomic.Writer, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	if len(comma) > 0 {
		cr.Comma = rune(comma[0])
	}
	if len(comment) > 0 {
		cr.Comment = rune(comment[0])
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	max := keyField
	if valField > max {
		max = valField
	}
	max++

	var n int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}
		if len(rec) < max {
			continue
		}

		if err := w.Insert([]byte(rec[keyField]), []byte(rec[valField])); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}

	os.Stderr.WriteString(s)
	os.Stderr.Sync()
}
