// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command hufftext compresses and decompresses UTF-8 text files with a
// per-file Huffman code.
//
// Example usage:
//	$ hufftext -c twain.txt
//	$ hufftext -d twain.txt_compressed
//	$ hufftext -table twain.txt_compressed
//	$ hufftext -bench twain.txt,digits.txt -paths testdata -sizes 1e4,1e5
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/op/go-logging"

	"github.com/dsnet/hufftext/huffman"
	"github.com/dsnet/hufftext/internal/errors"
	"github.com/dsnet/hufftext/internal/tool/bench"
)

const progName = "hufftext"

const usageMessage = `Usage: hufftext [OPTION]... MODE FILE
Compress or decompress UTF-8 text with a per-file Huffman code.

Modes:
  -c FILE       compress FILE to FILE_compressed
  -d FILE       decompress FILE_compressed to FILE_decompressed
  -table FILE   print the code table stored in a compressed FILE
  -bench FILES  compare ratio and speed against other codecs

Options:
  -o PATH           write the output to PATH
  -skip-newlines    exclude '\n' from the symbol statistics
  -paths DIRS       search paths for bench files
  -tests LIST       bench tests (encRate,decRate,ratio)
  -formats LIST     bench formats (huff,fl,gz,xz)
  -sizes LIST       bench input sizes (e.g. 1e4,64Ki)
  -debug            enable debug logging
`

// Exit statuses follow sysexits(3) where one applies.
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitHeader   = 67
	exitTail     = 68
	exitSoftware = 70
	exitIOErr    = 74
)

var exitCodes = map[int]int{
	errors.Encoding:        exitDataErr,
	errors.EmptyInput:      exitNoInput,
	errors.MalformedHeader: exitHeader,
	errors.UndecodableTail: exitTail,
	errors.UnknownSymbol:   exitSoftware,
	errors.IO:              exitIOErr,
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if c, ok := exitCodes[errors.CodeOf(err)]; ok {
		return c
	}
	return exitSoftware
}

var log = logging.MustGetLogger("hufftext")

func startLogging(w io.Writer) logging.LeveledBackend {
	backend := logging.NewLogBackend(w, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	return leveled
}

type options struct {
	compress, decompress, table, bench string
	output                             string
	skipNewlines, debug                bool
	paths, tests, formats, sizes       string

	suite bench.Suite
}

func parseFlags(args []string) (*options, error) {
	var o options
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.compress, "c", "", "")
	fs.StringVar(&o.decompress, "d", "", "")
	fs.StringVar(&o.table, "table", "", "")
	fs.StringVar(&o.bench, "bench", "", "")
	fs.StringVar(&o.output, "o", "", "")
	fs.BoolVar(&o.skipNewlines, "skip-newlines", false, "")
	fs.StringVar(&o.paths, "paths", "testdata", "")
	fs.StringVar(&o.tests, "tests", "ratio", "")
	fs.StringVar(&o.formats, "formats", "huff,fl,gz,xz", "")
	fs.StringVar(&o.sizes, "sizes", "1e4,1e5", "")
	fs.BoolVar(&o.debug, "debug", false, "")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	var modes int
	for _, s := range []string{o.compress, o.decompress, o.table, o.bench} {
		if s != "" {
			modes++
		}
	}
	if modes != 1 {
		return nil, fmt.Errorf("exactly one of -c, -d, -table, or -bench is required")
	}
	if o.bench != "" {
		if err := o.parseSuite(); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

var listSep = regexp.MustCompile("[,:]")

func (o *options) parseSuite() error {
	s := bench.Suite{
		Files:  listSep.Split(o.bench, -1),
		Levels: []int{6},
	}
	for _, name := range listSep.Split(o.formats, -1) {
		ft, ok := parseFormat(name)
		if !ok {
			return fmt.Errorf("invalid format %q", name)
		}
		s.Formats = append(s.Formats, ft)
	}
	for _, name := range listSep.Split(o.tests, -1) {
		t, ok := parseTest(name)
		if !ok {
			return fmt.Errorf("invalid test %q", name)
		}
		s.Tests = append(s.Tests, t)
	}
	for _, v := range listSep.Split(o.sizes, -1) {
		n, err := strconv.ParsePrefix(v, strconv.AutoParse)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid size %q", v)
		}
		s.Sizes = append(s.Sizes, int(n))
	}
	o.suite = s
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	leveled := startLogging(stderr)

	o, err := parseFlags(args)
	if err == flag.ErrHelp {
		io.WriteString(stdout, usageMessage)
		return exitOK
	} else if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n%s", progName, err, usageMessage)
		return exitUsage
	}
	if o.debug {
		leveled.SetLevel(logging.DEBUG, "")
	}

	switch {
	case o.compress != "":
		err = compressFile(o)
	case o.decompress != "":
		err = decompressFile(o)
	case o.table != "":
		err = printTable(stdout, o)
	case o.bench != "":
		err = runBench(stdout, o)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
	}
	return exitCode(err)
}

func compressFile(o *options) error {
	conf := &huffman.WriterConfig{SkipNewlines: o.skipNewlines}
	out, st, err := huffman.CompressFile(o.compress, o.output, conf)
	if err != nil {
		return err
	}
	log.Infof("%s: %s -> %s (%.2fx, %d symbols)", out,
		formatSize(st.InputSize), formatSize(st.OutputSize), st.Ratio(), st.Symbols)
	return nil
}

func decompressFile(o *options) error {
	out, st, err := huffman.DecompressFile(o.decompress, o.output, nil)
	if err != nil {
		return err
	}
	log.Infof("%s: %s -> %s", out, formatSize(st.InputSize), formatSize(st.OutputSize))
	return nil
}

func printTable(w io.Writer, o *options) error {
	f, err := os.Open(o.table)
	if err != nil {
		return errors.Wrap(errors.IO, "hufftext", err)
	}
	defer f.Close()
	codes, off, err := huffman.ReadHeader(f, nil)
	if err != nil {
		return err
	}
	log.Debugf("header is %d bytes", off)
	_, err = io.WriteString(w, codes.String())
	return errors.Wrap(errors.IO, "hufftext", err)
}

func runBench(w io.Writer, o *options) error {
	ts := time.Now()
	bench.Paths = listSep.Split(o.paths, -1)
	bench.Run(w, o.suite)
	fmt.Fprintf(w, "RUNTIME: %v\n", time.Since(ts))
	return nil
}

func parseFormat(s string) (bench.Format, bool) {
	for _, ft := range []bench.Format{bench.FormatHuffman, bench.FormatFlate, bench.FormatGzip, bench.FormatXZ} {
		if ft.String() == s {
			return ft, true
		}
	}
	return 0, false
}

func parseTest(s string) (bench.Test, bool) {
	for _, t := range []bench.Test{bench.TestEncodeRate, bench.TestDecodeRate, bench.TestCompressRatio} {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

func formatSize(n int64) string {
	s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
	return strings.Replace(s, ".00", "", -1) + "B"
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
