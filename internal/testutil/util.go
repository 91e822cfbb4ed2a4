// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"bytes"
	"encoding/hex"
	"io"
	"io/ioutil"
	"unicode/utf8"
)

// LoadFile loads the first n bytes of the input file. If n is less than zero,
// then it will return the input file as is. If the file is smaller than n,
// then it will replicate the input until it matches n.
//
// The result never ends in a partial UTF-8 sequence, so it may be up to
// utf8.UTFMax-1 bytes shorter than n.
func LoadFile(file string, n int) ([]byte, error) {
	input, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return input, nil
	}
	if len(input) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	output := bytes.Repeat(input, (n+len(input)-1)/len(input))[:n]
	for len(output) > 0 && !utf8.FullRune(output[lastRuneStart(output):]) {
		output = output[:lastRuneStart(output)]
	}
	return output, nil
}

func lastRuneStart(b []byte) int {
	i := len(b) - 1
	for i > 0 && !utf8.RuneStart(b[i]) {
		i--
	}
	return i
}

// MustLoadFile must load a file or else panics.
func MustLoadFile(file string) []byte {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BuggyReader returns Err after N bytes have been read from R.
type BuggyReader struct {
	R   io.Reader
	N   int64 // Number of valid bytes to read
	Err error // Return this error after N bytes
}

func (br *BuggyReader) Read(buf []byte) (int, error) {
	if int64(len(buf)) > br.N {
		buf = buf[:br.N]
	}
	n, err := br.R.Read(buf)
	br.N -= int64(n)
	if err == nil && br.N <= 0 {
		return n, br.Err
	}
	return n, err
}

// BuggyReaderAt returns Err for any read that reaches past the first N bytes
// of R.
type BuggyReaderAt struct {
	R   io.ReaderAt
	N   int64 // Number of valid bytes to read
	Err error // Return this error past N bytes
}

func (br *BuggyReaderAt) ReadAt(buf []byte, off int64) (int, error) {
	if off+int64(len(buf)) <= br.N {
		return br.R.ReadAt(buf, off)
	}
	if off >= br.N {
		return 0, br.Err
	}
	n, err := br.R.ReadAt(buf[:br.N-off], off)
	if err == nil {
		err = br.Err
	}
	return n, err
}

// BuggyWriter returns Err after N bytes have been written to W.
type BuggyWriter struct {
	W   io.Writer
	N   int64 // Number of valid bytes to write
	Err error // Return this error after N bytes
}

func (bw *BuggyWriter) Write(buf []byte) (int, error) {
	if int64(len(buf)) > bw.N {
		buf = buf[:bw.N]
	}
	n, err := bw.W.Write(buf)
	bw.N -= int64(n)
	if err == nil && bw.N <= 0 {
		return n, bw.Err
	}
	return n, err
}
