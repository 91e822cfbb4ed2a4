// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a lossless text compressor based on Huffman
// coding.
//
// A compressed file starts with a textual header holding the code table,
// one "<symbol>: <code>" line per symbol, followed by a terminator line of
// 21 '=' characters. The packed payload follows the header directly. Bits are
// packed most-significant bit first and the final byte is padded with zero
// bits.
//
// Unlike the plain layout where the payload simply runs to the end of the
// file, an 8-byte big-endian count of the meaningful payload bits ends the
// file. The decoder never interprets padding as a symbol, and a file that
// lost its last bytes fails to decode instead of yielding shortened text.
// Files without the count are not readable by this package, and files
// written by it are not readable by decoders expecting the plain layout.
//
//	a: 1
//	b: 0
//	=====================
//	<payload bytes> <bit count>
package huffman

import (
	"fmt"
	"io"
	"strings"

	"github.com/op/go-logging"

	"github.com/dsnet/hufftext/internal/errors"
)

var log = logging.MustGetLogger("hufftext/huffman")

const (
	termChar = '='
	termLen  = 21 // Number of termChar runes in the terminator line
	sepChar  = ':'

	trailerLen = 8 // Size of the payload bit count trailer
)

// Terminator is the line that ends the header.
var Terminator = strings.Repeat(string(termChar), termLen) + "\n"

func errorf(code int, format string, args ...interface{}) errors.Error {
	return errors.New(code, "huffman", fmt.Sprintf(format, args...))
}

func errIO(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return errors.Wrap(errors.IO, "huffman", err)
}

var errClosed error = errors.New(errors.Closed, "huffman", "stream is closed")

// countWriter counts the bytes written through it.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}
