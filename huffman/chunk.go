// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"
	"unicode/utf8"

	"github.com/dsnet/hufftext/internal/errors"
)

// textReader reads UTF-8 text from an io.ReaderAt in fixed-size chunks.
//
// A chunk may end in the middle of an encoded character, or run past the
// text into binary data. Each chunk is therefore cut back to its longest
// valid UTF-8 prefix, and the read cursor advances by exactly the length of
// that prefix. The bytes that were cut are read again by the next call.
type textReader struct {
	rd  io.ReaderAt
	off int64 // Offset of the next chunk
	end int64 // Offset to stop at; negative means until io.EOF
	buf []byte
}

func newTextReader(rd io.ReaderAt, off, end int64, chunkSize int) *textReader {
	return &textReader{rd: rd, off: off, end: end, buf: make([]byte, chunkSize)}
}

// Next returns the next chunk of valid text along with the file offset of
// its first byte. The returned slice is only valid until the next call.
// It returns io.EOF once all input has been consumed.
func (tr *textReader) Next() ([]byte, int64, error) {
	buf := tr.buf
	if tr.end >= 0 && int64(len(buf)) > tr.end-tr.off {
		buf = buf[:tr.end-tr.off]
	}
	n, err := tr.rd.ReadAt(buf, tr.off)
	if err != nil && err != io.EOF {
		return nil, tr.off, errIO(err)
	}
	buf = buf[:n]

	off := tr.off
	valid := validPrefix(buf)
	if valid == 0 {
		if n == 0 {
			return nil, off, io.EOF
		}
		// Either the chunk holds a whole invalid character, or the input
		// ends in the middle of one.
		return nil, off, errorf(errors.Encoding, "invalid UTF-8 sequence").At(off)
	}
	tr.off += int64(valid)
	return buf[:valid], off, nil
}

// Offset reports the offset of the next chunk.
func (tr *textReader) Offset() int64 { return tr.off }

// validPrefix reports the length of the longest prefix of b made of whole,
// valid UTF-8 characters.
func validPrefix(b []byte) int {
	var i int
	for i < len(b) {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n <= 1 {
			break
		}
		i += n
	}
	return i
}
