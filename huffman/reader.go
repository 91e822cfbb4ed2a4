// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"io"
)

// Reader is an io.ReadCloser that decompresses a compressed file read from
// an underlying io.Reader.
//
// The header and the payload trailer are only known once the whole input is
// available, so the first call to Read consumes the underlying io.Reader up
// to io.EOF.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from the underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd    io.Reader
	conf  ReaderConfig
	out   bytes.Buffer
	st    Stats
	ready bool
	err   error
}

// NewReader returns a new Reader decompressing data from r.
// A nil conf uses the default configuration.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	zr := new(Reader)
	if conf != nil {
		zr.conf = *conf
	}
	zr.Reset(r)
	return zr, nil
}

func (zr *Reader) Read(b []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	if !zr.ready {
		if zr.err = zr.decode(); zr.err != nil {
			return 0, zr.err
		}
		zr.ready = true
	}
	n, err := zr.out.Read(b)
	zr.OutputOffset += int64(n)
	if err == io.EOF {
		zr.err = io.EOF
	}
	return n, err
}

func (zr *Reader) decode() error {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, zr.rd)
	zr.InputOffset += n
	if err != nil {
		return errIO(err)
	}
	zr.st, err = Decompress(bytes.NewReader(buf.Bytes()), n, &zr.out, &zr.conf)
	return err
}

// Stats reports the statistics of the decompression. It is only valid once
// Read has returned io.EOF.
func (zr *Reader) Stats() Stats { return zr.st }

// Close ends the stream. It does not close the underlying io.Reader.
func (zr *Reader) Close() error {
	if zr.err == errClosed {
		return nil
	}
	if zr.err != nil && zr.err != io.EOF {
		return zr.err
	}
	zr.err = errClosed
	zr.out.Reset()
	return nil
}

// Reset discards the Reader's state and makes it equivalent to the result
// of a call to NewReader, but reading from r instead.
func (zr *Reader) Reset(r io.Reader) {
	*zr = Reader{rd: r, conf: zr.conf}
}
