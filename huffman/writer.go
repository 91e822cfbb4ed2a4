// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"io"
)

// Writer is an io.WriteCloser that compresses the data written to it.
//
// Since the code table depends on the whole input, the data is buffered in
// memory and the compressed file is only written to the underlying
// io.Writer when Close is called.
type Writer struct {
	InputOffset  int64 // Total number of bytes passed to Write
	OutputOffset int64 // Total number of bytes written to the underlying io.Writer

	wr   io.Writer
	buf  bytes.Buffer
	conf WriterConfig
	st   Stats
	err  error
}

// NewWriter returns a new Writer compressing data to w.
// A nil conf uses the default configuration.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	zw := new(Writer)
	if conf != nil {
		zw.conf = *conf
	}
	zw.Reset(w)
	return zw, nil
}

func (zw *Writer) Write(b []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	n, err := zw.buf.Write(b)
	zw.InputOffset += int64(n)
	if err != nil {
		zw.err = errIO(err)
	}
	return n, zw.err
}

// Close compresses the buffered data and writes it to the underlying
// io.Writer. It does not close the underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.err == errClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	data := zw.buf.Bytes()
	zw.st, zw.err = Compress(bytes.NewReader(data), int64(len(data)), zw.wr, &zw.conf)
	zw.OutputOffset = zw.st.OutputSize
	if zw.err != nil {
		return zw.err
	}
	zw.err = errClosed
	zw.buf = bytes.Buffer{}
	return nil
}

// Stats reports the statistics of the last compression. It is only valid
// after a successful call to Close.
func (zw *Writer) Stats() Stats { return zw.st }

// Reset discards the Writer's state and makes it equivalent to the result
// of a call to NewWriter, but writing to w instead.
func (zw *Writer) Reset(w io.Writer) {
	*zw = Writer{wr: w, conf: zw.conf}
}
