// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/dsnet/hufftext/internal/errors"
)

// Stats describes a single compression or decompression run.
type Stats struct {
	InputSize   int64 // Number of bytes consumed
	OutputSize  int64 // Number of bytes produced
	HeaderSize  int64 // Length of the header, which is also the payload offset
	PayloadBits int64 // Number of meaningful payload bits
	Symbols     int   // Number of distinct symbols
}

// Ratio reports InputSize divided by OutputSize for a compression run.
func (st Stats) Ratio() float64 {
	if st.OutputSize == 0 {
		return 0
	}
	return float64(st.InputSize) / float64(st.OutputSize)
}

// Compress compresses the UTF-8 text in src[:size] and writes the
// compressed file to dst.
//
// The input is read twice: once to count symbols and once to pack them.
func Compress(src io.ReaderAt, size int64, dst io.Writer, conf *WriterConfig) (st Stats, err error) {
	defer errors.Recover(&err)
	st.InputSize = size

	freqs, err := CountFrequencies(src, size, conf)
	if err != nil {
		return st, err
	}
	tree, err := BuildTree(freqs)
	if err != nil {
		return st, err
	}
	codes := tree.Codes()
	st.Symbols = len(codes)

	cw := &countWriter{w: dst}
	if st.HeaderSize, err = WriteHeader(cw, codes); err != nil {
		return st, err
	}
	st.PayloadBits, err = Pack(src, size, codes, cw, conf)
	st.OutputSize = cw.n
	if err != nil {
		return st, err
	}
	if want := codes.EncodedBits(freqs); st.PayloadBits != want && !conf.skipNewlines() {
		errors.Panic(errorf(errors.Internal, "packed %d bits, expected %d", st.PayloadBits, want))
	}
	log.Debugf("compressed %d bytes into %d bytes (%d symbols)", st.InputSize, st.OutputSize, st.Symbols)
	return st, nil
}

// Decompress decodes the compressed file in src[:size] and writes the
// original text to dst.
func Decompress(src io.ReaderAt, size int64, dst io.Writer, conf *ReaderConfig) (st Stats, err error) {
	defer errors.Recover(&err)
	st.InputSize = size

	codes, off, err := ReadHeader(src, conf)
	if err != nil {
		return st, err
	}
	st.HeaderSize, st.Symbols = off, len(codes)

	cw := &countWriter{w: dst}
	_, st.PayloadBits, err = unpack(src, off, size, codes.Invert(), cw, conf)
	st.OutputSize = cw.n
	if err != nil {
		return st, err
	}
	log.Debugf("decompressed %d bytes into %d bytes", st.InputSize, st.OutputSize)
	return st, nil
}
