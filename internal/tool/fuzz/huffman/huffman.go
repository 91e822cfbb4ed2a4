// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman is a go-fuzz harness for the Huffman text codec.
package huffman

import (
	"bytes"
	"io/ioutil"
	"unicode/utf8"

	"github.com/dsnet/hufftext/huffman"
	"github.com/dsnet/hufftext/internal/errors"
)

func Fuzz(data []byte) int {
	ok := testDecoder(data)
	if utf8.Valid(data) && len(data) > 0 {
		testRoundTrip(data, nil)
		testRoundTrip(data, &huffman.WriterConfig{SkipNewlines: true, ChunkSize: 4})
	}
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoder tests that arbitrary input either decodes or fails with a
// classified error. Decoded output must compress back into a stream that
// yields the same text.
func testDecoder(data []byte) bool {
	zr, err := huffman.NewReader(bytes.NewReader(data), &huffman.ReaderConfig{HeaderChunkSize: 4})
	if err != nil {
		panic(err)
	}
	b, err := ioutil.ReadAll(zr)
	if err != nil {
		if c := errors.CodeOf(err); c == errors.Unknown || c == errors.Internal {
			panic(err)
		}
		return false
	}
	if err := zr.Close(); err != nil {
		panic(err)
	}
	if len(b) > 0 {
		testRoundTrip(b, nil)
	}
	return true
}

// testRoundTrip compresses the input with both the streaming Writer and
// Compress, checks that they agree, and that decompression is lossless.
func testRoundTrip(want []byte, conf *huffman.WriterConfig) {
	bb := new(bytes.Buffer)
	zw, err := huffman.NewWriter(bb, conf)
	if err != nil {
		panic(err)
	}
	n, err := zw.Write(want)
	if n != len(want) || err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}

	cb := new(bytes.Buffer)
	if _, err := huffman.Compress(bytes.NewReader(want), int64(len(want)), cb, conf); err != nil {
		panic(err)
	}
	if !bytes.Equal(bb.Bytes(), cb.Bytes()) {
		panic("mismatching compressed bytes")
	}

	db := new(bytes.Buffer)
	if _, err := huffman.Decompress(bytes.NewReader(cb.Bytes()), int64(cb.Len()), db, nil); err != nil {
		panic(err)
	}
	if !bytes.Equal(db.Bytes(), want) {
		panic("mismatching bytes")
	}
}
