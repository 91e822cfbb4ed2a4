// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_ds_lib

package bench

import (
	"io"

	"github.com/dsnet/hufftext/huffman"
)

func init() {
	RegisterEncoder(FormatHuffman, "ds",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := huffman.NewWriter(w, nil)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterEncoder(FormatHuffman, "ds-nl",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := huffman.NewWriter(w, &huffman.WriterConfig{SkipNewlines: true})
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatHuffman, "ds",
		func(r io.Reader) io.ReadCloser {
			zr, err := huffman.NewReader(r, nil)
			if err != nil {
				panic(err)
			}
			return zr
		})
}
