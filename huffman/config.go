// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "unicode/utf8"

const (
	DefaultChunkSize       = 4096
	DefaultHeaderChunkSize = 64
)

// WriterConfig configures compression. A nil config uses the defaults.
type WriterConfig struct {
	// SkipNewlines excludes '\n' from the frequency statistics. A newline
	// that occurs in the input is still encoded, with the minimum weight.
	SkipNewlines bool

	// ChunkSize is the number of source bytes read at a time.
	ChunkSize int
}

// ReaderConfig configures decompression. A nil config uses the defaults.
type ReaderConfig struct {
	// HeaderChunkSize is the number of bytes read at a time while parsing
	// the header.
	HeaderChunkSize int

	// ChunkSize is the number of payload bytes read at a time.
	ChunkSize int
}

func (c *WriterConfig) chunkSize() int {
	if c == nil {
		return DefaultChunkSize
	}
	return chunkSize(c.ChunkSize, DefaultChunkSize)
}

func (c *WriterConfig) skipNewlines() bool {
	return c != nil && c.SkipNewlines
}

func (c *ReaderConfig) chunkSize() int {
	if c == nil {
		return DefaultChunkSize
	}
	return chunkSize(c.ChunkSize, DefaultChunkSize)
}

func (c *ReaderConfig) headerChunkSize() int {
	if c == nil {
		return DefaultHeaderChunkSize
	}
	return chunkSize(c.HeaderChunkSize, DefaultHeaderChunkSize)
}

// A chunk must always be able to hold one whole character.
func chunkSize(n, def int) int {
	switch {
	case n <= 0:
		return def
	case n < utf8.UTFMax:
		return utf8.UTFMax
	}
	return n
}
