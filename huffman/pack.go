// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/icza/bitio"

	"github.com/dsnet/hufftext/internal/errors"
)

// Pack encodes the UTF-8 text in src[:size] using codes and writes the
// packed payload to dst. It returns the number of meaningful payload bits.
//
// Bits are packed most-significant bit first. The final byte is padded
// with zero bits and followed by the 8-byte big-endian bit count.
func Pack(src io.ReaderAt, size int64, codes CodeTable, dst io.Writer, conf *WriterConfig) (int64, error) {
	if err := codes.validate(errors.Internal); err != nil {
		return 0, err
	}

	var nbits int64
	bw := bitio.NewWriter(dst)
	tr := newTextReader(src, 0, size, conf.chunkSize())
	for {
		text, off, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nbits, err
		}
		for i := 0; i < len(text); {
			r, n := utf8.DecodeRune(text[i:])
			code, ok := codes[r]
			if !ok {
				return nbits, errorf(errors.UnknownSymbol, "symbol has no code").For(r).At(off + int64(i))
			}
			for j := 0; j < len(code); j++ {
				if err := bw.WriteBool(code[j] == '1'); err != nil {
					return nbits, errIO(err)
				}
			}
			nbits += int64(len(code))
			i += n
		}
	}

	// Flush the final partial byte.
	if err := bw.Close(); err != nil {
		return nbits, errIO(err)
	}
	var trailer [trailerLen]byte
	binary.BigEndian.PutUint64(trailer[:], uint64(nbits))
	if _, err := dst.Write(trailer[:]); err != nil {
		return nbits, errIO(err)
	}
	log.Debugf("packed %d bits from %d bytes", nbits, tr.Offset())
	return nbits, nil
}
