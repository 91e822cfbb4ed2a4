// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/icza/bitio"

	"github.com/dsnet/hufftext/internal/errors"
)

// Unpack decodes the payload stored in src[offset:size] using dec and
// writes the recovered text to dst. It returns the number of symbols
// emitted.
//
// Bits are appended one at a time to a candidate code, which is looked up
// in dec after every bit. Since the codes form a prefix code, the first
// match is the only possible one.
func Unpack(src io.ReaderAt, offset, size int64, dec DecodingTable, dst io.Writer, conf *ReaderConfig) (int64, error) {
	nsyms, _, err := unpack(src, offset, size, dec, dst, conf)
	return nsyms, err
}

func unpack(src io.ReaderAt, offset, size int64, dec DecodingTable, dst io.Writer, conf *ReaderConfig) (nsyms, nbits int64, err error) {
	plen := size - offset - trailerLen
	if plen < 0 {
		return 0, 0, errorf(errors.UndecodableTail, "payload is missing its bit count").At(offset)
	}
	var trailer [trailerLen]byte
	if n, err := src.ReadAt(trailer[:], size-trailerLen); n < trailerLen {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return 0, 0, errIO(err)
	}
	// Non-empty text always packs at least one bit, so a zero count can only
	// come from a truncated file whose payload ran into the trailer.
	cnt := binary.BigEndian.Uint64(trailer[:])
	if cnt == 0 {
		return 0, 0, errorf(errors.UndecodableTail, "bit count is zero").At(size - trailerLen)
	}
	if cnt > uint64(plen)*8 || uint64(plen)*8-cnt >= 8 {
		return 0, 0, errorf(errors.UndecodableTail, "bit count %d does not match %d payload bytes", cnt, plen).At(size - trailerLen)
	}
	nbits = int64(cnt)

	var maxLen int
	for c := range dec {
		if len(c) > maxLen {
			maxLen = len(c)
		}
	}

	br := bitio.NewReader(bufio.NewReaderSize(io.NewSectionReader(src, offset, plen), conf.chunkSize()))
	bw := bufio.NewWriter(dst)
	cand := make([]byte, 0, maxLen)
	var rbuf [utf8.UTFMax]byte
	for i := int64(0); i < nbits; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return nsyms, nbits, errIO(err)
		}
		if bit {
			cand = append(cand, '1')
		} else {
			cand = append(cand, '0')
		}

		if sym, ok := dec[string(cand)]; ok {
			n := utf8.EncodeRune(rbuf[:], sym)
			if _, err := bw.Write(rbuf[:n]); err != nil {
				return nsyms, nbits, errIO(err)
			}
			nsyms++
			cand = cand[:0]
		} else if len(cand) >= maxLen {
			return nsyms, nbits, errorf(errors.UndecodableTail, "bits %s match no code", cand).At(offset + i/8)
		}
	}
	if len(cand) > 0 {
		return nsyms, nbits, errorf(errors.UndecodableTail, "%d trailing bits match no code", len(cand)).At(size - trailerLen)
	}
	if err := bw.Flush(); err != nil {
		return nsyms, nbits, errIO(err)
	}
	log.Debugf("unpacked %d symbols from %d bits", nsyms, nbits)
	return nsyms, nbits, nil
}
