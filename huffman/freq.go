// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"
	"sort"
	"unicode/utf8"
)

// FrequencyTable maps each symbol of the input to its number of occurrences.
type FrequencyTable map[rune]int

// CountFrequencies counts the symbols of the UTF-8 text in src[:size].
//
// If conf.SkipNewlines is set, newlines do not contribute to the statistics,
// but a newline that occurs in the input is still given a count of one so
// that it receives a code.
func CountFrequencies(src io.ReaderAt, size int64, conf *WriterConfig) (FrequencyTable, error) {
	freqs := make(FrequencyTable)
	skip := conf.skipNewlines()
	var sawNewline bool

	tr := newTextReader(src, 0, size, conf.chunkSize())
	for {
		text, _, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(text); {
			r, n := rune(text[i]), 1
			if r >= utf8.RuneSelf {
				r, n = utf8.DecodeRune(text[i:])
			}
			i += n
			if r == '\n' && skip {
				sawNewline = true
				continue
			}
			freqs[r]++
		}
	}
	if sawNewline {
		freqs['\n'] = 1
	}
	log.Debugf("counted %d distinct symbols in %d bytes", len(freqs), tr.Offset())
	return freqs, nil
}

// Total reports the total number of symbol occurrences.
func (ft FrequencyTable) Total() (n int64) {
	for _, c := range ft {
		n += int64(c)
	}
	return n
}

// Symbols returns the symbols of the table in ascending order.
func (ft FrequencyTable) Symbols() []rune {
	syms := make([]rune, 0, len(ft))
	for s := range ft {
		syms = append(syms, s)
	}
	sortRunes(syms)
	return syms
}

func sortRunes(s []rune) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
