// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// CodeTable maps each symbol to its code, written as a string of '0' and '1'.
type CodeTable map[rune]string

// DecodingTable maps each code back to its symbol.
type DecodingTable map[string]rune

// Codes derives the code of every leaf. A left edge appends '0' and a right
// edge appends '1'. A tree made of a single leaf gives that symbol the
// code "0".
func (t *Tree) Codes() CodeTable {
	codes := make(CodeTable, t.Len())
	root := t.nodes[t.Root()]
	if root.IsLeaf() {
		codes[root.Symbol] = "0"
		return codes
	}

	var walk func(i int, path []byte)
	walk = func(i int, path []byte) {
		n := t.nodes[i]
		if n.IsLeaf() {
			codes[n.Symbol] = string(path)
			return
		}
		walk(n.Left, append(path, '0'))
		walk(n.Right, append(path, '1'))
	}
	walk(t.Root(), make([]byte, 0, t.Len()))
	return codes
}

// DeriveCodes returns the code table of t and its inverse.
func DeriveCodes(t *Tree) (CodeTable, DecodingTable) {
	codes := t.Codes()
	return codes, codes.Invert()
}

// Invert returns the decoding table for ct.
func (ct CodeTable) Invert() DecodingTable {
	dt := make(DecodingTable, len(ct))
	for s, c := range ct {
		dt[c] = s
	}
	return dt
}

// Symbols returns the symbols of the table in ascending order.
func (ct CodeTable) Symbols() []rune {
	syms := make([]rune, 0, len(ct))
	for s := range ct {
		syms = append(syms, s)
	}
	sortRunes(syms)
	return syms
}

// MaxLen reports the length of the longest code.
func (ct CodeTable) MaxLen() (n int) {
	for _, c := range ct {
		if len(c) > n {
			n = len(c)
		}
	}
	return n
}

// EncodedBits reports the number of payload bits needed to encode text
// with the given frequencies.
func (ct CodeTable) EncodedBits(freqs FrequencyTable) (n int64) {
	for s, f := range freqs {
		n += int64(f) * int64(len(ct[s]))
	}
	return n
}

// IsPrefixFree reports whether no code is a prefix of another code.
func (ct CodeTable) IsPrefixFree() bool {
	codes := make([]string, 0, len(ct))
	for _, c := range ct {
		codes = append(codes, c)
	}
	// If a code is a prefix of any other code, then it is also a prefix of
	// the code that immediately follows it in sorted order.
	sort.Strings(codes)
	for i := 1; i < len(codes); i++ {
		if strings.HasPrefix(codes[i], codes[i-1]) {
			return false
		}
	}
	return true
}

// validate checks that every code is a non-empty string of '0' and '1' and
// that the table is a prefix code. Failures are reported with the given code.
func (ct CodeTable) validate(code int) error {
	for _, s := range ct.Symbols() {
		c := ct[s]
		if len(c) == 0 {
			return errorf(code, "empty code").For(s)
		}
		if strings.Trim(c, "01") != "" {
			return errorf(code, "code %q is not binary", c).For(s)
		}
	}
	if !ct.IsPrefixFree() {
		return errorf(code, "codes are not prefix-free")
	}
	return nil
}

// String formats the table one symbol per line, in ascending symbol order.
func (ct CodeTable) String() string {
	var b bytes.Buffer
	for _, s := range ct.Symbols() {
		fmt.Fprintf(&b, "%q\t%s\n", s, ct[s])
	}
	return b.String()
}
