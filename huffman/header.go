// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"
	"unicode/utf8"

	"github.com/dsnet/hufftext/internal/errors"
)

// MarshalHeader serializes the code table as the textual header of a
// compressed file. Entries are written in ascending symbol order.
func MarshalHeader(codes CodeTable) ([]byte, error) {
	if len(codes) == 0 {
		return nil, errorf(errors.EmptyInput, "empty code table")
	}
	if err := codes.validate(errors.Internal); err != nil {
		return nil, err
	}

	var b []byte
	var rbuf [utf8.UTFMax]byte
	for _, s := range codes.Symbols() {
		if !utf8.ValidRune(s) {
			return nil, errorf(errors.Encoding, "symbol is not representable as UTF-8").For(s)
		}
		n := utf8.EncodeRune(rbuf[:], s)
		b = append(b, rbuf[:n]...)
		b = append(b, sepChar, ' ')
		b = append(b, codes[s]...)
		b = append(b, '\n')
	}
	return append(b, Terminator...), nil
}

// WriteHeader writes the header for codes to w and reports its length.
func WriteHeader(w io.Writer, codes CodeTable) (int64, error) {
	b, err := MarshalHeader(codes)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	if err != nil {
		return int64(n), errIO(err)
	}
	return int64(n), nil
}

// ReadHeader parses the header at the start of src. It returns the code
// table and the offset of the first payload byte.
//
// The header is read in chunks of conf.HeaderChunkSize bytes, so that its
// length is not bounded by the size of a single read.
func ReadHeader(src io.ReaderAt, conf *ReaderConfig) (CodeTable, int64, error) {
	p := headerParser{codes: make(CodeTable)}
	tr := newTextReader(src, 0, -1, conf.headerChunkSize())
	for {
		text, off, err := tr.Next()
		if err == io.EOF {
			return nil, 0, errorf(errors.MalformedHeader, "missing terminator").At(off)
		}
		if err != nil {
			return nil, 0, err
		}

		for i := 0; i < len(text); {
			r, n := utf8.DecodeRune(text[i:])
			if err := p.feed(r); err != nil {
				return nil, 0, err.At(off + int64(i))
			}
			i += n
			if p.state != stateDone {
				continue
			}

			end := off + int64(i)
			if len(p.codes) == 0 {
				return nil, 0, errorf(errors.MalformedHeader, "no entries").At(end)
			}
			if err := p.codes.validate(errors.MalformedHeader); err != nil {
				return nil, 0, err
			}
			log.Debugf("read header of %d entries, payload at offset %d", len(p.codes), end)
			return p.codes, end, nil
		}
	}
}

const (
	stateSymbol = iota // Expecting a symbol or the start of the terminator
	stateSep           // Expecting ':' after the symbol
	stateSpace         // Expecting ' ' after the separator
	stateCode          // Accumulating code bits until '\n'
	stateTerm          // Counting terminator runes until '\n'
	stateDone
)

// headerParser is the state machine that parses header entries one rune
// at a time.
type headerParser struct {
	state int
	sym   rune
	code  []byte
	term  int // Number of termChar seen in the terminator line
	codes CodeTable
}

func (p *headerParser) feed(r rune) *errors.Error {
	switch p.state {
	case stateSymbol:
		p.sym, p.code = r, p.code[:0]
		p.state = stateSep
		return nil
	case stateSep:
		switch {
		case r == sepChar:
			p.state = stateSpace
			return nil
		case p.sym == termChar && r == termChar:
			// A symbol line for termChar has a separator right after it.
			p.term = 2
			p.state = stateTerm
			return nil
		}
		return p.fail("expected %q after symbol %q, got %q", sepChar, p.sym, r)
	case stateSpace:
		if r == ' ' {
			p.state = stateCode
			return nil
		}
		return p.fail("expected ' ' after %q, got %q", sepChar, r)
	case stateCode:
		switch r {
		case '0', '1':
			p.code = append(p.code, byte(r))
			return nil
		case '\n':
			if len(p.code) == 0 {
				return p.fail("empty code for symbol %q", p.sym)
			}
			if _, ok := p.codes[p.sym]; ok {
				return p.fail("duplicate symbol %q", p.sym)
			}
			p.codes[p.sym] = string(p.code)
			p.state = stateSymbol
			return nil
		}
		return p.fail("unexpected %q in code for symbol %q", r, p.sym)
	case stateTerm:
		switch {
		case r == termChar && p.term < termLen:
			p.term++
			return nil
		case r == '\n' && p.term == termLen:
			p.state = stateDone
			return nil
		}
		return p.fail("bad terminator line")
	}
	return p.fail("data after terminator")
}

func (p *headerParser) fail(format string, args ...interface{}) *errors.Error {
	err := errorf(errors.MalformedHeader, format, args...)
	return &err
}
