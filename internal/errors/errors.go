// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements functions to manipulate codec errors.
//
// All errors raised by this module are of type Error. The Code field
// identifies the kind of failure, which the CLI maps onto an exit status.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug.
	Internal

	// IO indicates that an open, read, or write on a file failed.
	IO

	// Encoding indicates that input bytes are not valid UTF-8 text.
	Encoding

	// EmptyInput indicates that there is nothing to compress.
	EmptyInput

	// MalformedHeader indicates that the code table at the start of a
	// compressed file could not be parsed.
	MalformedHeader

	// UnknownSymbol indicates that a symbol has no entry in the code table.
	UnknownSymbol

	// UndecodableTail indicates that payload bits are left over at the end
	// of input that match no code, or that the payload was truncated.
	UndecodableTail

	// Closed indicates that the operation applied to a closed stream.
	Closed
)

var codeMap = map[int]string{
	Unknown:         "unknown error",
	Internal:        "internal error",
	IO:              "io error",
	Encoding:        "encoding error",
	EmptyInput:      "empty input",
	MalformedHeader: "malformed header",
	UnknownSymbol:   "unknown symbol",
	UndecodableTail: "undecodable tail",
	Closed:          "closed",
}

// Error is the error type for every failure raised by this module.
type Error struct {
	Code   int
	Pkg    string
	Msg    string
	Offset int64 // Byte or bit offset involved, or -1 if not applicable
	Symbol *rune // Symbol involved, if any
	Err    error // Underlying cause, if any
}

// New returns an Error with no offset or symbol attached.
func New(code int, pkg, msg string) Error {
	return Error{Code: code, Pkg: pkg, Msg: msg, Offset: -1}
}

// Wrap returns an Error of the given code that wraps err.
// If err is already an Error, it is returned unchanged.
func Wrap(code int, pkg string, err error) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		return err
	}
	return Error{Code: code, Pkg: pkg, Offset: -1, Err: err}
}

// At returns a copy of e with the offset set.
func (e Error) At(off int64) Error {
	e.Offset = off
	return e
}

// For returns a copy of e with the symbol set.
func (e Error) For(sym rune) Error {
	e.Symbol = &sym
	return e
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	if e.Symbol != nil {
		ss = append(ss, fmt.Sprintf("symbol %q", *e.Symbol))
	}
	if e.Offset >= 0 {
		ss = append(ss, fmt.Sprintf("offset %d", e.Offset))
	}
	if e.Err != nil {
		ss = append(ss, e.Err.Error())
	}
	return strings.Join(ss, ": ")
}

func (e Error) Unwrap() error { return e.Err }

func (e Error) CompressError()          {}
func (e Error) IsInternal() bool        { return e.Code == Internal }
func (e Error) IsIO() bool              { return e.Code == IO }
func (e Error) IsEncoding() bool        { return e.Code == Encoding }
func (e Error) IsEmptyInput() bool      { return e.Code == EmptyInput }
func (e Error) IsMalformedHeader() bool { return e.Code == MalformedHeader }
func (e Error) IsUnknownSymbol() bool   { return e.Code == UnknownSymbol }
func (e Error) IsUndecodableTail() bool { return e.Code == UndecodableTail }
func (e Error) IsClosed() bool          { return e.Code == Closed }

func IsInternal(err error) bool        { return isCode(err, Internal) }
func IsIO(err error) bool              { return isCode(err, IO) }
func IsEncoding(err error) bool        { return isCode(err, Encoding) }
func IsEmptyInput(err error) bool      { return isCode(err, EmptyInput) }
func IsMalformedHeader(err error) bool { return isCode(err, MalformedHeader) }
func IsUnknownSymbol(err error) bool   { return isCode(err, UnknownSymbol) }
func IsUndecodableTail(err error) bool { return isCode(err, UndecodableTail) }
func IsClosed(err error) bool          { return isCode(err, Closed) }

// CodeOf reports the Code of err, or Unknown if err is not an Error.
func CodeOf(err error) int {
	var e Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

func isCode(err error, code int) bool {
	var e Error
	return errors.As(err, &e) && e.Code == code
}

// errWrap is used by Panic and Recover to ensure that only errors raised by
// Panic are recovered by Recover.
type errWrap struct{ e *error }

// Recover converts a panic raised by Panic back into an error stored in err.
// Any other panic is re-raised.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case errWrap:
		*err = *ex.e
	default:
		panic(ex)
	}
}

// Panic raises err such that a deferred Recover can catch it.
func Panic(err error) {
	panic(errWrap{&err})
}
