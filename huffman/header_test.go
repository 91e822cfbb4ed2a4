// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dsnet/hufftext/internal/errors"
)

func TestMarshalHeader(t *testing.T) {
	got, err := MarshalHeader(CodeTable{'b': "0", 'a': "10", '\n': "11"})
	assert.NoError(t, err)
	assert.Equal(t, "\n: 11\na: 10\nb: 0\n=====================\n", string(got))

	_, err = MarshalHeader(CodeTable{})
	assert.True(t, errors.IsEmptyInput(err), "unexpected error: %v", err)

	_, err = MarshalHeader(CodeTable{'a': "0", 'b': "01"})
	assert.True(t, errors.IsInternal(err), "unexpected error: %v", err)

	_, err = MarshalHeader(CodeTable{'a': "0", 0xd800: "1"})
	assert.True(t, errors.IsEncoding(err), "unexpected error: %v", err)
}

func TestHeaderRoundTrip(t *testing.T) {
	tables := []CodeTable{
		{'x': "0"},
		{'a': "1", 'b': "0"},
		{'=': "0", ':': "10", ' ': "110", '\n': "111"},
		{'日': "00", '本': "01", '🦀': "10", 'é': "110", 'z': "111"},
	}
	for i, codes := range tables {
		want, err := MarshalHeader(codes)
		if err != nil {
			t.Fatalf("test %d, unexpected MarshalHeader error: %v", i, err)
		}
		// Binary payload bytes directly follow the header.
		file := append(append([]byte(nil), want...), 0xff, 0xfe, 0x80, 0x00, 0xe6)

		for size := 1; size <= len(file)+1; size++ {
			t.Run(fmt.Sprintf("Table:%d/Chunk:%d", i, size), func(t *testing.T) {
				got, off, err := ReadHeader(bytes.NewReader(file), &ReaderConfig{HeaderChunkSize: size})
				if err != nil {
					t.Fatalf("unexpected ReadHeader error: %v", err)
				}
				assert.Equal(t, int64(len(want)), off)
				if diff := cmp.Diff(codes, got); diff != "" {
					t.Errorf("code table mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteHeader(&buf, CodeTable{'a': "1", 'b': "0"})
	assert.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "a: 1\nb: 0\n"+Terminator, buf.String())
}

func TestReadHeaderErrors(t *testing.T) {
	term := Terminator
	vectors := []struct {
		desc  string
		input string
		errf  func(error) bool
	}{
		{"empty file", "", errors.IsMalformedHeader},
		{"no terminator", "a: 1\nb: 0\n", errors.IsMalformedHeader},
		{"no entries", term + "\x00", errors.IsMalformedHeader},
		{"missing separator", "a 1\n" + term, errors.IsMalformedHeader},
		{"missing space", "a:1\n" + term, errors.IsMalformedHeader},
		{"empty code", "a: \n" + term, errors.IsMalformedHeader},
		{"non-binary code", "a: 12\n" + term, errors.IsMalformedHeader},
		{"duplicate symbol", "a: 0\na: 1\n" + term, errors.IsMalformedHeader},
		{"not prefix-free", "a: 0\nb: 01\n" + term, errors.IsMalformedHeader},
		{"short terminator", "a: 0\n" + strings.Repeat("=", termLen-1) + "\n", errors.IsMalformedHeader},
		{"long terminator", "a: 0\n" + strings.Repeat("=", termLen+1) + "\n", errors.IsMalformedHeader},
		{"invalid UTF-8", "a: 0\n\xff\xfe\xfd\xfc\xfb", errors.IsEncoding},
		{"truncated character", "a: 0\n\xe6\x97", errors.IsEncoding},
	}
	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			_, _, err := ReadHeader(strings.NewReader(v.input), nil)
			assert.True(t, v.errf(err), "unexpected error: %v", err)
		})
	}
}

func TestReadHeaderOffset(t *testing.T) {
	input := "=: 0\n>: 1\n" + Terminator + "payload"
	codes, off, err := ReadHeader(strings.NewReader(input), &ReaderConfig{HeaderChunkSize: 4})
	assert.NoError(t, err)
	assert.Equal(t, int64(len(input)-len("payload")), off)
	assert.Equal(t, CodeTable{'=': "0", '>': "1"}, codes)

	var perr errors.Error
	_, _, err = ReadHeader(strings.NewReader("ab: 0\n"+Terminator), nil)
	if assert.ErrorAs(t, err, &perr) {
		assert.Equal(t, int64(1), perr.Offset)
	}
}
