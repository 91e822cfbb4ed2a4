// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"io"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsnet/hufftext/internal/errors"
	"github.com/dsnet/hufftext/internal/testutil"
)

func TestStreamRoundTrip(t *testing.T) {
	for _, file := range []string{digits, twain, unicode} {
		input := testutil.MustLoadFile(file)

		var buf bytes.Buffer
		wr, err := NewWriter(&buf, nil)
		if err != nil {
			t.Fatalf("%s, NewWriter error: %v", file, err)
		}
		cnt, err := io.Copy(wr, bytes.NewReader(input))
		if err != nil {
			t.Errorf("%s, write error: %v", file, err)
		}
		if cnt != int64(len(input)) {
			t.Errorf("%s, write count mismatch: got %d, want %d", file, cnt, len(input))
		}
		assert.Equal(t, 0, buf.Len(), "%s, output before Close", file)
		if err := wr.Close(); err != nil {
			t.Errorf("%s, close error: %v", file, err)
		}
		assert.Equal(t, int64(buf.Len()), wr.OutputOffset)
		assert.Equal(t, wr.OutputOffset, wr.Stats().OutputSize)
		assert.NoError(t, wr.Close(), "%s, second Close", file)

		rd, err := NewReader(&buf, nil)
		if err != nil {
			t.Fatalf("%s, NewReader error: %v", file, err)
		}
		output, err := ioutil.ReadAll(rd)
		if err != nil {
			t.Errorf("%s, read error: %v", file, err)
		}
		if !bytes.Equal(output, input) {
			t.Errorf("%s, output data mismatch", file)
		}
		assert.Equal(t, int64(len(input)), rd.OutputOffset)
		assert.Equal(t, wr.OutputOffset, rd.InputOffset)
		assert.NoError(t, rd.Close())
	}
}

func TestWriterErrors(t *testing.T) {
	wr, _ := NewWriter(ioutil.Discard, nil)
	err := wr.Close()
	assert.True(t, errors.IsEmptyInput(err), "unexpected error: %v", err)

	wr.Reset(ioutil.Discard)
	wr.Write([]byte("abc"))
	assert.NoError(t, wr.Close())
	_, err = wr.Write([]byte("abc"))
	assert.True(t, errors.IsClosed(err), "unexpected error: %v", err)
}

func TestReaderErrors(t *testing.T) {
	rd, _ := NewReader(bytes.NewReader([]byte("a: 0\n")), nil)
	_, err := ioutil.ReadAll(rd)
	assert.True(t, errors.IsMalformedHeader(err), "unexpected error: %v", err)
	assert.Equal(t, err, rd.Close())

	rd.Reset(&testutil.BuggyReader{R: bytes.NewReader([]byte("a: 0\n")), N: 3, Err: io.ErrClosedPipe})
	_, err = ioutil.ReadAll(rd)
	assert.True(t, errors.IsIO(err), "unexpected error: %v", err)
}
