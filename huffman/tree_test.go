// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dsnet/hufftext/internal/errors"
	"github.com/dsnet/hufftext/internal/testutil"
)

func TestBuildTree(t *testing.T) {
	vectors := []struct {
		desc  string
		freqs FrequencyTable
		codes CodeTable
	}{{
		desc:  "single symbol",
		freqs: FrequencyTable{'x': 7},
		codes: CodeTable{'x': "0"},
	}, {
		desc:  "lightest symbol on the left",
		freqs: FrequencyTable{'a': 3, 'b': 1},
		codes: CodeTable{'a': "1", 'b': "0"},
	}, {
		desc:  "equal weights ordered by symbol",
		freqs: FrequencyTable{'d': 1, 'c': 1, 'b': 1, 'a': 1},
		codes: CodeTable{'a': "00", 'b': "01", 'c': "10", 'd': "11"},
	}, {
		desc:  "leaf ordered before merged node of equal weight",
		freqs: FrequencyTable{'a': 1, 'b': 1, 'c': 2},
		codes: CodeTable{'c': "0", 'a': "10", 'b': "11"},
	}, {
		desc:  "skewed weights",
		freqs: FrequencyTable{'a': 1, 'b': 2, 'c': 4, 'd': 8},
		codes: CodeTable{'a': "000", 'b': "001", 'c': "01", 'd': "1"},
	}, {
		desc:  "older merged node ordered first",
		freqs: FrequencyTable{'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 4},
		codes: CodeTable{'a': "100", 'b': "101", 'c': "110", 'd': "111", 'e': "0"},
	}}

	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			tree, err := BuildTree(v.freqs)
			if err != nil {
				t.Fatalf("unexpected BuildTree error: %v", err)
			}
			assert.Equal(t, len(v.freqs), tree.Len())
			assert.Equal(t, v.freqs.Total(), tree.Weight())
			if diff := cmp.Diff(v.codes, tree.Codes()); diff != "" {
				t.Errorf("code table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildTreeArena(t *testing.T) {
	tree, err := BuildTree(FrequencyTable{'a': 3, 'b': 1})
	if err != nil {
		t.Fatalf("unexpected BuildTree error: %v", err)
	}
	want := []Node{
		{Symbol: 'a', Weight: 3, Left: -1, Right: -1},
		{Symbol: 'b', Weight: 1, Left: -1, Right: -1},
		{Weight: 4, Left: 1, Right: 0},
	}
	if diff := cmp.Diff(want, tree.Nodes()); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, tree.Root())
	assert.False(t, tree.Node(tree.Root()).IsLeaf())
}

func TestBuildTreeErrors(t *testing.T) {
	_, err := BuildTree(nil)
	assert.True(t, errors.IsEmptyInput(err), "unexpected error: %v", err)

	_, err = BuildTree(FrequencyTable{'a': 1, 'b': 0})
	assert.True(t, errors.IsInternal(err), "unexpected error: %v", err)
}

// optimalBits computes the minimal encoded length for freqs, which is the
// sum of the weights of all merged nodes.
func optimalBits(freqs FrequencyTable) (n int64) {
	var ws []int64
	for _, f := range freqs {
		ws = append(ws, int64(f))
	}
	if len(ws) == 1 {
		return ws[0] // A single symbol still takes one bit
	}
	for len(ws) > 1 {
		sort.Slice(ws, func(i, j int) bool { return ws[i] < ws[j] })
		w := ws[0] + ws[1]
		n += w
		ws = append(ws[2:], w)
	}
	return n
}

func TestCodeProperties(t *testing.T) {
	rand := testutil.NewRand(42)
	inputs := []string{
		string(testutil.MustLoadFile(twain)),
		string(testutil.MustLoadFile(unicode)),
		string(testutil.MustLoadFile(digits)),
		rand.Text(10000, "abcdefghijklmnopqrstuvwxyz"),
		rand.Text(100, "ab"),
		strings.Repeat("q", 50),
	}
	for i, s := range inputs {
		freqs, err := CountFrequencies(bytes.NewReader([]byte(s)), int64(len(s)), nil)
		if err != nil {
			t.Fatalf("test %d, unexpected CountFrequencies error: %v", i, err)
		}
		tree, err := BuildTree(freqs)
		if err != nil {
			t.Fatalf("test %d, unexpected BuildTree error: %v", i, err)
		}
		codes, dec := DeriveCodes(tree)

		assert.Equal(t, len(freqs), len(codes), "test %d", i)
		assert.Equal(t, len(codes), len(dec), "test %d", i)
		assert.True(t, codes.IsPrefixFree(), "test %d, codes not prefix-free", i)
		assert.Equal(t, optimalBits(freqs), codes.EncodedBits(freqs), "test %d", i)
		for s, c := range codes {
			assert.Equal(t, s, dec[c], "test %d", i)
		}
	}
}

func TestIsPrefixFree(t *testing.T) {
	assert.True(t, CodeTable{'a': "0", 'b': "10", 'c': "11"}.IsPrefixFree())
	assert.True(t, CodeTable{'a': "01", 'b': "1"}.IsPrefixFree())
	assert.False(t, CodeTable{'a': "0", 'b': "01"}.IsPrefixFree())
	assert.False(t, CodeTable{'a': "10", 'b': "0", 'c': "101"}.IsPrefixFree())
	assert.False(t, CodeTable{'a': "1", 'b': "1"}.IsPrefixFree())
}

func TestCountFrequencies(t *testing.T) {
	input := "héllo\nwörld\n"
	freqs, err := CountFrequencies(bytes.NewReader([]byte(input)), int64(len(input)), &WriterConfig{ChunkSize: 4})
	assert.NoError(t, err)
	want := FrequencyTable{'h': 1, 'é': 1, 'l': 3, 'o': 1, '\n': 2, 'w': 1, 'ö': 1, 'r': 1, 'd': 1}
	if diff := cmp.Diff(want, freqs); diff != "" {
		t.Errorf("frequency mismatch (-want +got):\n%s", diff)
	}

	freqs, err = CountFrequencies(bytes.NewReader([]byte(input)), int64(len(input)), &WriterConfig{SkipNewlines: true})
	assert.NoError(t, err)
	want['\n'] = 1
	if diff := cmp.Diff(want, freqs); diff != "" {
		t.Errorf("frequency mismatch (-want +got):\n%s", diff)
	}
}
