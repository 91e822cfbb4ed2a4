// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetName(t *testing.T) {
	assert.Equal(t, getName("twain.txt", 6, 1000), getName("../testdata/twain.txt", 6, 1000))
	name := getName("digits.txt", 9, 1<<20)
	assert.True(t, strings.HasPrefix(name, "digits.txt:9:1"), "unexpected name: %s", name)
	assert.NotContains(t, name, ".00")
}

func TestRatioSuite(t *testing.T) {
	Paths = []string{"../../../testdata"}
	encs := []string{"ds", "ds-nl"}
	files := []string{"twain.txt", "digits.txt"}
	sizes := []int{1e4, 1e5}

	var ticks int
	results, names := BenchmarkRatioSuite(FormatHuffman, encs, files, []int{6}, sizes, func() { ticks++ })
	assert.Equal(t, len(encs)*len(files)*len(sizes), ticks)
	assert.Len(t, names, len(files)*len(sizes))
	for i, row := range results {
		assert.Len(t, row, len(encs))
		for j, r := range row {
			assert.Greater(t, r.R, 1.0, "%s/%s", names[i], encs[j])
		}
		assert.Equal(t, 1.0, row[0].D)
	}
}

func TestRun(t *testing.T) {
	Paths = []string{"../../../testdata"}
	var buf strings.Builder
	Run(&buf, Suite{
		Formats: []Format{FormatHuffman, FormatXZ},
		Tests:   []Test{TestCompressRatio},
		Codecs:  []string{"ds", "uk"},
		Files:   []string{"unicode.txt"},
		Levels:  []int{6},
		Sizes:   []int{1e4},
	})
	out := buf.String()
	assert.Contains(t, out, "BENCHMARK: huff:ratio")
	assert.Contains(t, out, "BENCHMARK: xz:ratio")
	assert.Contains(t, out, "ds ratio")
	assert.Contains(t, out, "uk ratio")
	assert.NotContains(t, out, "SKIP")
}
