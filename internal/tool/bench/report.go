// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// The decompression speed benchmark works by decompressing some pre-compressed
// data. In order for the benchmarks to be consistent, the same encoder should
// be used to generate the pre-compressed data for all the trials.
//
// encRefs defines the priority order for which encoders to choose first as the
// reference compressor.
var encRefs = []string{"ds", "std", "kp", "uk"}

// Suite describes a set of benchmarks to run.
type Suite struct {
	Formats []Format
	Tests   []Test
	Codecs  []string // Empty means all registered codecs
	Files   []string
	Levels  []int
	Sizes   []int
}

// Codecs returns the names of all registered codecs in sorted order.
func Codecs() []string {
	m := make(map[string]bool)
	for _, v := range Encoders {
		for k := range v {
			m[k] = true
		}
	}
	for _, v := range Decoders {
		for k := range v {
			m[k] = true
		}
	}
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// Run runs every test of the suite and prints a table per format and test.
// Progress is reported on the same line and overwritten by the table.
func Run(w io.Writer, s Suite) {
	codecs := s.Codecs
	if len(codecs) == 0 {
		codecs = Codecs()
	}
	for _, ft := range s.Formats {
		// Get lists of encoders and decoders that exist.
		var encs, decs []string
		for _, c := range codecs {
			if _, ok := Encoders[ft][c]; ok {
				encs = append(encs, c)
			}
			if _, ok := Decoders[ft][c]; ok {
				decs = append(decs, c)
			}
		}

		for _, t := range s.Tests {
			var results [][]Result
			var names, cols []string
			var title, suffix string

			// Check that we can actually do this bench.
			fmt.Fprintf(w, "BENCHMARK: %v:%v\n", ft, t)
			if len(encs) == 0 {
				fmt.Fprint(w, "\tSKIP: There are no encoders available.\n\n")
				continue
			}
			if len(decs) == 0 && t == TestDecodeRate {
				fmt.Fprint(w, "\tSKIP: There are no decoders available.\n\n")
				continue
			}

			// Progress ticker.
			var cnt int
			tick := func() {
				total := len(cols) * len(s.Files) * len(s.Levels) * len(s.Sizes)
				pct := 100.0 * float64(cnt) / float64(total)
				fmt.Fprintf(w, "\t[%6.2f%%] %d of %d\r", pct, cnt, total)
				cnt++
			}

			// Perform the bench. This may take some time.
			switch t {
			case TestEncodeRate:
				cols, title = encs, "MB/s"
				results, names = BenchmarkEncoderSuite(ft, encs, s.Files, s.Levels, s.Sizes, tick)
			case TestDecodeRate:
				cols, title = decs, "MB/s"
				results, names = BenchmarkDecoderSuite(ft, decs, s.Files, s.Levels, s.Sizes, referenceEncoder(ft), tick)
			case TestCompressRatio:
				cols, title, suffix = encs, "ratio", "x"
				results, names = BenchmarkRatioSuite(ft, encs, s.Files, s.Levels, s.Sizes, tick)
			default:
				panic("unknown test")
			}

			printResults(w, results, names, cols, title, suffix)
			fmt.Fprintln(w)
		}
	}
}

func referenceEncoder(ft Format) Encoder {
	for _, c := range encRefs {
		if enc, ok := Encoders[ft][c]; ok {
			return enc // Choose by priority
		}
	}
	for _, enc := range Encoders[ft] {
		return enc // Choose any random encoder
	}
	return nil
}

func printResults(w io.Writer, results [][]Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Fprint(w, "\t")
		for i, s := range row {
			switch {
			case i == 0:
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1:
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			default:
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Fprint(w, row[i])
		}
		fmt.Fprintln(w)
	}
}
