// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const (
	CompressedSuffix   = "_compressed"
	DecompressedSuffix = "_decompressed"
)

// CompressFile compresses the file at path. If outPath is empty, the output
// is written to path+CompressedSuffix. It returns the output path.
//
// The output file is removed if compression fails.
func CompressFile(path, outPath string, conf *WriterConfig) (string, Stats, error) {
	if outPath == "" {
		outPath = path + CompressedSuffix
	}
	st, err := convertFile(path, outPath, func(src io.ReaderAt, size int64, dst io.Writer) (Stats, error) {
		return Compress(src, size, dst, conf)
	})
	return outPath, st, err
}

// DecompressFile decompresses the file at path. If outPath is empty, the
// output is written next to the input, with CompressedSuffix replaced by
// DecompressedSuffix. It returns the output path.
//
// The output file is removed if decompression fails.
func DecompressFile(path, outPath string, conf *ReaderConfig) (string, Stats, error) {
	if outPath == "" {
		outPath = strings.TrimSuffix(path, CompressedSuffix) + DecompressedSuffix
	}
	st, err := convertFile(path, outPath, func(src io.ReaderAt, size int64, dst io.Writer) (Stats, error) {
		return Decompress(src, size, dst, conf)
	})
	return outPath, st, err
}

type convertFunc func(src io.ReaderAt, size int64, dst io.Writer) (Stats, error)

func convertFile(inPath, outPath string, conv convertFunc) (st Stats, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return st, errIO(err)
	}
	defer in.Close()
	fi, err := in.Stat()
	if err != nil {
		return st, errIO(err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return st, errIO(err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errIO(cerr)
		}
		if err != nil {
			os.Remove(outPath)
		}
	}()

	bw := bufio.NewWriter(out)
	if st, err = conv(in, fi.Size(), bw); err != nil {
		return st, err
	}
	if err := bw.Flush(); err != nil {
		return st, errIO(err)
	}
	return st, nil
}
