// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package hufio

import (
	"bytes"
	"io"

	"github.com/JosephLeKH/huffman-encoding/huffman"
	"github.com/JosephLeKH/huffman-encoding/huffman/hufio"
)

func Fuzz(data []byte) int {
	msg, ok := decodeFrame(data)
	if ok {
		testRoundTrip(msg)
		return 1
	}
	testRoundTrip(data)
	return 0
}

// decodeFrame attempts to decode a single frame. Checksum validation is
// disabled under the gofuzz tag so that the fuzzer can explore the frame
// structure without having to guess CRC-32 values.
func decodeFrame(data []byte) ([]byte, bool) {
	r := bytes.NewReader(data)
	hr := hufio.NewReader(r)
	b, err := io.ReadAll(hr)
	return b, err == nil
}

// testRoundTrip encodes the input data and then decodes it, checking that the
// message was losslessly preserved. Messages without two distinct symbols
// have no code tree and cannot be framed.
func testRoundTrip(want []byte) {
	bb := new(bytes.Buffer)
	hw := hufio.NewWriter(bb)
	n, err := hw.Write(want)
	if n != len(want) || err != nil {
		panic(err)
	}
	if err := hw.Close(); err == huffman.ErrInvalidInput {
		return
	} else if err != nil {
		panic(err)
	}

	got, ok := decodeFrame(bb.Bytes())
	if !bytes.Equal(got, want) || !ok {
		panic("mismatching bytes")
	}
}
