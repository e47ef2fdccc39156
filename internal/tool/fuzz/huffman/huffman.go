// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package huffman

import (
	"bytes"

	"github.com/JosephLeKH/huffman-encoding/huffman"
)

func Fuzz(data []byte) int {
	bundle, err := huffman.Compress(data)
	if err != nil {
		return 0 // Not enough distinct symbols to form a code tree
	}
	testRoundTrip(bundle, data)
	return 1
}

// testRoundTrip decodes the compressed bundle and checks that the message was
// losslessly preserved.
func testRoundTrip(bundle *huffman.Bundle, want []byte) {
	got, err := huffman.Decompress(bundle)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(got, want) {
		panic("mismatching bytes")
	}
}
