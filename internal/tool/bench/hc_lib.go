// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_hc_lib

package bench

import (
	"io"

	"github.com/JosephLeKH/huffman-encoding/huffman/hufio"
)

func init() {
	RegisterEncoder(FormatHuffman, "hc",
		func(w io.Writer, lvl int) io.WriteCloser {
			// Huffman coding has no compression levels.
			return hufio.NewWriter(w)
		})
	RegisterDecoder(FormatHuffman, "hc",
		func(r io.Reader) io.ReadCloser {
			return hufio.NewReader(r)
		})
}
