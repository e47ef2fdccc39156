// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "io"

import "github.com/dsnet/golib/bits"

// codewords returns the root-to-leaf path of every symbol in the tree,
// indexed by symbol. Symbols without a leaf have a nil entry. If several
// leaves carry the same symbol, the last one visited wins.
func codewords(t *Tree) *[256][]bool {
	var table [256][]bool
	var path []bool
	var walk func(n Node)
	walk = func(n Node) {
		if n.IsLeaf() {
			table[n.Symbol()] = append([]bool(nil), path...)
			return
		}
		path = append(path, false)
		walk(n.Zero())
		path[len(path)-1] = true
		walk(n.One())
		path = path[:len(path)-1]
	}
	walk(t.Root())
	return &table
}

// Encode maps every symbol of the message to its codeword and returns the
// concatenation of those codewords in message order. It fails with
// ErrSymbolNotFound if the message contains a symbol that has no leaf in
// the tree. The tree is not modified.
func Encode(t *Tree, message []byte) (*bits.Buffer, error) {
	table := codewords(t)
	msgBits := bits.NewBuffer(nil)
	for _, sym := range message {
		cw := table[sym]
		if len(cw) == 0 {
			return nil, ErrSymbolNotFound
		}
		for _, bit := range cw {
			msgBits.WriteBit(bit)
		}
	}
	return msgBits, nil
}

// Decode walks the tree once per input bit, taking the zero branch on a 0
// bit and the one branch on a 1 bit. Whenever a leaf is reached, its symbol
// is appended to the output and the walk restarts at the root. Decoding
// stops when msgBits is exhausted; trailing bits that end mid-codeword
// contribute no symbol.
func Decode(t *Tree, msgBits bits.BitsReader) ([]byte, error) {
	var msg []byte
	n := t.Root()
	for {
		bit, err := msgBits.ReadBit()
		if err == io.EOF {
			return msg, nil
		} else if err != nil {
			return nil, err
		}

		if bit {
			n = n.One()
		} else {
			n = n.Zero()
		}
		if n.IsLeaf() {
			msg = append(msg, n.Symbol())
			n = t.Root()
		}
	}
}
