// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements the Huffman coding scheme for lossless data
// compression.
//
// Huffman coding assigns each distinct symbol of a message a variable-length
// codeword such that no codeword is a prefix of another, and such that the
// total encoded length is minimal for the symbol frequencies of that message.
// The codewords are the root-to-leaf paths of a code tree built by greedily
// merging the two lightest subtrees until a single tree remains.
//
// Since the code tree is derived from the message itself, it must travel
// along with the encoded bits for the message to be recoverable. The tree
// serializes as a pre-order bit sequence of its shape plus the leaf symbols
// in visitation order. A complete compressed message is therefore a bundle
// of three sequences: tree shape, tree leaves, and message bits. The hufio
// subpackage implements a byte-oriented framing of such bundles.
package huffman

import "runtime"

// Error is the wrapper type for all errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrInvalidInput is returned when building a tree from a message with
	// fewer than two distinct symbols. Such a message has no binary code
	// tree and cannot be compressed by this scheme.
	ErrInvalidInput error = Error("not enough distinct symbols")

	// ErrSymbolNotFound is returned when encoding a symbol that has no
	// leaf in the code tree. It indicates a mismatched tree and message.
	ErrSymbolNotFound error = Error("symbol has no codeword")

	// ErrMalformedTree is returned when a shape and leaf sequence pair
	// does not describe a whole code tree.
	ErrMalformedTree error = Error("malformed tree serialization")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
