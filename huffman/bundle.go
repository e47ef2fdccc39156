// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "github.com/dsnet/golib/bits"

// Bundle is a complete compressed message: the shape and leaf sequences
// serializing the code tree, plus the concatenated codewords of the message
// itself. A Bundle is produced whole by Compress and drained whole by
// Decompress. Draining advances the read cursors of the bit sequences, but
// their backing bytes remain inspectable through their Bytes method.
type Bundle struct {
	TreeShape   *bits.Buffer // Pre-order shape tags of the code tree
	TreeLeaves  []byte       // Leaf symbols in visitation order
	MessageBits *bits.Buffer // Concatenated codewords in message order
}

// Compress builds an optimal code tree from the message, serializes the
// tree, and encodes the message against it. The tree itself is transient
// and does not outlive the call. It fails with ErrInvalidInput if the
// message has fewer than two distinct symbols.
func Compress(message []byte) (*Bundle, error) {
	t, err := BuildTree(message)
	if err != nil {
		return nil, err
	}
	shape, leaves := Flatten(t)
	msgBits, err := Encode(t, message)
	if err != nil {
		return nil, err
	}
	return &Bundle{TreeShape: shape, TreeLeaves: leaves, MessageBits: msgBits}, nil
}

// Decompress reverses Compress. It reconstructs the code tree from the
// bundle's shape and leaf sequences and decodes the message bits against
// it, draining all three sequences. It fails with ErrMalformedTree if the
// tree serialization is inconsistent.
func Decompress(bundle *Bundle) ([]byte, error) {
	t, err := Unflatten(bundle.TreeShape, bundle.TreeLeaves)
	if err != nil {
		return nil, err
	}
	return Decode(t, bundle.MessageBits)
}
