// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "io"

import "github.com/dsnet/golib/bits"

// Flatten serializes the tree as a pre-order traversal: every internal node
// emits a 1 bit and recurses over its zero branch then its one branch, and
// every leaf emits a 0 bit and appends its symbol to leaves. A tree with L
// leaves always produces exactly 2L-1 shape bits.
func Flatten(t *Tree) (shape *bits.Buffer, leaves []byte) {
	shape = bits.NewBuffer(nil)
	leaves = make([]byte, 0, t.NumLeaves())
	leaves = flattenNode(t.Root(), shape, leaves)
	return shape, leaves
}

func flattenNode(n Node, shape *bits.Buffer, leaves []byte) []byte {
	if n.IsLeaf() {
		shape.WriteBit(false)
		return append(leaves, n.Symbol())
	}
	shape.WriteBit(true)
	leaves = flattenNode(n.Zero(), shape, leaves)
	return flattenNode(n.One(), shape, leaves)
}

// Unflatten is the inverse of Flatten. It reconstructs a tree by consuming
// shape tags front-to-back: a 1 tag recursively reconstructs two children,
// while a 0 tag consumes the next symbol from leaves.
//
// Both sequences must be drained exactly by the reconstruction. A shape that
// exhausts early, leaves unread entries in either sequence, or describes a
// single lone leaf fails with ErrMalformedTree and no tree is returned. Any
// other reader error is returned as is.
func Unflatten(shape bits.BitsReader, leaves []byte) (t *Tree, err error) {
	defer func() {
		if err != nil {
			t = nil // No partially built tree escapes
		}
	}()
	defer errRecover(&err)

	t = new(Tree)
	u := unflattener{shape: shape, leaves: leaves}
	t.root = u.next(t)

	if _, err := shape.ReadBit(); err == nil {
		panic(ErrMalformedTree) // Leftover shape tags
	} else if err != io.EOF {
		panic(err)
	}
	if u.pos != len(u.leaves) {
		panic(ErrMalformedTree) // Leftover leaf symbols
	}
	if len(t.nodes) == 1 {
		panic(ErrMalformedTree) // A lone leaf is not a code tree
	}

	t.checkTree()
	return t, nil
}

type unflattener struct {
	shape  bits.BitsReader
	leaves []byte
	pos    int
}

// next consumes one shape tag and reconstructs the subtree rooted there.
// It panics with ErrMalformedTree if either sequence exhausts early.
func (u *unflattener) next(t *Tree) int32 {
	tag, err := u.shape.ReadBit()
	if err == io.EOF {
		panic(ErrMalformedTree)
	} else if err != nil {
		panic(err)
	}

	if !tag {
		if u.pos == len(u.leaves) {
			panic(ErrMalformedTree)
		}
		sym := u.leaves[u.pos]
		u.pos++
		return t.pushLeaf(sym)
	}
	zero := u.next(t)
	one := u.next(t)
	return t.pushInternal(zero, one)
}
