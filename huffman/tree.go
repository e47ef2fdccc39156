// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "bytes"
import "fmt"

import "github.com/JosephLeKH/huffman-encoding/internal"

// Tree is a prefix-code tree. Leaves hold symbols, and every internal node
// has exactly two children, so no codeword is a prefix of another. A Tree
// always has at least two leaves and is immutable once built by BuildTree
// or Unflatten.
//
// The nodes live in a flat arena indexed by the child links, so discarding
// the Tree releases every node at once.
type Tree struct {
	nodes []node
	root  int32
}

type node struct {
	zero, one int32 // Child indices, valid only for internal nodes
	sym       byte  // Leaf symbol, valid only for leaves
	leaf      bool
}

// Node is a cursor to a single node of a Tree. The zero Node is not valid;
// cursors are obtained from Tree.Root and navigated with Zero and One.
type Node struct {
	tree *Tree
	idx  int32
}

// Root returns a cursor to the root of the tree.
func (t *Tree) Root() Node { return Node{t, t.root} }

// NumLeaves returns the number of leaves, which is the number of distinct
// symbols the tree can code.
func (t *Tree) NumLeaves() int { return (len(t.nodes) + 1) / 2 }

// String renders the tree with nested braces, leaves shown as their symbols.
// For example: {T,{{R,S},E}}.
func (t *Tree) String() string { return t.Root().String() }

func (t *Tree) pushLeaf(sym byte) int32 {
	t.nodes = append(t.nodes, node{leaf: true, sym: sym})
	return int32(len(t.nodes) - 1)
}

func (t *Tree) pushInternal(zero, one int32) int32 {
	t.nodes = append(t.nodes, node{zero: zero, one: one})
	return int32(len(t.nodes) - 1)
}

// checkTree validates the arena linkage in debug builds. Every node must be
// reachable exactly once from the root, and there must be one more leaf than
// there are internal nodes.
func (t *Tree) checkTree() {
	if !internal.Debug {
		return
	}
	var leaves int
	seen := make([]bool, len(t.nodes))
	var walk func(idx int32)
	walk = func(idx int32) {
		if idx < 0 || int(idx) >= len(t.nodes) || seen[idx] {
			panic("huffman: invalid node linkage")
		}
		seen[idx] = true
		nd := &t.nodes[idx]
		if nd.leaf {
			leaves++
			return
		}
		walk(nd.zero)
		walk(nd.one)
	}
	walk(t.root)
	for _, ok := range seen {
		if !ok {
			panic("huffman: unreachable node in arena")
		}
	}
	if leaves < 2 || leaves != t.NumLeaves() {
		panic("huffman: corrupted leaf count")
	}
}

// IsLeaf reports whether the node holds a symbol.
func (n Node) IsLeaf() bool { return n.tree.nodes[n.idx].leaf }

// Symbol returns the symbol of a leaf node.
func (n Node) Symbol() byte { return n.tree.nodes[n.idx].sym }

// Zero returns the child reached by a 0 bit.
func (n Node) Zero() Node { return Node{n.tree, n.tree.nodes[n.idx].zero} }

// One returns the child reached by a 1 bit.
func (n Node) One() Node { return Node{n.tree, n.tree.nodes[n.idx].one} }

// String renders the subtree rooted at this node.
func (n Node) String() string {
	var buf bytes.Buffer
	n.render(&buf)
	return buf.String()
}

func (n Node) render(buf *bytes.Buffer) {
	if n.IsLeaf() {
		if sym := n.Symbol(); sym >= 0x20 && sym < 0x7f {
			buf.WriteByte(sym)
		} else {
			fmt.Fprintf(buf, `\x%02x`, sym)
		}
		return
	}
	buf.WriteByte('{')
	n.Zero().render(buf)
	buf.WriteByte(',')
	n.One().render(buf)
	buf.WriteByte('}')
}
