// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "container/heap"

// mergeNode is one pending subtree during construction. The weight of a
// subtree is the total frequency of every symbol beneath it.
type mergeNode struct {
	weight int64
	node   int32
}

// mergeQueue is a min-heap of pending subtrees ordered by weight. Among
// equal weights, the most recently created subtree is removed first.
type mergeQueue []mergeNode

func (q mergeQueue) Len() int { return len(q) }

func (q mergeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].node > q[j].node
}

func (q mergeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *mergeQueue) Push(x interface{}) { *q = append(*q, x.(mergeNode)) }

func (q *mergeQueue) Pop() interface{} {
	n := len(*q)
	x := (*q)[n-1]
	*q = (*q)[:n-1]
	return x
}

// BuildTree constructs a code tree that is optimal for the symbol
// frequencies of the given message: no other binary prefix code has a
// smaller weighted path length. It fails with ErrInvalidInput if the
// message contains fewer than two distinct symbols.
func BuildTree(message []byte) (*Tree, error) {
	var freqs [256]int64
	for _, sym := range message {
		freqs[sym]++
	}
	return buildTree(&freqs)
}

func buildTree(freqs *[256]int64) (*Tree, error) {
	t := new(Tree)
	q := make(mergeQueue, 0, 256)
	for sym, cnt := range freqs {
		if cnt > 0 {
			q = append(q, mergeNode{cnt, t.pushLeaf(byte(sym))})
		}
	}
	if len(q) < 2 {
		return nil, ErrInvalidInput
	}
	heap.Init(&q)

	// Repeatedly merge the two lightest subtrees until one remains.
	// The first subtree removed becomes the zero branch.
	for len(q) > 1 {
		zero := heap.Pop(&q).(mergeNode)
		one := heap.Pop(&q).(mergeNode)
		heap.Push(&q, mergeNode{zero.weight + one.weight, t.pushInternal(zero.node, one.node)})
	}
	t.root = q[0].node
	t.checkTree()
	return t, nil
}
