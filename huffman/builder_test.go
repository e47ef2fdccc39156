// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "strings"
import "testing"

import "github.com/JosephLeKH/huffman-encoding/internal/testutil"
import icza "github.com/icza/huffman"

func TestBuildTree(t *testing.T) {
	var vectors = []struct {
		input string // The message to build a tree from
		tree  string // Expected tree rendering (skip if empty)
		err   error  // Expected error
	}{{
		input: "",
		err:   ErrInvalidInput,
	}, {
		input: "aaaa",
		err:   ErrInvalidInput,
	}, {
		input: "ab",
		tree:  "{b,a}",
	}, {
		input: "abbcccc",
		tree:  "{{a,b},c}",
	}, {
		input: "STREETTEST",
		tree:  "{T,{{R,S},E}}",
	}, {
		input: "A" + strings.Repeat("B", 2) + strings.Repeat("C", 4) +
			strings.Repeat("D", 8) + strings.Repeat("E", 16),
		tree: "{{{{A,B},C},D},E}",
	}, {
		input: "na\x00an\x00\x00",
		tree:  "{\\x00,{n,a}}",
	}}

	for i, v := range vectors {
		tree, err := BuildTree([]byte(v.input))
		if err != v.err {
			t.Errorf("test %d, error mismatch: got %v, want %v", i, err, v.err)
		}
		if err != nil {
			if tree != nil {
				t.Errorf("test %d, unexpected tree on error: %v", i, tree)
			}
			continue
		}
		if got := tree.String(); got != v.tree {
			t.Errorf("test %d, tree mismatch:\ngot  %s\nwant %s", i, got, v.tree)
		}
	}
}

// TestBuildTreeOptimal cross-checks the weighted path length of the built
// tree against an independent Huffman implementation over random frequency
// tables. Two optimal prefix codes for the same table may differ in shape,
// but never in weighted path length.
func TestBuildTreeOptimal(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 128; i++ {
		numSyms := 2 + rand.Intn(255)
		var freqs [256]int64
		var leaves []*icza.Node
		for _, sym := range rand.Perm(256)[:numSyms] {
			cnt := int64(1 + rand.Intn(1000))
			freqs[sym] = cnt
			leaves = append(leaves, &icza.Node{Value: icza.ValueType(sym), Count: int(cnt)})
		}

		tree, err := buildTree(&freqs)
		if err != nil {
			t.Fatalf("trial %d, unexpected error: %v", i, err)
		}
		if got, want := tree.NumLeaves(), numSyms; got != want {
			t.Errorf("trial %d, leaf count mismatch: got %d, want %d", i, got, want)
		}

		got := weightedPathLength(tree, &freqs)
		want := refPathLength(icza.Build(leaves), &freqs, 0)
		if got != want {
			t.Errorf("trial %d, weighted path length mismatch: got %d, want %d", i, got, want)
		}
	}
}

func weightedPathLength(t *Tree, freqs *[256]int64) (wpl int64) {
	for sym, cw := range codewords(t) {
		wpl += freqs[sym] * int64(len(cw))
	}
	return wpl
}

func refPathLength(n *icza.Node, freqs *[256]int64, depth int64) int64 {
	if n.Left == nil {
		return freqs[byte(n.Value)] * depth
	}
	return refPathLength(n.Left, freqs, depth+1) + refPathLength(n.Right, freqs, depth+1)
}
