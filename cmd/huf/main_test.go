// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"testing"
)

func TestOutputName(t *testing.T) {
	vectors := []struct {
		input      string
		decompress bool
		output     string
	}{
		{"story.txt", false, "story.txt.huf"},
		{"story.txt.huf", true, "unhuf.story.txt"},
		{"story.txt", true, "unhuf.story"},
		{"archive", false, "archive.huf"},
		{"archive", true, "unhuf.archive"},
		{"dir/story.txt", false, "dir/story.txt.huf"},
		{"dir/story.txt.huf", true, "dir/unhuf.story.txt"},
	}
	for i, v := range vectors {
		if got := outputName(v.input, v.decompress); got != v.output {
			t.Errorf("test %d, name mismatch: outputName(%q, %v) = %q, want %q",
				i, v.input, v.decompress, got, v.output)
		}
	}
}

func TestFilterRoundTrip(t *testing.T) {
	input := []byte("The quick brown fox jumped over the lazy dog.")

	var packed bytes.Buffer
	cnt, err := compress(bytes.NewReader(input), &packed)
	if err != nil {
		t.Fatalf("unexpected error: compress() = %v", err)
	}
	if cnt != int64(packed.Len()) {
		t.Errorf("count mismatch: compress() = %d, want %d", cnt, packed.Len())
	}

	var unpacked bytes.Buffer
	cnt, err = decompress(&packed, &unpacked)
	if err != nil {
		t.Fatalf("unexpected error: decompress() = %v", err)
	}
	if cnt != int64(len(input)) {
		t.Errorf("count mismatch: decompress() = %d, want %d", cnt, len(input))
	}
	if !bytes.Equal(unpacked.Bytes(), input) {
		t.Errorf("output mismatch:\ngot  %q\nwant %q", unpacked.Bytes(), input)
	}
}
