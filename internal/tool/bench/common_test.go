// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"os"
	"path"
	"testing"
)

func TestGetName(t *testing.T) {
	vectors := []struct {
		file   string
		level  int
		size   int
		output string
	}{
		{"twain.txt", 6, 1e6, "twain.txt:6:1e6"},
		{"twain.txt", 1, 1e4, "twain.txt:1:1e4"},
		{"/tmp/data/twain.txt", 9, 1e3, "twain.txt:9:1e3"},
		{"x.bin", 6, 1024, "x.bin:6:1Ki"},
		{"x.bin", 6, 1536, "x.bin:6:1.50Ki"},
	}
	for i, v := range vectors {
		if got := getName(v.file, v.level, v.size); got != v.output {
			t.Errorf("test %d, name mismatch: getName(%q, %d, %d) = %q, want %q",
				i, v.file, v.level, v.size, got, v.output)
		}
	}
}

func TestGetPath(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "sample.bin")
	if err := os.WriteFile(file, []byte("data"), 0664); err != nil {
		t.Fatalf("unexpected error: WriteFile() = %v", err)
	}

	defer func(p []string) { Paths = p }(Paths)
	Paths = []string{dir}

	vectors := []struct {
		input  string
		output string
	}{
		{file, file},                   // Absolute paths pass through untouched
		{"sample.bin", file},           // Relative paths search Paths in order
		{"missing.bin", "missing.bin"}, // Unknown files pass through unchanged
	}
	for i, v := range vectors {
		if got := getPath(v.input); got != v.output {
			t.Errorf("test %d, path mismatch: getPath(%q) = %q, want %q", i, v.input, got, v.output)
		}
	}
}
