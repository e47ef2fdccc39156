// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Generates skewed.bin. Symbol k appears about half as often as symbol k-1,
// giving the lopsided frequency profile that prefix encoding thrives on.
// LZ77 based compression benefits far less since the data carries almost no
// repeated strings.
package main

import "math/rand"
import "os"

const (
	name     = "skewed.bin"
	size     = 1 << 18
	alphabet = 64
)

func main() {
	var b []byte
	var r = rand.New(rand.NewSource(0))

	for len(b) < size {
		var s int
		for s+1 < alphabet && r.Int()%2 == 0 {
			s++
		}
		b = append(b, byte(s))
	}

	if err := os.WriteFile(name, b[:size], 0664); err != nil {
		panic(err)
	}
}
