// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// huf compresses and decompresses files with a Huffman code.
//
// Usage:
//	huf [-d] [-f] [-o file] [file]
//
// When compressing, the output name is the input name with a ".huf" extension
// appended. When decompressing, the final extension is stripped and the
// "unhuf." prefix is applied instead. The -o flag overrides the output name.
// Without a file argument (or with "-"), huf runs as a filter from standard
// input to standard output.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JosephLeKH/huffman-encoding/huffman/hufio"
)

const (
	compressedExt   = ".huf"
	decompressedPfx = "unhuf."
)

var (
	decFlag   = flag.Bool("d", false, "decompress the input")
	forceFlag = flag.Bool("f", false, "overwrite the output file without asking")
	outFlag   = flag.String("o", "", "output file name")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-d] [-f] [-o file] [file]\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		usage()
		os.Exit(2)
	}

	input := flag.Arg(0)
	if input == "-" {
		input = ""
	}
	if input == "" {
		// Filter mode. Nothing may be printed to stdout since it carries
		// the output data.
		var err error
		if *decFlag {
			_, err = decompress(os.Stdin, os.Stdout)
		} else {
			_, err = compress(os.Stdin, os.Stdout)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	output := *outFlag
	if output == "" {
		output = outputName(input, *decFlag)
	}
	if output == input {
		fmt.Fprintln(os.Stderr, "the input and output files must differ")
		os.Exit(1)
	}
	if !*forceFlag && !confirmOverwrite(output) {
		fmt.Println("Canceling operation.")
		return
	}
	if err := process(input, output, *decFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// outputName derives the default output file name. Compression appends the
// ".huf" extension. Decompression strips the final extension and applies the
// "unhuf." prefix within the input's directory.
func outputName(name string, decompress bool) string {
	if !decompress {
		return name + compressedExt
	}
	dir, base := filepath.Split(name)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return dir + decompressedPfx + base
}

// confirmOverwrite reports whether it is okay to write the output file,
// prompting the user when it already exists.
func confirmOverwrite(name string) bool {
	if _, err := os.Stat(name); err != nil {
		return true
	}
	fmt.Printf("%s already exists. Overwrite? [y/N] ", name)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func process(inName, outName string, decode bool) error {
	in, err := os.Open(inName)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}
	fmt.Printf("Reading %d input bytes.\n", fi.Size())

	out, err := os.Create(outName)
	if err != nil {
		return err
	}

	var cnt int64
	if decode {
		fmt.Println("Decompressing ...")
		cnt, err = decompress(in, out)
	} else {
		fmt.Println("Compressing ...")
		cnt, err = compress(in, out)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if decode {
		fmt.Printf("Wrote %d decompressed bytes.\n", cnt)
	} else {
		fmt.Printf("Wrote %d compressed bytes.\n", cnt)
	}
	return nil
}

func compress(r io.Reader, w io.Writer) (int64, error) {
	hw := hufio.NewWriter(w)
	if _, err := io.Copy(hw, r); err != nil {
		return 0, err
	}
	if err := hw.Close(); err != nil {
		return 0, err
	}
	return hw.OutputCount(), nil
}

func decompress(r io.Reader, w io.Writer) (int64, error) {
	hr := hufio.NewReader(r)
	cnt, err := io.Copy(w, hr)
	if err != nil {
		return cnt, err
	}
	if err := hr.Close(); err != nil {
		return cnt, err
	}
	return cnt, nil
}
