// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package hufio implements the HUF container format for Huffman-coded
// messages.
//
// A HUF stream carries a single message as one self-contained frame. The
// frame records the code tree ahead of the message bits, so a decoder needs
// no out-of-band agreement with the encoder beyond this format. The layout
// is:
//
//	magic     2 bytes  the string "HF"
//	version   1 byte   currently 0x01
//	leafCnt   1 byte   number of code tree leaves minus one
//	msgLen    8 bytes  big-endian count of message bits in the body
//	body      bit-packed, MSB first:
//	            shape   2L-1 bits   pre-order tree shape tags
//	            leaves  8L bits     leaf symbols in shape order
//	            msg     msgLen bits
//	            pads    0..7 zero bits up to a byte boundary
//	checksum  4 bytes  big-endian CRC-32 (IEEE) of the body bytes
//
// A code tree with L leaves flattens to exactly 2L-1 shape tags, so the
// header alone pins down the body size without a separate shape length.
// Since a buildable tree has at least two leaves, a recorded leaf count of
// zero marks the frame as corrupted, as do non-zero pad bits.
package hufio

const (
	magic   = "HF"
	version = 0x01

	headerLen   = 12 // Magic, version, leaf count, and message bit count
	checksumLen = 4  // CRC-32 of the body bytes

	minLeaves = 2   // A code tree has at least two leaves
	maxLeaves = 256 // One leaf per byte value

	// Upper bound on the message bit count of a single frame. Real frames
	// never come close; a header beyond it is garbage and rejecting it
	// early keeps the body arithmetic far from overflow.
	maxMsgBits = 1 << 56
)

// Error is the wrapper type for all errors specific to this package.
type Error string

func (e Error) Error() string { return "hufio: " + string(e) }

var (
	errClosed error = Error("stream is closed")

	// ErrInvalid is reported when writing a bundle that does not describe a
	// well-formed code tree and message.
	ErrInvalid error = Error("cannot encode bundle")

	// ErrCorrupt is reported when reading a frame that violates the HUF
	// format.
	ErrCorrupt error = Error("frame is corrupted")
)

// Total number of bits in the frame body for a tree with the given number
// of leaves and a message of msgLen bits.
func numBodyBits(numLeaves int, msgLen uint64) uint64 {
	return uint64(10*numLeaves-1) + msgLen
}

// Number of bits needed to pad n-bits to a byte alignment.
func numPads(n uint64) uint64 {
	return -n & 7
}
