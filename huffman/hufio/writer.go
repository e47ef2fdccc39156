// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package hufio

import "bytes"
import "encoding/binary"
import "hash/crc32"
import "io"

import "github.com/JosephLeKH/huffman-encoding/huffman"
import "github.com/dsnet/golib/bits"
import "github.com/dsnet/golib/errs"
import "github.com/icza/bitio"

// A Writer is an io.WriteCloser that collects a whole message and emits it
// as a single HUF frame on Close. Huffman coding needs the complete symbol
// frequencies before any codeword is known, so nothing reaches the
// underlying writer until Close.
type Writer struct {
	wr  io.Writer    // Underlying writer
	buf bytes.Buffer // Collected message bytes
	cnt int64        // Total number of bytes written to wr
	err error        // Persistent error
}

// NewWriter creates a new Writer writing to wr.
func NewWriter(wr io.Writer) *Writer {
	hw := new(Writer)
	hw.Reset(wr)
	return hw
}

// InputCount reports the number of message bytes collected so far.
func (hw *Writer) InputCount() int64 { return int64(hw.buf.Len()) }

// OutputCount reports the number of frame bytes written to the underlying
// writer.
func (hw *Writer) OutputCount() int64 { return hw.cnt }

// Write collects message bytes. They do not reach the underlying writer
// until Close.
func (hw *Writer) Write(buf []byte) (int, error) {
	if hw.err != nil {
		return 0, hw.err
	}
	return hw.buf.Write(buf)
}

// Close compresses the collected message and writes it out as one frame.
// A message with fewer than two distinct symbols has no code tree and fails
// with huffman.ErrInvalidInput.
func (hw *Writer) Close() error {
	if hw.err != nil {
		return hw.err
	}

	bundle, err := huffman.Compress(hw.buf.Bytes())
	if err != nil {
		hw.err = err
		return err
	}
	wrCnt, err := WriteBundle(hw.wr, bundle)
	hw.cnt += int64(wrCnt)
	if err != nil {
		hw.err = err
		return err
	}
	hw.err = io.ErrClosedPipe
	return nil
}

// Reset resets the Writer with a new io.Writer.
func (hw *Writer) Reset(wr io.Writer) {
	hw.wr, hw.cnt, hw.err = wr, 0, nil
	hw.buf.Reset()
}

// WriteBundle encodes a single bundle, as produced by huffman.Compress, as
// one complete HUF frame. The frame is assembled fully in memory, so the
// count reports either 0 or the whole frame length, and the final write is
// the only operation that can observe an IO error. The bundle's bit
// sequences are drained by the call.
//
// A bundle whose leaf count cannot be represented, or whose shape sequence
// does not hold exactly the 2L-1 pre-order tags for its leaf count, fails
// with ErrInvalid before anything is written.
func WriteBundle(wr io.Writer, bundle *huffman.Bundle) (cnt int, err error) {
	defer errs.Recover(&err)

	numLeaves := len(bundle.TreeLeaves)
	errs.Assert(numLeaves >= minLeaves && numLeaves <= maxLeaves, ErrInvalid)

	// Pack the body bits: shape tags, leaf symbols, then message bits.
	var body bytes.Buffer
	bw := bitio.NewWriter(&body)
	numShape := copyBits(bw, bundle.TreeShape)
	errs.Assert(numShape == uint64(2*numLeaves-1), ErrInvalid)
	for _, sym := range bundle.TreeLeaves {
		errs.Panic(bw.WriteBits(uint64(sym), 8))
	}
	msgLen := copyBits(bw, bundle.MessageBits)
	errs.Panic(bw.Close()) // Pad the last byte with zeros

	// Assemble the frame around the body.
	var frame bytes.Buffer
	frame.Grow(headerLen + body.Len() + checksumLen)
	frame.WriteString(magic)
	frame.WriteByte(version)
	frame.WriteByte(byte(numLeaves - 1))
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], msgLen)
	frame.Write(lenBuf[:])
	frame.Write(body.Bytes())
	var sumBuf [4]byte
	binary.BigEndian.PutUint32(sumBuf[:], crc32.ChecksumIEEE(body.Bytes()))
	frame.Write(sumBuf[:])

	return wr.Write(frame.Bytes()) // Final write deals with IO errors
}

// copyBits drains the bit queue into the bit-packed writer and reports the
// number of bits moved.
func copyBits(bw *bitio.Writer, br bits.BitsReader) (cnt uint64) {
	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			return cnt
		}
		errs.Panic(err)
		errs.Panic(bw.WriteBool(bit))
		cnt++
	}
}
