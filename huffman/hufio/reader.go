// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package hufio

import "bytes"
import "encoding/binary"
import "hash/crc32"
import "io"

import "github.com/JosephLeKH/huffman-encoding/huffman"
import "github.com/JosephLeKH/huffman-encoding/internal"
import "github.com/dsnet/golib/bits"
import "github.com/dsnet/golib/errs"
import "github.com/icza/bitio"

// A Reader is an io.ReadCloser that reads a single HUF frame and serves its
// decoded message. Bytes past the end of the frame are left unread in the
// underlying reader.
type Reader struct {
	rd      io.Reader // Underlying reader
	buf     []byte    // Decoded message bytes yet to be consumed
	rdCnt   int64     // Total number of bytes read from rd
	emitCnt int64     // Total number of bytes emitted from Read
	decoded bool      // Whether the frame was already decoded
	err     error     // Persistent error
}

// NewReader creates a new Reader reading from rd.
func NewReader(rd io.Reader) *Reader {
	hr := new(Reader)
	hr.Reset(rd)
	return hr
}

// InputCount reports the number of frame bytes read from the underlying
// reader.
func (hr *Reader) InputCount() int64 { return hr.rdCnt }

// OutputCount reports the number of message bytes emitted from Read.
func (hr *Reader) OutputCount() int64 { return hr.emitCnt }

// Read serves the decoded message, fetching and decoding the frame on the
// first call. It returns io.EOF once the message is fully consumed.
func (hr *Reader) Read(buf []byte) (int, error) {
	if hr.err != nil {
		return 0, hr.err
	}

	var rdCnt int
	for len(buf) > 0 {
		if len(hr.buf) > 0 {
			cpCnt := copy(buf, hr.buf)
			hr.buf = hr.buf[cpCnt:]
			rdCnt += cpCnt
			break
		}

		if hr.decoded {
			hr.err = io.EOF
			break
		}

		hr.err = hr.fetch()
		if hr.err != nil {
			break
		}
	}

	hr.emitCnt += int64(rdCnt)
	return rdCnt, hr.err
}

// Close ends the stream.
func (hr *Reader) Close() error {
	if hr.err == errClosed {
		return nil
	}
	if hr.err != nil && hr.err != io.EOF {
		return hr.err
	}

	hr.err = errClosed
	hr.rd = nil // Release reference to underlying Reader
	return nil
}

// Reset resets the Reader with a new io.Reader.
func (hr *Reader) Reset(rd io.Reader) {
	*hr = Reader{rd: rd}
}

// fetch reads the frame and decodes its message.
func (hr *Reader) fetch() error {
	bundle, rdCnt, err := ReadBundle(hr.rd)
	hr.rdCnt += int64(rdCnt)
	if err != nil {
		return err
	}

	msg, err := huffman.Decompress(bundle)
	if err != nil {
		return ErrCorrupt // Checksum passed, but the tree serialization is inconsistent
	}
	hr.buf, hr.decoded = msg, true
	return nil
}

// ReadBundle decodes a single HUF frame from rd. The count reports the
// number of bytes consumed, even when an error occurs. This returns io.EOF
// if and only if no bytes were read at all; a frame cut short fails with
// io.ErrUnexpectedEOF, and a frame violating the format fails with
// ErrCorrupt.
func ReadBundle(rd io.Reader) (bundle *huffman.Bundle, cnt int, err error) {
	defer errs.Recover(&err)

	// Read and validate the fixed-size header.
	var head [headerLen]byte
	n, err := io.ReadFull(rd, head[:])
	cnt += n
	if err != nil {
		return nil, cnt, err // io.EOF only when nothing was read
	}
	errs.Assert(string(head[:2]) == magic, ErrCorrupt)
	errs.Assert(head[2] == version, ErrCorrupt)
	numLeaves := int(head[3]) + 1
	errs.Assert(numLeaves >= minLeaves, ErrCorrupt)
	msgLen := binary.BigEndian.Uint64(head[4:])
	errs.Assert(msgLen <= maxMsgBits, ErrCorrupt)

	// The header determines the exact body size. Read it and the trailing
	// checksum, growing the buffer with the data actually present so that a
	// lying header cannot demand a huge allocation.
	numBits := numBodyBits(numLeaves, msgLen)
	numBody := int64((numBits + 7) / 8)
	var body bytes.Buffer
	nn, err := io.CopyN(&body, rd, numBody+checksumLen)
	cnt += int(nn)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF // Frame cut short after its header
	}
	if err != nil {
		return nil, cnt, err
	}
	bodyBytes := body.Bytes()[:numBody]
	sum := binary.BigEndian.Uint32(body.Bytes()[numBody:])
	errs.Assert(internal.GoFuzz || sum == crc32.ChecksumIEEE(bodyBytes), ErrCorrupt)

	// Unpack the body bits.
	br := bitio.NewReader(bytes.NewReader(bodyBytes))
	shape := bits.NewBuffer(nil)
	for i := 0; i < 2*numLeaves-1; i++ {
		shape.WriteBit(readBit(br))
	}
	leaves := make([]byte, numLeaves)
	for i := range leaves {
		leaves[i] = byte(readBits(br, 8))
	}
	msgBits := bits.NewBuffer(nil)
	for i := uint64(0); i < msgLen; i++ {
		msgBits.WriteBit(readBit(br))
	}
	if pads := numPads(numBits); pads > 0 {
		errs.Assert(readBits(br, uint8(pads)) == 0, ErrCorrupt) // Pads must be zero
	}

	bundle = &huffman.Bundle{TreeShape: shape, TreeLeaves: leaves, MessageBits: msgBits}
	return bundle, cnt, nil
}

// readBit reads a single bit.
// This function panics with ErrCorrupt if an error occurs.
func readBit(br *bitio.Reader) bool {
	bit, err := br.ReadBool()
	errs.Assert(err == nil, ErrCorrupt)
	return bit
}

// readBits reads multiple bits.
// This function panics with ErrCorrupt if an error occurs.
func readBits(br *bitio.Reader, num uint8) uint64 {
	val, err := br.ReadBits(num)
	errs.Assert(err == nil, ErrCorrupt)
	return val
}
