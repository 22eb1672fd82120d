// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gzip reads the GZIP container format defined in RFC 1952,
// restricted to a single member compressed with CM=8 (DEFLATE) and at most
// the FNAME optional field.
package gzip

import (
	"bufio"
	"encoding/binary"
	"hash"
	"hash/crc32"
	"io"
	"time"

	"github.com/ryunzip/ryunzip/capnslog"
	"github.com/ryunzip/ryunzip/flate"
)

var plog = capnslog.NewPackageLogger("github.com/ryunzip/ryunzip", "gzip")

const (
	gzipID1     = 0x1f
	gzipID2     = 0x8b
	gzipDeflate = 8

	flagText    = 1 << 0
	flagHdrCrc  = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4

	// maxNameLen is the longest FNAME this design accepts, not counting the
	// terminating NUL.
	maxNameLen = 99
)

// Header is the subset of GZIP header metadata this design recovers: the
// recorded file name and modification time.
type Header struct {
	Name    string
	ModTime time.Time
}

func xflSupported(xfl byte) bool {
	return xfl == 0 || xfl == 2 || xfl == 4
}

// countingSink wraps the decompression output so the member trailer can be
// checked against a live byte count and CRC32 computed as bytes are written.
type countingSink struct {
	w    io.Writer
	hash hash.Hash32
	n    uint32
}

func (c *countingSink) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.hash.Write(p[:n])
	c.n += uint32(n)
	return n, err
}

// ReadMember decompresses exactly one GZIP member from r, writing the
// recovered bytes to sink, and returns the header metadata needed to
// restore the output file's name and modification time. Any byte found
// after the trailer is rejected: this design does not support multistream
// concatenation.
func ReadMember(r io.Reader, sink io.Writer) (*Header, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	plog.Tracef("gzip header: name=%q mtime=%v", hdr.Name, hdr.ModTime)
	if err := readBody(br, sink); err != nil {
		return nil, err
	}
	return hdr, nil
}

// ReadMemberTo is ReadMember with the destination chosen after the header is
// known: open is invoked once the header (and in particular its recovered
// file name) has been parsed, letting the caller pick the sink from hdr.Name
// rather than supplying one up front. This decouples the core inflator from
// any single output file, unlike a design that opens the destination before
// the source member is even read. The io.WriteCloser open returns is left
// open on both success and failure; closing it is the caller's
// responsibility, so the open callback can register it with a
// resource-scoping group alongside the input handle.
func ReadMemberTo(r io.Reader, open func(hdr *Header) (io.WriteCloser, error)) (*Header, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	plog.Tracef("gzip header: name=%q mtime=%v", hdr.Name, hdr.ModTime)

	w, err := open(hdr)
	if err != nil {
		return nil, err
	}
	if err := readBody(br, w); err != nil {
		return nil, err
	}
	return hdr, nil
}

// readBody decompresses the payload following the fixed header and verifies
// the trailer against a live digest of what was written to sink.
func readBody(br *bufio.Reader, sink io.Writer) error {
	cs := &countingSink{w: sink, hash: crc32.NewIEEE()}
	if err := flate.Inflate(br, cs); err != nil {
		return err
	}
	plog.Tracef("gzip payload: %d bytes decompressed", cs.n)

	var trailer [8]byte
	if _, err := io.ReadFull(br, trailer[:]); err != nil {
		return &ContainerError{Reason: "truncated trailer"}
	}
	wantCRC := binary.LittleEndian.Uint32(trailer[0:4])
	wantISize := binary.LittleEndian.Uint32(trailer[4:8])

	if cs.n != wantISize {
		return &ContainerError{Reason: ReasonLengthMismatch}
	}
	if cs.hash.Sum32() != wantCRC {
		return &ContainerError{Reason: ReasonChecksumMismatch}
	}

	if _, err := br.ReadByte(); err != io.EOF {
		if err == nil {
			return &ContainerError{Reason: ReasonTrailingGarbage}
		}
		return &ContainerError{Reason: "error checking for trailing data: " + err.Error()}
	}
	return nil
}

func readHeader(br *bufio.Reader) (*Header, error) {
	var buf [10]byte
	if _, err := io.ReadFull(br, buf[:]); err != nil {
		return nil, &ContainerError{Reason: ReasonBadMagic}
	}
	if buf[0] != gzipID1 || buf[1] != gzipID2 {
		return nil, &ContainerError{Reason: ReasonBadMagic}
	}
	if buf[2] != gzipDeflate {
		return nil, &ContainerError{Reason: ReasonUnsupportedCM}
	}
	flg := buf[3]
	mtime := binary.LittleEndian.Uint32(buf[4:8])
	xfl := buf[8]
	if !xflSupported(xfl) {
		return nil, &ContainerError{Reason: ReasonUnsupportedXFL}
	}
	if flg&^byte(flagName) != 0 {
		return nil, &ContainerError{Reason: ReasonUnsupportedFlag}
	}

	hdr := &Header{ModTime: time.Unix(int64(mtime), 0)}
	if flg&flagName != 0 {
		name, err := readCString(br)
		if err != nil {
			return nil, err
		}
		hdr.Name = name
	}
	return hdr, nil
}

// readCString reads a NUL-terminated file name, rejecting anything longer
// than maxNameLen bytes before the terminator.
func readCString(br *bufio.Reader) (string, error) {
	buf := make([]byte, 0, 16)
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", &ContainerError{Reason: "truncated file name"}
		}
		if b == 0 {
			return string(buf), nil
		}
		if len(buf) >= maxNameLen {
			return "", &ContainerError{Reason: ReasonOverlongName}
		}
		buf = append(buf, b)
	}
}
