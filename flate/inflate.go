// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flate implements the DEFLATE compressed data format described in
// RFC 1951, decoding it into a caller-supplied sink.
package flate

import (
	"bufio"
	"io"

	"github.com/ryunzip/ryunzip/capnslog"
)

var plog = capnslog.NewPackageLogger("github.com/ryunzip/ryunzip", "flate")

// Decompressor holds the state for decoding a single DEFLATE stream: the
// bit-level reader over the compressed input, the sliding window of
// previously-produced bytes available to back-references, and the buffered
// sink those bytes are written to.
type Decompressor struct {
	br       *BitReader
	win      window
	sink     *bufio.Writer
	fixedLit *HuffmanDecoder
}

// emit writes p to the sink, wrapping any write failure as a SinkError.
func (d *Decompressor) emit(p []byte) error {
	if _, err := d.sink.Write(p); err != nil {
		return &SinkError{Err: err}
	}
	return nil
}

// Inflate decodes one complete DEFLATE stream from r, writing the
// decompressed bytes to sink. It returns once the final block (BFINAL=1) has
// been decoded and the sink has been flushed, or on the first error.
func Inflate(r io.Reader, sink io.Writer) error {
	d := &Decompressor{
		br:   NewBitReader(r),
		sink: bufio.NewWriter(sink),
	}
	for {
		final, err := d.nextBlock()
		if err != nil {
			return err
		}
		if final {
			break
		}
	}
	plog.Tracef("inflate: member complete, %d bytes produced", d.win.total)
	if err := d.sink.Flush(); err != nil {
		return &SinkError{Err: err}
	}
	return nil
}
