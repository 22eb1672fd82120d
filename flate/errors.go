// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flate

import "strconv"

// InputError reports an I/O failure or unexpected end of the compressed
// stream at a given byte offset.
type InputError struct {
	Offset int64
	Err    error
}

func (e *InputError) Error() string {
	return "flate: input error at offset " + strconv.FormatInt(e.Offset, 10) + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }

// BlockError reports a malformed block header or stored-block length pair.
type BlockError struct {
	Offset int64
	Reason string
}

func (e *BlockError) Error() string {
	return "flate: bad block at offset " + strconv.FormatInt(e.Offset, 10) + ": " + e.Reason
}

// HuffmanError reports a malformed Huffman code description, or a bit
// sequence that does not correspond to any assigned code.
type HuffmanError struct {
	Offset int64
	Reason string
}

func (e *HuffmanError) Error() string {
	return "flate: bad huffman code at offset " + strconv.FormatInt(e.Offset, 10) + ": " + e.Reason
}

// LzError reports a reserved length/distance symbol, or a back-reference
// distance that reaches further back than the bytes written so far.
type LzError struct {
	Offset int64
	Reason string
}

func (e *LzError) Error() string {
	return "flate: bad lz77 reference at offset " + strconv.FormatInt(e.Offset, 10) + ": " + e.Reason
}

// SinkError reports an I/O failure writing decompressed output.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string { return "flate: sink write error: " + e.Err.Error() }

func (e *SinkError) Unwrap() error { return e.Err }
