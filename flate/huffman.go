// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flate

// maxCodeLen is the longest code length DEFLATE's Huffman alphabets allow.
const maxCodeLen = 15

// HuffmanDecoder is a canonical Huffman decoder built from a per-symbol
// length vector, per RFC 1951 section 3.2.2: codes of a given length are
// assigned in ascending symbol order, and the numeric value of a code of
// length L is one more than the previous code of length L, shifted left by
// one whenever the length increases. Rather than a two-child-per-node trie,
// this keeps a count of codes at each length and a symbol table sorted by
// (length, symbol), so decoding a code of length L is a single bounds check
// against count[L] after reading L bits one at a time from a BitReader.
type HuffmanDecoder struct {
	count  [maxCodeLen + 1]int
	symbol []int
	maxLen int
}

// newHuffmanDecoder builds a decoder from lengths, where lengths[sym] is the
// code length of symbol sym, or 0 if sym is absent from the code.
func newHuffmanDecoder(lengths []int) (*HuffmanDecoder, error) {
	h := &HuffmanDecoder{symbol: make([]int, len(lengths))}

	for _, l := range lengths {
		if l < 0 || l > maxCodeLen {
			return nil, &HuffmanError{Reason: "code length out of range"}
		}
		h.count[l]++
	}
	h.count[0] = 0

	// Kraft inequality: the code lengths must not over-subscribe the
	// available 2^-L budget at any prefix length.
	left := 1
	for l := 1; l <= maxCodeLen; l++ {
		left <<= 1
		left -= h.count[l]
		if left < 0 {
			return nil, &HuffmanError{Reason: "over-subscribed huffman code"}
		}
		if h.count[l] != 0 {
			h.maxLen = l
		}
	}

	// offset[l] is the first index into symbol[] holding a code of length l;
	// symbols are placed there in ascending order, which is the canonical
	// ordering rule.
	var offset [maxCodeLen + 2]int
	for l := 1; l <= maxCodeLen; l++ {
		offset[l+1] = offset[l] + h.count[l]
	}
	for sym, l := range lengths {
		if l != 0 {
			h.symbol[offset[l]] = sym
			offset[l]++
		}
	}
	return h, nil
}

// decode reads one Huffman-coded symbol from br. It consumes exactly as many
// bits as the assigned code's length.
func (h *HuffmanDecoder) decode(br *BitReader) (int, error) {
	if h.maxLen == 0 {
		return 0, &HuffmanError{Offset: br.Roffset, Reason: "decoder has no assigned codes"}
	}
	code, first, index := 0, 0, 0
	for length := 1; length <= maxCodeLen; length++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		code |= bit
		count := h.count[length]
		if code-first < count {
			return h.symbol[index+(code-first)], nil
		}
		index += count
		first += count
		first <<= 1
		code <<= 1
	}
	return 0, &HuffmanError{Offset: br.Roffset, Reason: "no code found within max length"}
}

// fixedLiteralLengths is the canonical fixed literal/length table from
// RFC 1951 section 3.2.6: 0-143 length 8, 144-255 length 9, 256-279 length
// 7, 280-287 length 8.
func fixedLiteralLengths() []int {
	lens := make([]int, 288)
	for i := 0; i <= 143; i++ {
		lens[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lens[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lens[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lens[i] = 8
	}
	return lens
}
