// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flate

// Block type codes (BTYPE), read LSB-first right after BFINAL.
const (
	btypeStored   = 0
	btypeFixed    = 1
	btypeDynamic  = 2
	btypeReserved = 3
)

// nextBlock reads the 3-bit block header (BFINAL, BTYPE) and dispatches to
// the matching block decoder. It reports whether the block it just decoded
// had BFINAL set.
func (d *Decompressor) nextBlock() (final bool, err error) {
	bfinal, err := d.br.ReadBits(1, LSBFirst)
	if err != nil {
		return false, err
	}
	btype, err := d.br.ReadBits(2, LSBFirst)
	if err != nil {
		return false, err
	}
	plog.Tracef("block header: bfinal=%d btype=%d", bfinal, btype)

	switch btype {
	case btypeStored:
		err = d.storedBlock()
	case btypeFixed:
		if d.fixedLit == nil {
			d.fixedLit, err = newHuffmanDecoder(fixedLiteralLengths())
			if err != nil {
				return false, err
			}
		}
		err = d.decodeHuffmanBlock(d.fixedLit, nil)
	case btypeDynamic:
		var lit, dist *HuffmanDecoder
		lit, dist, err = d.readDynamicTables()
		if err == nil {
			err = d.decodeHuffmanBlock(lit, dist)
		}
	default:
		return false, &BlockError{Offset: d.br.Roffset, Reason: "invalid block type 3 (reserved)"}
	}
	if err != nil {
		return false, err
	}
	return bfinal == 1, nil
}

// storedBlock copies a byte-aligned, length-prefixed literal run straight
// from the input to the sink and the sliding window.
func (d *Decompressor) storedBlock() error {
	d.br.AlignToByte()

	var hdr [4]byte
	if err := d.br.ReadAligned(hdr[:]); err != nil {
		return err
	}
	n := int(hdr[0]) | int(hdr[1])<<8
	nn := int(hdr[2]) | int(hdr[3])<<8
	if uint16(nn) != uint16(^n) {
		return &BlockError{Offset: d.br.Roffset, Reason: "stored block LEN/NLEN mismatch"}
	}
	plog.Tracef("stored block: len=%d", n)

	if n == 0 {
		return nil
	}
	buf := make([]byte, n)
	if err := d.br.ReadAligned(buf); err != nil {
		return err
	}
	for _, b := range buf {
		d.win.writeByte(b)
	}
	return d.emit(buf)
}

// readDynamicTables reads HLIT/HDIST/HCLEN, the code-length alphabet, and
// the resulting literal/length and distance length vectors, per RFC 1951
// section 3.2.7, returning the two Huffman decoders they describe.
func (d *Decompressor) readDynamicTables() (lit, dist *HuffmanDecoder, err error) {
	hlit, err := d.br.ReadBits(5, LSBFirst)
	if err != nil {
		return nil, nil, err
	}
	hdist, err := d.br.ReadBits(5, LSBFirst)
	if err != nil {
		return nil, nil, err
	}
	hclen, err := d.br.ReadBits(4, LSBFirst)
	if err != nil {
		return nil, nil, err
	}

	nlit := int(hlit) + 257
	ndist := int(hdist) + 1
	nclen := int(hclen) + 4
	plog.Tracef("dynamic block: nlit=%d ndist=%d nclen=%d", nlit, ndist, nclen)

	var clLengths [19]int
	for i := 0; i < nclen; i++ {
		l, err := d.br.ReadBits(3, LSBFirst)
		if err != nil {
			return nil, nil, err
		}
		clLengths[codeLengthOrder[i]] = int(l)
	}
	clDecoder, err := newHuffmanDecoder(clLengths[:])
	if err != nil {
		return nil, nil, err
	}

	total := nlit + ndist
	lengths := make([]int, 0, total)
	for len(lengths) < total {
		sym, err := clDecoder.decode(d.br)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case sym < 16:
			lengths = append(lengths, sym)
			continue
		case sym == 16:
			if len(lengths) == 0 {
				return nil, nil, &HuffmanError{Offset: d.br.Roffset, Reason: "repeat code 16 with no previous length"}
			}
			n, err := d.br.ReadBits(2, LSBFirst)
			if err != nil {
				return nil, nil, err
			}
			prev := lengths[len(lengths)-1]
			for i, rep := 0, 3+int(n); i < rep; i++ {
				lengths = append(lengths, prev)
			}
		case sym == 17:
			n, err := d.br.ReadBits(3, LSBFirst)
			if err != nil {
				return nil, nil, err
			}
			for i, rep := 0, 3+int(n); i < rep; i++ {
				lengths = append(lengths, 0)
			}
		case sym == 18:
			n, err := d.br.ReadBits(7, LSBFirst)
			if err != nil {
				return nil, nil, err
			}
			for i, rep := 0, 11+int(n); i < rep; i++ {
				lengths = append(lengths, 0)
			}
		default:
			return nil, nil, &HuffmanError{Offset: d.br.Roffset, Reason: "invalid code-length symbol"}
		}
		if len(lengths) > total {
			return nil, nil, &BlockError{Offset: d.br.Roffset, Reason: "code-length repeat overruns table"}
		}
	}

	lit, err = newHuffmanDecoder(lengths[:nlit])
	if err != nil {
		return nil, nil, err
	}
	dist, err = newHuffmanDecoder(lengths[nlit:])
	if err != nil {
		return nil, nil, err
	}
	return lit, dist, nil
}
