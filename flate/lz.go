// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flate

// decodeHuffmanBlock decodes literal/length and back-reference symbols until
// the end-of-block symbol (256) is reached. dist is nil for a fixed-Huffman
// block whose distance field is a raw 5-bit value rather than a Huffman code.
func (d *Decompressor) decodeHuffmanBlock(lit, dist *HuffmanDecoder) error {
	for {
		sym, err := lit.decode(d.br)
		if err != nil {
			return err
		}
		switch {
		case sym < 256:
			d.win.writeByte(byte(sym))
			if err := d.emit([]byte{byte(sym)}); err != nil {
				return err
			}
			continue
		case sym == 256:
			return nil
		case sym > 285:
			return &LzError{Offset: d.br.Roffset, Reason: "reserved length symbol"}
		}

		lengthSym := sym - 257
		length := lengthBase[lengthSym]
		if extra := lengthExtraBits[lengthSym]; extra > 0 {
			bits, err := d.br.ReadBits(extra, LSBFirst)
			if err != nil {
				return err
			}
			length += int(bits)
		}

		var distSym int
		if dist == nil {
			v, err := d.br.ReadBits(5, MSBFirst)
			if err != nil {
				return err
			}
			distSym = int(v)
		} else {
			distSym, err = dist.decode(d.br)
			if err != nil {
				return err
			}
		}
		if distSym >= len(distBase) {
			return &LzError{Offset: d.br.Roffset, Reason: "invalid distance code"}
		}
		distance := distBase[distSym]
		if extra := distExtraBits[distSym]; extra > 0 {
			bits, err := d.br.ReadBits(extra, LSBFirst)
			if err != nil {
				return err
			}
			distance += int(bits)
		}

		if err := d.win.copyBack(distance, length, func(b byte) error {
			return d.emit([]byte{b})
		}); err != nil {
			return err
		}
	}
}
