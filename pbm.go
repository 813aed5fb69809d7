// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	length := scale * (siz + bord*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	// In PBM 1 is black.  Rows are padded to the byte boundary.
	row := make([]byte, (length+7)/8)
	for y := -bord; y < siz+bord; y++ {
		pbmRow(row, c, y)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes row y of modules, quiet zone included, in PBM
// format.
func pbmRow(row []byte, c *Code, y int) {
	clear(row)
	scale := c.Scale
	j := 0
	for x := -c.Border; x < c.Size+c.Border; x++ {
		if !c.ink(x, y) {
			j += scale
			continue
		}
		for i := 0; i < scale; i, j = i+1, j+1 {
			row[j>>3] |= 0x80 >> (j & 7)
		}
	}
}
