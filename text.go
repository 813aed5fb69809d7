// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// Half blocks by upper and lower module, 1 is ink.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// String returns the code drawn in UTF-8 half block characters, two
// rows of modules per line, with the quiet zone.  Dark modules are
// drawn as blocks, or light ones if c.Reverse is set.  On terminals
// with light text on a dark background the latter is readable.
func (c *Code) String() string {
	if c == nil || c.Size <= 0 || len(c.Bitmap) != c.Size*c.Size {
		return ""
	}
	bord := max(c.Border, 0)
	var b strings.Builder
	b.Grow((c.Size + 2*bord) * (c.Size + 2*bord + 2) / 2 * 3)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			i := btoi(c.ink(x, y)) | btoi(c.ink(x, y+1))<<1
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
