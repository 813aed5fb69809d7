// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// EncodeSVG writes an SVG image displaying the code to w: a rectangle
// of the light colour covered by a single path of c.Scale sized
// squares, one per dark module.
func (c *Code) EncodeSVG(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	scale, bord := c.Scale, c.Border
	pix := scale * (c.Size + bord*2)
	pal := c.colors()
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" `+
		`viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		pix, pix, pix, pix)
	fmt.Fprintf(b, `<rect width="100%%" height="100%%" fill="%s"%s/>`+"\n",
		hexColor(pal[0]), opacity(pal[0]))
	fmt.Fprint(b, `<path d="`)
	for y := -bord; y < c.Size+bord; y++ {
		for x := -bord; x < c.Size+bord; x++ {
			if c.ink(x, y) {
				fmt.Fprintf(b, "M%d %dh%dv%dh-%dz",
					(x+bord)*scale, (y+bord)*scale,
					scale, scale, scale)
			}
		}
	}
	fmt.Fprintf(b, `" fill="%s"%s/>`+"\n</svg>\n",
		hexColor(pal[1]), opacity(pal[1]))
	return b.Flush()
}

// hexColor returns the #rrggbb notation of col.
func hexColor(col color.Color) string {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// opacity returns a fill-opacity attribute for translucent col.
func opacity(col color.Color) string {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	if n.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` fill-opacity="%.3g"`, float64(n.A)/0xff)
}
