// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"errors"
	"image/png"
	"io"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// Image size limits in pixels: on a side, and in total.  The image
// is streamed to the PNG encoder a row at a time, but encoding time
// grows with the area.
const (
	maxPixels = 32767 * 8
	maxArea   = 1 << 28
)

// PNG returns a PNG image displaying the code, or nil if the code
// can't be rendered.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
//
// The image is written as a two colour paletted image, 1 bit per
// pixel, from c.Palette or in black and white.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	if pix := c.Scale * (c.Size + c.Border*2); pix > maxPixels ||
		pix*pix > maxArea {
		return ErrLargeImage
	}
	e := png.Encoder{CompressionLevel: png.BestCompression}
	return e.Encode(w, c.Image())
}
