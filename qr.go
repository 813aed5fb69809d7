// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Encode splits text into numeric, alphanumeric and byte mode segments,
chooses the smallest QR code version holding them at the requested
error correction level and returns the Code, a square grid of
modules.  The Code renders itself as an image.Image, PNG, PBM, SVG,
text and JSON.
*/
package qr // import "github.com/unixdj/qrmatrix"

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrmatrix/coding"
	"github.com/unixdj/qrmatrix/split"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

var (
	// ErrDataTooLong is returned when text doesn't fit in a version
	// 40 code at the requested level.
	ErrDataTooLong = split.ErrLongText

	// ErrVersionTooSmall is returned when text doesn't fit in the
	// version passed to EncodeVersion.
	ErrVersionTooSmall = split.ErrSmallVersion

	// ErrUnsupportedInput is returned by Latin1 for characters
	// outside ISO 8859-1.
	ErrUnsupportedInput = errors.New("qr: unsupported input")
)

// ParseLevel returns the Level named by s, one of "l", "m", "q"
// or "h" in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("lmqhLMQH", s[0]); i >= 0 {
			return Level(i & 3), nil
		}
	}
	return 0, fmt.Errorf("%w %q", coding.ErrLevel, s)
}

// Latin1 converts UTF-8 text to ISO 8859-1, so that byte mode
// segments carry one byte per character.
func Latin1(s string) (string, error) {
	t, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedInput, err)
	}
	return t, nil
}

// Encode returns an encoding of text at the given error correction
// level in the smallest QR code version able to hold it.
//
// Text is encoded byte by byte; see Latin1.  Empty text is encoded
// as an empty byte mode segment.  If text is too long, the error
// wraps ErrDataTooLong and a *coding.CapacityError.
func Encode(text string, level Level) (*Code, error) {
	return EncodeVersion(text, level, 0)
}

// EncodeVersion is like Encode, but with version 1 to 40 it encodes
// text in a QR code of that version, failing with an error wrapping
// ErrVersionTooSmall if text doesn't fit.  Version 0 chooses the
// smallest version, as in Encode.
func EncodeVersion(text string, level Level, version coding.Version) (*Code, error) {
	var (
		seg []coding.Segment
		err error
	)
	if version == 0 {
		seg, version, err = split.Split(text, level)
	} else {
		seg, err = split.SplitVersion(text, level, version)
	}
	if err != nil {
		return nil, err
	}
	return EncodeSegments(version, level, seg...)
}

// EncodeSegments encodes segments in a QR code of the given version
// and error correction level.
func EncodeSegments(version coding.Version, level Level, seg ...coding.Segment) (*Code, error) {
	cc, err := coding.Encode(version, level, seg...)
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap:  cc.Bitmap,
		Size:    cc.Size,
		Version: cc.Version,
		Level:   cc.Level,
		Mask:    cc.Mask,
		Scores:  cc.Scores,
		Scale:   8,
		Border:  4,
	}, nil
}

// A Code is a square grid of modules.
// It implements image.Image and encoding as PNG, PBM, SVG, text
// and JSON.  Scale, Border, Reverse and Palette control rendering.
//
// The encoding functions return a Code with a Bitmap of its own.
// The symbol is complete as returned; a caller that modifies Bitmap
// no longer holds a valid QR code, but affects no other Code.
type Code struct {
	Bitmap  []byte         // one byte per module, row by row; 1 is dark
	Size    int            // number of modules on a side
	Version coding.Version // QR version
	Level   Level          // error correction level
	Mask    int            // mask pattern
	Scores  [8]int         // penalty score of each mask pattern

	Scale   int             // number of image pixels per module
	Border  int             // quiet zone width in modules
	Reverse bool            // swap light and dark
	Palette *[2]color.Color // light and dark colours; nil is white and black
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && len(c.Bitmap) == c.Size*c.Size &&
		c.Scale > 0 && c.Border >= 0
}

// Black reports whether the module in column x, row y is dark.
// Modules outside the code, including the quiet zone, are light.
// Black disregards c.Reverse.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Size+x] != 0
}

// ink reports whether the module at x, y is drawn in the dark
// colour, as rendered.
func (c *Code) ink(x, y int) bool {
	return c.Black(x, y) != c.Reverse
}

// colors returns the light and dark colours.
func (c *Code) colors() color.Palette {
	if c.Palette != nil {
		return color.Palette{c.Palette[0], c.Palette[1]}
	}
	return color.Palette{whiteColor, blackColor}
}

// Image returns an Image displaying the code with its quiet zone,
// c.Scale pixels per module.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.colors()}
}

// codeImage implements image.PalettedImage, so that image/png
// writes it row by row as a 1 bit paletted image.
type codeImage struct {
	*Code
	pal color.Palette
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if x < 0 || y < 0 {
		return uint8(btoi(c.Reverse))
	}
	return uint8(btoi(c.ink(x/c.Scale-c.Border, y/c.Scale-c.Border)))
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
