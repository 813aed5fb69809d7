// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unixdj/qrmatrix/coding"
)

// A decoded QR code.
type decoded struct {
	Version coding.Version
	Level   Level
	Mask    int
	Segs    []coding.Segment
	Text    string
}

var alphaChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// decode reads a siz×siz bitmap as a QR code: format information,
// unmasking, zigzag scan, block deinterleaving, Reed-Solomon syndrome
// check and bit stream parsing.  It corrects no errors.
//
// decode takes the module roles and block structure from package
// coding, and checks what an image reader doesn't report: segment
// modes, the terminator and the padding.  See readImage for reading
// the code with a decoder of its own.
func decode(bitmap []byte, siz int) (*decoded, error) {
	if siz < 21 || siz > 177 || siz%4 != 1 || len(bitmap) != siz*siz {
		return nil, fmt.Errorf("bad size %d", siz)
	}
	at := func(x, y int) byte { return bitmap[y*siz+x] }
	d := &decoded{Version: coding.Version((siz - 17) / 4)}

	// Format information, both copies.
	var f1, f2 uint16
	for i := 0; i < 15; i++ {
		var x, y int
		switch {
		case i < 6:
			x, y = 8, i
		case i < 8:
			x, y = 8, i+1
		case i == 8:
			x, y = 7, 8
		default:
			x, y = 14-i, 8
		}
		f1 |= uint16(at(x, y)) << i
		if i < 8 {
			f2 |= uint16(at(siz-1-i, 8)) << i
		} else {
			f2 |= uint16(at(8, siz-15+i)) << i
		}
	}
	if f1 != f2 {
		return nil, fmt.Errorf("format copies differ: %#x %#x", f1, f2)
	}
	info := (f1 ^ 0x5412) >> 10
	d.Level, d.Mask = Level(info>>3^1), int(info&7)
	if coding.FormatBits(d.Level, d.Mask) != f1 {
		return nil, fmt.Errorf("bad format bits %#x", f1)
	}

	// Version information, both copies.
	if d.Version >= 7 {
		var v1, v2 uint32
		for i := 0; i < 18; i++ {
			a, b := siz-11+i%3, i/3
			v1 |= uint32(at(a, b)) << i
			v2 |= uint32(at(b, a)) << i
		}
		if v1 != v2 || v1 != coding.VersionBits(d.Version) {
			return nil, fmt.Errorf("bad version bits %#x %#x", v1, v2)
		}
	}

	// Unmask and read codewords in zigzag order.
	p, err := coding.NewPlan(d.Version)
	if err != nil {
		return nil, err
	}
	cw := make([]byte, d.Version.Bytes())
	n := 0
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 {
			x = 5
		}
		for i := 0; i < siz; i++ {
			y := i
			if (siz-1-x)/2%2 == 0 { // first strip goes up
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if p.Role[y*siz+xx] != coding.DataRole {
					continue
				}
				bit := at(xx, y)
				if coding.MaskBit(d.Mask, y, xx) {
					bit ^= 1
				}
				if n < len(cw)*8 {
					cw[n/8] |= bit << (7 - n%8)
				} else if bit != 0 {
					return nil, errors.New("remainder bit set")
				}
				n++
			}
		}
	}
	if n < len(cw)*8 {
		return nil, fmt.Errorf("%d data modules for %d codewords", n, len(cw))
	}

	// Deinterleave.
	blocks := coding.Blocks(d.Version, d.Level,
		make([]byte, d.Version.DataBytes(d.Level)))
	for j, k := 0, 0; k < d.Version.DataBytes(d.Level); j++ {
		for _, b := range blocks {
			if j < len(b.Data) {
				b.Data[j] = cw[k]
				k++
			}
		}
	}
	rest := cw[d.Version.DataBytes(d.Level):]
	for j := range blocks[0].Check {
		for _, b := range blocks {
			b.Check[j], rest = rest[0], rest[1:]
		}
	}

	// Syndromes: the block polynomial vanishes at α^0..α^(c-1).
	f := coding.Field
	var data []byte
	for bi, b := range blocks {
		msg := append(append([]byte{}, b.Data...), b.Check...)
		for i := range b.Check {
			x := f.Exp(i)
			var s byte
			for _, c := range msg {
				s = f.Add(f.Mul(s, x), c)
			}
			if s != 0 {
				return nil, fmt.Errorf("block %d: syndrome %d is %d", bi, i, s)
			}
		}
		data = append(data, b.Data...)
	}

	// Bit stream.
	if err := d.parse(data); err != nil {
		return nil, err
	}
	return d, nil
}

// bitReader reads bits most significant first.
type bitReader struct {
	b   []byte
	pos int
}

func (r *bitReader) left() int { return len(r.b)*8 - r.pos }

func (r *bitReader) read(n int) int {
	v := 0
	for ; n > 0; n-- {
		v = v<<1 | int(r.b[r.pos/8]>>(7-r.pos%8)&1)
		r.pos++
	}
	return v
}

// parse parses the data codewords into segments, checking the
// terminator and the padding.
func (d *decoded) parse(data []byte) error {
	r := &bitReader{b: data}
	class := d.Version.SizeClass()
	var text strings.Builder
	for r.left() >= 4 {
		ind := r.read(4)
		if ind == 0 {
			break
		}
		var m coding.Mode
		switch ind {
		case 1:
			m = coding.Numeric
		case 2:
			m = coding.Alphanumeric
		case 4:
			m = coding.Byte
		default:
			return fmt.Errorf("mode indicator %d", ind)
		}
		cl := m.CountLength(class)
		if r.left() < cl {
			return errors.New("short count")
		}
		cnt := r.read(cl)
		if r.left() < m.EncodedLength(cnt) {
			return fmt.Errorf("short %v segment of %d", m, cnt)
		}
		var s []byte
		switch m {
		case coding.Numeric:
			for i := cnt; i > 0; i -= 3 {
				k := min(i, 3)
				v := r.read(m.EncodedLength(k))
				t := fmt.Sprintf("%0*d", k, v)
				if len(t) != k {
					return fmt.Errorf("numeric group %d", v)
				}
				s = append(s, t...)
			}
		case coding.Alphanumeric:
			for i := cnt; i > 0; i -= 2 {
				if i == 1 {
					v := r.read(6)
					if v >= 45 {
						return fmt.Errorf("alphanumeric character %d", v)
					}
					s = append(s, alphaChars[v])
					break
				}
				v := r.read(11)
				if v >= 45*45 {
					return fmt.Errorf("alphanumeric pair %d", v)
				}
				s = append(s, alphaChars[v/45], alphaChars[v%45])
			}
		default:
			for i := 0; i < cnt; i++ {
				s = append(s, byte(r.read(8)))
			}
		}
		d.Segs = append(d.Segs, coding.Segment{Text: string(s), Mode: m})
		text.Write(s)
	}
	d.Text = text.String()

	// Zero bits to the byte boundary, then pad bytes.
	for r.pos%8 != 0 {
		if r.read(1) != 0 {
			return errors.New("bad bit padding")
		}
	}
	for i := 0; r.left() > 0; i++ {
		if b := r.read(8); b != [2]int{0xec, 0x11}[i&1] {
			return fmt.Errorf("bad pad byte %#x", b)
		}
	}
	return nil
}
