// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Role records what a module of a QR code is used for.
type Role byte

const (
	DataRole     Role = iota // data and error correction bits
	FunctionRole             // finder, separator, timing and alignment patterns, dark module
	FormatRole               // format information
	VersionRole              // version information, versions 7 and up
)

// A Plan describes the layout of a QR code of a specific version:
// which modules carry data and the fixed pattern of the rest.
// A Plan is immutable and shared; the Base and Candidate methods
// return fresh bitmaps.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of modules on a side

	Role    []Role // module roles, row by row
	Pattern []byte // function patterns and version information; 1 is dark

	DataModules int // number of modules with DataRole
}

// Plans, created the first time a version is used.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for a QR code with the given version.
func NewPlan(version Version) (*Plan, error) {
	if !version.IsValid() {
		return nil, ErrVersion
	}
	p := &plans[version]
	p.once.Do(func() { p.p = vplan(version) })
	return p.p, nil
}

// set marks the module at x, y with role r and colour dark.
// Modules already taken by another role are left alone.
func (p *Plan) set(x, y int, r Role, dark bool) {
	i := y*p.Size + x
	if p.Role[i] != DataRole {
		return
	}
	p.Role[i] = r
	if dark {
		p.Pattern[i] = 1
	}
}

// vplan creates a Plan for the given version.
func vplan(v Version) *Plan {
	siz := v.Size()
	p := &Plan{
		Version: v,
		Size:    siz,
		Role:    make([]Role, siz*siz),
		Pattern: make([]byte, siz*siz),
	}

	// Position boxes with separators.
	finderBox(p, 0, 0)
	finderBox(p, siz-7, 0)
	finderBox(p, 0, siz-7)

	// Timing markers.
	for i := 8; i < siz-8; i++ {
		p.set(i, 6, FunctionRole, i&1 == 0)
		p.set(6, i, FunctionRole, i&1 == 0)
	}

	// Alignment boxes.
	info := &vtab[v]
	for x := info.apos; x < siz; x += info.astride {
		for y := info.apos; y < siz; y += info.astride {
			alignBox(p, x, y)
		}
		if x >= siz-12 {
			break
		}
		alignBox(p, x, 4)
		alignBox(p, 4, x)
	}

	// One lonely black pixel.
	p.set(8, siz-8, FunctionRole, true)

	// Format pixels: 9x9 less timing around the top left box,
	// 8 on the right of row 8 and 7 at the bottom of column 8.
	for i := 0; i < 9; i++ {
		p.set(8, i, FormatRole, false)
		p.set(i, 8, FormatRole, false)
	}
	for i := 0; i < 8; i++ {
		p.set(siz-1-i, 8, FormatRole, false)
		p.set(8, siz-1-i, FormatRole, false)
	}

	// Version pattern: 3x6 at (siz-11, 0) and 6x3 at (0, siz-11).
	if v >= 7 {
		vb := VersionBits(v)
		for i := 0; i < 18; i++ {
			dark := vb>>i&1 != 0
			a, b := siz-11+i%3, i/3
			p.set(a, b, VersionRole, dark)
			p.set(b, a, VersionRole, dark)
		}
	}

	for _, r := range p.Role {
		if r == DataRole {
			p.DataModules++
		}
	}
	if p.DataModules < v.Bytes()*8 || p.DataModules-v.Bytes()*8 > 7 {
		panic("qr: internal error: plan does not match version table")
	}
	return p
}

// finderBox draws a position box at upper left x, y with its
// one module separator, clipped to the code.
func finderBox(p *Plan, x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= p.Size || yy < 0 || yy >= p.Size {
				continue
			}
			d := max(abs(dx-3), abs(dy-3)) // ring: 0-1 dark, 2 light, 3 dark, 4 separator
			p.set(xx, yy, FunctionRole, d != 2 && d != 4)
		}
	}
}

// alignBox draws an alignment (small) box at upper left x, y.
func alignBox(p *Plan, x, y int) {
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < 5; dx++ {
			p.set(x+dx, y+dy, FunctionRole,
				max(abs(dx-2), abs(dy-2)) != 1)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Serialise writes bits from s to the data modules of bitmap in
// zigzag scan order: two column strips from the right edge, going up
// and down in turn, skipping the vertical timing column.  Modules
// left when s runs out (remainder bits) are set to 0.
func (p *Plan) Serialise(s BitStream, bitmap []byte) {
	siz := p.Size
	for x := siz - 1; x >= 1; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		up := (x+1)&2 == 0
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			off := y*siz + x
			for _, o := range [2]int{off, off - 1} {
				if p.Role[o] == DataRole {
					bitmap[o] = s.Next()
				}
			}
		}
	}
}

// Base returns a new bitmap with the function patterns, version
// information and the codewords placed, before masking.
// Base panics if codewords don't fill the data modules.
func (p *Plan) Base(codewords []byte) []byte {
	if len(codewords) != p.Version.Bytes() {
		panic("qr: internal error: wrong codeword count")
	}
	bitmap := make([]byte, len(p.Pattern))
	copy(bitmap, p.Pattern)
	p.Serialise(NewBitStream(codewords), bitmap)
	return bitmap
}

// writeFormat writes format bits fb to both copies of the format
// information, least significant bit first: down column 8 and left
// along row 8 around the top left box; left along row 8 from the
// right edge and up column 8 from the bottom edge.
func (p *Plan) writeFormat(bitmap []byte, fb uint16) {
	siz := p.Size
	put := func(x, y, i int) {
		bitmap[y*siz+x] = byte(fb >> i & 1)
	}
	for i := 0; i < 15; i++ {
		switch {
		case i < 6:
			put(8, i, i)
		case i < 8:
			put(8, i+1, i)
		case i == 8:
			put(7, 8, i)
		default:
			put(14-i, 8, i)
		}
		if i < 8 {
			put(siz-1-i, 8, i)
		} else {
			put(8, siz-15+i, i)
		}
	}
}
