// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details.
package coding // import "github.com/unixdj/qrmatrix/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrmatrix/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions number from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool {
	return MinVersion <= v && v <= MaxVersion
}

// Size returns the number of modules on a side of a QR code
// of version v.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// QR version size classes.  The class determines the length of the
// character count field of a segment.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClasses lists the smallest and largest version of each size
// class.
var SizeClasses = [3]struct{ Min, Max Version }{
	{1, 9}, {10, 26}, {27, 40},
}

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Bytes returns the total number of codewords, data and error
// correction, in a QR code of version v.
func (v Version) Bytes() int {
	return vtab[v].bytes
}

// DataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	vt := &vtab[v]
	lev := &vt.level[l]
	return vt.bytes - (lev.short+lev.long)*lev.check
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int {
	return v.DataBytes(l) * 8
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // recovers 7% of codewords
	M              // recovers 15% of codewords
	Q              // recovers 25% of codewords
	H              // recovers 30% of codewords
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is a QR error correction level.
func (l Level) IsValid() bool {
	return L <= l && l <= H
}

// A Mode is a QR segment encoding mode.  The set of modes is
// closed; each mode packs characters in its own way.
type Mode byte

const (
	Numeric      Mode = iota // 0-9, 3 digits in 10 bits
	Alphanumeric             // 0-9 A-Z SPACE $%*+-./:, 2 characters in 11 bits
	Byte                     // any byte, 8 bits each
	modes
)

// Mode indicators and character count field lengths per size class.
var modeTab = [modes]struct {
	name        string
	indicator   uint32
	countLength [3]int
}{
	Numeric:      {"numeric", 1, [3]int{10, 12, 14}},
	Alphanumeric: {"alphanumeric", 2, [3]int{9, 11, 13}},
	Byte:         {"byte", 4, [3]int{8, 16, 16}},
}

func (m Mode) String() string {
	if m < modes {
		return modeTab[m].name
	}
	return strconv.Itoa(int(m))
}

// Indicator returns the 4 bit mode indicator.
func (m Mode) Indicator() int {
	return int(modeTab[m].indicator)
}

// CountLength returns the length in bits of the character count
// field in the given size class.
func (m Mode) CountLength(class int) int {
	return modeTab[m].countLength[class]
}

// EncodedLength returns the length in bits of n characters
// encoded in mode m, excluding the header.
func (m Mode) EncodedLength(n int) int {
	switch m {
	case Numeric:
		return (10*n + 2) / 3
	case Alphanumeric:
		return (11*n + 1) / 2
	}
	return n * 8
}

// Length returns the length in bits of a segment of n characters
// encoded in mode m at the given size class, including the header.
func (m Mode) Length(n, class int) int {
	return 4 + m.CountLength(class) + m.EncodedLength(n)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// Accepts reports whether mode m can encode the byte c.
func (m Mode) Accepts(c byte) bool {
	switch m {
	case Numeric:
		return c-'0' < 10
	case Alphanumeric:
		return alphamask>>(uint32(c)-' ')&1 != 0
	}
	return m == Byte
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents an invalid Segment.
type SegmentError Segment

func (e SegmentError) Error() string {
	if e.Mode < modes {
		return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	if seg.Mode >= modes {
		return false
	}
	for i := 0; i < len(seg.Text); i++ {
		if !seg.Mode.Accepts(seg.Text[i]) {
			return false
		}
	}
	return true
}

// EncodedLength returns the encoded length in bits of seg in the
// given QR version size class.  The segment is not validated.
func (seg Segment) EncodedLength(class int) int {
	return seg.Mode.Length(len(seg.Text), class)
}

// Encode writes seg encoded for the given QR version size class to b.
func (seg Segment) Encode(b *Bits, class int) error {
	if !seg.IsValid() {
		return SegmentError(seg)
	}
	s := seg.Text
	m := seg.Mode
	cl := m.CountLength(class)
	if len(s) >= 1<<cl {
		return fmt.Errorf("qr: %s segment of %d characters "+
			"exceeds %d bit count field", m, len(s), cl)
	}
	b.Write(modeTab[m].indicator, 4)
	b.Write(uint32(len(s)), cl)
	switch m {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			b.Write(uint32(s[0]-'0')*100+uint32(s[1]-'0')*10+
				uint32(s[2]-'0'), 10)
		}
		if len(s) == 2 {
			b.Write(uint32(s[0]-'0')*10+uint32(s[1]-'0'), 7)
		} else if len(s) == 1 {
			b.Write(uint32(s[0]-'0'), 4)
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			b.Write(uint32(alpha[s[0]&0x3f])*45+
				uint32(alpha[s[1]&0x3f]), 11)
		}
		if len(s) == 1 {
			b.Write(uint32(alpha[s[0]&0x3f]), 6)
		}
	default:
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
	}
	return nil
}

// Bits is a bit stream writer, most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, v.Bytes())}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the bytes written.  It panics if the stream
// doesn't end on a byte boundary.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write writes the nbit low bits of v, nbit <= 32.
func (b *Bits) Write(v uint32, nbit int) {
	for nbit > 0 {
		if b.nbit&7 == 0 {
			b.b = append(b.b, 0)
		}
		free := 8 - b.nbit&7
		n := min(free, nbit)
		chunk := byte(v >> (nbit - n) & (1<<n - 1))
		b.b[len(b.b)-1] |= chunk << (free - n)
		b.nbit += n
		nbit -= n
	}
}

// Pad bytes alternately appended after the data.
var padBytes = [2]byte{0xec, 0x11}

// Pad fills b up to n bytes: up to 4 terminator bits, zero bits to
// the byte boundary, then alternating pad bytes.
func (b *Bits) Pad(n int) {
	if b.nbit > n*8 {
		panic("qr: too much data")
	}
	b.Write(0, min(4, n*8-b.nbit))
	b.Write(0, -b.nbit&7)
	for i := 0; len(b.b) < n; i++ {
		b.b = append(b.b, padBytes[i&1])
	}
	b.nbit = len(b.b) * 8
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

// CapacityError reports data too long for a version and level.
type CapacityError struct {
	Version  Version
	Level    Level
	Bits     int // encoded data length
	Capacity int // data capacity of the version at the level
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into version %v-%v "+
		"(%d bits)", e.Bits, e.Version, e.Level, e.Capacity)
}

// A Code is a square grid of modules.  It is not modified after
// Encode returns it.  Each Code has a Bitmap of its own, shared with
// no Plan or other Code.
type Code struct {
	Bitmap  []byte  // one byte per module, row by row; 1 is dark
	Size    int     // number of modules on a side
	Version Version // QR version
	Level   Level   // error correction level
	Mask    int     // mask pattern, 0 to 7
	Scores  [8]int  // penalty score of each mask pattern
}

// Black reports whether the module in column x, row y is dark.
// Modules outside the code are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Size+x] != 0
}

// Encoder encodes a QR code.
type Encoder struct {
	p *Plan
	l Level
	b *Bits
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if !level.IsValid() {
		return nil, ErrLevel
	}
	p, err := NewPlan(version)
	if err != nil {
		return nil, err
	}
	return &Encoder{p: p, l: level, b: NewBits(version)}, nil
}

// Write adds segments to e.
func (e *Encoder) Write(segs ...Segment) error {
	class := e.p.Version.SizeClass()
	for _, seg := range segs {
		if err := seg.Encode(e.b, class); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) Reset() { e.b.Reset() }

// Codewords returns the final codeword sequence for the data written
// to e: padded data codewords and error correction codewords, with
// blocks interleaved.
func (e *Encoder) Codewords() ([]byte, error) {
	v, l := e.p.Version, e.l
	if n := v.DataBits(l); e.b.Bits() > n {
		return nil, &CapacityError{v, l, e.b.Bits(), n}
	}
	e.b.Pad(v.DataBytes(l))
	return Interleave(Blocks(v, l, e.b.Bytes())), nil
}

// Code returns a QR code containing data written to e.
func (e *Encoder) Code() (*Code, error) {
	cw, err := e.Codewords()
	if err != nil {
		return nil, err
	}
	p := e.p
	base := p.Base(cw)
	bitmap, mask, scores := p.chooseMask(base, e.l)
	return &Code{
		Bitmap:  bitmap,
		Size:    p.Size,
		Version: p.Version,
		Level:   e.l,
		Mask:    mask,
		Scores:  scores,
	}, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(segs ...Segment) (*Code, error) {
	if err := e.Write(segs...); err != nil {
		return nil, err
	}
	return e.Code()
}

// Encode encodes segments using an Encoder with the given version
// and level.
func Encode(version Version, level Level, segs ...Segment) (*Code, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, err
	}
	return e.Encode(segs...)
}

// A version describes metadata associated with a version.
type version struct {
	apos    int // upper left coordinate of the first alignment box
	astride int // distance between alignment boxes
	bytes   int // total codewords
	level   [4]level
}

// level describes the block structure for a version and level:
// short blocks followed by long blocks holding one more data byte,
// all with the same number of check bytes.
type level struct {
	short int
	long  int
	check int
}
