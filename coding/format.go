// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

const (
	formatPoly  = 0x537  // x^10+x^8+x^5+x^4+x^2+x+1, (15,5) BCH code
	formatMask  = 0x5412 // 101010000010010
	versionPoly = 0x1f25 // x^12+x^11+x^10+x^9+x^8+x^5+x^2+1, (18,6) Golay code
)

// FormatBits returns the 15 bit format information for the given
// level and mask: 2 bits of level (L=01, M=00, Q=11, H=10) and 3 bits
// of mask followed by 10 BCH check bits, xored with formatMask.
func FormatBits(l Level, mask int) uint16 {
	data := uint32(l^1)<<3 | uint32(mask&7)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*formatPoly
	}
	return uint16(data<<10|rem) ^ formatMask
}

// VersionBits returns the 18 bit version information for v:
// 6 bits of version followed by 12 BCH check bits.
// It returns 0 for versions below 7, which carry no version
// information.
func VersionBits(v Version) uint32 {
	if v < 7 || v > MaxVersion {
		return 0
	}
	rem := uint32(v)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*versionPoly
	}
	return uint32(v)<<12 | rem
}
