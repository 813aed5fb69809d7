// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gf256 implements arithmetic over the Galois Field GF(256)
and Reed-Solomon error correction coding on top of it.

GF(256) is defined by a primitive polynomial of degree 8 and a
generator element.  Addition is exclusive or; multiplication and
division use exponent and logarithm tables built by NewField.
*/
package gf256 // import "github.com/unixdj/qrmatrix/gf256"

import "strconv"

// A Field represents an instance of GF(256) defined by a specific
// polynomial.  A Field is immutable after NewField returns and is
// safe for concurrent use.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte // exp[i] for i up to 2*254, so Mul needs no modulo
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The QR code standard uses poly = 0x11d (x^8 + x^4
// + x^3 + x^2 + 1) and α = 2.
//
// NewField panics if poly is not of degree 8 or α does not generate
// the multiplicative group of the field.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || α < 2 || α > 0xff {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 0 || x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return &f
}

// mul returns the product x*y mod poly, a GF(256) multiplication
// done the slow way.  It is only used to build the tables.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns -1.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return -1
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-int(f.log[x])]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Div returns x/y in the field.  Div panics if y == 0.
func (f *Field) Div(x, y byte) byte {
	if y == 0 {
		panic("gf256: division by zero")
	}
	if x == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+255-int(f.log[y])]
}

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.  The generator
// polynomial is computed by NewRSEncoder; an RSEncoder holds no
// other state and is safe for concurrent use.
type RSEncoder struct {
	f    *Field
	c    int
	gen  []byte // generator coefficients, highest degree first
	lgen []int  // logarithms of gen, -1 for zero coefficients
}

// Gen returns the generator polynomial of degree e,
// (x - α^0)(x - α^1)...(x - α^(e-1)), with coefficients ordered
// from the highest degree term, whose coefficient is always 1.
func (f *Field) Gen(e int) []byte {
	g := make([]byte, 1, e+1)
	g[0] = 1
	for i := 0; i < e; i++ {
		c := f.Exp(i)
		g = append(g, 0)
		for k := len(g) - 1; k > 0; k-- {
			g[k] ^= f.Mul(c, g[k-1])
		}
	}
	return g
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 0 || c > 254 {
		panic("gf256: invalid check byte count " + strconv.Itoa(c))
	}
	gen := f.Gen(c)
	lgen := make([]int, len(gen))
	for i, v := range gen {
		lgen[i] = f.Log(v)
	}
	return &RSEncoder{f: f, c: c, gen: gen, lgen: lgen}
}

// Check returns the number of error correction bytes.
func (rs *RSEncoder) Check() int { return rs.c }

// ECC writes to check the error correction bytes for data.
// The check bytes are the remainder after dividing data, padded
// with len(check) zeros, by the generator polynomial.
// ECC panics if len(check) differs from the encoder's byte count.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) != rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	p := make([]byte, len(data)+rs.c)
	copy(p, data)
	exp, log := &rs.f.exp, &rs.f.log
	for i := range data {
		coef := p[i]
		if coef == 0 {
			continue
		}
		lc := int(log[coef])
		for j, lg := range rs.lgen[1:] {
			if lg >= 0 {
				p[i+j+1] ^= exp[lc+lg]
			}
		}
	}
	copy(check, p[len(data):])
}
