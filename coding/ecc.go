// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"sync"

	"github.com/unixdj/qrmatrix/gf256"
)

// A Block is a run of data codewords and its error correction
// codewords.
type Block struct {
	Data  []byte
	Check []byte
}

// The largest number of check bytes per block in any version and level.
const maxCheck = 30

// Reed-Solomon encoders by number of check bytes, created the first
// time the number is used.
var encoders [maxCheck + 1]struct {
	once sync.Once
	rs   *gf256.RSEncoder
}

func rsEncoder(check int) *gf256.RSEncoder {
	e := &encoders[check]
	e.once.Do(func() { e.rs = gf256.NewRSEncoder(Field, check) })
	return e.rs
}

// Blocks splits the data codewords of a QR code with the given
// version and level into blocks and computes their error correction
// codewords.  Blocks panics if len(data) is not v.DataBytes(l).
func Blocks(v Version, l Level, data []byte) []Block {
	if len(data) != v.DataBytes(l) {
		panic("qr: internal error: wrong data length")
	}
	lev := vtab[v].level[l]
	nblock := lev.short + lev.long
	db := len(data) / nblock
	rs := rsEncoder(lev.check)
	check := make([]byte, nblock*lev.check)
	blocks := make([]Block, nblock)
	for i := range blocks {
		if i == lev.short {
			db++
		}
		b := &blocks[i]
		b.Data, data = data[:db], data[db:]
		b.Check, check = check[:lev.check], check[lev.check:]
		rs.ECC(b.Data, b.Check)
	}
	return blocks
}

// Interleave returns the codeword sequence for blocks: the first
// data codeword of each block, then the second, and so on, skipping
// exhausted short blocks, followed by the check codewords in the
// same order.
func Interleave(blocks []Block) []byte {
	var nd, nc, maxd int
	for _, b := range blocks {
		nd += len(b.Data)
		nc += len(b.Check)
		maxd = max(maxd, len(b.Data))
	}
	dst := make([]byte, 0, nd+nc)
	for j := 0; j < maxd; j++ {
		for _, b := range blocks {
			if j < len(b.Data) {
				dst = append(dst, b.Data[j])
			}
		}
	}
	if len(blocks) != 0 {
		for j := range blocks[0].Check {
			for _, b := range blocks {
				dst = append(dst, b.Check[j])
			}
		}
	}
	if len(dst) != nd+nc {
		panic("qr: internal error: uneven check blocks")
	}
	return dst
}
