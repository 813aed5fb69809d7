// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "golang.org/x/sync/errgroup"

// Mask patterns, by row y and column x:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
var maskFuncs = [8]func(y, x int) bool{
	func(y, x int) bool { return (y+x)%2 == 0 },
	func(y, x int) bool { return y%2 == 0 },
	func(y, x int) bool { return x%3 == 0 },
	func(y, x int) bool { return (y+x)%3 == 0 },
	func(y, x int) bool { return (y/2+x/3)%2 == 0 },
	func(y, x int) bool { return y*x%2+y*x%3 == 0 },
	func(y, x int) bool { return (y*x%2+y*x%3)%2 == 0 },
	func(y, x int) bool { return ((y+x)%2+y*x%3)%2 == 0 },
}

// MaskBit reports whether mask pattern m inverts the module in
// row y, column x.
func MaskBit(m, y, x int) bool {
	return maskFuncs[m&7](y, x)
}

// applyMask inverts the data modules of bitmap selected by mask m.
func (p *Plan) applyMask(bitmap []byte, m int) {
	f := maskFuncs[m]
	siz := p.Size
	for y := 0; y < siz; y++ {
		row := y * siz
		for x := 0; x < siz; x++ {
			if p.Role[row+x] == DataRole && f(y, x) {
				bitmap[row+x] ^= 1
			}
		}
	}
}

// Candidate returns a copy of base with mask m applied and the
// format information for level l and mask m written.
func (p *Plan) Candidate(base []byte, l Level, m int) []byte {
	bitmap := make([]byte, len(base))
	copy(bitmap, base)
	p.applyMask(bitmap, m)
	p.writeFormat(bitmap, FormatBits(l, m))
	return bitmap
}

// chooseMask evaluates the eight mask candidates for base in
// parallel and returns the one with the smallest penalty, the lowest
// numbered on ties, with its mask number and all penalties.
func (p *Plan) chooseMask(base []byte, l Level) ([]byte, int, [8]int) {
	var (
		g      errgroup.Group
		trials [8][]byte
		scores [8]int
	)
	for m := range trials {
		m := m
		g.Go(func() error {
			trials[m] = p.Candidate(base, l, m)
			scores[m] = Penalty(trials[m], p.Size)
			return nil
		})
	}
	g.Wait() // trials don't fail
	best := 0
	for m := 1; m < len(scores); m++ {
		if scores[m] < scores[best] {
			best = m
		}
	}
	return trials[best], best, scores
}

// Penalty rule weights.
const (
	MinRun    = 5  // RunP:  minimum run length
	RunPDelta = -2 // RunP:  add to run length (3 for 5, 4 for 6...)
	BoxPP     = 3  // BoxP:  points per 2x2 box
	FindPP    = 40 // FindP: points per finder-like pattern
	BalPP     = 10 // BalP:  points per 5% deviation from 50% dark

	// Finder-like patterns: 1011101 with four light modules on
	// either side.  The quiet zone counts as light.
	findB = 0b0000_1011101 // quiet before
	findA = 0b1011101_0000 // quiet after
)

// PenaltyScores returns the scores of the four penalty rules for a
// siz×siz bitmap:
//
//   - RunP: runs of n >= 5 same-colour modules in a row or column
//     score n-2 each;
//   - BoxP: possibly overlapping 2x2 same-colour boxes score 3 each;
//   - FindP: 1:1:3:1:1 finder-like patterns next to four light
//     modules in a row or column score 40 each;
//   - BalP: 10 points for every full 5% the proportion of dark
//     modules deviates from 50%.
func PenaltyScores(bitmap []byte, siz int) [4]int {
	var s [4]int
	line := make([]byte, siz)
	for y := 0; y < siz; y++ {
		row := bitmap[y*siz : (y+1)*siz]
		r, f := linePenalty(row)
		s[0] += r
		s[2] += f
		for x := 0; x < siz; x++ {
			line[x] = bitmap[x*siz+y]
		}
		r, f = linePenalty(line)
		s[0] += r
		s[2] += f
	}

	for y := 1; y < siz; y++ {
		prev, row := bitmap[(y-1)*siz:y*siz], bitmap[y*siz:(y+1)*siz]
		for x := 1; x < siz; x++ {
			if c := row[x]; c == row[x-1] && c == prev[x] &&
				c == prev[x-1] {
				s[1] += BoxPP
			}
		}
	}

	dark := 0
	for _, v := range bitmap {
		dark += int(v)
	}
	total := siz * siz
	s[3] = abs(dark*20-total*10) / total * BalPP
	return s
}

// Penalty returns the total penalty score for a siz×siz bitmap.
// The mask with the lowest score is chosen.
func Penalty(bitmap []byte, siz int) int {
	s := PenaltyScores(bitmap, siz)
	return s[0] + s[1] + s[2] + s[3]
}

// linePenalty returns the run and finder pattern penalties for
// a row or column.
func linePenalty(line []byte) (run, find int) {
	r := 1
	for i := 1; i < len(line); i++ {
		if line[i] == line[i-1] {
			r++
			continue
		}
		if r >= MinRun {
			run += r + RunPDelta
		}
		r = 1
	}
	if r >= MinRun {
		run += r + RunPDelta
	}

	// Slide an 11 module window over the line with four quiet
	// zone modules on each end.
	var pat uint16
	for i := 0; i < len(line)+4; i++ {
		pat = pat << 1 & 0x7ff
		if i < len(line) {
			pat |= uint16(line[i])
		}
		if pat == findB || pat == findA {
			find += FindPP
		}
	}
	return run, find
}
