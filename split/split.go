// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package split splits strings into QR code segments and chooses the
smallest QR code version able to hold them.
*/
package split // import "github.com/unixdj/qrmatrix/split"

import (
	"errors"
	"fmt"
	"slices"

	"github.com/unixdj/qrmatrix/coding"
)

var (
	ErrLongText     = errors.New("qr: text too long")
	ErrSmallVersion = errors.New("qr: version too small")
)

/*
The split is calculated by walking the string forward once.  After
each byte the splitter keeps, for every state, the smallest encoded
length of the string so far with the last segment in that state.  A
state is the mode of the last segment and the number of its
characters modulo the mode's group size: numeric mode packs 3 digits
in 10 bits, alphanumeric 2 characters in 11 bits, byte mode 1 byte in
8 bits.  The length of a partial group is counted in full (4 or 7 bits
for 1 or 2 trailing digits, 6 bits for 1 trailing alphanumeric
character), so the length of a segment is the sum of what each of its
characters adds:

	numeric        4 3 3 4 3 3 ...
	alphanumeric   6 5 6 5 ...
	byte           8 8 8 ...

A byte either extends the last segment, moving to the next state of
the same mode, or starts a new segment of another mode, adding the 4
bit mode indicator and the character count field.  A new segment of
the same mode is never shorter than extending the old one.  Each state
remembers the state it came from, and the best state after the last
byte leads back to an optimal split.

On ties, extending a segment wins over starting a new one, and modes
are preferred in the order numeric, alphanumeric, byte.
*/

// A state describes the last segment of a partial split.
type state struct {
	mode  coding.Mode
	group int // characters per group
	res   int // characters in the last group modulo group
}

// States of the same mode are adjacent and ordered by res.
var states = [...]state{
	{coding.Numeric, 3, 0},
	{coding.Numeric, 3, 1},
	{coding.Numeric, 3, 2},
	{coding.Alphanumeric, 2, 0},
	{coding.Alphanumeric, 2, 1},
	{coding.Byte, 1, 0},
}

const (
	nstate = len(states)
	start  = -1      // no previous state
	inf    = 1 << 30 // unreachable state
)

// Segments returns an optimal split of text into segments for the
// given QR version size class and its encoded length in bits.  The
// segments cover text with no gaps, and adjacent segments have
// different modes.
//
// Empty text is split into a single empty byte mode segment.
func Segments(text string, class int) ([]coding.Segment, int) {
	if text == "" {
		seg := coding.Segment{Mode: coding.Byte}
		return []coding.Segment{seg}, seg.EncodedLength(class)
	}

	var cost [nstate]int
	from := make([][nstate]int8, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		var next [nstate]int
		for s, st := range states {
			next[s] = inf
			if !st.mode.Accepts(c) {
				continue
			}
			prev := (st.res + st.group - 1) % st.group
			add := st.mode.EncodedLength(prev+1) - st.mode.EncodedLength(prev)
			best, bp := inf, start
			if i > 0 {
				if ps := s - st.res + prev; cost[ps] < inf {
					best, bp = cost[ps]+add, ps
				}
			}
			if prev == 0 {
				h := 4 + st.mode.CountLength(class) + add
				if i == 0 {
					best = h
				}
				for ps, pst := range states {
					if i > 0 && pst.mode != st.mode && cost[ps]+h < best {
						best, bp = cost[ps]+h, ps
					}
				}
			}
			next[s], from[i][s] = best, int8(bp)
		}
		cost = next
	}

	s := 0
	for i := 1; i < nstate; i++ {
		if cost[i] < cost[s] {
			s = i
		}
	}
	bits := cost[s]
	if bits >= inf {
		panic("qr: internal error: unsplittable text")
	}

	var segs []coding.Segment
	end := len(text)
	for i := len(text) - 1; i >= 0; i-- {
		p := from[i][s]
		if p < 0 || states[p].mode != states[s].mode {
			segs = append(segs, coding.Segment{
				Text: text[i:end],
				Mode: states[s].mode,
			})
			end = i
		}
		if p >= 0 {
			s = int(p)
		}
	}
	slices.Reverse(segs)
	return segs, bits
}

// Split returns segments for text and the smallest QR code version
// holding them at the given error correction level.  The versions are
// scanned in ascending order.  Split returns an error wrapping
// ErrLongText and a *coding.CapacityError if text doesn't fit in
// a version 40 code.
func Split(text string, level coding.Level) ([]coding.Segment, coding.Version, error) {
	if !level.IsValid() {
		return nil, 0, coding.ErrLevel
	}
	var bits int
	for class, sc := range coding.SizeClasses {
		// Count field lengths change with the size class, and so
		// may the optimal split.
		var segs []coding.Segment
		segs, bits = Segments(text, class)
		for v := sc.Min; v <= sc.Max; v++ {
			if bits <= v.DataBits(level) {
				return segs, v, nil
			}
		}
	}
	v := coding.MaxVersion
	return nil, 0, fmt.Errorf("%w: %w", ErrLongText,
		&coding.CapacityError{
			Version:  v,
			Level:    level,
			Bits:     bits,
			Capacity: v.DataBits(level),
		})
}

// SplitVersion returns segments for text in a QR code of the given
// version and error correction level.  It returns an error wrapping
// ErrSmallVersion and a *coding.CapacityError if text doesn't fit.
func SplitVersion(text string, level coding.Level, v coding.Version) ([]coding.Segment, error) {
	if !level.IsValid() {
		return nil, coding.ErrLevel
	}
	if !v.IsValid() {
		return nil, coding.ErrVersion
	}
	segs, bits := Segments(text, v.SizeClass())
	if n := v.DataBits(level); bits > n {
		return nil, fmt.Errorf("%w: %w", ErrSmallVersion,
			&coding.CapacityError{
				Version:  v,
				Level:    level,
				Bits:     bits,
				Capacity: n,
			})
	}
	return segs, nil
}
