// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrmatrix/coding"
)

// bruteLength returns the shortest encoded length of text over all
// splits into segments of any accepting mode.
func bruteLength(text string, class int) int {
	memo := make([]int, len(text)+1)
	for i := range memo {
		memo[i] = -1
	}
	var f func(i int) int
	f = func(i int) int {
		if i == len(text) {
			return 0
		}
		if memo[i] >= 0 {
			return memo[i]
		}
		best := inf
		for m := coding.Numeric; m <= coding.Byte; m++ {
			for j := i + 1; j <= len(text) && m.Accepts(text[j-1]); j++ {
				best = min(best, m.Length(j-i, class)+f(j))
			}
		}
		memo[i] = best
		return best
	}
	return f(0)
}

func checkSplit(t *testing.T, text string, class int, segs []coding.Segment, bits int) {
	t.Helper()
	var (
		sb  strings.Builder
		sum int
	)
	for i, seg := range segs {
		assert.True(t, seg.IsValid(), "%q: segment %d %v", text, i, seg)
		if i > 0 {
			assert.NotEqual(t, segs[i-1].Mode, seg.Mode,
				"%q: adjacent segments %d", text, i)
		}
		sb.WriteString(seg.Text)
		sum += seg.EncodedLength(class)
	}
	assert.Equal(t, text, sb.String())
	assert.Equal(t, sum, bits, "%q: %v", text, segs)
}

func TestSegmentsOptimal(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	const alphabet = "0123A a.:-b"
	for n := 0; n < 3000; n++ {
		b := make([]byte, 1+rnd.Intn(16))
		for i := range b {
			b[i] = alphabet[rnd.Intn(len(alphabet))]
		}
		text := string(b)
		for class := coding.Class0; class <= coding.Class2; class++ {
			segs, bits := Segments(text, class)
			checkSplit(t, text, class, segs, bits)
			require.Equal(t, bruteLength(text, class), bits,
				"%q class %d: %v", text, class, segs)
		}
	}
}

func TestSegments(t *testing.T) {
	for _, tt := range []struct {
		text string
		segs []coding.Segment
		bits int
	}{
		{"", []coding.Segment{{Text: "", Mode: coding.Byte}}, 12},
		{"12345", []coding.Segment{{Text: "12345", Mode: coding.Numeric}}, 31},
		{"HELLO WORLD", []coding.Segment{{Text: "HELLO WORLD", Mode: coding.Alphanumeric}}, 74},
		{"abc123456789", []coding.Segment{
			{Text: "abc", Mode: coding.Byte},
			{Text: "123456789", Mode: coding.Numeric},
		}, 80},
		{"ABCDEF1234567890", []coding.Segment{
			{Text: "ABCDEF", Mode: coding.Alphanumeric},
			{Text: "1234567890", Mode: coding.Numeric},
		}, 94},
		{"Hello, world! 123", []coding.Segment{
			{Text: "Hello, world! ", Mode: coding.Byte},
			{Text: "123", Mode: coding.Numeric},
		}, 148},
		{"a1b", []coding.Segment{{Text: "a1b", Mode: coding.Byte}}, 36},
		{"\xff\x00", []coding.Segment{{Text: "\xff\x00", Mode: coding.Byte}}, 28},
	} {
		segs, bits := Segments(tt.text, coding.Class0)
		assert.Equal(t, tt.segs, segs, "%q", tt.text)
		assert.Equal(t, tt.bits, bits, "%q", tt.text)
	}

	// Wider count fields.
	segs, bits := Segments("", coding.Class1)
	assert.Equal(t, []coding.Segment{{Text: "", Mode: coding.Byte}}, segs)
	assert.Equal(t, 20, bits)
}

func TestSplit(t *testing.T) {
	segs, v, err := Split("HELLO WORLD", coding.Q)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(1), v)
	assert.Equal(t, []coding.Segment{{Text: "HELLO WORLD", Mode: coding.Alphanumeric}}, segs)

	_, v, err = Split("", coding.H)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(1), v)

	// 1-M holds 128 bits.  34 digits take 4+10+114 = 128 bits,
	// 35 take 4+10+117.
	_, v, err = Split(strings.Repeat("7", 34), coding.M)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(1), v)
	_, v, err = Split(strings.Repeat("7", 35), coding.M)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(2), v)

	_, _, err = Split("x", coding.Level(9))
	assert.ErrorIs(t, err, coding.ErrLevel)
}

func TestSplitSmallest(t *testing.T) {
	// The chosen version fits, the one before doesn't.
	rnd := rand.New(rand.NewSource(2))
	for n := 0; n < 200; n++ {
		b := make([]byte, rnd.Intn(3000))
		for i := range b {
			b[i] = "0123456789ABCxyz"[rnd.Intn(16)]
		}
		l := coding.Level(rnd.Intn(4))
		segs, v, err := Split(string(b), l)
		if errors.Is(err, ErrLongText) {
			continue
		}
		require.NoError(t, err)
		bits := 0
		for _, seg := range segs {
			bits += seg.EncodedLength(v.SizeClass())
		}
		assert.LessOrEqual(t, bits, v.DataBits(l))
		if v > coding.MinVersion {
			_, err := SplitVersion(string(b), l, v-1)
			assert.ErrorIs(t, err, ErrSmallVersion)
		}
	}
}

func TestSplitLongText(t *testing.T) {
	_, _, err := Split(strings.Repeat("A", 3000), coding.H)
	require.ErrorIs(t, err, ErrLongText)
	var ce *coding.CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, coding.MaxVersion, ce.Version)
	assert.Equal(t, 4+13+16500, ce.Bits)
	assert.Equal(t, 1276*8, ce.Capacity)

	// The largest alphanumeric text at 40-L.
	_, v, err := Split(strings.Repeat("A", 4296), coding.L)
	require.NoError(t, err)
	assert.Equal(t, coding.MaxVersion, v)
	_, _, err = Split(strings.Repeat("A", 4297), coding.L)
	assert.ErrorIs(t, err, ErrLongText)
}

func TestSplitVersion(t *testing.T) {
	text := strings.Repeat("lowercase ", 5)
	_, v, err := Split(text, coding.M)
	require.NoError(t, err)
	assert.Equal(t, coding.Version(4), v)

	_, err = SplitVersion(text, coding.M, 1)
	require.ErrorIs(t, err, ErrSmallVersion)
	var ce *coding.CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, coding.Version(1), ce.Version)
	assert.Equal(t, 4+8+400, ce.Bits)
	assert.Equal(t, 128, ce.Capacity)

	segs, err := SplitVersion(text, coding.M, 12)
	require.NoError(t, err)
	// Count field is 16 bits from version 10.
	assert.Equal(t, []coding.Segment{{Text: text, Mode: coding.Byte}}, segs)

	_, err = SplitVersion(text, coding.M, 41)
	assert.ErrorIs(t, err, coding.ErrVersion)
}
