// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"

	"github.com/goccy/go-json"
)

// codeJSON is the JSON form of a Code.  Rows run top to bottom,
// each a string of '1' for dark and '0' for light modules.  The quiet
// zone is not included.
type codeJSON struct {
	Version int      `json:"version"`
	Level   string   `json:"level"`
	Mask    int      `json:"mask"`
	Size    int      `json:"size"`
	Rows    []string `json:"rows"`
}

// MarshalJSON implements json.Marshaler.  Rendering options are
// not included.
func (c *Code) MarshalJSON() ([]byte, error) {
	if c == nil || len(c.Bitmap) != c.Size*c.Size {
		return nil, ErrArgs
	}
	j := codeJSON{
		Version: int(c.Version),
		Level:   c.Level.String(),
		Mask:    c.Mask,
		Size:    c.Size,
		Rows:    make([]string, c.Size),
	}
	row := make([]byte, c.Size)
	for y := range j.Rows {
		for x := range row {
			row[x] = '0' + c.Bitmap[y*c.Size+x]
		}
		j.Rows[y] = string(row)
	}
	return json.Marshal(j)
}

// EncodeJSON writes the code to w as JSON, followed by a newline.
func (c *Code) EncodeJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(c)
}
