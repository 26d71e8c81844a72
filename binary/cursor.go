// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package binary provides pure, allocation-light readers for the
// big-endian binary primitives shared by the CFF, Type 1 and SFNT
// table formats: fixed-width integers, 16.16 fixed-point numbers, and
// variable-width offsets.
//
// Unlike a file-backed parser, a Cursor never blocks and never mutates
// anything outside of itself: it reads from a borrowed byte slice and
// reports a structured error naming the offset and sub-parser that
// failed, rather than panicking.
package binary

import (
	"fmt"

	"github.com/vbkaisetsu/font"
)

// Cursor reads big-endian binary data from an in-memory byte slice.
// The zero value is not usable; use NewCursor.
type Cursor struct {
	Data []byte
	Pos  int

	// Context names the table or structure being decoded, used to
	// annotate errors (e.g. "cmap", "hmtx").
	Context string
}

// NewCursor returns a Cursor reading from data, starting at offset 0.
func NewCursor(context string, data []byte) *Cursor {
	return &Cursor{Data: data, Context: context}
}

// Errorf returns a *font.StructuralParseError naming the cursor's
// context and current byte offset; its message reads
// "context+offset: reason".
func (c *Cursor) Errorf(format string, a ...interface{}) error {
	context := c.Context
	if context == "" {
		context = "data"
	}
	return font.NewStructuralError(context, c.Pos, fmt.Sprintf(format, a...))
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	n := len(c.Data) - c.Pos
	if n < 0 {
		return 0
	}
	return n
}

// SeekPos moves the cursor to an absolute offset within Data.
func (c *Cursor) SeekPos(pos int) error {
	if pos < 0 || pos > len(c.Data) {
		return c.Errorf("seek out of range (%d)", pos)
	}
	c.Pos = pos
	return nil
}

// ReadBytes reads and returns the next n bytes. The returned slice
// aliases Data and must not be modified by the caller.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.Pos+n > len(c.Data) {
		return nil, c.Errorf("unexpected end of data (need %d bytes)", n)
	}
	res := c.Data[c.Pos : c.Pos+n]
	c.Pos += n
	return res, nil
}

// ReadUint8 reads a single unsigned byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	buf, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadInt8 reads a single signed byte.
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a big-endian uint16.
func (c *Cursor) ReadUint16() (uint16, error) {
	buf, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// ReadInt16 reads a big-endian int16.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

// ReadUint24 reads a big-endian 24-bit unsigned integer.
func (c *Cursor) ReadUint24() (uint32, error) {
	buf, err := c.ReadBytes(3)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}

// ReadUint32 reads a big-endian uint32.
func (c *Cursor) ReadUint32() (uint32, error) {
	buf, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// ReadInt32 reads a big-endian int32.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

// ReadOffset reads a big-endian unsigned integer occupying size bytes
// (1..4), the variable-width offset encoding used by CFF INDEX
// structures and loca tables.
func (c *Cursor) ReadOffset(size int) (uint32, error) {
	if size < 1 || size > 4 {
		return 0, c.Errorf("invalid offset size %d", size)
	}
	buf, err := c.ReadBytes(size)
	if err != nil {
		return 0, err
	}
	var v uint32
	for _, b := range buf {
		v = v<<8 | uint32(b)
	}
	return v, nil
}

// ReadFixed reads a 16.16 fixed-point number, returning its float64
// value. No ecosystem 16.16-fixed type exists that both pack authors
// use and matches this exact bit layout, so the conversion is spelled
// out by hand rather than imported.
func (c *Cursor) ReadFixed() (float64, error) {
	v, err := c.ReadInt32()
	if err != nil {
		return 0, err
	}
	return float64(v) / 65536, nil
}

// ReadF2Dot14 reads a 2.14 fixed-point number (used by TrueType
// composite-glyph transforms), returning its float64 value.
func (c *Cursor) ReadF2Dot14() (float64, error) {
	v, err := c.ReadInt16()
	if err != nil {
		return 0, err
	}
	return float64(v) / 16384, nil
}

// ReadUint16Slice reads a uint16 length prefix followed by that many
// uint16 values.
func (c *Cursor) ReadUint16Slice() ([]uint16, error) {
	n, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	res := make([]uint16, n)
	for i := range res {
		v, err := c.ReadUint16()
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// ReadTag reads a 4-byte table tag as a string.
func (c *Cursor) ReadTag() (string, error) {
	buf, err := c.ReadBytes(4)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
