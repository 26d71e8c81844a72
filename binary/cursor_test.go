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

package binary

import "testing"

func TestReadUint(t *testing.T) {
	c := NewCursor("test", []byte{0x01, 0x02, 0x03, 0x04})
	u16, err := c.ReadUint16()
	if err != nil || u16 != 0x0102 {
		t.Fatalf("ReadUint16() = %d, %v", u16, err)
	}
	u16, err = c.ReadUint16()
	if err != nil || u16 != 0x0304 {
		t.Fatalf("ReadUint16() = %d, %v", u16, err)
	}
	if c.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", c.Remaining())
	}
}

func TestReadTruncated(t *testing.T) {
	c := NewCursor("test", []byte{0x01})
	_, err := c.ReadUint16()
	if err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestReadFixed(t *testing.T) {
	c := NewCursor("test", []byte{0x00, 0x01, 0x80, 0x00})
	v, err := c.ReadFixed()
	if err != nil || v != 1.5 {
		t.Fatalf("ReadFixed() = %v, %v", v, err)
	}
}

func TestReadOffset(t *testing.T) {
	c := NewCursor("test", []byte{0x01, 0x00, 0x01})
	v, err := c.ReadOffset(3)
	if err != nil || v != 0x010001 {
		t.Fatalf("ReadOffset(3) = %d, %v", v, err)
	}
}

func TestSeekPos(t *testing.T) {
	c := NewCursor("test", make([]byte, 10))
	if err := c.SeekPos(5); err != nil {
		t.Fatal(err)
	}
	if c.Pos != 5 {
		t.Fatalf("Pos = %d, want 5", c.Pos)
	}
	if err := c.SeekPos(11); err == nil {
		t.Fatal("expected out-of-range error")
	}
}
