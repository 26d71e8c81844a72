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

package cff

import (
	"testing"

	"github.com/vbkaisetsu/font/binary"
)

func TestReadIndexEmpty(t *testing.T) {
	c := binary.NewCursor("test", []byte{0, 0})
	idx, err := readIndex(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx) != 0 {
		t.Fatalf("len(idx) = %d, want 0", len(idx))
	}
}

func TestReadIndexTwoEntries(t *testing.T) {
	// count=2, offSize=1, offsets=[1,2,4], data="ABC"
	data := []byte{0, 2, 1, 1, 2, 4, 'A', 'B', 'C'}
	c := binary.NewCursor("test", data)
	idx, err := readIndex(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx) != 2 {
		t.Fatalf("len(idx) = %d, want 2", len(idx))
	}
	if string(idx[0]) != "A" || string(idx[1]) != "BC" {
		t.Fatalf("idx = %q, %q", idx[0], idx[1])
	}
}

func TestReadIndexNonMonotonic(t *testing.T) {
	data := []byte{0, 1, 1, 2, 1}
	c := binary.NewCursor("test", data)
	if _, err := readIndex(c); err == nil {
		t.Fatal("expected error for non-monotonic offsets")
	}
}

func TestIndexGetOutOfRange(t *testing.T) {
	idx := index{[]byte{1}}
	if _, err := idx.Get(5); err == nil {
		t.Fatal("expected out-of-range error")
	}
}
