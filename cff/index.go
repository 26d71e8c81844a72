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

import "github.com/vbkaisetsu/font/binary"

// index is a CFF INDEX structure: an ordered sequence of binary
// blobs (Name, Top DICT, String, Global Subrs, CharStrings, Local
// Subrs). An empty INDEX (count=0) decodes to a nil index with no
// further fields consumed, per the CFF spec.
type index [][]byte

// readIndex reads a CFF INDEX starting at the cursor's current
// position.
func readIndex(c *binary.Cursor) (index, error) {
	count, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	offSize, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	if offSize < 1 || offSize > 4 {
		return nil, c.Errorf("invalid CFF INDEX offSize %d", offSize)
	}

	offsets := make([]uint32, count+1)
	prev := uint32(1)
	for i := 0; i <= int(count); i++ {
		off, err := c.ReadOffset(int(offSize))
		if err != nil {
			return nil, err
		}
		if off < prev {
			return nil, c.Errorf("invalid CFF INDEX offsets (not monotonic)")
		}
		offsets[i] = off
		prev = off
	}

	dataLen := int(offsets[count] - 1)
	data, err := c.ReadBytes(dataLen)
	if err != nil {
		return nil, err
	}

	res := make(index, count)
	for i := 0; i < int(count); i++ {
		lo, hi := offsets[i]-1, offsets[i+1]-1
		if hi > uint32(len(data)) || lo > hi {
			return nil, c.Errorf("CFF INDEX object %d out of range", i)
		}
		res[i] = data[lo:hi]
	}
	return res, nil
}

// Get returns the i'th object in the INDEX, or an error if i is out
// of range.
func (idx index) Get(i int) ([]byte, error) {
	if i < 0 || i >= len(idx) {
		return nil, errIndexRange
	}
	return idx[i], nil
}
