// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
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
	"errors"

	"github.com/vbkaisetsu/font"
)

// unsupported wraps a recognized-but-unimplemented CFF feature (a
// DICT/charset/encoding/FDSelect format this decoder does not
// understand) as the shared font.UnsupportedFormatError.
func unsupported(feature string) error {
	return &font.UnsupportedFormatError{Format: "cff: " + feature}
}

// invalidSince wraps a structural problem discovered while decoding
// CFF tables as the shared font.StructuralParseError.
func invalidSince(reason string) error {
	return font.NewStructuralError("cff", 0, reason)
}

var errIndexRange = errors.New("cff: INDEX entry out of range")
var errCorruptDict = invalidSince("corrupt dict")
var errNoString = invalidSince("expected a string index")
