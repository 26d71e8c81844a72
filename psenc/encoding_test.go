// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

package psenc

import "testing"

func TestStandardEncodingASCII(t *testing.T) {
	cases := map[int]string{
		' ': "space", 'A': "A", 'z': "z", '0': "zero", '~': "asciitilde",
	}
	for code, want := range cases {
		if got := StandardEncoding[code]; got != want {
			t.Errorf("StandardEncoding[%d] = %q, want %q", code, got, want)
		}
	}
}

func TestStandardEncodingNotdef(t *testing.T) {
	if StandardEncoding[0] != ".notdef" {
		t.Errorf("StandardEncoding[0] = %q, want .notdef", StandardEncoding[0])
	}
	if StandardEncoding[128] != ".notdef" {
		t.Errorf("StandardEncoding[128] = %q, want .notdef", StandardEncoding[128])
	}
}

func TestExpertEncodingSample(t *testing.T) {
	if ExpertEncoding[' '] != "space" {
		t.Errorf("ExpertEncoding[space] = %q", ExpertEncoding[' '])
	}
	if ExpertEncoding[0o125] != "ff" {
		t.Errorf("ExpertEncoding[0o125] = %q, want ff", ExpertEncoding[0o125])
	}
}
