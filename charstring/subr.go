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

package charstring

import "github.com/vbkaisetsu/font"

// MaxCallDepth is the maximum subroutine call nesting depth for both
// Type 1 and Type 2 charstrings.
const MaxCallDepth = 10

// Subrs is an indexable collection of subroutine bodies (the
// individual objects of a CFF Local or Global Subrs INDEX, or the
// entries of a Type 1 Subrs array), addressed after bias adjustment.
type Subrs [][]byte

// Bias returns the bias added to a caller-supplied subroutine index
// before indexing into a Subrs collection of the given length. Type 1
// subroutines are never biased (bias 0); CFF/Type 2 local and global
// subroutines use this formula.
func Bias(n int) int32 {
	switch {
	case n < 1240:
		return 107
	case n < 33900:
		return 1131
	default:
		return 32768
	}
}

// Lookup returns the body of the subroutine at index idx once biased
// by bias, reporting MissingSubroutine instead of panicking on an
// out-of-range index (charstrings are adversarial input).
func (s Subrs) Lookup(idx int32, bias int32) ([]byte, error) {
	i := int64(idx) + int64(bias)
	if i < 0 || i >= int64(len(s)) {
		return nil, font.NewInterpreterError(font.MissingSubroutine,
			"subroutine %d (biased %d) out of range [0,%d)", idx, i, len(s))
	}
	return s[i], nil
}

// Frame is one entry in the interpreter's explicit, iterative call
// stack: the byte cursor to resume at on return, and which subroutine
// space (local or global) that cursor belongs to — distinct data
// sources may otherwise alias the same offsets.
type Frame struct {
	Code   []byte
	Pos    int
	Source string // "local", "global", or "" for the top-level charstring
}

// CallStack is the bounded, explicit call stack used by both
// interpreters in place of host-language recursion.
type CallStack struct {
	frames []Frame
}

// Depth returns the current nesting depth.
func (c *CallStack) Depth() int { return len(c.frames) }

// Push records a new call frame, reporting RecursionExceeded once
// MaxCallDepth is reached.
func (c *CallStack) Push(f Frame) error {
	if len(c.frames) >= MaxCallDepth {
		return font.NewInterpreterError(font.RecursionExceeded,
			"subroutine call nesting exceeds depth %d", MaxCallDepth)
	}
	c.frames = append(c.frames, f)
	return nil
}

// Pop removes and returns the most recently pushed frame.
func (c *CallStack) Pop() (Frame, bool) {
	if len(c.frames) == 0 {
		return Frame{}, false
	}
	f := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	return f, true
}
