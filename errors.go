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

package font

import (
	"fmt"
	"strings"
)

// StructuralParseError reports a fixed-width field that was
// truncated, an offset that pointed outside the buffer, or a
// magic/tag mismatch discovered while walking a table's structure.
type StructuralParseError struct {
	// Context names the chain of tables/structures being decoded,
	// innermost last, e.g. []string{"cff", "charset", "format 2"}.
	Context []string
	Offset  int
	Reason  string
}

func (e *StructuralParseError) Error() string {
	ctx := strings.Join(e.Context, "/")
	if ctx == "" {
		ctx = "data"
	}
	return fmt.Sprintf("%s%+d: %s", ctx, e.Offset, e.Reason)
}

// NewStructuralError constructs a StructuralParseError whose context
// chain holds the single entry context. It does not wrap or chain
// another error.
func NewStructuralError(context string, offset int, reason string) *StructuralParseError {
	return &StructuralParseError{Context: []string{context}, Offset: offset, Reason: reason}
}

// UnknownMagicError reports that the container dispatcher could not
// identify the format of the input bytes.
type UnknownMagicError struct {
	Magic [4]byte
}

func (e *UnknownMagicError) Error() string {
	return fmt.Sprintf("unknown font format (magic %02x %02x %02x %02x)",
		e.Magic[0], e.Magic[1], e.Magic[2], e.Magic[3])
}

// UnsupportedFormatError reports a recognized but deliberately
// unimplemented format, such as a TrueType/PostScript font
// collection.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported font format: %s", e.Format)
}

// InterpreterErrorKind classifies an InterpreterError.
type InterpreterErrorKind int

const (
	// StackUnderflow: an operator required more operands than were
	// on the stack.
	StackUnderflow InterpreterErrorKind = iota
	// StackOverflow: a push exceeded the format's maximum operand
	// stack depth (48 for Type 2, 24 for Type 1).
	StackOverflow
	// UnknownOperator: an opcode (or escape opcode) has no defined
	// meaning.
	UnknownOperator
	// RecursionExceeded: subroutine call nesting exceeded depth 10,
	// or a composite glyph referenced itself (directly or via a
	// cycle).
	RecursionExceeded
	// MissingSubroutine: a callsubr/callgsubr index had no
	// corresponding entry after bias adjustment.
	MissingSubroutine
	// TypeMismatch: a float-tagged Value was used where an
	// integer was required (e.g. as a subroutine index).
	TypeMismatch
)

// InterpreterError reports a failure while executing a Type 1 or
// Type 2 charstring program, or a TrueType composite-glyph program.
type InterpreterError struct {
	Kind   InterpreterErrorKind
	Reason string
}

func (e *InterpreterError) Error() string {
	return "charstring interpreter: " + e.Reason
}

func newInterpError(kind InterpreterErrorKind, format string, a ...interface{}) *InterpreterError {
	return &InterpreterError{Kind: kind, Reason: fmt.Sprintf(format, a...)}
}

// NewInterpreterError constructs an InterpreterError of the given
// kind; exported so the cff, type1 and truetype packages can report
// through the shared taxonomy.
func NewInterpreterError(kind InterpreterErrorKind, format string, a ...interface{}) *InterpreterError {
	return newInterpError(kind, format, a...)
}

// EncodingError reports that a cmap or encoding table referenced a
// glyph id outside [0, numGlyphs).
type EncodingError struct {
	GID       GlyphID
	NumGlyphs int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding references gid %d, but font only has %d glyphs", e.GID, e.NumGlyphs)
}
