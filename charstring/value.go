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

// Package charstring holds the pieces shared by the Type 1 and
// Type 2/CFF charstring interpreters: the tagged operand Value, the
// bounded operand Stack, subroutine bias, and the iterative call
// stack used instead of host-language recursion (charstrings are
// adversarial input).
package charstring

import "github.com/vbkaisetsu/font"

// Value is a charstring operand: either a 32-bit integer or a 32-bit
// float, tagged so the two never collapse into one host number type.
// Integer identity matters: subroutine indices and hint-mask bit
// counts must be integers, never silently-truncated floats.
type Value struct {
	isFloat bool
	i       int32
	f       float32
}

// Int returns a Value holding an integer.
func Int(v int32) Value { return Value{i: v} }

// Float returns a Value holding a float.
func Float(v float32) Value { return Value{isFloat: true, f: v} }

// IsFloat reports whether the value is float-tagged.
func (v Value) IsFloat() bool { return v.isFloat }

// Float64 returns the value as a float64. An integer value converts
// losslessly; a float value converts directly.
func (v Value) Float64() float64 {
	if v.isFloat {
		return float64(v.f)
	}
	return float64(v.i)
}

// Int32 returns the value as an int32. It is an error to call this on
// a float-tagged value (float→int is never an implicit conversion).
func (v Value) Int32() (int32, error) {
	if v.isFloat {
		return 0, font.NewInterpreterError(font.TypeMismatch,
			"expected integer operand, got float %v", v.f)
	}
	return v.i, nil
}

// MustInt32 is like Int32 but panics on a type mismatch; used only in
// contexts (tests, trusted literal construction) where the value is
// known by construction to be an integer.
func (v Value) MustInt32() int32 {
	n, err := v.Int32()
	if err != nil {
		panic(err)
	}
	return n
}

// Stack is a bounded LIFO/FIFO-accessed operand stack. Type 1 and
// Type 2 interpreters consume it from the bottom (arguments arrive in
// program order) while callsubr/return only ever touch the call
// stack, not this one.
type Stack struct {
	data []Value
	max  int
}

// NewStack returns an empty Stack with the given maximum depth (48
// for Type 2, 24 for Type 1).
func NewStack(max int) *Stack {
	return &Stack{max: max}
}

// Push appends a value, reporting StackOverflow if that would exceed
// the configured maximum.
func (s *Stack) Push(v Value) error {
	if len(s.data) >= s.max {
		return font.NewInterpreterError(font.StackOverflow,
			"operand stack overflow (limit %d)", s.max)
	}
	s.data = append(s.data, v)
	return nil
}

// Len returns the number of operands currently on the stack.
func (s *Stack) Len() int { return len(s.data) }

// At returns the i'th operand from the bottom of the stack.
func (s *Stack) At(i int) (Value, error) {
	if i < 0 || i >= len(s.data) {
		return Value{}, font.NewInterpreterError(font.StackUnderflow,
			"operand stack underflow (wanted index %d, have %d)", i, len(s.data))
	}
	return s.data[i], nil
}

// Top returns the top (most recently pushed) operand without
// removing it.
func (s *Stack) Top() (Value, error) {
	if len(s.data) == 0 {
		return Value{}, font.NewInterpreterError(font.StackUnderflow, "operand stack is empty")
	}
	return s.data[len(s.data)-1], nil
}

// Pop removes and returns the top operand.
func (s *Stack) Pop() (Value, error) {
	v, err := s.Top()
	if err != nil {
		return Value{}, err
	}
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

// PopN removes and returns the top n operands, in the order they were
// pushed (oldest first).
func (s *Stack) PopN(n int) ([]Value, error) {
	if n < 0 || n > len(s.data) {
		return nil, font.NewInterpreterError(font.StackUnderflow,
			"operand stack underflow (wanted %d, have %d)", n, len(s.data))
	}
	res := make([]Value, n)
	copy(res, s.data[len(s.data)-n:])
	s.data = s.data[:len(s.data)-n]
	return res, nil
}

// All returns every operand currently on the stack, bottom first.
func (s *Stack) All() []Value {
	return s.data
}

// Clear empties the stack, the behavior of every Type 1 operator
// except callsubr and return.
func (s *Stack) Clear() {
	s.data = s.data[:0]
}
