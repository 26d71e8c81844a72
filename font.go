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

// Package font is a multi-format font parsing and glyph rasterization
// library. Given the raw bytes of a font file it identifies the
// container format (Type 1, CFF, TrueType or OpenType), decodes the
// format's internal tables, and exposes each glyph as a
// resolution-independent vector outline with the metrics needed for
// text layout.
//
// Rasterization itself, vector geometry primitives and WOFF/WOFF2
// decompression are external collaborators: this package receives
// already-decompressed bytes and replays each glyph's outline into a
// caller-supplied Outline builder.
package font

// GlyphID identifies a glyph within a font. Glyph id 0 is always the
// .notdef glyph.
type GlyphID uint16

// Rect is an axis-aligned rectangle in font design units.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// IsZero reports whether all four coordinates are zero, the convention
// used for "this glyph leaves no marks" and for accumulator
// initialization in Extend.
func (r Rect) IsZero() bool {
	return r.XMin == 0 && r.YMin == 0 && r.XMax == 0 && r.YMax == 0
}

// Extend enlarges r in place to also cover other.
func (r *Rect) Extend(other Rect) {
	if other.IsZero() {
		return
	}
	if r.IsZero() {
		*r = other
		return
	}
	if other.XMin < r.XMin {
		r.XMin = other.XMin
	}
	if other.YMin < r.YMin {
		r.YMin = other.YMin
	}
	if other.XMax > r.XMax {
		r.XMax = other.XMax
	}
	if other.YMax > r.YMax {
		r.YMax = other.YMax
	}
}

// HMetrics is a glyph's horizontal metrics in font design units.
type HMetrics struct {
	LSB     float64
	Advance float64
}

// VMetrics is a font's vertical metrics.
type VMetrics struct {
	LineGap float64
}

// Outline receives the drawing commands of one glyph's outline. A
// concrete implementation (a vector path builder, a rasterizer's
// scan-conversion front end, …) lives outside this module; this
// package only replays the charstring/glyf program into whichever
// Outline the caller provides.
//
// Coordinates are in the font's native design-unit space; FontMatrix
// scales them into the 1-em normalized space.
type Outline interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// Glyph is a single glyph's metrics together with a function that
// replays its outline into a caller-supplied Outline builder.
type Glyph struct {
	Metrics HMetrics
	Outline func(Outline) error
}

// Matrix is a 3x2 affine transform [a b c d e f] mapping font design
// units into the font's own coordinate space, in the row-major order
// x' = a*x + c*y + e, y' = b*x + d*y + f.
type Matrix [6]float64

// Identity1000 is the default font matrix for Type 1 and CFF fonts
// (1000 design units per em).
var Identity1000 = Matrix{0.001, 0, 0, 0.001, 0, 0}

// MatrixForUnitsPerEm returns the default font matrix for TrueType and
// OpenType fonts, which express their own scale via unitsPerEm rather
// than via an explicit FontMatrix operator.
func MatrixForUnitsPerEm(unitsPerEm uint16) Matrix {
	if unitsPerEm == 0 {
		unitsPerEm = 1000
	}
	scale := 1 / float64(unitsPerEm)
	return Matrix{scale, 0, 0, scale, 0, 0}
}

// Font is the polymorphic facade over the four supported font
// variants (Type 1, CFF, TrueType, OpenType). The format set is
// closed: Font is implemented only by the types in this module's
// type1, cff, truetype and sfnt packages, never by caller-defined
// adapters.
type Font interface {
	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// FontMatrix returns the transform from design units into the
	// font's 1-em normalized space.
	FontMatrix() Matrix

	// Glyph returns the outline and metrics for gid, or an error if
	// gid is out of range or its charstring/glyf program fails to
	// interpret. A malformed single glyph does not invalidate the
	// rest of the font.
	Glyph(gid GlyphID) (*Glyph, error)

	// GIDForCodepoint maps a raw single-byte (or format-native)
	// character code to a glyph id via the font's built-in encoding.
	GIDForCodepoint(code uint32) (GlyphID, bool)

	// GIDForUnicode maps a Unicode code point to a glyph id.
	GIDForUnicode(r rune) (GlyphID, bool)

	// GIDForName maps a PostScript glyph name to a glyph id.
	GIDForName(name string) (GlyphID, bool)

	// BBox returns the font-wide bounding box, if known.
	BBox() (Rect, bool)

	// VMetrics returns the font's vertical metrics, if known.
	VMetrics() (VMetrics, bool)

	// Kerning returns the kerning adjustment between two glyphs, or
	// 0 if no kerning pair or table is present.
	Kerning(left, right GlyphID) float64
}

// NotdefGID is the glyph id of the fallback glyph drawn for
// unmappable codepoints, for every format this module supports.
const NotdefGID GlyphID = 0
