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

// Package psenc holds the two fixed, predefined 256-entry code→name
// encodings named by the PostScript/CFF/Type 1 specifications:
// StandardEncoding and ExpertEncoding. Both Type 1 fonts (as the
// default when no /Encoding array is given) and CFF fonts (as
// predefined Encoding offsets 0 and 1) refer to these by id rather
// than spelling them out in the font file.
package psenc

// StandardEncoding is Adobe's StandardEncoding, the default encoding
// for Type 1 fonts and CFF Encoding offset 0. Unlisted codes map to
// ".notdef".
var StandardEncoding = buildStandardEncoding()

// ExpertEncoding is Adobe's ExpertEncoding, CFF Encoding offset 1,
// used by "expert" subset fonts (small caps, old-style figures, …).
// Unlisted codes map to ".notdef".
var ExpertEncoding = buildExpertEncoding()

func buildStandardEncoding() [256]string {
	var enc [256]string
	for i := range enc {
		enc[i] = ".notdef"
	}
	entries := map[int]string{
		0o040: "space", 0o041: "exclam", 0o042: "quotedbl", 0o043: "numbersign",
		0o044: "dollar", 0o045: "percent", 0o046: "ampersand", 0o047: "quoteright",
		0o050: "parenleft", 0o051: "parenright", 0o052: "asterisk", 0o053: "plus",
		0o054: "comma", 0o055: "hyphen", 0o056: "period", 0o057: "slash",
		0o060: "zero", 0o061: "one", 0o062: "two", 0o063: "three", 0o064: "four",
		0o065: "five", 0o066: "six", 0o067: "seven", 0o070: "eight", 0o071: "nine",
		0o072: "colon", 0o073: "semicolon", 0o074: "less", 0o075: "equal",
		0o076: "greater", 0o077: "question", 0o100: "at",
		0o101: "A", 0o102: "B", 0o103: "C", 0o104: "D", 0o105: "E", 0o106: "F",
		0o107: "G", 0o110: "H", 0o111: "I", 0o112: "J", 0o113: "K", 0o114: "L",
		0o115: "M", 0o116: "N", 0o117: "O", 0o120: "P", 0o121: "Q", 0o122: "R",
		0o123: "S", 0o124: "T", 0o125: "U", 0o126: "V", 0o127: "W", 0o130: "X",
		0o131: "Y", 0o132: "Z",
		0o133: "bracketleft", 0o134: "backslash", 0o135: "bracketright",
		0o136: "asciicircum", 0o137: "underscore", 0o140: "quoteleft",
		0o141: "a", 0o142: "b", 0o143: "c", 0o144: "d", 0o145: "e", 0o146: "f",
		0o147: "g", 0o150: "h", 0o151: "i", 0o152: "j", 0o153: "k", 0o154: "l",
		0o155: "m", 0o156: "n", 0o157: "o", 0o160: "p", 0o161: "q", 0o162: "r",
		0o163: "s", 0o164: "t", 0o165: "u", 0o166: "v", 0o167: "w", 0o170: "x",
		0o171: "y", 0o172: "z",
		0o173: "braceleft", 0o174: "bar", 0o175: "braceright", 0o176: "asciitilde",
		0o241: "exclamdown", 0o242: "cent", 0o243: "sterling", 0o244: "fraction",
		0o245: "yen", 0o246: "florin", 0o247: "section", 0o250: "currency",
		0o251: "quotesingle", 0o252: "quotedblleft", 0o253: "guillemotleft",
		0o254: "guilsinglleft", 0o255: "guilsinglright", 0o256: "fi", 0o257: "fl",
		0o261: "endash", 0o262: "dagger", 0o263: "daggerdbl", 0o264: "periodcentered",
		0o266: "paragraph", 0o267: "bullet", 0o270: "quotesinglbase",
		0o271: "quotedblbase", 0o272: "quotedblright", 0o273: "guillemotright",
		0o274: "ellipsis", 0o275: "perthousand", 0o277: "questiondown",
		0o301: "grave", 0o302: "acute", 0o303: "circumflex", 0o304: "tilde",
		0o305: "macron", 0o306: "breve", 0o307: "dotaccent", 0o310: "dieresis",
		0o312: "ring", 0o313: "cedilla", 0o315: "hungarumlaut", 0o316: "ogonek",
		0o317: "caron", 0o320: "emdash",
		0o341: "AE", 0o343: "ordfeminine", 0o350: "Lslash", 0o351: "Oslash",
		0o352: "OE", 0o353: "ordmasculine",
		0o361: "ae", 0o365: "dotlessi", 0o370: "lslash", 0o371: "oslash",
		0o372: "oe", 0o373: "germandbls",
	}
	for code, name := range entries {
		enc[code] = name
	}
	return enc
}

// buildExpertEncoding assembles CFF/Type 1 ExpertEncoding. Only the
// codes used by ordinary "expert" small-caps/old-style-figures glyph
// sets are populated; codes with no conventional expert-set glyph map
// to ".notdef", matching how CFF fonts that select this encoding
// leave those codes unreachable.
func buildExpertEncoding() [256]string {
	var enc [256]string
	for i := range enc {
		enc[i] = ".notdef"
	}
	entries := map[int]string{
		0o040: "space", 0o041: "exclamsmall", 0o042: "Hungarumlautsmall",
		0o044: "dollaroldstyle", 0o045: "dollarsuperior", 0o046: "ampersandsmall",
		0o047: "Acutesmall", 0o050: "parenleftsuperior", 0o051: "parenrightsuperior",
		0o052: "twodotenleader", 0o053: "onedotenleader", 0o054: "comma",
		0o055: "hyphen", 0o056: "period", 0o057: "fraction",
		0o060: "zerooldstyle", 0o061: "oneoldstyle", 0o062: "twooldstyle",
		0o063: "threeoldstyle", 0o064: "fouroldstyle", 0o065: "fiveoldstyle",
		0o066: "sixoldstyle", 0o067: "sevenoldstyle", 0o070: "eightoldstyle",
		0o071: "nineoldstyle", 0o072: "colon", 0o073: "semicolon",
		0o074: "commasuperior", 0o075: "threequartersemdash", 0o076: "periodsuperior",
		0o077: "questionsmall",
		0o101: "asuperior", 0o102: "bsuperior", 0o103: "centsuperior",
		0o104: "dsuperior", 0o105: "esuperior", 0o110: "isuperior",
		0o114: "lsuperior", 0o115: "msuperior", 0o116: "nsuperior",
		0o117: "osuperior", 0o122: "rsuperior", 0o123: "ssuperior",
		0o124: "tsuperior", 0o125: "ff", 0o126: "fi", 0o127: "fl",
		0o130: "ffi", 0o131: "ffl", 0o132: "parenleftinferior",
		0o134: "parenrightinferior", 0o135: "Circumflexsmall",
		0o136: "hyphensuperior", 0o137: "Gravesmall",
		0o241: "colonmonetary", 0o242: "onefitted", 0o243: "rupiah",
		0o244: "Tildesmall", 0o245: "exclamdownsmall", 0o246: "centoldstyle",
		0o247: "Lslashsmall", 0o252: "Scaronsmall", 0o255: "Zcaronsmall",
		0o256: "Dieresissmall", 0o257: "Brevesmall", 0o260: "Caronsmall",
		0o262: "Dotaccentsmall", 0o264: "Macronsmall", 0o266: "figuredash",
		0o267: "hypheninferior", 0o271: "Ogoneksmall", 0o272: "Ringsmall",
		0o273: "Cedillasmall", 0o301: "onequarter", 0o302: "onehalf",
		0o303: "threequarters", 0o304: "questiondownsmall", 0o305: "oneeighth",
		0o306: "threeeighths", 0o307: "fiveeighths", 0o310: "seveneighths",
		0o311: "onethird", 0o312: "twothirds", 0o320: "zerosuperior",
		0o321: "onesuperior", 0o322: "twosuperior", 0o323: "threesuperior",
		0o324: "foursuperior", 0o325: "fivesuperior", 0o326: "sixsuperior",
		0o327: "sevensuperior", 0o330: "eightsuperior", 0o331: "ninesuperior",
		0o332: "zeroinferior", 0o333: "oneinferior", 0o334: "twoinferior",
		0o335: "threeinferior", 0o336: "fourinferior", 0o337: "fiveinferior",
		0o340: "sixinferior", 0o341: "seveninferior", 0o342: "eightinferior",
		0o343: "nineinferior", 0o344: "centinferior", 0o345: "dollarinferior",
		0o350: "periodinferior", 0o351: "commainferior",
	}
	for code, name := range entries {
		enc[code] = name
	}
	return enc
}
