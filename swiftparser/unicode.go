package swiftparser

import "unicode"

// Scalar-range tables for identifier and operator characters. These are spelled
// out range-for-range instead of using the standard library's categories so that
// classification matches the language grammar exactly, character for character.

var identifierHeadRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00A8, 0x00A8, 1},
		{0x00AA, 0x00AA, 1},
		{0x00AD, 0x00AD, 1},
		{0x00AF, 0x00AF, 1},
		{0x00B2, 0x00B5, 1},
		{0x00B7, 0x00BA, 1},
		{0x00BC, 0x00BE, 1},
		{0x00C0, 0x00D6, 1},
		{0x00D8, 0x00F6, 1},
		{0x00F8, 0x00FF, 1},
		{0x0100, 0x02FF, 1},
		{0x0370, 0x167F, 1},
		{0x1681, 0x180D, 1},
		{0x180F, 0x1DBF, 1},
		{0x1E00, 0x1FFF, 1},
		{0x200B, 0x200D, 1},
		{0x202A, 0x202E, 1},
		{0x203F, 0x2040, 1},
		{0x2054, 0x2054, 1},
		{0x2060, 0x206F, 1},
		{0x2070, 0x20CF, 1},
		{0x2100, 0x218F, 1},
		{0x2460, 0x24FF, 1},
		{0x2776, 0x2793, 1},
		{0x2C00, 0x2DFF, 1},
		{0x2E80, 0x2FFF, 1},
		{0x3004, 0x3007, 1},
		{0x3021, 0x302F, 1},
		{0x3031, 0x303F, 1},
		{0x3040, 0xD7FF, 1},
		{0xF900, 0xFD3D, 1},
		{0xFD40, 0xFDCF, 1},
		{0xFDF0, 0xFE1F, 1},
		{0xFE30, 0xFE44, 1},
		{0xFE47, 0xFFFD, 1},
	},
	R32: []unicode.Range32{
		{0x10000, 0x1FFFD, 1},
		{0x20000, 0x2FFFD, 1},
		{0x30000, 0x3FFFD, 1},
		{0x40000, 0x4FFFD, 1},
		{0x50000, 0x5FFFD, 1},
		{0x60000, 0x6FFFD, 1},
		{0x70000, 0x7FFFD, 1},
		{0x80000, 0x8FFFD, 1},
		{0x90000, 0x9FFFD, 1},
		{0xA0000, 0xAFFFD, 1},
		{0xB0000, 0xBFFFD, 1},
		{0xC0000, 0xCFFFD, 1},
		{0xD0000, 0xDFFFD, 1},
		{0xE0000, 0xEFFFD, 1},
	},
}

// combining marks accepted in identifier tails
var identifierCombiningRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0300, 0x036F, 1},
		{0x1DC0, 0x1DFF, 1},
		{0x20D0, 0x20FF, 1},
		{0xFE20, 0xFE2F, 1},
	},
}

var operatorHeadRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00A1, 0x00A7, 1},
		{0x00A9, 0x00A9, 1},
		{0x00AB, 0x00AC, 1},
		{0x00AE, 0x00AE, 1},
		{0x00B0, 0x00B1, 1},
		{0x00B6, 0x00B6, 1},
		{0x00BB, 0x00BB, 1},
		{0x00BF, 0x00BF, 1},
		{0x00D7, 0x00D7, 1},
		{0x00F7, 0x00F7, 1},
		{0x2016, 0x2017, 1},
		{0x2020, 0x2027, 1},
		{0x2030, 0x203E, 1},
		{0x2041, 0x2053, 1},
		{0x2055, 0x205E, 1},
		{0x2190, 0x23FF, 1},
		{0x2500, 0x2775, 1},
		{0x2794, 0x2BFF, 1},
		{0x2E00, 0x2E7F, 1},
		{0x3001, 0x3003, 1},
		{0x3008, 0x3020, 1},
		{0x3030, 0x3030, 1},
	},
}

// combining marks accepted in operator tails
var operatorCombiningRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0300, 0x036F, 1},
		{0x1DC0, 0x1DFF, 1},
		{0x20D0, 0x20FF, 1},
		{0xFE00, 0xFE0F, 1},
		{0xFE20, 0xFE2F, 1},
	},
	R32: []unicode.Range32{
		{0xE0100, 0xE01EF, 1},
	},
}

func isIdentifierHead(r rune) bool {
	if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_' || r == '$' {
		return true
	}
	if r < 0x80 {
		return false
	}
	return unicode.Is(identifierHeadRanges, r)
}

func isIdentifierTail(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return isIdentifierHead(r) || unicode.Is(identifierCombiningRanges, r)
}

func isOperatorHead(r rune) bool {
	switch r {
	case '.', '/', '=', '-', '+', '!', '*', '%', '<', '>', '&', '|', '^', '~', '?':
		return true
	}
	if r < 0x80 {
		return false
	}
	return unicode.Is(operatorHeadRanges, r)
}

// isOperatorTail does not cover '.'; a dot may continue an operator only when
// the operator started with one, which the scanner handles itself.
func isOperatorTail(r rune) bool {
	if r == '.' {
		return false
	}
	return isOperatorHead(r) || unicode.Is(operatorCombiningRanges, r)
}

// Whitespace here is intra-line only: space, tab, vertical tab and the Unicode
// space separators. Linebreak characters are a separate token.
func isWhitespaceChar(r rune) bool {
	switch r {
	case ' ', '\t', '\v':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isLinebreakChar(r rune) bool {
	return r == '\n' || r == '\r'
}
