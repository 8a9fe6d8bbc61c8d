// Package names implements the identifier escaping convention shared
// by the module reader and the transforms: any byte outside
// [a-zA-Z0-9_.] is written as a backslash followed by two lowercase hex
// digits. Escaping keeps internal function names printable and
// unambiguous regardless of what the source toolchain put in them.
package names

import "strings"

const hexDigits = "0123456789abcdef"

func plain(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.':
		return true
	default:
		return false
	}
}

// Escape converts a raw name into the internal representation,
// replacing every byte outside the plain set with \xy where x and y
// are lowercase hex digits. The backslash itself is not plain, so
// Escape output is always unambiguous.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if plain(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('\\')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}

	return b.String()
}

// Unescape reverses [Escape]: every \xy with two hex digits becomes
// the byte 0xxy. Malformed sequences, including a backslash truncated
// at the end of the string, are copied literally; the function is
// total over all inputs.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+2 < len(s) {
			hi, okHi := hexVal(s[i+1])
			lo, okLo := hexVal(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}

	return b.String()
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
