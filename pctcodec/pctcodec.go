package pctcodec

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// Decode replaces every %XX escape in s with the byte it names and reports
// whether the whole string decoded cleanly. It fails when a '%' is not
// followed by two hex digits, and when the decoded byte string is not valid
// UTF-8. There is no '+' to space translation.
//
// Decoding is all or nothing: on failure the first result is empty.
func Decode(s string) (string, bool) {
	if !strings.ContainsRune(s, '%') {
		if !utf8.ValidString(s) {
			return "", false
		}
		return s, true
	}

	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			out.WriteByte(s[i])
			i++
			continue
		}
		if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
			return "", false
		}
		out.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 3
	}

	decoded := out.String()
	if !utf8.ValidString(decoded) {
		return "", false
	}
	return decoded, true
}

// Encode percent-escapes every byte of s outside the RFC 3986 unreserved
// set (ALPHA / DIGIT / "-" / "." / "_" / "~"), using uppercase hex digits.
// Decode(Encode(s)) round-trips for any valid UTF-8 s.
func Encode(s string) string {
	escapes := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			escapes++
		}
	}
	if escapes == 0 {
		return s
	}

	var out strings.Builder
	out.Grow(len(s) + 2*escapes)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if isUnreserved(b) {
			out.WriteByte(b)
			continue
		}
		out.WriteByte('%')
		out.WriteByte(upperhex[b>>4])
		out.WriteByte(upperhex[b&0xf])
	}
	return out.String()
}

func isUnreserved(b byte) bool {
	return 'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		b == '-' || b == '.' || b == '_' || b == '~'
}

func isHexDigit(b byte) bool {
	return '0' <= b && b <= '9' ||
		'a' <= b && b <= 'f' ||
		'A' <= b && b <= 'F'
}

func unhex(b byte) byte {
	switch {
	case '0' <= b && b <= '9':
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
