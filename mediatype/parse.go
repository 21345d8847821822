package mediatype

import (
	"strings"

	"github.com/urlscope/urlscope-core/pctcodec"
)

// ParseDataMetadata parses the mediatype portion of a data: URL, the text
// between "data:" and the first comma. RFC 2397 gives the grammar
//
//	mediatype := [ type "/" subtype ] *( ";" parameter )
//	parameter := attribute "=" value
//
// with each token percent-encoded as necessary, and parameter values
// optionally RFC 822 quoted-strings. A ";base64" marker is a content
// encoding, not a parameter, and ends the parameter run. Text after the
// last recognizable parameter is ignored, so a malformed tail does not
// reject an otherwise well-formed prefix.
//
// Failures report (zero, false): a missing or empty type or subtype, a
// percent-escape in type, subtype, or either half of a parameter that does
// not decode, a parameter clause with no "=", or decoded tokens that do
// not form a structurally valid media type.
func ParseDataMetadata(meta string) (MediaType, bool) {
	rawType, rest, ok := cutToken(meta, '/')
	if !ok {
		return MediaType{}, false
	}
	i := tokenEnd(rest)
	if i == 0 {
		return MediaType{}, false
	}
	rawSubtype := rest[:i]
	clauses := scanParams(rest[i:])

	typ, ok := pctcodec.Decode(rawType)
	if !ok {
		return MediaType{}, false
	}
	subtype, ok := pctcodec.Decode(rawSubtype)
	if !ok {
		return MediaType{}, false
	}
	mt, err := New(typ, subtype)
	if err != nil {
		return MediaType{}, false
	}

	var params []Param
	for _, clause := range clauses {
		if clause == "" {
			continue
		}
		eq := strings.IndexByte(clause, '=')
		if eq < 0 {
			return MediaType{}, false
		}
		key, ok := pctcodec.Decode(clause[:eq])
		if !ok {
			return MediaType{}, false
		}
		value, ok := pctcodec.Decode(clause[eq+1:])
		if !ok {
			return MediaType{}, false
		}
		params = append(params, Param{Key: key, Value: unquoteRFC822(value)})
	}
	if len(params) > 0 {
		mt, err = mt.WithParams(params)
		if err != nil {
			return MediaType{}, false
		}
	}
	return mt, true
}

// cutToken splits a maximal run of token text (no '/', ';', '"') followed
// by sep. ok is false when the run is empty or sep never arrives.
func cutToken(s string, sep byte) (token, rest string, ok bool) {
	i := tokenEnd(s)
	if i == 0 || i >= len(s) || s[i] != sep {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

func tokenEnd(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '/', ';', '"':
			return i
		}
	}
	return len(s)
}

// scanParams collects raw parameter clauses from s, which starts at the
// byte after the subtype. Each clause is introduced by ';' and runs to the
// next ';' that is outside a quoted string. The run ends at the first
// ";base64" marker, at a clause whose quoted string never closes, or at
// any byte that cannot start another clause; whatever follows is dropped.
func scanParams(s string) []string {
	var clauses []string
	for len(s) > 0 && s[0] == ';' {
		rest := s[1:]
		if isBase64Marker(rest) {
			break
		}
		clause, n, ok := scanClause(rest)
		if !ok {
			break
		}
		clauses = append(clauses, clause)
		s = rest[n:]
	}
	return clauses
}

// isBase64Marker reports whether s begins with the literal token "base64"
// immediately followed by ';' or end of input, matching case-insensitively.
func isBase64Marker(s string) bool {
	const marker = "base64"
	if len(s) < len(marker) || !strings.EqualFold(s[:len(marker)], marker) {
		return false
	}
	return len(s) == len(marker) || s[len(marker)] == ';'
}

// scanClause consumes one clause starting just past its ';'. It stops
// before the next top-level ';' or at end of input. Quoted strings are
// atomic: ';' inside one belongs to the clause. ok is false when the
// clause ends inside an unterminated quoted string.
func scanClause(s string) (clause string, n int, ok bool) {
	i := 0
	for i < len(s) {
		if s[i] == ';' {
			return s[:i], i, true
		}
		if q := quoteLen(s[i:]); q > 0 {
			end, closed := skipQuoted(s, i+q)
			if !closed {
				return "", 0, false
			}
			i = end
			continue
		}
		i++
	}
	return s, len(s), true
}

// quoteLen reports the width of a quote delimiter at the start of s:
// 1 for '"', 3 for a percent-escaped quote, 0 for anything else.
func quoteLen(s string) int {
	if len(s) > 0 && s[0] == '"' {
		return 1
	}
	if len(s) >= 3 && s[0] == '%' && s[1] == '2' && s[2] == '2' {
		return 3
	}
	return 0
}

// skipQuoted advances from just inside an open quote to just past the
// closing delimiter. Backslash pairs and percent-escaped backslash pairs
// ("%5C" plus one byte) never close the quote.
func skipQuoted(s string, i int) (end int, closed bool) {
	for i < len(s) {
		if q := quoteLen(s[i:]); q > 0 {
			return i + q, true
		}
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if i+2 < len(s) && s[i] == '%' && s[i+1] == '5' && (s[i+2] == 'c' || s[i+2] == 'C') {
			i += 4
			continue
		}
		i++
	}
	return 0, false
}

// unquoteRFC822 strips a surrounding pair of double quotes and resolves
// backslash escapes: a backslash followed by any character yields that
// character. Unquoted input is returned unchanged.
func unquoteRFC822(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	var out strings.Builder
	out.Grow(len(s) - 2)
	for i := 1; i < len(s)-1; i++ {
		if s[i] == '\\' && i+1 < len(s) {
			out.WriteByte(s[i+1])
			i++
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String()
}
