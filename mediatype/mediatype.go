package mediatype

import (
	"fmt"
	"strings"
)

// Param is one media type parameter. Parameters form an ordered list that
// keeps duplicate keys, matching how they appeared in the source text.
type Param struct {
	Key   string
	Value string
}

// MediaType is an immutable parsed media type such as "text/plain" or
// "application/json; charset=utf-8". Type, subtype, and parameter keys are
// normalized to lowercase; parameter values are kept exactly as given.
type MediaType struct {
	typ     string
	subtype string
	params  []Param
}

// New builds a media type from a type and subtype. Both must be non-empty
// RFC 2045 tokens. A wildcard type with a concrete subtype is rejected.
func New(typ, subtype string) (MediaType, error) {
	if !isToken(typ) {
		return MediaType{}, fmt.Errorf("media type: invalid type %q", typ)
	}
	if !isToken(subtype) {
		return MediaType{}, fmt.Errorf("media type: invalid subtype %q", subtype)
	}
	typ = strings.ToLower(typ)
	subtype = strings.ToLower(subtype)
	if typ == "*" && subtype != "*" {
		return MediaType{}, fmt.Errorf("media type: wildcard type with subtype %q", subtype)
	}
	return MediaType{typ: typ, subtype: subtype}, nil
}

// WithParams returns a copy of mt carrying the given parameters in order,
// duplicates retained. Keys must be RFC 2045 tokens and are lowercased;
// values are stored as-is (they hold already-decoded text and need no
// particular charset).
func (mt MediaType) WithParams(params []Param) (MediaType, error) {
	if len(params) == 0 {
		return MediaType{typ: mt.typ, subtype: mt.subtype}, nil
	}
	ps := make([]Param, 0, len(params))
	for _, p := range params {
		if !isToken(p.Key) {
			return MediaType{}, fmt.Errorf("media type: invalid parameter key %q", p.Key)
		}
		ps = append(ps, Param{Key: strings.ToLower(p.Key), Value: p.Value})
	}
	return MediaType{typ: mt.typ, subtype: mt.subtype, params: ps}, nil
}

// Type returns the lowercased major type, such as "text".
func (mt MediaType) Type() string { return mt.typ }

// Subtype returns the lowercased subtype, such as "plain".
func (mt MediaType) Subtype() string { return mt.subtype }

// Params returns a copy of the parameter list in source order.
func (mt MediaType) Params() []Param {
	if len(mt.params) == 0 {
		return nil
	}
	ps := make([]Param, len(mt.params))
	copy(ps, mt.params)
	return ps
}

// Param returns the first value recorded for key, case-insensitively.
func (mt MediaType) Param(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, p := range mt.params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// String renders the media type in canonical "type/subtype;key=value" form.
// Values that are not tokens are quoted, with '"' and '\' backslash-escaped.
func (mt MediaType) String() string {
	if mt.typ == "" {
		return ""
	}
	var out strings.Builder
	out.WriteString(mt.typ)
	out.WriteByte('/')
	out.WriteString(mt.subtype)
	for _, p := range mt.params {
		out.WriteByte(';')
		out.WriteString(p.Key)
		out.WriteByte('=')
		if isToken(p.Value) {
			out.WriteString(p.Value)
			continue
		}
		out.WriteByte('"')
		for i := 0; i < len(p.Value); i++ {
			if p.Value[i] == '"' || p.Value[i] == '\\' {
				out.WriteByte('\\')
			}
			out.WriteByte(p.Value[i])
		}
		out.WriteByte('"')
	}
	return out.String()
}

// tokenByte marks the RFC 2045 token charset: ALPHA / DIGIT and the
// punctuation that is not a tspecial.
var tokenByte [256]bool

func init() {
	for b := 0; b < 256; b++ {
		switch {
		case b >= '0' && b <= '9',
			b >= 'A' && b <= 'Z',
			b >= 'a' && b <= 'z',
			strings.ContainsRune("!#$%&'*+-.^_`|~", rune(b)):
			tokenByte[b] = true
		}
	}
}

func isToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if !tokenByte[s[i]] {
			return false
		}
	}
	return s != ""
}
