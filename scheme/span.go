package scheme

// Span is a half-open [left, right) byte range locating one URL component
// within a URL string. The zero value is the absent span, so a PartRanges
// that was never filled in reports every component missing.
type Span struct {
	left  int
	right int
	ok    bool
}

// NewSpan returns a present span covering [left, right). Out-of-order or
// negative bounds yield the absent span.
func NewSpan(left, right int) Span {
	if left < 0 || right < left {
		return Span{}
	}
	return Span{left: left, right: right, ok: true}
}

// Present reports whether the component exists at all. A component can be
// present yet empty, such as the query in "http://h/p?".
func (s Span) Present() bool { return s.ok }

// Empty reports whether the component is present with no text.
func (s Span) Empty() bool { return s.ok && s.left == s.right }

// Left returns the starting offset, or -1 when the span is absent.
func (s Span) Left() int {
	if !s.ok {
		return -1
	}
	return s.left
}

// Right returns the exclusive ending offset, or -1 when the span is absent.
func (s Span) Right() int {
	if !s.ok {
		return -1
	}
	return s.right
}

// Len returns the number of bytes covered; absent spans cover zero.
func (s Span) Len() int {
	if !s.ok {
		return 0
	}
	return s.right - s.left
}

// Slice cuts the spanned substring out of text. The second result is false
// when the span is absent or does not fit inside text.
func (s Span) Slice(text string) (string, bool) {
	if !s.ok || s.right > len(text) {
		return "", false
	}
	return text[s.left:s.right], true
}

// Shift moves both bounds by the given offset, relocating a span from one
// string into another that embeds it. Shifting an absent span, or shifting
// past the start of the text, yields the absent span.
func (s Span) Shift(by int) Span {
	if !s.ok {
		return Span{}
	}
	return NewSpan(s.left+by, s.right+by)
}

// PartRanges locates each URL component within a single URL string.
// Offsets for present components never overlap and follow source order:
// authority, then path, then query, then fragment. ContentMetadata is set
// only for data: URLs and lies within the Path span.
//
// The zero value marks every component absent, which is how an
// undecomposable URL is represented.
type PartRanges struct {
	Authority       Span
	Path            Span
	Query           Span
	Fragment        Span
	ContentMetadata Span
}

// Decomposed reports whether any component was located.
func (r PartRanges) Decomposed() bool {
	return r.Authority.Present() || r.Path.Present() || r.Query.Present() ||
		r.Fragment.Present() || r.ContentMetadata.Present()
}
