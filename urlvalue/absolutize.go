package urlvalue

import (
	"strings"

	"github.com/urlscope/urlscope-core/scheme"
)

// urlParts is the coarse decomposition of one URL text. Component strings
// exclude their delimiters; spans locate components inside text, with the
// query and fragment spans covering their '?' and '#' markers the way
// accessors report them.
type urlParts struct {
	text         string
	rawScheme    string // scheme as written, "" when absent
	scheme       scheme.Scheme
	hasAuthority bool
	authority    string
	path         string
	hasQuery     bool
	query        string
	hasFragment  bool
	fragment     string
	ranges       scheme.PartRanges
}

// splitURL is the mechanical component split: fragment at the first '#',
// then scheme, then a "//"-introduced authority, then query at the first
// '?'. A known opaque scheme suppresses authority and query splitting;
// everything between "scheme:" and the fragment is then path, with the
// content-metadata span marked up to the first comma for schemes that
// carry it.
func splitURL(text string, reg *scheme.Registry) urlParts {
	p := urlParts{text: text}

	work := text
	if i := strings.IndexByte(text, '#'); i >= 0 {
		p.hasFragment = true
		p.fragment = text[i+1:]
		p.ranges.Fragment = scheme.NewSpan(i, len(text))
		work = text[:i]
	}

	rest := work
	restOff := 0
	if i := schemeEnd(work); i >= 0 {
		p.rawScheme = work[:i]
		p.scheme = reg.Lookup(p.rawScheme)
		rest = work[i+1:]
		restOff = i + 1
	}

	if p.scheme.Opaque() {
		p.path = rest
		p.ranges.Path = scheme.NewSpan(restOff, restOff+len(rest))
		if p.scheme.HasContentMetadata() {
			if c := strings.IndexByte(rest, ','); c >= 0 {
				p.ranges.ContentMetadata = scheme.NewSpan(restOff, restOff+c)
			}
		}
		return p
	}

	if strings.HasPrefix(rest, "//") {
		start := restOff + 2
		auth := rest[2:]
		end := len(auth)
		if i := strings.IndexAny(auth, "/?"); i >= 0 {
			end = i
		}
		p.hasAuthority = true
		p.authority = auth[:end]
		p.ranges.Authority = scheme.NewSpan(start, start+end)
		rest = auth[end:]
		restOff = start + end
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		p.hasQuery = true
		p.query = rest[i+1:]
		p.ranges.Query = scheme.NewSpan(restOff+i, restOff+len(rest))
		rest = rest[:i]
	}

	p.path = rest
	p.ranges.Path = scheme.NewSpan(restOff, restOff+len(rest))
	return p
}

// schemeEnd returns the index of the ':' ending a leading RFC 3986 scheme
// (ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )), or -1 when s has none.
func schemeEnd(s string) int {
	if s == "" || !isAlpha(s[0]) {
		return -1
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case isAlpha(c) || isDigit(c) || c == '+' || c == '-' || c == '.':
		case c == ':':
			return i
		default:
			return -1
		}
	}
	return -1
}

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// result is the outcome of resolving one reference.
type result struct {
	text               string
	scheme             scheme.Scheme
	ranges             scheme.PartRanges // spans into text; zero when undecomposable
	originalRanges     scheme.PartRanges // spans into the reference as written
	reachedRootsParent bool
}

// absolutize resolves one reference against the context per RFC 3986
// section 5.2, extended with placeholder-authority substitution and the
// root-traversal flag. It never fails: a reference whose effective scheme
// cannot be established comes back with scheme.Unknown, zero ranges, and
// the original text.
func absolutize(ctx *Context, original string) result {
	refText := original
	if ctx.flatten {
		refText = strings.ReplaceAll(refText, `\`, "/")
	}
	ref := splitURL(refText, ctx.registry)
	base := ctx.base

	// An empty reference is the base URL, exactly as the base resolved.
	if refText == "" && base != nil {
		return result{
			text:           base.text,
			scheme:         base.scheme,
			ranges:         base.ranges,
			originalRanges: ref.ranges,
		}
	}

	effective := ref.scheme
	if ref.rawScheme == "" && base != nil {
		effective = base.scheme
	}
	if !effective.Known() {
		return result{text: original, scheme: effective}
	}

	if effective.Opaque() {
		return assembleOpaque(effective, ref, base, refText)
	}

	// RFC 3986 section 5.2.2 transform, tracking which components come
	// from the reference and which are inherited.
	var t urlParts
	var flag bool
	switch {
	case ref.rawScheme != "":
		t.rawScheme = ref.rawScheme
		t.hasAuthority, t.authority = ref.hasAuthority, ref.authority
		t.path, flag = removeDotSegments(ref.path, true)
		t.hasQuery, t.query = ref.hasQuery, ref.query
	case ref.hasAuthority:
		t.rawScheme = base.rawScheme
		t.hasAuthority, t.authority = true, ref.authority
		t.path, flag = removeDotSegments(ref.path, true)
		t.hasQuery, t.query = ref.hasQuery, ref.query
	default:
		t.rawScheme = base.rawScheme
		t.hasAuthority, t.authority = base.hasAuthority, base.authority
		if ref.path == "" {
			t.path = base.path
			if ref.hasQuery {
				t.hasQuery, t.query = true, ref.query
			} else {
				t.hasQuery, t.query = base.hasQuery, base.query
			}
		} else {
			if strings.HasPrefix(ref.path, "/") {
				t.path, flag = removeDotSegments(ref.path, true)
			} else {
				merged := mergePaths(base.hasAuthority, base.path, ref.path)
				t.path, flag = removeDotSegments(merged, false)
			}
			t.hasQuery, t.query = ref.hasQuery, ref.query
		}
	}
	t.hasFragment, t.fragment = ref.hasFragment, ref.fragment

	if !t.hasAuthority && effective.RequiresAuthority() {
		t.hasAuthority = true
		t.authority = ctx.placeholder
	}

	var b strings.Builder
	var ranges scheme.PartRanges
	b.WriteString(t.rawScheme)
	b.WriteByte(':')
	if t.hasAuthority {
		b.WriteString("//")
		left := b.Len()
		b.WriteString(t.authority)
		ranges.Authority = scheme.NewSpan(left, b.Len())
	}
	path := t.path
	if t.hasAuthority && path != "" && path[0] != '/' {
		// An authority may only be followed by an absolute or empty path.
		path = "/" + path
	}
	left := b.Len()
	b.WriteString(path)
	ranges.Path = scheme.NewSpan(left, b.Len())
	if t.hasQuery {
		left = b.Len()
		b.WriteByte('?')
		b.WriteString(t.query)
		ranges.Query = scheme.NewSpan(left, b.Len())
	}
	if t.hasFragment {
		left = b.Len()
		b.WriteByte('#')
		b.WriteString(t.fragment)
		ranges.Fragment = scheme.NewSpan(left, b.Len())
	}

	return result{
		text:               b.String(),
		scheme:             effective,
		ranges:             ranges,
		originalRanges:     ref.ranges,
		reachedRootsParent: flag,
	}
}

// assembleOpaque builds the resolved form for an opaque effective scheme.
// A reference carrying its own opaque scheme was already split with the
// whole body as path. A schemeless reference against an opaque base
// replaces the entire scheme-specific part, except that a reference with
// nothing but a fragment keeps the base's body.
func assembleOpaque(effective scheme.Scheme, ref urlParts, base *urlParts, refText string) result {
	rawScheme := ref.rawScheme
	body := ref.path
	if rawScheme == "" {
		rawScheme = base.rawScheme
		if ref.path == "" && !ref.hasAuthority && !ref.hasQuery {
			body = base.path
		} else {
			body = refText
			if ref.hasFragment {
				body = refText[:ref.ranges.Fragment.Left()]
			}
		}
	}

	var b strings.Builder
	var ranges scheme.PartRanges
	b.WriteString(rawScheme)
	b.WriteByte(':')
	left := b.Len()
	b.WriteString(body)
	ranges.Path = scheme.NewSpan(left, b.Len())
	if effective.HasContentMetadata() {
		if c := strings.IndexByte(body, ','); c >= 0 {
			ranges.ContentMetadata = scheme.NewSpan(left, left+c)
		}
	}
	if ref.hasFragment {
		fl := b.Len()
		b.WriteByte('#')
		b.WriteString(ref.fragment)
		ranges.Fragment = scheme.NewSpan(fl, b.Len())
	}

	return result{
		text:           b.String(),
		scheme:         effective,
		ranges:         ranges,
		originalRanges: ref.ranges,
	}
}

// mergePaths joins a relative reference path onto the base per RFC 3986
// section 5.2.3.
func mergePaths(baseHasAuthority bool, basePath, refPath string) string {
	if baseHasAuthority && basePath == "" {
		return "/" + refPath
	}
	i := strings.LastIndexByte(basePath, '/')
	if i < 0 {
		return refPath
	}
	return basePath[:i+1] + refPath
}

// removeDotSegments simplifies "." and ".." segments the way RFC 3986
// section 5.2.4 does, over a segment stack. refAbsolute grants an
// absolute path one silent pop on an empty stack: a reference path that
// was itself absolute re-anchors at the base, which absorbs one level.
// The second result reports a ".." that climbed past the root, or past
// every earlier segment of a relative path.
func removeDotSegments(p string, refAbsolute bool) (string, bool) {
	if p == "" {
		return "", false
	}
	abs := p[0] == '/'
	body := p
	if abs {
		body = p[1:]
	}
	segs := strings.Split(body, "/")
	out := make([]string, 0, len(segs))
	var (
		reached    bool
		trailing   bool
		pushedReal bool
	)
	slot := abs && refAbsolute
	for _, seg := range segs {
		switch seg {
		case ".":
			trailing = true
		case "..":
			trailing = true
			switch {
			case len(out) > 0:
				out = out[:len(out)-1]
			case abs:
				if slot {
					slot = false
				} else {
					reached = true
				}
			case pushedReal:
				reached = true
			}
			// A ".." heading a relative path drops silently: there is
			// no parent for it to climb out of.
		default:
			out = append(out, seg)
			pushedReal = true
			trailing = false
		}
	}
	if trailing {
		out = append(out, "")
	}
	joined := strings.Join(out, "/")
	if abs {
		return "/" + joined, reached
	}
	return joined, reached
}
