package urlvalue

import (
	"sync"

	"github.com/urlscope/urlscope-core/mediatype"
	"github.com/urlscope/urlscope-core/scheme"
)

// Value bundles one URL text with the context it was interpreted in and
// the outcome of resolving it against the context's base. A Value is
// immutable and safe for concurrent use; the parsed media type of a
// data: URL is computed once on first request.
type Value struct {
	ctx      *Context
	original string

	text                string
	schm                scheme.Scheme
	ranges              scheme.PartRanges
	reachedRootsParent  bool
	inheritsPlaceholder bool

	mediaType func() (mediatype.MediaType, bool)
}

// Of resolves text against ctx. The only failure is a nil context; any
// text is accepted, with undecomposable input reported through absent
// components rather than an error.
func Of(ctx *Context, text string) (*Value, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	res := absolutize(ctx, text)
	v := &Value{
		ctx:                ctx,
		original:           text,
		text:               res.text,
		schm:               res.scheme,
		ranges:             res.ranges,
		reachedRootsParent: res.reachedRootsParent,
	}
	if auth, ok := res.ranges.Authority.Slice(res.text); ok {
		v.inheritsPlaceholder = !res.originalRanges.Authority.Present() &&
			auth == ctx.placeholder
	}
	v.mediaType = sync.OnceValues(v.parseMediaType)
	return v, nil
}

// OfDefault resolves text under Default().
func OfDefault(text string) *Value {
	v, err := Of(Default(), text)
	if err != nil {
		// Default() is never nil.
		panic(err)
	}
	return v
}

// OriginalText returns the reference exactly as given to Of.
func (v *Value) OriginalText() string { return v.original }

// Text returns the resolved absolute URL text. For input that could not
// be decomposed it is the original text, best effort.
func (v *Value) Text() string { return v.text }

// String returns the resolved text.
func (v *Value) String() string { return v.text }

// Context returns the context the value was resolved under.
func (v *Value) Context() *Context { return v.ctx }

// Scheme returns the effective scheme, scheme.Unknown flavored when none
// could be established.
func (v *Value) Scheme() scheme.Scheme { return v.schm }

// Ranges locates each component inside Text. All spans are absent when
// the URL could not be decomposed.
func (v *Value) Ranges() scheme.PartRanges { return v.ranges }

// Authority returns the authority component, without the "//".
func (v *Value) Authority() (string, bool) {
	return v.ranges.Authority.Slice(v.text)
}

// Path returns the path component. For opaque schemes this is the entire
// scheme-specific part up to the fragment.
func (v *Value) Path() (string, bool) {
	return v.ranges.Path.Slice(v.text)
}

// Query returns the query component including its leading '?'.
func (v *Value) Query() (string, bool) {
	return v.ranges.Query.Slice(v.text)
}

// Fragment returns the fragment component including its leading '#'.
func (v *Value) Fragment() (string, bool) {
	return v.ranges.Fragment.Slice(v.text)
}

// ContentMetadata returns the portion of a data: URL between "data:" and
// the first comma. It is absent for other schemes and for data: URLs
// with no comma, whose metadata cannot be delimited.
func (v *Value) ContentMetadata() (string, bool) {
	return v.ranges.ContentMetadata.Slice(v.text)
}

// ContentMediaType returns the parsed media type declared by a data:
// URL's content metadata. It is absent unless the scheme carries content
// metadata, the metadata component is present, and it parses.
func (v *Value) ContentMediaType() (mediatype.MediaType, bool) {
	return v.mediaType()
}

func (v *Value) parseMediaType() (mediatype.MediaType, bool) {
	if !v.schm.HasContentMetadata() {
		return mediatype.MediaType{}, false
	}
	meta, ok := v.ContentMetadata()
	if !ok {
		return mediatype.MediaType{}, false
	}
	return mediatype.ParseDataMetadata(meta)
}

// InheritsPlaceholderAuthority reports whether the resolved authority was
// synthesized: the original text had no authority component and the
// resolved text carries exactly the context's placeholder.
func (v *Value) InheritsPlaceholderAuthority() bool { return v.inheritsPlaceholder }

// ReachesRootsParent reports whether path simplification applied a ".."
// when no parent segment remained, the signature of a path trying to
// climb above the resolution root.
func (v *Value) ReachesRootsParent() bool { return v.reachedRootsParent }

// Equal reports whether two values were built from the same original
// text under the same context. The resolved form plays no part: equality
// answers "was this the same input", not "is this the same resource".
func (v *Value) Equal(o *Value) bool {
	return o != nil && v.original == o.original && v.ctx == o.ctx
}
