package scheme

import "strings"

// Scheme describes how URLs of one scheme are structured.
//
// The zero value is Unknown: no name, no structure, Known() == false.
type Scheme struct {
	name              string
	known             bool
	opaque            bool
	mayHaveAuthority  bool
	requiresAuthority bool
	mayHaveQuery      bool
	contentMetadata   bool
	defaultPort       int
}

// Unknown is the fallback scheme for URLs whose scheme is absent or cannot
// be determined. It is never nil-like in behavior: all methods are safe.
var Unknown = Scheme{}

// Builtin schemes. HTTP-family and FTP schemes require an authority, so the
// absolutizer substitutes the placeholder authority when none can be
// inherited. Opaque schemes treat everything after "scheme:" up to the
// fragment as a single blob.
var (
	HTTP  = Scheme{name: "http", known: true, mayHaveAuthority: true, requiresAuthority: true, mayHaveQuery: true, defaultPort: 80}
	HTTPS = Scheme{name: "https", known: true, mayHaveAuthority: true, requiresAuthority: true, mayHaveQuery: true, defaultPort: 443}
	FTP   = Scheme{name: "ftp", known: true, mayHaveAuthority: true, requiresAuthority: true, defaultPort: 21}
	WS    = Scheme{name: "ws", known: true, mayHaveAuthority: true, requiresAuthority: true, mayHaveQuery: true, defaultPort: 80}
	WSS   = Scheme{name: "wss", known: true, mayHaveAuthority: true, requiresAuthority: true, mayHaveQuery: true, defaultPort: 443}

	// File URLs may carry an authority ("file://host/p") but do not need
	// one ("file:/p"), so no placeholder is ever substituted.
	File = Scheme{name: "file", known: true, mayHaveAuthority: true, mayHaveQuery: true}

	// Blob URLs wrap another URL in their path and have no authority of
	// their own.
	Blob = Scheme{name: "blob", known: true, mayHaveQuery: true}

	// Mailto has no authority; RFC 6068 allows header fields in the query.
	Mailto = Scheme{name: "mailto", known: true, mayHaveQuery: true}

	// Data is opaque with RFC 2397 content metadata before the first comma.
	Data = Scheme{name: "data", known: true, opaque: true, contentMetadata: true}

	Javascript = Scheme{name: "javascript", known: true, opaque: true}
	Tel        = Scheme{name: "tel", known: true, opaque: true}
	About      = Scheme{name: "about", known: true, opaque: true}
	Cid        = Scheme{name: "cid", known: true, opaque: true}
)

var builtins = []Scheme{
	HTTP, HTTPS, FTP, WS, WSS, File, Blob, Mailto, Data, Javascript, Tel, About, Cid,
}

// Opts configures a custom Scheme for registration.
type Opts struct {
	// Opaque treats the whole scheme-specific part as a single blob with
	// no authority, path hierarchy, or query.
	Opaque bool
	// MayHaveAuthority permits a "//authority" component.
	MayHaveAuthority bool
	// RequiresAuthority additionally makes the absolutizer substitute the
	// placeholder authority when no authority can be inherited.
	RequiresAuthority bool
	// MayHaveQuery permits a "?query" component.
	MayHaveQuery bool
	// ContentMetadata marks data-style "metadata,content" bodies.
	ContentMetadata bool
	// DefaultPort is the scheme's conventional port; zero means none.
	DefaultPort int
}

// New builds a known Scheme with the given name and structure, for use with
// NewRegistry. The name is lowercased.
func New(name string, opts Opts) Scheme {
	return Scheme{
		name:              strings.ToLower(name),
		known:             true,
		opaque:            opts.Opaque,
		mayHaveAuthority:  (opts.MayHaveAuthority || opts.RequiresAuthority) && !opts.Opaque,
		requiresAuthority: opts.RequiresAuthority && !opts.Opaque,
		mayHaveQuery:      opts.MayHaveQuery && !opts.Opaque,
		contentMetadata:   opts.ContentMetadata,
		defaultPort:       opts.DefaultPort,
	}
}

// Name returns the lowercase scheme name; empty for the absent scheme.
// Unregistered names looked up through a registry keep their name here
// even though Known reports false.
func (s Scheme) Name() string { return s.name }

// Known reports whether the scheme's structure is understood. Unknown
// schemes cannot be decomposed, so URLs using them expose no part ranges.
func (s Scheme) Known() bool { return s.known }

// Opaque reports whether the scheme-specific part is a single blob rather
// than an authority/path/query hierarchy.
func (s Scheme) Opaque() bool { return s.known && s.opaque }

// MayHaveAuthority reports whether a "//authority" component is permitted.
func (s Scheme) MayHaveAuthority() bool { return s.known && s.mayHaveAuthority }

// RequiresAuthority reports whether URLs of this scheme always carry an
// authority, inherited or synthesized if need be.
func (s Scheme) RequiresAuthority() bool { return s.known && s.requiresAuthority }

// MayHaveQuery reports whether a "?query" component is permitted.
func (s Scheme) MayHaveQuery() bool { return s.known && s.mayHaveQuery }

// HasContentMetadata reports whether the scheme body splits at the first
// comma into content metadata and content, as data: does.
func (s Scheme) HasContentMetadata() bool { return s.known && s.contentMetadata }

// DefaultPort returns the scheme's conventional port. The second result is
// false when the scheme has none.
func (s Scheme) DefaultPort() (int, bool) {
	if !s.known || s.defaultPort == 0 {
		return 0, false
	}
	return s.defaultPort, true
}

// String returns the scheme name, or "<unknown>" for the nameless zero
// value.
func (s Scheme) String() string {
	if s.name == "" {
		return "<unknown>"
	}
	return s.name
}
