// Package scheme models URL schemes and the byte ranges of URL components.
//
// A Scheme carries the structural metadata that URL resolution needs: whether
// the scheme-specific part is hierarchical or opaque, whether an authority
// component may or must appear, whether a query is meaningful, and the default
// port if one exists. Schemes are plain comparable values with no hidden
// identity; looking the same name up twice yields equal values, and looking up
// an unrecognized name yields an unknown Scheme that still carries the name
// rather than an error.
//
// # Usage
//
// Resolve names against the shared default registry:
//
//	import "github.com/urlscope/urlscope-core/scheme"
//
//	s := scheme.Lookup("HTTPS")
//	s.Known()             // true
//	s.RequiresAuthority() // true
//	port, ok := s.DefaultPort() // 443, true
//
// Unrecognized names never fail; they come back unknown but named:
//
//	s := scheme.Lookup("gopher")
//	s.Known() // false
//	s.Name()  // "gopher"
//
// Register additional schemes by building a private registry:
//
//	git := scheme.New("git", scheme.Opts{
//		RequiresAuthority: true,
//		MayHaveQuery:      true,
//	})
//	reg := scheme.NewRegistry(git)
//	reg.Lookup("git").Known() // true
//
// # Part ranges
//
// Span and PartRanges locate components inside a URL string by byte offset
// instead of copying substrings. The zero Span is absent, so a PartRanges
// value that was never filled in correctly reports every component missing:
//
//	var r scheme.PartRanges
//	r.Decomposed() // false
//	auth, ok := r.Authority.Slice(urlText) // "", false
package scheme
