// Package urlvalue resolves URL references against a shared context and
// exposes the resolved URL's structure for part-wise analysis.
//
// A Context bundles a base URL, a scheme registry, and a placeholder
// authority, built once and shared. A Value is one reference interpreted
// under one context: its resolved absolute text, the byte ranges of each
// component within that text, and two anomaly signals that downstream
// policy code keys on. ReachesRootsParent marks a path whose ".."
// segments tried to climb above the resolution root.
// InheritsPlaceholderAuthority marks an authority that was synthesized
// during resolution rather than written in the source text.
//
// Resolution never fails on bad input. A reference whose scheme cannot
// be established, directly or through the base, is simply not
// decomposable: every component accessor reports absent and the text
// passes through unchanged.
//
// # Usage
//
//	import "github.com/urlscope/urlscope-core/urlvalue"
//
//	ctx, err := urlvalue.NewContext(urlvalue.Options{
//		BaseURL: "https://example.com/app/",
//	})
//	if err != nil {
//		return err
//	}
//
//	v, _ := urlvalue.Of(ctx, "../../etc/passwd")
//	v.Text()              // "https://example.com/etc/passwd"
//	v.ReachesRootsParent() // true
//
//	v, _ = urlvalue.Of(ctx, "img/logo.png?v=2")
//	v.Path()  // "/app/img/logo.png", true
//	v.Query() // "?v=2", true
//
// Without a base, references carrying their own scheme still resolve,
// and a required-but-missing authority is filled with a detectable
// placeholder:
//
//	v = urlvalue.OfDefault("http:/foo")
//	v.Text()                          // "http://placeholder.invalid/foo"
//	v.InheritsPlaceholderAuthority()  // true
//
// Two values are equal iff they were built from the same original text
// under the same *Context. The resolved form is deliberately ignored:
// equality answers "was this the same input to classify".
package urlvalue
