// Package pctcodec percent-decodes and percent-encodes URL text.
//
// Decoding fails soft: malformed input yields (_, false) rather than an
// error, because the inputs are untrusted URL fragments and a caller's
// normal response to a bad escape is "treat this token as absent". The
// decoder is strict about what it accepts: a lone '%', a truncated escape,
// or an escape sequence that assembles into invalid UTF-8 all fail rather
// than being passed through or replaced.
//
// # Usage
//
//	import "github.com/urlscope/urlscope-core/pctcodec"
//
//	s, ok := pctcodec.Decode("a%2Fb")  // "a/b", true
//	_, ok = pctcodec.Decode("%2")      // "", false
//	_, ok = pctcodec.Decode("%c3%28")  // "", false (invalid UTF-8)
//
//	pctcodec.Encode("a/b c")           // "a%2Fb%20c"
package pctcodec
