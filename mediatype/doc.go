// Package mediatype models media types and parses the RFC 2397 mediatype
// production found in data: URLs.
//
// A MediaType is immutable. Its type, subtype, and parameter keys are
// lowercased; parameter values keep their original case and may repeat a
// key, in source order. ParseDataMetadata fails soft, returning (zero,
// false) for text whose declared type cannot be established exactly. A
// data: URL's media type must never be guessed.
//
// # Usage
//
//	import "github.com/urlscope/urlscope-core/mediatype"
//
//	mt, ok := mediatype.ParseDataMetadata("text/plain;charset=utf-8")
//	if ok {
//		mt.Type()             // "text"
//		mt.Subtype()          // "plain"
//		mt.Param("charset")   // "utf-8", true
//	}
//
// The ";base64" marker of a data: URL is a content encoding, not a
// parameter, and never appears in the parameter list:
//
//	mt, _ = mediatype.ParseDataMetadata("text/plain;base64")
//	len(mt.Params()) // 0
package mediatype
