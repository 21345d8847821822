// Package urlutil provides validation helpers for URL text.
//
// This package includes helpers for:
//   - Validating fetchable web URLs (Validate)
//   - Enforcing HTTPS with a loopback escape hatch (ValidateHTTPSOnly)
//   - Adding a default scheme to bare host text (NormalizeScheme)
//
// Validation runs on resolved values, so structural anomalies count as
// failures: a host invented during resolution or a path that climbs above
// the root rejects the URL even when the text itself is well formed.
//
// Example usage:
//
//	import "github.com/urlscope/urlscope-core/urlutil"
//
//	func openEndpoint(raw string) error {
//	    url := urlutil.NormalizeScheme(raw, "https")
//	    if err := urlutil.Validate(url); err != nil {
//	        return fmt.Errorf("invalid URL: %w", err)
//	    }
//	    // ... safe to hand off
//	    return nil
//	}
package urlutil
