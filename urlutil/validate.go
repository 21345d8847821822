package urlutil

import (
	"fmt"
	"strings"

	"github.com/urlscope/urlscope-core/security"
	"github.com/urlscope/urlscope-core/urlvalue"
)

const (
	// MaxURLLength is the RFC 7230 practical limit for URL length
	MaxURLLength = 2048
)

// Validate checks that a URL is usable as a fetchable web URL.
// It validates that the URL:
//   - Is not empty or only whitespace
//   - Does not exceed MaxURLLength (2048 characters)
//   - Uses http:// or https://
//   - Has a real host, not one invented during resolution
//   - Has a path that stays below the root
//
// Returns an error with context if validation fails.
//
// Example:
//
//	if err := urlutil.Validate("https://example.com"); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func Validate(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)

	if rawURL == "" {
		return fmt.Errorf("url cannot be empty")
	}
	if len(rawURL) > MaxURLLength {
		return fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	v := urlvalue.OfDefault(rawURL)
	s := v.Scheme()
	if !s.Known() {
		if s.Name() == "" {
			return fmt.Errorf("url must use http:// or https://")
		}
		return fmt.Errorf("unrecognized scheme: %s", s.Name())
	}
	if s.Name() != "http" && s.Name() != "https" {
		return fmt.Errorf("url must use http:// or https://, got: %s", s.Name())
	}

	if v.InheritsPlaceholderAuthority() {
		return fmt.Errorf("url missing host/domain")
	}
	auth, ok := v.Authority()
	if !ok || security.Hostname(auth) == "" {
		return fmt.Errorf("url missing host/domain")
	}

	if v.ReachesRootsParent() {
		return fmt.Errorf("url path climbs above the root")
	}

	return nil
}

// ValidateHTTPSOnly enforces HTTPS-only URLs for production use.
// It allows HTTP for loopback hosts (localhost, *.localhost, 127.0.0.1,
// ::1) for local development, but rejects all other HTTP URLs.
//
// Example:
//
//	if err := urlutil.ValidateHTTPSOnly(endpoint); err != nil {
//		return fmt.Errorf("production endpoint must use HTTPS: %w", err)
//	}
func ValidateHTTPSOnly(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}

	v := urlvalue.OfDefault(strings.TrimSpace(rawURL))
	if v.Scheme().Name() == "https" {
		return nil
	}

	auth, _ := v.Authority()
	if security.IsLoopback(security.Hostname(auth)) {
		return nil
	}

	return fmt.Errorf("url must use https:// (http:// only allowed for localhost)")
}

// NormalizeScheme ensures text meant as a web URL has a scheme, prepending
// defaultScheme when it has none. Text carrying a known scheme, or any
// scheme followed by "//", is returned unchanged; an unknown scheme
// without "//" is treated as host:port shorthand ("localhost:8080").
//
// The defaultScheme should be either "http" or "https" (without "://").
//
// Example:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)

	v := urlvalue.OfDefault(rawURL)
	s := v.Scheme()
	if s.Known() {
		return rawURL
	}
	if s.Name() != "" {
		rest := rawURL[strings.IndexByte(rawURL, ':')+1:]
		if strings.HasPrefix(rest, "//") {
			return rawURL
		}
	}

	return defaultScheme + "://" + rawURL
}
