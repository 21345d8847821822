// Package security provides safety inspection for resolved URL authorities:
// embedded credentials, hostname extraction, and port resolution. Authorities
// that smuggle a fake host into the userinfo component ("trusted.com@evil.com")
// or carry a password are the classic deceptive-URL shapes, and this package
// exists to surface them before a URL is logged, displayed, or opened.
package security

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urlscope/urlscope-core/scheme"
	"github.com/urlscope/urlscope-core/urlvalue"
)

// ErrEmbeddedCredentials indicates an authority carrying a password.
var ErrEmbeddedCredentials = errors.New("embedded credentials")

// UserInfo splits the userinfo component off an authority.
// ok is false when the authority has no userinfo. Browsers treat everything
// before the last "@" as userinfo, so a deceptive "a@b@evil.com" yields
// userinfo "a@b" with host "evil.com".
func UserInfo(authority string) (userinfo string, ok bool) {
	i := strings.LastIndexByte(authority, '@')
	if i < 0 {
		return "", false
	}
	return authority[:i], true
}

// HasPassword reports whether a userinfo component carries a password.
// The legacy "user:password" form puts everything after the first colon
// in the password.
func HasPassword(userinfo string) bool {
	return strings.IndexByte(userinfo, ':') >= 0
}

// HasUserInfo reports whether the value's authority carries a userinfo
// component at all.
func HasUserInfo(v *urlvalue.Value) bool {
	if v == nil {
		return false
	}
	auth, ok := v.Authority()
	if !ok {
		return false
	}
	_, has := UserInfo(auth)
	return has
}

// Hostname extracts the bare host from an authority. Userinfo and port are
// stripped and IPv6 brackets removed.
func Hostname(authority string) string {
	host := authority
	if i := strings.LastIndexByte(host, '@'); i >= 0 {
		host = host[i+1:]
	}
	if strings.HasPrefix(host, "[") {
		if i := strings.IndexByte(host, ']'); i >= 0 {
			return host[1:i]
		}
		return host[1:]
	}
	// Bracketless authorities treat the first colon as the port delimiter.
	if i := strings.IndexByte(host, ':'); i >= 0 {
		return host[:i]
	}
	return host
}

// Port returns the authority's port, falling back to the scheme default
// when the port is absent or empty. ok is false when there is no explicit
// port, no default, or the explicit port does not parse.
func Port(authority string, s scheme.Scheme) (int, bool) {
	hostport := authority
	if i := strings.LastIndexByte(hostport, '@'); i >= 0 {
		hostport = hostport[i+1:]
	}

	rest := ""
	if strings.HasPrefix(hostport, "[") {
		if i := strings.IndexByte(hostport, ']'); i >= 0 {
			rest = hostport[i+1:]
		}
	} else if i := strings.IndexByte(hostport, ':'); i >= 0 {
		rest = hostport[i:]
	}

	if strings.HasPrefix(rest, ":") && len(rest) > 1 {
		p, err := strconv.Atoi(rest[1:])
		if err != nil || p <= 0 || p > 65535 {
			return 0, false
		}
		return p, true
	}
	return s.DefaultPort()
}

// IsLoopback reports whether a hostname names the local machine:
// "localhost", any "*.localhost" subdomain, 127.0.0.1, or ::1.
func IsLoopback(hostname string) bool {
	hostname = strings.ToLower(hostname)
	return hostname == "localhost" ||
		strings.HasSuffix(hostname, ".localhost") ||
		hostname == "127.0.0.1" ||
		hostname == "::1"
}

// CheckCredentials returns ErrEmbeddedCredentials when the value's
// authority carries a password. The error message uses the redacted text
// so it stays safe to log.
func CheckCredentials(v *urlvalue.Value) error {
	if v == nil {
		return nil
	}
	auth, ok := v.Authority()
	if !ok {
		return nil
	}
	userinfo, has := UserInfo(auth)
	if !has || !HasPassword(userinfo) {
		return nil
	}
	return fmt.Errorf("%w in %s", ErrEmbeddedCredentials, Redact(v))
}

// Redact returns the value's text with any userinfo password replaced by
// "***". Values without a password come back unchanged.
func Redact(v *urlvalue.Value) string {
	if v == nil {
		return ""
	}
	text := v.Text()
	span := v.Ranges().Authority
	if !span.Present() {
		return text
	}
	auth, _ := span.Slice(text)
	userinfo, ok := UserInfo(auth)
	if !ok {
		return text
	}
	colon := strings.IndexByte(userinfo, ':')
	if colon < 0 {
		return text
	}
	start := span.Left() + colon + 1
	end := span.Left() + len(userinfo)
	return text[:start] + "***" + text[end:]
}
