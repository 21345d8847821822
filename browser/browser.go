package browser

import (
	"fmt"
	"io"
	"strings"

	pkgbrowser "github.com/pkg/browser"

	"github.com/urlscope/urlscope-core/logutil"
	"github.com/urlscope/urlscope-core/urlutil"
)

func init() {
	// xdg-open chatter is not ours to show
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
}

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser
	TargetDefault Target = "default"
	// TargetSystem uses the system default browser (alias for TargetDefault)
	TargetSystem Target = "system"
	// TargetNone validates the URL but never launches
	TargetNone Target = "none"
)

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetSystem, TargetNone}
}

// IsValid checks if a target string is valid.
func IsValid(target string) bool {
	t := Target(target)
	for _, valid := range ValidTargets() {
		if t == valid {
			return true
		}
	}
	return false
}

// ResolveTarget determines the actual browser target to use.
// Converts "default" to "system", and respects "none".
func ResolveTarget(target Target) Target {
	if target == TargetNone {
		return TargetNone
	}
	return TargetSystem
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open
	URL string
	// Target browser to use
	Target Target
}

// Open validates the URL and opens it in the browser named by target,
// waiting for the launcher to finish. TargetNone validates without
// launching.
func Open(url string, target Target) error {
	if err := urlutil.Validate(url); err != nil {
		return fmt.Errorf("refusing to open: %w", err)
	}
	if ResolveTarget(target) == TargetNone {
		return nil
	}
	return pkgbrowser.OpenURL(url)
}

// Launch opens the URL in the browser without blocking the caller.
// Validation failures are still returned synchronously; launcher failures
// are logged, since by then the caller has moved on.
func Launch(opts LaunchOptions) error {
	if err := urlutil.Validate(opts.URL); err != nil {
		return fmt.Errorf("refusing to open: %w", err)
	}
	if ResolveTarget(opts.Target) == TargetNone {
		return nil
	}

	go func() {
		if err := pkgbrowser.OpenURL(opts.URL); err != nil {
			logutil.Warn("could not open browser automatically",
				"url", opts.URL, "error", err)
		}
	}()

	return nil
}

// GetTargetDisplayName returns a human-readable name for the browser target.
func GetTargetDisplayName(target Target) string {
	switch ResolveTarget(target) {
	case TargetSystem, TargetDefault:
		return "default browser"
	case TargetNone:
		return "none"
	default:
		return string(target)
	}
}

// FormatValidTargets returns a comma-separated list of valid targets.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}
