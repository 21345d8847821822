// Package browser launches resolved URLs in a web browser after gating them
// through the same checks the rest of the tool applies.
//
// The actual launching is delegated to github.com/pkg/browser, which knows the
// platform conventions (cmd /c start on Windows, open on macOS, xdg-open on
// Linux). This package adds target selection and a validation gate so callers
// cannot hand a hostile reference to a shell helper.
//
// # Security Considerations
//
// Every URL passes urlutil.Validate before it reaches the platform launcher:
//   - only http:// and https:// schemes are accepted, which rules out
//     javascript:, file:, data: and every unrecognized scheme
//   - references whose host was invented during resolution are refused
//   - paths that climb above the root are refused
//
// # Browser Targets
//
// Three targets are supported:
//   - TargetDefault: the system default browser (alias for TargetSystem)
//   - TargetSystem: the system default browser
//   - TargetNone: validate only, never launch
//
// TargetNone makes the gate usable on its own. A caller that wants the checks
// without the side effect opens with Target: TargetNone and inspects the error.
//
// # Example Usage
//
// Launch in the default browser, without blocking on the platform helper:
//
//	err := browser.Launch(browser.LaunchOptions{
//	    URL:    "https://example.com",
//	    Target: browser.TargetDefault,
//	})
//
// Validate a target string from user input:
//
//	if !browser.IsValid(userInput) {
//	    log.Fatalf("invalid browser target, valid targets: %s",
//	        browser.FormatValidTargets())
//	}
//
// # Error Handling
//
// Launch returns immediately. Validation failures are returned synchronously;
// errors from the platform launcher itself are logged and dropped, since a
// browser that fails to start should not fail the surrounding operation. Open
// is the synchronous variant and reports launcher errors to the caller.
package browser
