// Package testutil provides common testing utilities for urlscope tools.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Common string assertions (Contains)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	import (
//	    "testing"
//	    "github.com/urlscope/urlscope-core/testutil"
//	)
//
//	func TestInspect(t *testing.T) {
//	    // Capture stdout from a command
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runInspect("https://example.com/a/../b")
//	    })
//
//	    // Check output contains the resolved URL
//	    if !testutil.Contains(output, "https://example.com/b") {
//	        t.Error("expected resolved URL in output")
//	    }
//	}
package testutil
