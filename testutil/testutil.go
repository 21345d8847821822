package testutil

import (
	"io"
	"os"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the
// captured output. The original stdout is always restored, even if the
// function returns an error. This is useful for testing commands that write
// to stdout.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    fmt.Println("https://example.com/b")
//	    return nil
//	})
//	if !strings.Contains(output, "example.com") {
//	    t.Error("expected output not found")
//	}
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Drain the read end concurrently so large output cannot block fn
	// on a full pipe buffer.
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		_, _ = io.Copy(&output, r)
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// TempDir creates a temporary directory for testing with automatic cleanup.
// The directory is created with secure permissions (0750) and is automatically
// removed when the test completes via t.Cleanup().
//
// Example:
//
//	tmpDir := testutil.TempDir(t)
//	urlFile := filepath.Join(tmpDir, "urls.txt")
//	// Directory is automatically cleaned up after test
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "urlscope-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	return tmpDir
}

// Contains checks if a string contains a substring.
// This is a convenience helper for common test assertions.
//
// Example:
//
//	if !testutil.Contains(output, "expected text") {
//	    t.Error("output does not contain expected text")
//	}
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
