package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("test output")
			return nil
		})

		if !strings.Contains(output, "test output") {
			t.Errorf("expected output to contain 'test output', got: %s", output)
		}
	})

	t.Run("captures multiple lines", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("line 1")
			fmt.Println("line 2")
			fmt.Println("line 3")
			return nil
		})

		for _, want := range []string{"line 1", "line 2", "line 3"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("restores stdout on error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		output := CaptureOutput(t, func() error {
			fmt.Println("output before error")
			return expectedErr
		})

		if !strings.Contains(output, "output before error") {
			t.Error("expected output to contain 'output before error'")
		}

		// Verify stdout is restored by printing to it
		fmt.Println("stdout restored")
	})

	t.Run("handles empty output", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			return nil
		})

		if output != "" {
			t.Errorf("expected empty output, got: %s", output)
		}
	})

	t.Run("captures fmt.Print without newline", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Print("no newline")
			return nil
		})

		if output != "no newline" {
			t.Errorf("expected 'no newline', got: %s", output)
		}
	})

	t.Run("captures large output", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			// Larger than a pipe buffer so the concurrent drain matters
			for i := 0; i < 2000; i++ {
				fmt.Printf("https://example.com/path/%d?q=some-longer-query-string\n", i)
			}
			return nil
		})

		if !strings.Contains(output, "/path/0?") {
			t.Error("expected to find first line")
		}
		if !strings.Contains(output, "/path/1999?") {
			t.Error("expected to find last line")
		}

		lines := strings.Split(output, "\n")
		if len(lines) < 2000 {
			t.Errorf("expected at least 2000 lines, got %d", len(lines))
		}
	})
}

func TestTempDir(t *testing.T) {
	t.Run("creates directory", func(t *testing.T) {
		tmpDir := TempDir(t)

		info, err := os.Stat(tmpDir)
		if err != nil {
			t.Fatalf("temp directory does not exist: %v", err)
		}
		if !info.IsDir() {
			t.Error("temp path is not a directory")
		}
	})

	t.Run("creates unique directories", func(t *testing.T) {
		tmpDir1 := TempDir(t)
		tmpDir2 := TempDir(t)

		if tmpDir1 == tmpDir2 {
			t.Error("expected unique directories")
		}
	})

	t.Run("directory is writable", func(t *testing.T) {
		tmpDir := TempDir(t)

		testFile := filepath.Join(tmpDir, "urls.txt")
		if err := os.WriteFile(testFile, []byte("https://example.com/\n"), 0644); err != nil {
			t.Fatalf("failed to write to temp directory: %v", err)
		}

		if _, err := os.Stat(testFile); err != nil {
			t.Errorf("test file not created: %v", err)
		}
	})

	t.Run("directory has urlscope-test prefix", func(t *testing.T) {
		tmpDir := TempDir(t)
		baseName := filepath.Base(tmpDir)

		if !strings.HasPrefix(baseName, "urlscope-test-") {
			t.Errorf("expected directory name to have 'urlscope-test-' prefix, got: %s", baseName)
		}
	})
}

func TestContains(t *testing.T) {
	t.Run("finds substring", func(t *testing.T) {
		if !Contains("https://example.com/a/b", "example.com") {
			t.Error("expected to find 'example.com'")
		}
	})

	t.Run("returns false when substring not found", func(t *testing.T) {
		if Contains("https://example.com", "example.org") {
			t.Error("expected not to find 'example.org'")
		}
	})

	t.Run("handles empty substring", func(t *testing.T) {
		// Empty string is always contained
		if !Contains("hello", "") {
			t.Error("expected empty string to be contained")
		}
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		if Contains("HTTPS://A/B/C", "https") {
			t.Error("expected case-sensitive comparison")
		}
		if !Contains("HTTPS://A/B/C", "HTTPS") {
			t.Error("expected to find 'HTTPS' with correct case")
		}
	})
}
