// Package cliout provides structured output formatting for CLI commands with
// cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Multiple output formats (human-readable text, JSON, YAML)
//   - ANSI color support with automatic suppression for non-terminals
//   - Unicode symbol detection with ASCII fallbacks for legacy terminals
//   - Labels, tables, and status badges for inspection reports
//
// # Basic Usage
//
//	import "github.com/urlscope/urlscope-core/cliout"
//
//	cliout.Success("resolved %d URLs", count)
//	cliout.Error("cannot read input: %s", err)
//	cliout.Warning("placeholder authority substituted")
//	cliout.Label("scheme", "https")
//
// # Output Formats
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    log.Fatal(err)
//	}
//
// The Print function supports hybrid output where you provide both the
// data object and a text formatter:
//
//	err := cliout.Print(report, func() {
//	    cliout.Label("resolved", report.Text)
//	})
//
// In JSON or YAML mode the data object is marshaled; in text mode the
// formatter runs.
//
// # Color Handling
//
// Escape codes are dropped automatically when stdout is not a terminal,
// and can be forced either way with ForceColor and NoColor. Unicode
// symbol detection covers Windows Terminal, VS Code, ConEmu and
// PowerShell; legacy consoles fall back to ASCII symbols.
package cliout
