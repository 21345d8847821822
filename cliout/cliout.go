package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	// Foreground colors
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	// Bright foreground colors
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
	BrightCyan   = "\033[96m"
)

// Unicode symbols for modern CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIArrow   = "->"
	ASCIIDot     = "*"
)

var (
	// mu protects the global format and color settings.
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = false
)

func init() {
	// Piped or redirected output gets no escape codes unless ForceColor
	// is called.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// paint returns code, or "" when color is disabled.
func paint(code string) string {
	mu.RLock()
	defer mu.RUnlock()
	if noColor {
		return ""
	}
	return code
}

// supportsUnicode detects if the terminal supports Unicode symbols.
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly.
func detectUnicodeSupport() bool {
	if runtime.GOOS == "windows" {
		// Windows Terminal, VS Code terminal, ConEmu, and PowerShell
		// render Unicode fine; plain legacy consoles may not.
		if os.Getenv("WT_SESSION") != "" {
			return true
		}
		if os.Getenv("TERM_PROGRAM") == "vscode" {
			return true
		}
		if os.Getenv("ConEmuPID") != "" {
			return true
		}
		if os.Getenv("PSModulePath") != "" || os.Getenv("POWERSHELL_DISTRIBUTION_CHANNEL") != "" {
			return true
		}
		return os.Getenv("TERM") != ""
	}
	return true
}

// getIcon returns the appropriate icon based on Unicode support.
func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()

	switch format {
	case "default", "text", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	case "yaml":
		globalFormat = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: text, json, yaml)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// IsStructured returns true for the machine-readable formats.
func IsStructured() bool {
	f := GetFormat()
	return f == FormatJSON || f == FormatYAML
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML to stdout.
func PrintYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Print outputs data in the configured format. The machine-readable
// formats marshal the data object; the default format runs the formatter.
func Print(data interface{}, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	default:
		formatter()
		return nil
	}
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Printf("\n%s%s%s\n", paint(Bold), text, paint(Reset))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	check := getIcon(SymbolCheck, ASCIICheck)
	fmt.Printf("%s%s%s %s\n", paint(BrightGreen), check, paint(Reset), msg)
}

// Error prints an error message with a red cross.
func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	cross := getIcon(SymbolCross, ASCIICross)
	fmt.Printf("%s%s%s %s\n", paint(BrightRed), cross, paint(Reset), msg)
}

// Warning prints a warning message with a yellow triangle.
func Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	warning := getIcon(SymbolWarning, ASCIIWarning)
	fmt.Printf("%s%s%s  %s\n", paint(BrightYellow), warning, paint(Reset), msg)
}

// Info prints an info message with a blue info icon.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	info := getIcon(SymbolInfo, ASCIIInfo)
	fmt.Printf("%s%s%s  %s\n", paint(BrightBlue), info, paint(Reset), msg)
}

// Item prints an indented item.
func Item(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("   %s\n", msg)
}

// Bullet prints a bulleted list item.
func Bullet(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	bullet := getIcon(SymbolDot, ASCIIDot)
	fmt.Printf("  %s %s\n", bullet, msg)
}

// Divider prints a horizontal divider.
func Divider() {
	fmt.Printf("\n%s%s%s\n", paint(Dim), strings.Repeat("─", 50), paint(Reset))
}

// Newline prints a blank line.
func Newline() {
	fmt.Println()
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Label prints a label and value pair.
func Label(label, value string) {
	fmt.Printf("   %s%-12s%s %s\n", paint(Dim), label+":", paint(Reset), value)
}

// LabelColored prints a label and colored value pair.
func LabelColored(label, value, color string) {
	fmt.Printf("   %s%-12s%s %s%s%s\n", paint(Dim), label+":", paint(Reset), paint(color), value, paint(Reset))
}

// Emphasize returns bold text.
func Emphasize(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return paint(Bold) + msg + paint(Reset)
}

// Muted returns dim text.
func Muted(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return paint(Dim) + msg + paint(Reset)
}

// URL returns a URL in bright blue.
func URL(url string) string {
	return paint(BrightBlue) + url + paint(Reset)
}

// Status returns a resolution status badge with the appropriate color.
func Status(status string) string {
	switch strings.ToLower(status) {
	case "ok", "resolved", "known":
		return paint(BrightGreen) + status + paint(Reset)
	case "placeholder", "root-traversal", "userinfo", "anomaly":
		return paint(BrightYellow) + status + paint(Reset)
	case "undecomposable", "error", "failed":
		return paint(BrightRed) + status + paint(Reset)
	case "unknown":
		return paint(BrightBlue) + status + paint(Reset)
	default:
		return status
	}
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	fmt.Print("   ")
	for _, header := range headers {
		fmt.Printf("%s%-*s%s  ", paint(Bold), widths[header], header, paint(Reset))
	}
	fmt.Println()

	fmt.Print("   ")
	for _, header := range headers {
		fmt.Print(strings.Repeat("─", widths[header]) + "  ")
	}
	fmt.Println()

	for _, row := range rows {
		fmt.Print("   ")
		for _, header := range headers {
			fmt.Printf("%-*s  ", widths[header], row[header])
		}
		fmt.Println()
	}
}
