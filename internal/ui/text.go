package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Entry formats wallet, folder and entry names.
	Entry = Formatter{color.New(color.FgCyan), "'", "'"}

	// Field formats record field names.
	Field = Formatter{color.New(color.FgHiBlue), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats placeholders such as an empty value.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// FormatRecord lists fields in ascending order, one per line, with values
// aligned after the longest field name. Masked values are replaced by stars.
func FormatRecord(record map[string]string, masked bool) string {
	keys := make([]string, 0, len(record))
	width := 0
	for k := range record {
		keys = append(keys, k)
		if n := utf8.RuneCountInString(k); n > width {
			width = n
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(k))
		b.WriteString("    ")
		b.WriteString(Field.Sprint(k))
		b.WriteString(pad)
		b.WriteString("  ")
		b.WriteString(formatValue(record[k], masked))
		b.WriteString("\n")
	}
	return b.String()
}

func formatValue(v string, masked bool) string {
	switch {
	case v == "":
		return Muted.Sprint("empty")
	case masked:
		return strings.Repeat("*", 8)
	default:
		return v
	}
}
