// Package ui provides semantic text formatting for kwallet's CLI output.
//
// Formatters colour content by its role when the terminal supports it, and
// fall back to plain-text decorations when NO_COLOR is set or colour is
// unavailable:
//
//	ui.Code.Sprint("kwallet config init")   // `backticks` without colour
//	ui.Entry.Sprint("github")                // 'quotes' without colour
//	ui.Field.Sprint("password")              // no decoration
//	ui.Success.Sprint("✓")
//	ui.Error.Sprint("✗")
//	ui.Info.Sprint("→")
//	ui.Muted.Sprint("empty")                 // (parentheses) without colour
//
// FormatRecord renders an entry's fields as an aligned, sorted list for
// `kwallet entry show`.
package ui
