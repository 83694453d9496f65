// Package ui provides semantic text formatting for CLI output.
//
// Formatters render appropriately based on terminal capabilities: when
// colors are available content is colorized, and when NO_COLOR is set or
// the terminal doesn't support colors, text-based decorations (backticks,
// quotes) are used instead.
//
// Use the formatter matching the content type:
//
//	ui.Code.Sprint("lockbox keygen")        // Commands and code
//	ui.Path.Sprint("report.pdf.lockbox")    // File paths
//	ui.Success.Sprint("✓")                   // Success indicators
//	ui.Error.Sprint("✗")                     // Error indicators
//	ui.Info.Sprint("→")                      // Informational hints
//	ui.Highlight.Sprint("lockbox.pub")      // Emphasized user values
//	ui.Muted.Sprint("optional")             // De-emphasized text
package ui
