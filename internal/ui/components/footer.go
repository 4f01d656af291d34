package components

import "github.com/anu6598/otp-breach/internal/theme"

// HelpFooter renders muted help text with standard indentation.
func HelpFooter(text string) string {
	return theme.MutedStyle.Render("  " + text)
}
