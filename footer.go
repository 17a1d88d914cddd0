package datalist

import (
	"strings"

	"charm.land/lipgloss/v2"

	"datalist/style"
)

// RenderFooter renders a status line with the source name on the right.
func RenderFooter(status, source string, width int, failed bool) string {

	st := style.MutedStyle
	if failed {
		st = style.ErrorStyle
	}

	// Calculate padding
	padding := width - lipgloss.Width(status) - lipgloss.Width(source)
	if padding < 1 {
		padding = 1
	}

	return st.Render(status + strings.Repeat(" ", padding) + source)
}
