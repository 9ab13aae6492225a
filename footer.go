package datagrid

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"datagrid/style"
)

const footerHeight = 1

// RenderFooter renders the position, selected column description and source name.
func RenderFooter(current, total int, description, name string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	if description != "" {
		left += "  " + description
	}
	right := name

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.FooterStyle.Render(left + strings.Repeat(" ", padding) + right)
}

// RenderError renders an error in place of the footer.
func RenderError(msg string, width int) string {
	return style.ErrorStyle.Width(width).MaxWidth(width).Render(msg)
}
