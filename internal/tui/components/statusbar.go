package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
)

// fitLine keeps s on one row of width cells
func fitLine(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(max(width, 1)), ellipsis)
}

// RenderHeader renders the top bar with left and right aligned text
func RenderHeader(left, right string, width int) string {
	gapWidth := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	line := fitLine(" "+left+strings.Repeat(" ", gapWidth)+right+" ", width)
	return HeaderStyle.Width(width).MaxWidth(width).Render(line)
}

// RenderFooter renders the key hints of bindings, skipping disabled ones
func RenderFooter(bindings []key.Binding, width int) string {
	var hints []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return FooterStyle.Width(width).MaxWidth(width).Render(fitLine(" "+strings.Join(hints, " · "), width))
}
