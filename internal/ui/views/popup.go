package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centred on top of a greyed out copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height || len(base) < y+modalH {
		base = append(base, "")
	}

	popupLines := strings.Split(styledPopup, "\n")
	for i, line := range popupLines {
		base[y+i] = overlayLine(base[y+i], line, x, modalW)
	}

	return strings.Join(base, "\n")
}

// overlayLine replaces the cells [x, x+w) of base with top
func overlayLine(base, top string, x, w int) string {
	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+w, "")
	return left + top + right
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = dim.Render(line)
	}
	return strings.Join(lines, "\n")
}
