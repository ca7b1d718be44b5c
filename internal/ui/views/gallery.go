package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pixgallery/internal/domain"
	"pixgallery/internal/ui/logic"
)

// CardWidth is the outer width of a gallery card including its border
const CardWidth = 30

// GalleryRenderer renders search results as a grid of cards
type GalleryRenderer struct {
	styles *Styles
}

// NewGalleryRenderer creates a new gallery renderer
func NewGalleryRenderer(styles *Styles) *GalleryRenderer {
	return &GalleryRenderer{styles: styles}
}

// CardHeight returns the outer height of a card
func CardHeight(showAuthor bool) int {
	h := 2 + 2 // border + index line + tags line
	if showAuthor {
		h++
	}
	return h
}

// RenderCard renders a single image card
func (g *GalleryRenderer) RenderCard(index int, img domain.ImageResult, selected, showAuthor bool) string {
	inner := CardWidth - 4 // border and padding

	header := g.styles.CardIndex.Render(fmt.Sprintf("#%d", index+1))
	if img.Width > 0 && img.Height > 0 {
		size := g.styles.Dim.Render(fmt.Sprintf("%d×%d", img.Width, img.Height))
		gap := inner - lipgloss.Width(header) - lipgloss.Width(size)
		if gap < 1 {
			gap = 1
		}
		header = header + strings.Repeat(" ", gap) + size
	}

	tags := img.AltText
	if tags == "" {
		tags = "untitled"
	}
	lines := []string{
		header,
		g.styles.CardTags.Render(ansi.Truncate(tags, inner, "…")),
	}
	if showAuthor {
		author := ""
		if img.User != "" {
			author = ansi.Truncate("by "+img.User, inner, "…")
		}
		lines = append(lines, g.styles.Dim.Render(author))
	}

	style := g.styles.Card
	if selected {
		style = g.styles.CardSelected
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderGrid renders the visible rows of the gallery with scroll indicators
func (g *GalleryRenderer) RenderGrid(items []domain.ImageResult, selected, columns, offset, height int, showAuthor bool) string {
	if columns < 1 {
		columns = 1
	}
	if height < 1 {
		height = 1
	}
	totalRows := logic.RowCount(len(items), columns)

	var lines []string
	if offset > 0 {
		lines = append(lines, g.styles.Scroll.Render(fmt.Sprintf("↑ %d more rows above ↑", offset)))
	}

	for row := offset; row < offset+height && row < totalRows; row++ {
		start := row * columns
		end := start + columns
		if end > len(items) {
			end = len(items)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, g.RenderCard(i, items[i], i == selected, showAuthor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if below := totalRows - (offset + height); below > 0 {
		lines = append(lines, g.styles.Scroll.Render(fmt.Sprintf("↓ %d more rows below ↓", below)))
	}

	return strings.Join(lines, "\n")
}
