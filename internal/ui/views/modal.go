package views

import (
	"fmt"
	"strings"

	"pixgallery/internal/domain"
)

// ModalRenderer renders the enlarged preview of one image
type ModalRenderer struct {
	styles *Styles
}

// NewModalRenderer creates a new modal renderer
func NewModalRenderer(styles *Styles) *ModalRenderer {
	return &ModalRenderer{styles: styles}
}

// RenderContent renders the modal body. The terminal cannot draw the image
// itself, so the large image URL is shown for opening in a browser.
func (mr *ModalRenderer) RenderContent(img domain.ImageResult, index, total int) string {
	var b strings.Builder

	b.WriteString(mr.styles.ModalTitle.Render(fmt.Sprintf("Image %d of %d", index+1, total)))
	b.WriteString("\n\n")

	tags := img.AltText
	if tags == "" {
		tags = "untitled"
	}
	b.WriteString(mr.row("Tags", tags))
	if img.Width > 0 && img.Height > 0 {
		b.WriteString(mr.row("Size", fmt.Sprintf("%d × %d", img.Width, img.Height)))
	}
	if img.User != "" {
		b.WriteString(mr.row("Author", img.User))
	}

	large := img.LargeURL
	if large == "" {
		large = img.URL
	}
	b.WriteString("\n")
	b.WriteString(mr.row("Image", mr.styles.Link.Render(large)))
	if img.PageURL != "" {
		b.WriteString(mr.row("Page", mr.styles.Link.Render(img.PageURL)))
	}

	b.WriteString("\n")
	b.WriteString(mr.styles.Help.Render("o open in browser • y copy URL • esc close"))

	return b.String()
}

func (mr *ModalRenderer) row(label, value string) string {
	return fmt.Sprintf("%s %s\n", mr.styles.ModalLabel.Render(fmt.Sprintf("%-7s", label+":")), value)
}

// ModalWidth returns the modal box width for a terminal of width
func ModalWidth(width int) int {
	w := width - 8
	if w > 100 {
		w = 100
	}
	if w < 30 {
		w = 30
	}
	return w
}
