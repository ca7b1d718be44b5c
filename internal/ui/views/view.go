package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixgallery/internal/domain"
	"pixgallery/internal/ui/logic"
)

// Messages shown in place of the gallery
const (
	EmptyMessage   = "Sorry. There are no images ... 😭"
	IdleMessage    = "Press / to search images and photos"
	LoadingMessage = "Loading…"
	LoadMoreLabel  = "[m] Load more"
)

// chromeLines is the height taken by everything except the card rows
const chromeLines = 14

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Search         domain.SearchState
	SelectedIndex  int
	Columns        int
	ViewportOffset int
	ViewportHeight int
	ShowAuthor     bool
	ModalOpen      bool
	ModalIndex     int
	StatusMessage  string
	InputMode      string // empty unless a text mode is active
	InputPrompt    string
	TextInput      string // rendered text input
	Spinner        string // rendered spinner frame
	HelpText       string // rendered key help
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	galleryRender *GalleryRenderer
	modalRender   *ModalRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		galleryRender: NewGalleryRenderer(styles),
		modalRender:   NewModalRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Columns returns the card columns for a terminal width. configured > 0 wins.
func Columns(width, configured int) int {
	if configured > 0 {
		return configured
	}
	if width <= 0 {
		width = 80 // Default terminal width
	}
	return logic.ColumnsForWidth(width-4, CardWidth)
}

// ViewportRows returns how many card rows fit in a terminal height
func ViewportRows(height int, showAuthor bool) int {
	if height <= 0 {
		height = 24 // Default terminal height
	}
	rows := (height - chromeLines) / CardHeight(showAuthor)
	if rows < 1 {
		return 1
	}
	return rows
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	content.WriteString(r.renderSearchBar(state))
	content.WriteString("\n\n")

	search := state.Search
	if search.Error != "" {
		content.WriteString(r.styles.StatusError.Render(search.Error))
		content.WriteString("\n")
	}
	if search.IsEmpty {
		content.WriteString(EmptyMessage)
		content.WriteString("\n")
	}

	if len(search.Items) > 0 {
		content.WriteString(r.galleryRender.RenderGrid(
			search.Items,
			state.SelectedIndex,
			state.Columns,
			state.ViewportOffset,
			state.ViewportHeight,
			state.ShowAuthor,
		))
		content.WriteString("\n")
	} else if search.Query == "" && search.Status() == domain.StatusIdle {
		content.WriteString(r.styles.Dim.Render(IdleMessage))
		content.WriteString("\n")
	}

	if search.IsLoading {
		content.WriteString("\n")
		content.WriteString(r.styles.StatusLoading.Render(strings.TrimSpace(state.Spinner + " " + LoadingMessage)))
		content.WriteString("\n")
	} else if search.HasMore {
		content.WriteString("\n")
		content.WriteString(r.styles.Button.Render(LoadMoreLabel))
		content.WriteString("\n")
	}

	footer := r.renderStatusBar(state)
	if state.HelpText != "" {
		footer += "\n" + state.HelpText
	}

	// Pad so the footer sits at the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // Main padding
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if pad := availableLines - currentLines - lipgloss.Height(footer); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ModalOpen && state.ModalIndex >= 0 && state.ModalIndex < len(search.Items) {
		width := state.Width
		if width <= 0 {
			width = 80
		}
		body := r.modalRender.RenderContent(search.Items[state.ModalIndex], state.ModalIndex, len(search.Items))
		box := r.styles.ModalBox.Width(ModalWidth(width))
		return r.popupRender.RenderPopupOverlay(finalContent, body, state.Height, width, box)
	}

	return finalContent
}

func (r *Renderer) renderTitle(state ViewState) string {
	return r.styles.Title.Render("pixgallery")
}

func (r *Renderer) renderSearchBar(state ViewState) string {
	if state.InputMode != "" {
		return r.styles.SearchPrompt.Render(state.InputPrompt) + state.TextInput
	}
	if state.Search.Query == "" {
		return r.styles.Dim.Render("Search: (none)")
	}
	return "Search: " + r.styles.Query.Render(state.Search.Query)
}

func (r *Renderer) renderStatusBar(state ViewState) string {
	search := state.Search
	parts := []string{}
	if search.Query != "" {
		parts = append(parts, fmt.Sprintf("%d of %d", len(search.Items), search.TotalHits))
		parts = append(parts, fmt.Sprintf("page %d", search.Page))
	}
	if state.StatusMessage != "" {
		parts = append(parts, state.StatusMessage)
	}
	if len(parts) == 0 {
		return ""
	}
	return r.styles.Status.Render(strings.Join(parts, " • "))
}
