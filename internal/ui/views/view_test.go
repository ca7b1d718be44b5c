package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"pixgallery/internal/domain"
)

func images(n int) []domain.ImageResult {
	out := make([]domain.ImageResult, n)
	for i := range out {
		out[i] = domain.ImageResult{
			ID:       i + 1,
			URL:      fmt.Sprintf("https://cdn.example/%d_640.jpg", i+1),
			LargeURL: fmt.Sprintf("https://cdn.example/%d_1280.jpg", i+1),
			AltText:  fmt.Sprintf("cat%d, kitten", i+1),
			Width:    1920,
			Height:   1080,
			User:     "alice",
		}
	}
	return out
}

func render(state ViewState) string {
	if state.Width == 0 {
		state.Width = 120
	}
	if state.Height == 0 {
		state.Height = 40
	}
	if state.Columns == 0 {
		state.Columns = Columns(state.Width, 0)
	}
	if state.ViewportHeight == 0 {
		state.ViewportHeight = ViewportRows(state.Height, state.ShowAuthor)
	}
	return ansi.Strip(NewRenderer().Render(state))
}

func TestIdleShowsHint(t *testing.T) {
	out := render(ViewState{Search: domain.SearchState{Page: 1}})
	assert.Contains(t, out, IdleMessage)
	assert.NotContains(t, out, LoadMoreLabel)
}

func TestLoadMoreVisibleOnlyWithMorePages(t *testing.T) {
	search := domain.SearchState{Query: "cats", Page: 1, Items: images(12), TotalHits: 36, HasMore: true}
	out := render(ViewState{Search: search})
	assert.Contains(t, out, LoadMoreLabel)
	assert.Contains(t, out, "12 of 36")
	assert.Contains(t, out, "#1")

	search.HasMore = false
	out = render(ViewState{Search: search})
	assert.NotContains(t, out, LoadMoreLabel)
}

func TestLoadingHidesButton(t *testing.T) {
	search := domain.SearchState{Query: "cats", Page: 2, Items: images(12), TotalHits: 36, HasMore: true, IsLoading: true}
	out := render(ViewState{Search: search, Spinner: "⣾"})
	assert.Contains(t, out, LoadingMessage)
	assert.NotContains(t, out, LoadMoreLabel)
}

func TestEmptyAndErrorMessages(t *testing.T) {
	out := render(ViewState{Search: domain.SearchState{Query: "xyzzyunknown", Page: 1, IsEmpty: true}})
	assert.Contains(t, out, EmptyMessage)

	out = render(ViewState{Search: domain.SearchState{Query: "cats", Page: 2, Items: images(3), Error: "Network error"}})
	assert.Contains(t, out, "Network error")
	assert.Contains(t, out, "cat1, kitten", "items stay visible after an error")
}

func TestSearchBarShowsInputWhileTyping(t *testing.T) {
	out := render(ViewState{
		Search:      domain.SearchState{Query: "cats", Page: 1},
		InputMode:   "search",
		InputPrompt: "Search images and photos: ",
		TextInput:   "dogs",
	})
	assert.Contains(t, out, "Search images and photos: dogs")
}

func TestScrollIndicators(t *testing.T) {
	g := NewGalleryRenderer(NewStyles())
	out := ansi.Strip(g.RenderGrid(images(30), 0, 3, 2, 2, false))
	assert.Contains(t, out, "↑ 2 more rows above ↑")
	assert.Contains(t, out, "↓ 6 more rows below ↓")
	assert.Contains(t, out, "#7")
	assert.NotContains(t, out, "#6 ")
	assert.NotContains(t, out, "#13")
}

func TestCardTruncatesLongTags(t *testing.T) {
	g := NewGalleryRenderer(NewStyles())
	img := domain.ImageResult{AltText: strings.Repeat("verylongtag, ", 10)}
	card := g.RenderCard(0, img, false, true)
	for _, line := range strings.Split(card, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), CardWidth)
	}
	assert.Contains(t, ansi.Strip(card), "…")
}

func TestModalOverlay(t *testing.T) {
	search := domain.SearchState{Query: "cats", Page: 1, Items: images(3), TotalHits: 3}
	out := render(ViewState{Search: search, SelectedIndex: 1, ModalOpen: true, ModalIndex: 1})
	assert.Contains(t, out, "Image 2 of 3")
	assert.Contains(t, out, "https://cdn.example/2_1280.jpg")
	assert.Contains(t, out, "esc close")
}

func TestLayoutHelpers(t *testing.T) {
	assert.Equal(t, 5, Columns(200, 5))
	assert.Equal(t, 3, Columns(100, 0))
	assert.Equal(t, 1, Columns(10, 0))
	assert.Equal(t, 1, ViewportRows(5, true))
	assert.Equal(t, 5, ViewportRows(14+25, true))
	assert.Equal(t, 4, CardHeight(false))
}
