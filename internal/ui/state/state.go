package state

import (
	"pixgallery/internal/domain"
)

// AppState contains all the UI state that is not owned by the search lifecycle
type AppState struct {
	// Last snapshot of the search lifecycle, refreshed after every transition
	Search domain.SearchState

	// Selection state
	SelectedIndex int // currently selected card

	// Modal state
	ModalOpen  bool
	ModalIndex int // item shown in the modal

	// UI state
	Width          int
	Height         int
	Columns        int // cards per row, 0 picks from Width
	ViewportOffset int // first visible row
	ViewportHeight int // visible rows of cards
	ShowAuthor     bool
	StatusMessage  string // status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Search:         domain.SearchState{Page: 1},
		ViewportHeight: 3, // Default
		ShowAuthor:     true,
	}
}

// Items returns the gallery items
func (s *AppState) Items() []domain.ImageResult {
	return s.Search.Items
}

// SetSearch replaces the search snapshot and keeps the selection in range
func (s *AppState) SetSearch(search domain.SearchState) {
	s.Search = search
	s.clampSelection()
	if s.ModalOpen && s.ModalIndex >= len(search.Items) {
		s.CloseModal()
	}
}

// ResetView returns selection and scroll to the top, used on a new query
func (s *AppState) ResetView() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
	s.CloseModal()
}

// SelectedImage returns the item under the cursor
func (s *AppState) SelectedImage() (domain.ImageResult, bool) {
	return s.imageAt(s.SelectedIndex)
}

// ModalImage returns the item shown in the modal
func (s *AppState) ModalImage() (domain.ImageResult, bool) {
	if !s.ModalOpen {
		return domain.ImageResult{}, false
	}
	return s.imageAt(s.ModalIndex)
}

// OpenModal shows the selected item in the modal
func (s *AppState) OpenModal() bool {
	if _, ok := s.SelectedImage(); !ok {
		return false
	}
	s.ModalOpen = true
	s.ModalIndex = s.SelectedIndex
	return true
}

// CloseModal hides the modal
func (s *AppState) CloseModal() {
	s.ModalOpen = false
	s.ModalIndex = 0
}

func (s *AppState) imageAt(index int) (domain.ImageResult, bool) {
	items := s.Search.Items
	if index < 0 || index >= len(items) {
		return domain.ImageResult{}, false
	}
	return items[index], true
}

func (s *AppState) clampSelection() {
	n := len(s.Search.Items)
	if s.SelectedIndex >= n {
		s.SelectedIndex = n - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}
