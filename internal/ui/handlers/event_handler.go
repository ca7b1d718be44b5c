package handlers

import (
	"fmt"

	"pixgallery/internal/eventbus"
	"pixgallery/internal/ui/state"
)

// EventHandler turns domain events into status bar messages
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state: appState,
	}
}

// HandleEvent processes a domain event
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.SearchSubmittedEvent:
		h.state.StatusMessage = fmt.Sprintf("Searching for %q", e.Query)

	case eventbus.PageRequestedEvent:
		h.state.StatusMessage = fmt.Sprintf("Loading page %d", e.Page)

	case eventbus.FetchSucceededEvent:
		switch {
		case e.Count == 0:
			h.state.StatusMessage = fmt.Sprintf("No results for %q", e.Query)
		case e.HasMore:
			h.state.StatusMessage = fmt.Sprintf("Loaded %d images", e.Count)
		default:
			h.state.StatusMessage = fmt.Sprintf("Loaded %d images, end of results", e.Count)
		}

	case eventbus.FetchFailedEvent:
		h.state.StatusMessage = fmt.Sprintf("Page %d failed", e.Page)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Config saved to %s", e.Path)
	}
}
