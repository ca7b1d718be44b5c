package input

import (
	"pixgallery/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of cards in the gallery
func (c *ModelContext) TotalItems() int {
	return len(c.State.Items())
}

// CurrentQuery returns the submitted query
func (c *ModelContext) CurrentQuery() string {
	return c.State.Search.Query
}

// HasMore reports whether another page can be requested
func (c *ModelContext) HasMore() bool {
	return c.State.Search.HasMore
}

// IsLoading reports whether a fetch is in flight
func (c *ModelContext) IsLoading() bool {
	return c.State.Search.IsLoading
}

// HasSelectedImage returns true if the cursor is on a card
func (c *ModelContext) HasSelectedImage() bool {
	_, ok := c.State.SelectedImage()
	return ok
}
