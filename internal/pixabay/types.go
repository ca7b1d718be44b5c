package pixabay

import (
	"fmt"

	"pixgallery/internal/domain"
)

// searchResponse is the response body of the Pixabay image search endpoint
type searchResponse struct {
	Total     int   `json:"total"`
	TotalHits int   `json:"totalHits"` // hits reachable through the API, capped by Pixabay
	Hits      []hit `json:"hits"`
}

// hit is a single image in a search response
type hit struct {
	ID            int    `json:"id"`
	PageURL       string `json:"pageURL"`
	Tags          string `json:"tags"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
	ImageWidth    int    `json:"imageWidth"`
	ImageHeight   int    `json:"imageHeight"`
	User          string `json:"user"`
}

func (h hit) toDomain() domain.ImageResult {
	return domain.ImageResult{
		ID:       h.ID,
		URL:      h.WebformatURL,
		LargeURL: h.LargeImageURL,
		PageURL:  h.PageURL,
		AltText:  h.Tags,
		Width:    h.ImageWidth,
		Height:   h.ImageHeight,
		User:     h.User,
	}
}

// APIError is a non-200 response. Pixabay reports errors as plain text
// such as `[ERROR 400] "page" is out of valid range.`
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pixabay: unexpected status %d", e.StatusCode)
	}
	return e.Message
}
