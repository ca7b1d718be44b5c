package domain

// ImageResult represents a single image returned by a search
type ImageResult struct {
	ID       int
	URL      string // preview shown in the gallery
	LargeURL string // full size image shown in the modal
	PageURL  string // image page on the provider site
	AltText  string // comma separated tags
	Width    int
	Height   int
	User     string
}

// PageMeta describes where a page sits in a query's result set
type PageMeta struct {
	CurrentPage int
	TotalHits   int
	PerPage     int
}

// HasMore reports whether pages beyond CurrentPage exist.
// CurrentPage*PerPage < TotalHits is the same test as CurrentPage < ceil(TotalHits/PerPage).
func (m PageMeta) HasMore() bool {
	if m.PerPage <= 0 || m.CurrentPage < 1 {
		return false
	}
	return m.CurrentPage*m.PerPage < m.TotalHits
}

// Page is a single page of results as returned by an image provider
type Page struct {
	Items []ImageResult
	Meta  PageMeta
}

// Status is the lifecycle state derived from a SearchState
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusEmpty
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusEmpty:
		return "empty"
	case StatusErrored:
		return "errored"
	default:
		return "idle"
	}
}

// SearchState is the state of the current query
type SearchState struct {
	Query     string
	Page      int
	Items     []ImageResult
	TotalHits int
	IsLoading bool
	HasMore   bool
	IsEmpty   bool
	Error     string // empty when the last fetch did not fail
}

// Status derives the lifecycle state. Loading wins over any previous outcome.
func (s SearchState) Status() Status {
	switch {
	case s.IsLoading:
		return StatusLoading
	case s.Error != "":
		return StatusErrored
	case s.IsEmpty:
		return StatusEmpty
	case len(s.Items) > 0:
		return StatusLoaded
	default:
		return StatusIdle
	}
}

// Clone returns a copy that does not share the Items backing array
func (s SearchState) Clone() SearchState {
	c := s
	if s.Items != nil {
		c.Items = make([]ImageResult, len(s.Items))
		copy(c.Items, s.Items)
	}
	return c
}

// ContentAppended describes items added to the gallery by a successful fetch
type ContentAppended struct {
	Query string
	Page  int
	From  int // index of the first new item
	Count int // zero for an empty page
}
