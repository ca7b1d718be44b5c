package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted EventType = "SearchSubmitted"
	EventPageRequested   EventType = "PageRequested"
	EventFetchStarted    EventType = "FetchStarted"
	EventFetchSucceeded  EventType = "FetchSucceeded"
	EventFetchFailed     EventType = "FetchFailed"
	EventFetchDiscarded  EventType = "FetchDiscarded"
	EventContentAppended EventType = "ContentAppended"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when a new query replaces the current one
type SearchSubmittedEvent struct {
	Query string
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// PageRequestedEvent is emitted when the next page of the current query is requested
type PageRequestedEvent struct {
	Query string
	Page  int
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// FetchStartedEvent is emitted when a fetch request is issued
type FetchStartedEvent struct {
	Seq   uint64
	Query string
	Page  int
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchSucceededEvent is emitted when the current request settles with a page
type FetchSucceededEvent struct {
	Seq       uint64
	Query     string
	Page      int
	Count     int
	TotalHits int
	HasMore   bool
}

func (e FetchSucceededEvent) Type() EventType { return EventFetchSucceeded }

// FetchFailedEvent is emitted when the current request settles with an error
type FetchFailedEvent struct {
	Seq     uint64
	Query   string
	Page    int
	Message string
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// FetchDiscardedEvent is emitted when a superseded request settles
type FetchDiscardedEvent struct {
	Seq   uint64
	Query string
	Page  int
}

func (e FetchDiscardedEvent) Type() EventType { return EventFetchDiscarded }

// ContentAppendedEvent is emitted after a successful fetch has been merged
type ContentAppendedEvent struct {
	ContentAppended
}

func (e ContentAppendedEvent) Type() EventType { return EventContentAppended }

// ErrorEvent is emitted when an error occurs outside the search lifecycle
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
