package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemsLoaded     EventType = "ItemsLoaded"
	EventReloadRequested EventType = "ReloadRequested"
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchCleared   EventType = "SearchCleared"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemsLoadedEvent is emitted when a fresh dataset has been loaded
type ItemsLoadedEvent struct {
	Records    []Record
	SourcePath string
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// ReloadRequestedEvent is emitted when the user asks for a data refresh
type ReloadRequestedEvent struct{}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }

// SearchStartedEvent is emitted when a new query begins filtering
type SearchStartedEvent struct {
	Query string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted after the index has been filtered
type SearchCompletedEvent struct {
	Query      string
	TokenCount int
	Total      int
	Shown      int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchClearedEvent is emitted when the query is reset
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration has been loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
