package search

import (
	"partscope/internal/domain"
	"partscope/internal/eventbus"
	"partscope/internal/index"
	"partscope/internal/logging"
	"partscope/internal/textnorm"
)

// Settings is the fixed search policy, decided at construction
type Settings struct {
	Keys          []string // field keys, primary first
	MinChars      int
	MaxResults    int
	Logic         Logic
	From          MatchFrom
	EmptyQueryAll bool
	Normalize     textnorm.Options
}

// Service owns the live token list and index. It is driven from the
// single UI goroutine; matching runs synchronously to completion.
type Service struct {
	settings Settings
	bus      eventbus.EventBus

	items  []index.Item
	tokens []string
	query  string
}

// NewService creates a new search service. bus may be nil.
func NewService(settings Settings, bus eventbus.EventBus) *Service {
	return &Service{settings: settings, bus: bus}
}

// SetItems replaces the dataset and rebuilds the index wholesale, then
// re-applies the current token list against the new index. Results
// computed against the old index are discarded.
func (s *Service) SetItems(records []domain.Record) Result {
	s.items = index.Build(records, s.settings.Keys, s.settings.Normalize)
	logging.Debug("index rebuilt", "records", len(records), "fields", len(s.settings.Keys))
	return s.Refilter()
}

// SetQuery normalizes and tokenizes the raw query, then filters
func (s *Service) SetQuery(raw string) Result {
	s.query = raw
	normalized := textnorm.Normalize(raw, s.settings.Normalize)
	s.tokens = textnorm.Tokenize(normalized, s.settings.MinChars)

	s.publish(eventbus.SearchStartedEvent{Query: raw})
	return s.Refilter()
}

// Refilter runs the current tokens over the current index
func (s *Service) Refilter() Result {
	result := Filter(s.items, s.tokens, s.settings.Logic, s.settings.From, s.settings.EmptyQueryAll, s.settings.MaxResults)

	s.publish(eventbus.SearchCompletedEvent{
		Query:      s.query,
		TokenCount: len(s.tokens),
		Total:      result.Total,
		Shown:      len(result.Items),
	})

	return result
}

// Clear drops the query and token list
func (s *Service) Clear() Result {
	s.query = ""
	s.tokens = nil
	s.publish(eventbus.SearchClearedEvent{})
	return s.Refilter()
}

// Tokens returns the live token list
func (s *Service) Tokens() []string {
	return s.tokens
}

// Query returns the raw query text
func (s *Service) Query() string {
	return s.query
}

// ItemCount returns the size of the current dataset
func (s *Service) ItemCount() int {
	return len(s.items)
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
