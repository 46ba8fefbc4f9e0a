package ui

import "partscope/internal/domain"

// ItemsLoadedMsg delivers a freshly loaded dataset to the UI
type ItemsLoadedMsg struct {
	Records    []domain.Record
	SourcePath string
}

// LoadFailedMsg reports a failed data load or reload
type LoadFailedMsg struct {
	Err error
}

// debounceFiredMsg is the scheduled filter invocation. Only the most
// recently scheduled sequence number is honored; a stale tick is a
// cancelled timer.
type debounceFiredMsg struct {
	seq int
}
