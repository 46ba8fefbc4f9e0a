package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"partscope/internal/config"
	"partscope/internal/eventbus"
	"partscope/internal/logging"
	"partscope/internal/search"
)

// Model is the bubbletea model for the search panel. It owns the
// focusable query input, the debounce schedule and the rendered result
// list. All filtering runs synchronously inside Update.
type Model struct {
	cfg    *config.Config
	svc    *search.Service
	bus    eventbus.EventBus
	styles *Styles

	textInput textinput.Model
	width     int
	height    int

	recordCount int
	result      search.Result
	loadErr     string

	// debounceSeq stamps every scheduled filter invocation; a tick
	// carrying an older stamp is ignored, which is the cancellation.
	debounceSeq int
}

// NewModel creates the search panel model
func NewModel(cfg *config.Config, svc *search.Service, bus eventbus.EventBus) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "جستجو..."
	ti.Focus()

	return Model{
		cfg:       cfg,
		svc:       svc,
		bus:       bus,
		styles:    NewStyles(cfg.Highlight),
		textInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = max(msg.Width-4, 0)
		return m, nil

	case ItemsLoadedMsg:
		// Wholesale rebuild; the current token list is re-applied
		// against the new index and old results are discarded.
		m.recordCount = len(msg.Records)
		m.result = m.svc.SetItems(msg.Records)
		m.loadErr = ""
		return m, nil

	case LoadFailedMsg:
		m.loadErr = msg.Err.Error()
		logging.Error("data load failed", "error", msg.Err)
		return m, nil

	case debounceFiredMsg:
		if msg.seq != m.debounceSeq {
			// A newer input event superseded this schedule
			return m, nil
		}
		m.result = m.svc.SetQuery(m.textInput.Value())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Clear the query and drop any pending schedule
			m.debounceSeq++
			m.textInput.Reset()
			m.result = m.svc.Clear()
			return m, nil
		case "enter":
			// Immediate search bypasses the pending timer
			m.debounceSeq++
			m.result = m.svc.SetQuery(m.textInput.Value())
			return m, nil
		case "ctrl+r":
			if m.bus != nil {
				m.bus.Publish(eventbus.ReloadRequestedEvent{})
			}
			return m, nil
		}
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	if after := m.textInput.Value(); after != before {
		return m, tea.Batch(cmd, m.scheduleFilter())
	}

	return m, cmd
}

// scheduleFilter cancels the pending invocation by bumping the
// sequence and schedules a fresh one for the configured delay.
func (m *Model) scheduleFilter() tea.Cmd {
	m.debounceSeq++
	seq := m.debounceSeq
	delay := time.Duration(m.cfg.Search.DebounceMs) * time.Millisecond

	return tea.Tick(delay, func(time.Time) tea.Msg {
		return debounceFiredMsg{seq: seq}
	})
}
