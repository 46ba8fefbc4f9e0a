package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"partscope/internal/highlight"
	"partscope/internal/index"
)

func (m Model) View() string {
	input := lipgloss.JoinHorizontal(lipgloss.Left,
		m.styles.Prompt.Render("جستجو"),
		m.textInput.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, input, m.bodyView())
}

// bodyView picks what to show below the input, in priority order:
// load error, empty dataset, idle prompt, no-results notice, results.
func (m Model) bodyView() string {
	if m.loadErr != "" {
		return m.styles.Error.Render(m.loadErr)
	}
	if m.recordCount == 0 {
		return m.styles.Message.Render(m.cfg.Messages.NoData)
	}
	if len(m.result.Tokens) == 0 && m.cfg.Search.EmptyQuery != "all" {
		return m.styles.Message.Render(m.cfg.Messages.Initial)
	}
	if len(m.result.Tokens) > 0 && m.result.Total == 0 {
		return m.styles.Message.Render(m.cfg.Messages.NoResults)
	}

	rows := lo.Map(m.result.Items, func(item index.Item, _ int) string {
		return m.renderItem(item)
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Status.Render(m.statusLine()),
		strings.Join(rows, "\n"),
	)
}

// statusLine reports true total matches against items shown
func (m Model) statusLine() string {
	shown := len(m.result.Items)
	if m.result.Total > shown {
		return fmt.Sprintf("نمایش %d از %d نتیجه", shown, m.result.Total)
	}
	return fmt.Sprintf("%d نتیجه", m.result.Total)
}

// renderItem renders the original field values of one matched record,
// primary field first, with matched spans highlighted.
func (m Model) renderItem(item index.Item) string {
	parts := make([]string, 0, len(item.Fields))
	for i, field := range item.Fields {
		original := item.Record.Field(field.Key)
		if original == "" {
			continue
		}

		text := m.renderFieldText(original)
		if i == 0 {
			text = m.styles.Primary.Render(text)
		}
		parts = append(parts, text)
	}

	return "  " + strings.Join(parts, m.styles.Separator.Render(" │ "))
}

// renderFieldText reconstructs highlighted spans over the original,
// un-normalized text. With highlighting disabled the text passes
// through untouched.
func (m Model) renderFieldText(original string) string {
	if !m.cfg.Highlight.Enabled || len(m.result.Tokens) == 0 {
		return original
	}

	var b strings.Builder
	for _, seg := range highlight.Render(original, m.result.Tokens, m.cfg.NormalizeOptions()) {
		if seg.Highlighted {
			b.WriteString(m.styles.Highlight.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
