package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fintrack/cmd/tui/client"
)

type listSuccessMsg struct {
	entries []client.Entry
}

type listErrorMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type ListModel struct {
	entries []client.Entry
	cursor  int
	loading bool
	err     error
	client  *client.Client
	loaded  bool
}

func NewListModel(c *client.Client) *ListModel {
	return &ListModel{client: c}
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func listEntriesCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.ListEntries()
		if err != nil {
			return listErrorMsg{err: err}
		}
		return listSuccessMsg{entries: resp.Entries}
	}
}

func deleteEntryCmd(c *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: c.DeleteEntry(id)}
	}
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listSuccessMsg:
		m.loading = false
		m.entries = msg.entries
		m.err = nil
		m.loaded = true
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}
		return m, nil

	case listErrorMsg:
		m.loading = false
		m.err = msg.err
		m.loaded = true
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		return m, listEntriesCmd(m.client)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "r":
			if !m.loading {
				m.loading = true
				m.err = nil
				return m, listEntriesCmd(m.client)
			}
		case "d":
			if !m.loading && m.cursor < len(m.entries) {
				m.loading = true
				m.err = nil
				return m, deleteEntryCmd(m.client, m.entries[m.cursor].ID)
			}
		}
	}

	if !m.loaded && !m.loading {
		m.loading = true
		return m, listEntriesCmd(m.client)
	}

	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("YOUR ENTRIES")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(lipgloss.NewStyle().Foreground(Accent).Render("⏳ Loading entries...")))
		b.WriteString("\n")
	} else if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	} else if len(m.entries) == 0 {
		b.WriteString(centered(lipgloss.NewStyle().Foreground(Muted).Render("📝 No entries yet. Add one first!")))
		b.WriteString("\n")
	} else {
		for i, entry := range m.entries {
			borderColor := Muted
			if i == m.cursor {
				borderColor = Accent
			}

			cardStyle := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(borderColor).
				Padding(0, 2).
				Width(70).
				MarginBottom(1)

			monthLine := lipgloss.NewStyle().Foreground(Accent).Bold(true).Render("📅 "+entry.Month) +
				lipgloss.NewStyle().Foreground(Muted).Render(fmt.Sprintf("  (start %.2f)", entry.StartingBalance))

			flowLine := lipgloss.NewStyle().Foreground(Text).Render(
				fmt.Sprintf("salary %.2f  •  emi %.2f  •  expenses %.2f  •  savings %.2f",
					entry.Salary, entry.EMI, entry.Expenses, entry.Savings))

			totalsLine := SuccessStyle.Render(fmt.Sprintf("saved %.2f", entry.TotalSaved)) +
				lipgloss.NewStyle().Foreground(Warning).Bold(true).Render(fmt.Sprintf("  •  closing %.2f", entry.ClosingBalance))

			card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, monthLine, flowLine, totalsLine))
			b.WriteString(centered(card))
		}

		var totalSaved, closing float64
		for _, entry := range m.entries {
			totalSaved += entry.TotalSaved
			closing = entry.ClosingBalance
		}
		summary := ValueStyle.Render(fmt.Sprintf("Total saved across %d months: %.2f  •  latest closing balance: %.2f",
			len(m.entries), totalSaved, closing))
		b.WriteString("\n")
		b.WriteString(centered(summary))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("↑/↓ navigate  •  r refresh  •  d delete  •  q back")
	b.WriteString(centered(help))

	return BoxStyle.Width(76).Render(b.String())
}
