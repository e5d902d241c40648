package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fintrack/cmd/tui/client"
)

type createSuccessMsg struct {
	entry *client.Entry
}

type createErrorMsg struct {
	err error
}

const numCreateFields = 6

var createLabels = []string{
	"Month:",
	"Starting Balance:",
	"Salary:",
	"EMI:",
	"Expenses:",
	"Savings:",
}

type CreateModel struct {
	inputs       [numCreateFields]string
	focusedInput int
	loading      bool
	err          error
	created      *client.Entry
	client       *client.Client
}

func NewCreateModel(c *client.Client) *CreateModel {
	return &CreateModel{client: c}
}

func (m *CreateModel) Init() tea.Cmd {
	return nil
}

func (m *CreateModel) buildRequest() (*client.EntryRequest, error) {
	if strings.TrimSpace(m.inputs[0]) == "" {
		return nil, fmt.Errorf("month cannot be empty")
	}

	amounts := make([]float64, numCreateFields-1)
	for i := 1; i < numCreateFields; i++ {
		value := strings.TrimSpace(m.inputs[i])
		if value == "" {
			value = "0"
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", strings.TrimSuffix(createLabels[i], ":"))
		}
		if parsed < 0 {
			return nil, fmt.Errorf("%s cannot be negative", strings.TrimSuffix(createLabels[i], ":"))
		}
		amounts[i-1] = parsed
	}

	return &client.EntryRequest{
		Month:           m.inputs[0],
		StartingBalance: amounts[0],
		Salary:          amounts[1],
		EMI:             amounts[2],
		Expenses:        amounts[3],
		Savings:         amounts[4],
	}, nil
}

func createEntryCmd(c *client.Client, req client.EntryRequest) tea.Cmd {
	return func() tea.Msg {
		entry, err := c.CreateEntry(req)
		if err != nil {
			return createErrorMsg{err: err}
		}
		return createSuccessMsg{entry: entry}
	}
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createSuccessMsg:
		m.loading = false
		m.err = nil
		m.created = msg.entry
		for i := range m.inputs {
			m.inputs[i] = ""
		}
		m.focusedInput = 0
		return m, nil

	case createErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab", "down":
			m.focusedInput = (m.focusedInput + 1) % numCreateFields
		case "shift+tab", "up":
			m.focusedInput = (m.focusedInput + numCreateFields - 1) % numCreateFields
		case "enter":
			req, err := m.buildRequest()
			if err != nil {
				m.err = err
				return m, nil
			}

			m.loading = true
			m.err = nil
			m.created = nil
			return m, createEntryCmd(m.client, *req)
		case "backspace":
			if len(m.inputs[m.focusedInput]) > 0 {
				m.inputs[m.focusedInput] = m.inputs[m.focusedInput][:len(m.inputs[m.focusedInput])-1]
			}
		case "ctrl+l":
			for i := range m.inputs {
				m.inputs[i] = ""
			}
			m.err = nil
			m.created = nil
		default:
			if len(msg.String()) == 1 {
				m.inputs[m.focusedInput] += msg.String()
			}
		}
	}
	return m, nil
}

func (m *CreateModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("💰 ADD MONTHLY ENTRY")

	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(title))
	b.WriteString("\n\n")

	for i, label := range createLabels {
		b.WriteString(centered(renderInput(label, m.inputs[i], m.focusedInput == i)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("🔄 Saving entry...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	}

	if m.created != nil {
		saved := SuccessStyle.Render(fmt.Sprintf("✅ Saved %s  •  closing balance %.2f  •  total saved %.2f",
			m.created.Month, m.created.ClosingBalance, m.created.TotalSaved))
		b.WriteString(centered(saved))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab/↑/↓ switch  •  enter save  •  ctrl+l clear  •  q back")
	b.WriteString(centered(help))

	return BoxStyle.Width(76).Render(b.String())
}
