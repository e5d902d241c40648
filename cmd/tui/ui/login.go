package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fintrack/cmd/tui/client"
)

type authSuccessMsg struct {
	token string
	email string
	name  string
}

type authErrorMsg struct {
	err error
}

type LoginModel struct {
	emailInput    string
	passwordInput string
	focusedInput  int
	loading       bool
	err           error
	client        *client.Client
}

func NewLoginModel(c *client.Client) *LoginModel {
	return &LoginModel{client: c}
}

func (m *LoginModel) Init() tea.Cmd {
	return nil
}

func loginCmd(c *client.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.Login(email, password)
		if err != nil {
			return authErrorMsg{err: err}
		}

		return authSuccessMsg{
			token: resp.Token,
			email: resp.User.Email,
			name:  resp.User.Name,
		}
	}
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authSuccessMsg:
		m.loading = false
		m.err = nil
		return m, nil

	case authErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab":
			m.focusedInput = (m.focusedInput + 1) % 2
		case "enter":
			if m.emailInput == "" {
				m.err = fmt.Errorf("email cannot be empty")
				return m, nil
			}
			if m.passwordInput == "" {
				m.err = fmt.Errorf("password cannot be empty")
				return m, nil
			}

			m.loading = true
			m.err = nil
			return m, loginCmd(m.client, m.emailInput, m.passwordInput)
		case "backspace":
			if m.focusedInput == 0 && len(m.emailInput) > 0 {
				m.emailInput = m.emailInput[:len(m.emailInput)-1]
			} else if m.focusedInput == 1 && len(m.passwordInput) > 0 {
				m.passwordInput = m.passwordInput[:len(m.passwordInput)-1]
			}
		case "ctrl+l":
			m.emailInput = ""
			m.passwordInput = ""
			m.err = nil
		default:
			if len(msg.String()) == 1 {
				if m.focusedInput == 0 {
					m.emailInput += msg.String()
				} else {
					m.passwordInput += msg.String()
				}
			}
		}
	}
	return m, nil
}

func (m *LoginModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("🔐 LOGIN")

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render("Welcome back! Sign in to track your finances.")

	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginBottom(3).
		Render(subtitle))
	b.WriteString("\n\n")

	b.WriteString(centered(renderInput("Email:", m.emailInput, m.focusedInput == 0)))
	b.WriteString("\n\n")

	masked := strings.Repeat("•", len(m.passwordInput))
	b.WriteString(centered(renderInput("Password:", masked, m.focusedInput == 1)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("🔄 Logging in...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab switch  •  enter login  •  ctrl+l clear  •  ctrl+s signup  •  q quit")
	b.WriteString(centered(help))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}

func renderInput(label, value string, focused bool) string {
	labelStr := LabelStyle.Width(18).Render(label)

	style := InputStyle
	if focused {
		style = FocusedInputStyle
	}
	valueStr := style.Width(50).Render(value)

	return lipgloss.JoinHorizontal(lipgloss.Left, labelStr, valueStr)
}
