package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fintrack/cmd/tui/client"
)

type SignupModel struct {
	nameInput     string
	emailInput    string
	passwordInput string
	focusedInput  int
	loading       bool
	err           error
	client        *client.Client
}

func NewSignupModel(c *client.Client) *SignupModel {
	return &SignupModel{client: c}
}

func (m *SignupModel) Init() tea.Cmd {
	return nil
}

func signupCmd(c *client.Client, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		if _, err := c.Signup(name, email, password); err != nil {
			return authErrorMsg{err: err}
		}

		// signup does not issue a token; log in right away
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

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case "tab":
			m.focusedInput = (m.focusedInput + 1) % 3
		case "shift+tab":
			m.focusedInput = (m.focusedInput + 2) % 3
		case "enter":
			if m.nameInput == "" {
				m.err = fmt.Errorf("name cannot be empty")
				return m, nil
			}
			if m.emailInput == "" {
				m.err = fmt.Errorf("email cannot be empty")
				return m, nil
			}
			if len(m.passwordInput) < 8 {
				m.err = fmt.Errorf("password must be at least 8 characters")
				return m, nil
			}

			m.loading = true
			m.err = nil
			return m, signupCmd(m.client, m.nameInput, m.emailInput, m.passwordInput)
		case "backspace":
			switch m.focusedInput {
			case 0:
				if len(m.nameInput) > 0 {
					m.nameInput = m.nameInput[:len(m.nameInput)-1]
				}
			case 1:
				if len(m.emailInput) > 0 {
					m.emailInput = m.emailInput[:len(m.emailInput)-1]
				}
			case 2:
				if len(m.passwordInput) > 0 {
					m.passwordInput = m.passwordInput[:len(m.passwordInput)-1]
				}
			}
		case "ctrl+l":
			m.nameInput = ""
			m.emailInput = ""
			m.passwordInput = ""
			m.err = nil
		default:
			if len(msg.String()) == 1 {
				switch m.focusedInput {
				case 0:
					m.nameInput += msg.String()
				case 1:
					m.emailInput += msg.String()
				case 2:
					m.passwordInput += msg.String()
				}
			}
		}
	}
	return m, nil
}

func (m *SignupModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("📝 SIGN UP")

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render("Create an account to start tracking.")

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

	b.WriteString(centered(renderInput("Name:", m.nameInput, m.focusedInput == 0)))
	b.WriteString("\n\n")

	b.WriteString(centered(renderInput("Email:", m.emailInput, m.focusedInput == 1)))
	b.WriteString("\n\n")

	masked := strings.Repeat("•", len(m.passwordInput))
	b.WriteString(centered(renderInput("Password:", masked, m.focusedInput == 2)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("🔄 Creating account...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab switch  •  enter sign up  •  ctrl+l clear  •  ctrl+s login  •  q quit")
	b.WriteString(centered(help))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
