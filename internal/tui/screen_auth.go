package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/internal/nav"
	"github.com/jzupan/go-card-wallet/models"
)

var (
	loginLabels  = []string{"Username", "Password"}
	signUpLabels = []string{"Username", "Name", "Email", "Phone number", "Password"}
)

func (m *appModel) openAuth(screen nav.Screen) {
	labels := loginLabels
	if screen == nav.ScreenSignUp {
		labels = signUpLabels
	}

	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		inputs[i] = newInput(label, label == "Password")
	}
	m.authInputs = inputs
	m.authFocus = 0
	focusInput(m.authInputs, m.authFocus)
}

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.deps.Nav.Back()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.authFocus = (m.authFocus + 1) % len(m.authInputs)
			focusInput(m.authInputs, m.authFocus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.authFocus = (m.authFocus + len(m.authInputs) - 1) % len(m.authInputs)
			focusInput(m.authInputs, m.authFocus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submitAuth()
		}
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m appModel) submitAuth() (tea.Model, tea.Cmd) {
	if m.deps.Nav.Current().Screen == nav.ScreenLogin {
		username := strings.TrimSpace(m.authInputs[0].Value())
		password := m.authInputs[1].Value()
		if username == "" || password == "" {
			m.errMsg = "username and password are required"
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, m.cmdLogIn(username, password)
	}

	username := strings.TrimSpace(m.authInputs[0].Value())
	password := m.authInputs[4].Value()
	if username == "" || password == "" {
		m.errMsg = "username and password are required"
		return m, nil
	}
	if !m.deps.Session.ValidatePassword(password) {
		m.errMsg = m.deps.Session.State().Err
		return m, nil
	}

	user := models.User{Username: username}
	if name := strings.TrimSpace(m.authInputs[1].Value()); name != "" {
		user.Name = &name
	}
	if email := strings.TrimSpace(m.authInputs[2].Value()); email != "" {
		user.Email = &email
	}
	if phone := strings.TrimSpace(m.authInputs[3].Value()); phone != "" {
		user.PhoneNumber = &phone
	}

	m.busy = true
	m.errMsg = ""
	return m, m.cmdRegister(user, password)
}

func (m appModel) viewAuth() string {
	title := "Log in"
	labels := loginLabels
	if m.deps.Nav.Current().Screen == nav.ScreenSignUp {
		title = "Sign up"
		labels = signUpLabels
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(renderInputs(labels, m.authInputs))
	b.WriteString(helpStyle.Render("tab next field  enter submit  esc back"))
	return b.String()
}
