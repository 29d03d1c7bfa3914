package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/internal/nav"
	"github.com/jzupan/go-card-wallet/internal/session"
)

// openRecoveryStep rebuilds the recovery inputs for the session's current
// step. Called on entry and after every successful transition.
func (m *appModel) openRecoveryStep() {
	m.recoveryFocus = 0
	m.recoveryOptIdx = 0

	switch m.deps.Session.RecoveryStep() {
	case session.StepEnterUsername:
		m.recoveryInputs = []textinput.Model{newInput("Username", false)}
	case session.StepEnterCodeAndReset:
		m.recoveryInputs = []textinput.Model{
			newInput("Recovery code", false),
			newInput("New password", true),
		}
	default:
		m.recoveryInputs = nil
	}
	focusInput(m.recoveryInputs, m.recoveryFocus)
}

func (m appModel) updateRecovery(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && key.Matches(keyMsg, keys.esc) {
		m.deps.Session.ResetRecovery()
		m.deps.Nav.Back()
		return m, nil
	}

	switch m.deps.Session.RecoveryStep() {
	case session.StepEnterUsername:
		if isKey && key.Matches(keyMsg, keys.enter) {
			username := strings.TrimSpace(m.recoveryInputs[0].Value())
			if username == "" {
				m.errMsg = "username is required"
				return m, nil
			}
			m.recoveryUsername = username
			m.busy = true
			m.errMsg = ""
			return m, m.cmdInitiateRecovery(username)
		}

	case session.StepChooseChannel:
		options := m.deps.Session.State().RecoveryOptions
		if !isKey || len(options) == 0 {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.recoveryOptIdx > 0 {
				m.recoveryOptIdx--
			}
		case key.Matches(keyMsg, keys.down):
			if m.recoveryOptIdx < len(options)-1 {
				m.recoveryOptIdx++
			}
		case key.Matches(keyMsg, keys.enter):
			m.busy = true
			m.errMsg = ""
			return m, m.cmdSendRecoveryCode(m.recoveryUsername, options[m.recoveryOptIdx].Channel)
		}
		return m, nil

	case session.StepEnterCodeAndReset:
		if isKey {
			switch {
			case key.Matches(keyMsg, keys.tab):
				m.recoveryFocus = (m.recoveryFocus + 1) % len(m.recoveryInputs)
				focusInput(m.recoveryInputs, m.recoveryFocus)
				return m, nil
			case key.Matches(keyMsg, keys.backtab):
				m.recoveryFocus = (m.recoveryFocus + len(m.recoveryInputs) - 1) % len(m.recoveryInputs)
				focusInput(m.recoveryInputs, m.recoveryFocus)
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				code := strings.TrimSpace(m.recoveryInputs[0].Value())
				password := m.recoveryInputs[1].Value()
				if code == "" || password == "" {
					m.errMsg = "code and new password are required"
					return m, nil
				}
				m.busy = true
				m.errMsg = ""
				return m, m.cmdResetPassword(m.recoveryUsername, code, password)
			}
		}

	case session.StepSuccess:
		if isKey && key.Matches(keyMsg, keys.enter) {
			m.deps.Session.ResetRecovery()
			m.openAuth(nav.ScreenLogin)
			m.deps.Nav.NavigateTo(nav.ScreenLogin, false, nil)
		}
		return m, nil
	}

	if len(m.recoveryInputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.recoveryInputs[m.recoveryFocus], cmd = m.recoveryInputs[m.recoveryFocus].Update(msg)
	return m, cmd
}

func (m appModel) viewRecovery() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Password recovery"))
	b.WriteString("\n\n")

	switch m.deps.Session.RecoveryStep() {
	case session.StepEnterUsername:
		b.WriteString("Account username\n")
		b.WriteString(m.recoveryInputs[0].View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue  esc cancel"))

	case session.StepChooseChannel:
		b.WriteString("Where should the recovery code go?\n\n")
		for i, opt := range m.deps.Session.State().RecoveryOptions {
			line := fmt.Sprintf("%s  %s", opt.Channel, opt.MaskedValue)
			if i == m.recoveryOptIdx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter send code  esc cancel"))

	case session.StepEnterCodeAndReset:
		b.WriteString(renderInputs([]string{"Recovery code", "New password"}, m.recoveryInputs))
		b.WriteString(helpStyle.Render("tab next field  enter reset password  esc cancel"))

	case session.StepSuccess:
		b.WriteString(statusStyle.Render("Password reset. Log in with the new password."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter go to login  esc back"))
	}

	return b.String()
}
