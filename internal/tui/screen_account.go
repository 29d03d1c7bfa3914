package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/internal/nav"
	"github.com/jzupan/go-card-wallet/models"
)

var accountMenu = []struct {
	label  string
	screen nav.Screen
}{
	{"Log in", nav.ScreenLogin},
	{"Sign up", nav.ScreenSignUp},
	{"Recover password", nav.ScreenRecovery},
}

func (m appModel) updateAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.deps.Session.LoggedIn() {
		return m.updateAccountMenu(msg)
	}
	return m.updateAccountProfile(msg)
}

func (m appModel) updateAccountMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.deps.Nav.Back()
	case key.Matches(keyMsg, keys.up):
		if m.accountMenuIdx > 0 {
			m.accountMenuIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.accountMenuIdx < len(accountMenu)-1 {
			m.accountMenuIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		target := accountMenu[m.accountMenuIdx].screen
		switch target {
		case nav.ScreenRecovery:
			m.deps.Session.ResetRecovery()
			m.openRecoveryStep()
		default:
			m.openAuth(target)
		}
		m.deps.Nav.NavigateTo(target, false, nil)
	}
	return m, nil
}

func (m appModel) updateAccountProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.verifying {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.verifying = false
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			if m.verifyChannel == models.VerificationEmail {
				m.verifyChannel = models.VerificationPhone
			} else {
				m.verifyChannel = models.VerificationEmail
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			code := strings.TrimSpace(m.verifyInput.Value())
			if code == "" {
				m.errMsg = "verification code is required"
				return m, nil
			}
			m.busy = true
			m.errMsg = ""
			return m, m.cmdVerify(m.verifyChannel, code)
		}
		var cmd tea.Cmd
		m.verifyInput, cmd = m.verifyInput.Update(msg)
		return m, cmd
	}

	if m.confirmWipe {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirmWipe = false
			m.busy = true
			return m, m.cmdDeleteAccount()
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirmWipe = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.deps.Nav.Back()
	case key.Matches(keyMsg, keys.check):
		m.busy = true
		return m, m.cmdDivergence()
	case key.Matches(keyMsg, keys.push):
		m.busy = true
		return m, m.cmdPush()
	case key.Matches(keyMsg, keys.pull):
		m.busy = true
		return m, m.cmdPull()
	case key.Matches(keyMsg, keys.verify):
		m.verifying = true
		m.verifyChannel = models.VerificationEmail
		m.verifyInput = newInput("123456", false)
		m.verifyInput.Focus()
	case key.Matches(keyMsg, keys.resend):
		m.busy = true
		return m, m.cmdResendCodes()
	case key.Matches(keyMsg, keys.wipe):
		m.confirmWipe = true
	case key.Matches(keyMsg, keys.logout):
		m.deps.Session.LogOut()
		m.deps.Nav.Reset()
		m.resetAccountState()
		m.status = "logged out"
		return m, clearStatusAfter()
	}
	return m, nil
}

func (m appModel) viewAccount() string {
	if !m.deps.Session.LoggedIn() {
		return m.viewAccountMenu()
	}
	return m.viewAccountProfile()
}

func (m appModel) viewAccountMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Account"))
	b.WriteString("\n\n")
	for i, item := range accountMenu {
		line := item.label
		if i == m.accountMenuIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter select  esc back"))
	return b.String()
}

func (m appModel) viewAccountProfile() string {
	user := m.deps.Session.User()
	if user == nil {
		return "loading profile..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Account — " + user.Username))
	b.WriteString("\n\n")
	if user.Name != nil {
		b.WriteString(fmt.Sprintf("Name:   %s\n", *user.Name))
	}
	if user.Email != nil {
		b.WriteString(fmt.Sprintf("Email:  %s %s\n", *user.Email, verifiedMark(user.EmailVerified)))
	}
	if user.PhoneNumber != nil {
		b.WriteString(fmt.Sprintf("Phone:  %s %s\n", *user.PhoneNumber, verifiedMark(user.PhoneVerified)))
	}
	b.WriteString(fmt.Sprintf("Remote cards: %d   Local cards: %d\n", len(user.Cards), len(m.snapshot.Cards)))

	if m.divKnown {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Only on this device: %d\n", len(m.divLocalOnly)))
		for _, card := range m.divLocalOnly {
			b.WriteString("  + " + card.Label + "\n")
		}
		b.WriteString(fmt.Sprintf("Only on the server:  %d\n", len(m.divRemoteOnly)))
		for _, card := range m.divRemoteOnly {
			b.WriteString("  - " + card.Label + "\n")
		}
	}

	if m.verifying {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf(
			"Verify %s\n\n%s\n\ntab switch channel  enter submit  esc cancel",
			m.verifyChannel, m.verifyInput.View())))
		b.WriteString("\n")
	}

	if m.confirmWipe {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render("Delete the remote account?\n\ny yes    n no"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("c check divergence  p push  u pull  v verify  r resend codes  x delete account  l log out  esc back"))
	return b.String()
}

func verifiedMark(verified *bool) string {
	if verified != nil && *verified {
		return statusStyle.Render("(verified)")
	}
	return helpStyle.Render("(unverified)")
}
