package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/internal/store"
	"github.com/jzupan/go-card-wallet/models"
)

func waitForSnapshot(ch <-chan store.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func waitForFileEvent(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return fileEventMsg(msg)
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m appModel) cmdSaveCard(card models.Card) tea.Cmd {
	return func() tea.Msg {
		if err := m.deps.Cards.Upsert(m.ctx, card); err != nil {
			return cardSavedMsg{err: err}
		}
		m.deps.Sync.RegenerateImage(card)
		return cardSavedMsg{}
	}
}

func (m appModel) cmdLogIn(username, password string) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{err: m.deps.Session.LogIn(m.ctx, username, password)}
	}
}

func (m appModel) cmdRegister(user models.User, password string) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{err: m.deps.Session.Register(m.ctx, user, password)}
	}
}

func (m appModel) cmdVerify(channel models.VerificationType, code string) tea.Cmd {
	return func() tea.Msg {
		var err error
		if channel == models.VerificationPhone {
			err = m.deps.Session.VerifyPhone(m.ctx, code)
		} else {
			err = m.deps.Session.VerifyEmail(m.ctx, code)
		}
		return accountDoneMsg{status: "verification accepted", err: err}
	}
}

func (m appModel) cmdResendCodes() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.deps.Session.ResendVerificationCodes(m.ctx)
		if msg == "" {
			msg = "verification codes re-sent"
		}
		return accountDoneMsg{status: msg, err: err}
	}
}

func (m appModel) cmdDeleteAccount() tea.Cmd {
	return func() tea.Msg {
		return accountDoneMsg{status: "account deleted", err: m.deps.Session.DeleteUser(m.ctx)}
	}
}

func (m appModel) cmdDivergence() tea.Cmd {
	return func() tea.Msg {
		localOnly, remoteOnly, err := m.deps.Sync.Divergence()
		return divergenceMsg{localOnly: localOnly, remoteOnly: remoteOnly, err: err}
	}
}

func (m appModel) cmdPush() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{direction: "pushed to server", err: m.deps.Sync.PushLocalToServer(m.ctx)}
	}
}

func (m appModel) cmdPull() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{direction: "pulled from server", err: m.deps.Sync.PullServerToLocal(m.ctx)}
	}
}

func (m appModel) cmdInitiateRecovery(username string) tea.Cmd {
	return func() tea.Msg {
		return recoveryDoneMsg{err: m.deps.Session.InitiateRecovery(m.ctx, username)}
	}
}

func (m appModel) cmdSendRecoveryCode(username string, channel models.VerificationType) tea.Cmd {
	return func() tea.Msg {
		return recoveryDoneMsg{err: m.deps.Session.SendRecoveryCode(m.ctx, username, channel)}
	}
}

func (m appModel) cmdResetPassword(username, code, newPassword string) tea.Cmd {
	return func() tea.Msg {
		return recoveryDoneMsg{err: m.deps.Session.ResetPassword(m.ctx, username, code, newPassword)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
