package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/internal/nav"
	"github.com/jzupan/go-card-wallet/internal/store"
	"github.com/jzupan/go-card-wallet/models"
)

// appModel is the single bubbletea model for the whole client. The active
// screen comes from the navigation stack; per-screen state lives in prefixed
// field groups, reset when the screen is opened.
type appModel struct {
	ctx  context.Context
	deps Deps

	snapshots <-chan store.Snapshot
	events    <-chan string
	snapshot  store.Snapshot
	idx       int

	status string
	errMsg string
	busy   bool

	confirmDelete bool

	// add/edit form
	formInputs []textinput.Model
	formFocus  int
	formSymIdx int
	formCardID string

	// templates browser
	templateIdx int

	// login / sign-up
	authInputs []textinput.Model
	authFocus  int

	// account
	accountMenuIdx int
	verifying      bool
	verifyChannel  models.VerificationType
	verifyInput    textinput.Model
	confirmWipe    bool
	divLocalOnly   []models.Card
	divRemoteOnly  []models.Card
	divKnown       bool

	// recovery
	recoveryInputs   []textinput.Model
	recoveryFocus    int
	recoveryOptIdx   int
	recoveryUsername string

	// settings
	settingsInput     textinput.Model
	settingsActionIdx int
}

var symbologyOptions = []models.Symbology{
	models.Code128, models.Code39, models.Code93, models.Codabar,
	models.DataMatrix, models.EAN13, models.EAN8, models.ITF,
	models.QRCode, models.PDF417, models.Aztec,
}

func newAppModel(ctx context.Context, deps Deps) appModel {
	return appModel{
		ctx:       ctx,
		deps:      deps,
		snapshots: deps.Cards.Watch(ctx),
		events:    deps.Sync.Events(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.snapshots),
		waitForFileEvent(m.events),
		textinput.Blink,
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snapshot = store.Snapshot(msg)
		if m.idx >= len(m.snapshot.Cards) {
			m.idx = len(m.snapshot.Cards) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		if m.snapshot.Corrupt {
			m.errMsg = "stored card file was unreadable, starting from an empty collection"
		}
		return m, tea.Batch(waitForSnapshot(m.snapshots), m.regenerateMissingImages())

	case fileEventMsg:
		m.status = string(msg)
		return m, tea.Batch(waitForFileEvent(m.events), clearStatusAfter())

	case cardSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = "saving card failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "card saved"
		m.deps.Nav.NavigateTo(nav.ScreenHome, false, nil)
		return m, clearStatusAfter()

	case authDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = m.deps.Session.State().Err
			return m, nil
		}
		m.errMsg = ""
		m.status = "signed in as " + m.sessionUsername()
		// Swap the auth screen for the profile in place so backing out
		// never lands on a stale login form.
		m.deps.Nav.ReplaceScreen(nav.ScreenAccount)
		m.resetAccountState()
		return m, clearStatusAfter()

	case accountDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = m.deps.Session.State().Err
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.verifying = false
		if !m.deps.Session.LoggedIn() {
			m.resetAccountState()
		}
		return m, clearStatusAfter()

	case divergenceMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.divLocalOnly = msg.localOnly
		m.divRemoteOnly = msg.remoteOnly
		m.divKnown = true
		return m, nil

	case syncDoneMsg:
		m.busy = false
		m.divKnown = false
		if msg.err != nil {
			m.errMsg = m.deps.Session.State().Err
			if m.errMsg == "" {
				m.errMsg = msg.err.Error()
			}
			return m, nil
		}
		m.errMsg = ""
		m.status = "cards " + msg.direction
		return m, clearStatusAfter()

	case recoveryDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = m.deps.Session.State().Err
			if m.errMsg == "" {
				m.errMsg = msg.err.Error()
			}
			return m, nil
		}
		m.errMsg = ""
		m.openRecoveryStep()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "card number copied"
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.forceQuit) {
		return m, tea.Quit
	}

	switch m.deps.Nav.Current().Screen {
	case nav.ScreenHome:
		return m.updateHome(msg)
	case nav.ScreenCardDetail:
		return m.updateDetail(msg)
	case nav.ScreenAddCard:
		return m.updateForm(msg)
	case nav.ScreenTemplates:
		return m.updateTemplates(msg)
	case nav.ScreenAccount:
		return m.updateAccount(msg)
	case nav.ScreenLogin, nav.ScreenSignUp:
		return m.updateAuth(msg)
	case nav.ScreenRecovery:
		return m.updateRecovery(msg)
	case nav.ScreenSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.deps.Nav.Current().Screen {
	case nav.ScreenHome:
		body = m.viewHome()
	case nav.ScreenCardDetail:
		body = m.viewDetail()
	case nav.ScreenAddCard:
		body = m.viewForm()
	case nav.ScreenTemplates:
		body = m.viewTemplates()
	case nav.ScreenAccount:
		body = m.viewAccount()
	case nav.ScreenLogin, nav.ScreenSignUp:
		body = m.viewAuth()
	case nav.ScreenRecovery:
		body = m.viewRecovery()
	case nav.ScreenSettings:
		body = m.viewSettings()
	}
	return appStyle.Render(body + m.footer())
}

// regenerateMissingImages queues every card whose barcode image is absent
// from disk. The regeneration worker writes the path back, which produces a
// fresh snapshot with the file in place, so this does not loop.
func (m appModel) regenerateMissingImages() tea.Cmd {
	missing := make([]models.Card, 0)
	for _, card := range m.snapshot.Cards {
		if card.Picture == "" || !fileExists(card.Picture) {
			missing = append(missing, card)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return func() tea.Msg {
		for _, card := range missing {
			m.deps.Sync.RegenerateImage(card)
		}
		return nil
	}
}

func (m appModel) currentCard() (models.Card, bool) {
	if m.idx < 0 || m.idx >= len(m.snapshot.Cards) {
		return models.Card{}, false
	}
	return m.snapshot.Cards[m.idx], true
}

func (m appModel) sessionUsername() string {
	if user := m.deps.Session.User(); user != nil {
		return user.Username
	}
	return ""
}

func (m *appModel) resetAccountState() {
	m.deps.Session.ClearState()
	m.accountMenuIdx = 0
	m.verifying = false
	m.confirmWipe = false
	m.divKnown = false
	m.divLocalOnly = nil
	m.divRemoteOnly = nil
}
