package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/internal/nav"
	"github.com/jzupan/go-card-wallet/internal/session"
	"github.com/jzupan/go-card-wallet/internal/store"
	"github.com/jzupan/go-card-wallet/internal/sync"
	"github.com/jzupan/go-card-wallet/internal/utils"
)

// Deps are the wired application components the TUI renders and drives. All
// domain rules live in these components; the TUI only routes input and draws
// their state.
type Deps struct {
	Cards   store.CardStorage
	Session *session.Session
	Sync    *sync.Orchestrator
	Nav     *nav.Stack
	IDs     *utils.UUIDGenerator
	Log     *logger.Logger
}

type TUI struct {
	deps Deps
}

func New(deps Deps) *TUI {
	return &TUI{deps: deps}
}

// Run drives the terminal UI until the user quits or the context is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.deps)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
