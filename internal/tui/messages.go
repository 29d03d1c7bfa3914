package tui

import (
	"github.com/jzupan/go-card-wallet/internal/store"
	"github.com/jzupan/go-card-wallet/models"
)

type snapshotMsg store.Snapshot

type fileEventMsg string

type cardSavedMsg struct {
	err error
}

type authDoneMsg struct {
	err error
}

type accountDoneMsg struct {
	status string
	err    error
}

type divergenceMsg struct {
	localOnly  []models.Card
	remoteOnly []models.Card
	err        error
}

type syncDoneMsg struct {
	direction string
	err       error
}

type recoveryDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
