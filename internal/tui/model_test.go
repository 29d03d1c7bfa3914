package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/internal/nav"
	"github.com/jzupan/go-card-wallet/internal/session"
	"github.com/jzupan/go-card-wallet/internal/store"
	"github.com/jzupan/go-card-wallet/internal/sync"
	"github.com/jzupan/go-card-wallet/internal/utils"
	"github.com/jzupan/go-card-wallet/models"
)

// fakeCards is an in-memory CardStorage for driving the model without disk.
type fakeCards struct {
	cards []models.Card
}

func (f *fakeCards) List() store.Snapshot {
	return store.Snapshot{Cards: append([]models.Card(nil), f.cards...)}
}

func (f *fakeCards) Watch(context.Context) <-chan store.Snapshot {
	ch := make(chan store.Snapshot)
	close(ch)
	return ch
}

func (f *fakeCards) Upsert(_ context.Context, card models.Card) error {
	for i, c := range f.cards {
		if c.ID == card.ID {
			f.cards[i] = card
			return nil
		}
	}
	f.cards = append(f.cards, card)
	return nil
}

func (f *fakeCards) DeleteByID(_ context.Context, id string) error {
	for i, c := range f.cards {
		if c.ID == id {
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeCards) OverwriteAll(_ context.Context, cards []models.Card) error {
	f.cards = append([]models.Card(nil), cards...)
	return nil
}

type nopServer struct{}

func (nopServer) GetUser(context.Context) (models.User, error) { return models.User{}, nil }
func (nopServer) CreateUser(context.Context, models.User) (models.UserCreationResponse, error) {
	return models.UserCreationResponse{}, nil
}
func (nopServer) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	return user, nil
}
func (nopServer) DeleteUser(context.Context) error                         { return nil }
func (nopServer) Verify(context.Context, models.VerificationRequest) error { return nil }
func (nopServer) ResendVerificationCodes(context.Context) (string, error)  { return "", nil }
func (nopServer) InitiateRecovery(context.Context, models.RecoveryInitiateRequest) ([]models.RecoveryOption, error) {
	return nil, nil
}
func (nopServer) SendRecoveryCode(context.Context, models.SendRecoveryCodeRequest) (string, error) {
	return "", nil
}
func (nopServer) ResetPassword(context.Context, models.RecoveryResetRequest) (string, error) {
	return "", nil
}

type nopRegen struct{}

func (nopRegen) Enqueue(models.Card) bool { return true }

func newTestModel(t *testing.T) (appModel, *session.Credentials) {
	t.Helper()
	log := logger.Nop()
	cards := &fakeCards{}
	creds := session.NewCredentials()
	sess := session.New(nopServer{}, cards, creds, log)

	deps := Deps{
		Cards:   cards,
		Session: sess,
		Sync:    sync.NewOrchestrator(cards, sess, nopRegen{}, log),
		Nav:     nav.NewStack(cards, log),
		IDs:     utils.NewUUIDGenerator(),
		Log:     log,
	}
	return newAppModel(context.Background(), deps), creds
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLoginSwapsAuthFrameForAccount(t *testing.T) {
	m, _ := newTestModel(t)
	m.deps.Nav.NavigateTo(nav.ScreenAccount, false, nil)
	m.deps.Nav.NavigateTo(nav.ScreenLogin, false, nil)

	updated, _ := m.Update(authDoneMsg{})
	got := updated.(appModel)

	assert.Equal(t, nav.ScreenAccount, got.deps.Nav.Current().Screen)
	assert.Equal(t, 3, got.deps.Nav.Depth(), "login must not grow the history")
	for _, f := range got.deps.Nav.Frames() {
		assert.NotEqual(t, nav.ScreenLogin, f.Screen, "no auth frame may survive a login")
	}
}

func TestLogoutResetsNavigationHistory(t *testing.T) {
	m, creds := newTestModel(t)
	creds.Set("ana", "Sup3rSecret")
	m.deps.Nav.NavigateTo(nav.ScreenAccount, false, nil)

	updated, _ := m.Update(keyPress('l'))
	got := updated.(appModel)

	assert.False(t, got.deps.Session.LoggedIn())
	require.Equal(t, 1, got.deps.Nav.Depth())
	assert.Equal(t, nav.ScreenHome, got.deps.Nav.Current().Screen)
}
