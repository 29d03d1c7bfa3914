package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode"

	"github.com/jzupan/go-card-wallet/internal/adapter"
	"github.com/jzupan/go-card-wallet/internal/logger"
	"github.com/jzupan/go-card-wallet/internal/store"
	"github.com/jzupan/go-card-wallet/models"
)

const (
	msgInvalidCredentials = "Invalid username or password"
	msgLoggedOut          = "User logged out"
	msgWeakPassword       = "Password must be at least 8 characters and contain a digit, an uppercase and a lowercase letter"
)

// LocalCards is the slice of the card store the session needs: registration
// ships the cards already on the device to the new remote account.
type LocalCards interface {
	List() store.Snapshot
}

// Session owns the remote-account lifecycle: login, registration, profile
// updates, verification and password recovery. All mutating paths follow the
// same shape, mark loading, issue exactly one request, then translate the
// outcome into State.
type Session struct {
	server adapter.ServerAdapter
	cards  LocalCards
	creds  *Credentials
	log    *logger.Logger

	mu    sync.RWMutex
	state State
	user  *models.User
	step  RecoveryStep
}

func New(server adapter.ServerAdapter, cards LocalCards, creds *Credentials, log *logger.Logger) *Session {
	return &Session{
		server: server,
		cards:  cards,
		creds:  creds,
		log:    log,
		step:   StepEnterUsername,
	}
}

// State returns a copy of the current UI state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.RecoveryOptions = append([]models.RecoveryOption(nil), s.state.RecoveryOptions...)
	return st
}

// User returns a copy of the logged-in user, or nil when logged out.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) LoggedIn() bool {
	_, _, ok := s.creds.BasicAuth()
	return ok
}

// LogIn caches the credentials and proves them with a profile fetch. On
// failure the cache is cleared again so later calls report logged-out rather
// than replaying bad credentials.
func (s *Session) LogIn(ctx context.Context, username, password string) error {
	s.begin()
	s.creds.Set(username, password)

	user, err := s.server.GetUser(ctx)
	if err != nil {
		s.creds.Clear()
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.succeed()
	s.log.Info().Str("username", username).Msg("logged in")
	return nil
}

// Register creates a remote account. The cards already stored on the device
// ride along in the request so a fresh account starts with the local wallet.
func (s *Session) Register(ctx context.Context, user models.User, password string) error {
	if !s.ValidatePassword(password) {
		return errors.New(msgWeakPassword)
	}
	s.begin()

	local := s.cards.List().Cards
	user.Cards = local
	user.Password = &password

	resp, err := s.server.CreateUser(ctx, user)
	if err != nil {
		s.fail(err)
		return err
	}

	s.creds.Set(user.Username, password)
	s.mu.Lock()
	s.user = &models.User{
		ID:       &resp.UserID,
		Username: resp.Username,
		Name:     resp.Name,
		Email:    user.Email,
		Cards:    local,
	}
	s.mu.Unlock()
	s.succeed()
	s.log.Info().Str("username", resp.Username).Msg("account created")
	return nil
}

// LogOut drops the credentials, the cached user and any in-flight recovery
// progress. It never fails and performs no request.
func (s *Session) LogOut() {
	s.creds.Clear()
	s.mu.Lock()
	s.user = nil
	s.state = State{}
	s.step = StepEnterUsername
	s.mu.Unlock()
	s.log.Info().Msg("logged out")
}

// UpdateUser replaces the remote profile. When the update carries a new
// password the credential cache is refreshed so the next request still
// authenticates.
func (s *Session) UpdateUser(ctx context.Context, user models.User) error {
	s.begin()

	updated, err := s.server.UpdateUser(ctx, user)
	if err != nil {
		s.fail(err)
		return err
	}

	if user.Password != nil && *user.Password != "" {
		s.creds.SetPassword(*user.Password)
	}
	s.mu.Lock()
	s.user = &updated
	s.mu.Unlock()
	s.succeed()
	return nil
}

// DeleteUser removes the remote account and, on success, logs out locally.
func (s *Session) DeleteUser(ctx context.Context) error {
	s.begin()

	if err := s.server.DeleteUser(ctx); err != nil {
		s.fail(err)
		return err
	}

	s.LogOut()
	s.mu.Lock()
	s.state.Success = true
	s.mu.Unlock()
	return nil
}

// SyncCards uploads the given card list as the account's new remote set and
// caches the returned profile.
func (s *Session) SyncCards(ctx context.Context, cards []models.Card) error {
	username, _, ok := s.creds.BasicAuth()
	if !ok {
		err := adapter.ErrNoCredentials
		s.fail(err)
		return err
	}
	s.begin()

	updated, err := s.server.UpdateUser(ctx, models.User{Username: username, Cards: cards})
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.user = &updated
	s.mu.Unlock()
	s.succeed()
	return nil
}

// VerifyEmail submits an email verification code and refreshes the profile so
// the verified flag is visible immediately.
func (s *Session) VerifyEmail(ctx context.Context, code string) error {
	return s.verify(ctx, models.VerificationRequest{Code: code, Type: models.VerificationEmail})
}

// VerifyPhone submits a phone verification code and refreshes the profile.
func (s *Session) VerifyPhone(ctx context.Context, code string) error {
	return s.verify(ctx, models.VerificationRequest{Code: code, Type: models.VerificationPhone})
}

func (s *Session) verify(ctx context.Context, req models.VerificationRequest) error {
	s.begin()

	if err := s.server.Verify(ctx, req); err != nil {
		s.fail(err)
		return err
	}

	user, err := s.server.GetUser(ctx)
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.succeed()
	return nil
}

// ResendVerificationCodes asks the server to re-send outstanding email and
// phone verification codes.
func (s *Session) ResendVerificationCodes(ctx context.Context) (string, error) {
	s.begin()

	msg, err := s.server.ResendVerificationCodes(ctx)
	if err != nil {
		s.fail(err)
		return "", err
	}
	s.succeed()
	return msg, nil
}

// ValidatePassword enforces the account password policy: at least eight
// characters with a digit, an uppercase and a lowercase letter. A rejected
// password surfaces in State so forms can show it without a request.
func (s *Session) ValidatePassword(password string) bool {
	var digit, upper, lower bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	if len(password) >= 8 && digit && upper && lower {
		return true
	}
	s.mu.Lock()
	s.state = State{Err: msgWeakPassword}
	s.mu.Unlock()
	return false
}

// ClearState resets loading, success and error without touching credentials
// or the cached user.
func (s *Session) ClearState() {
	s.mu.Lock()
	s.state = State{RecoveryOptions: s.state.RecoveryOptions}
	s.mu.Unlock()
}

func (s *Session) begin() {
	s.mu.Lock()
	s.state = State{Loading: true, RecoveryOptions: s.state.RecoveryOptions}
	s.mu.Unlock()
}

func (s *Session) succeed() {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Success = true
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *Session) fail(err error) {
	msg := userMessage(err)
	s.mu.Lock()
	s.state.Loading = false
	s.state.Success = false
	s.state.Err = msg
	s.mu.Unlock()
	s.log.Warn().Err(err).Msg("account request failed")
}

// userMessage turns transport and server failures into the strings shown to
// the user. Server bodies pass through verbatim.
func userMessage(err error) string {
	var srvErr *adapter.ServerError
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return msgInvalidCredentials
	case errors.Is(err, adapter.ErrNoCredentials):
		return msgLoggedOut
	case errors.As(err, &srvErr):
		if m := strings.TrimSpace(srvErr.Message); m != "" {
			return m
		}
		return srvErr.Error()
	default:
		return "network error: " + err.Error()
	}
}
