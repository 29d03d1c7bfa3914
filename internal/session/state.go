package session

import (
	"sync"

	"github.com/jzupan/go-card-wallet/models"
)

// State is the flat UI-state record every network-backed account action
// reports through: set loading, perform one request, then either success or
// a user-facing error string.
type State struct {
	Loading         bool
	Success         bool
	Err             string
	RecoveryOptions []models.RecoveryOption
}

// Credentials caches the username/password pair from the last successful
// login and hands it to the HTTP adapter per request. It is the single
// authentication-provider abstraction; nothing else touches raw credentials.
type Credentials struct {
	mu       sync.RWMutex
	username string
	password string
	set      bool
}

func NewCredentials() *Credentials {
	return &Credentials{}
}

// BasicAuth implements adapter.CredentialsProvider.
func (c *Credentials) BasicAuth() (string, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username, c.password, c.set
}

func (c *Credentials) Set(username, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.username = username
	c.password = password
	c.set = true
}

// SetPassword swaps only the cached password, after a successful password
// change keeps subsequent requests authenticating.
func (c *Credentials) SetPassword(password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.password = password
}

func (c *Credentials) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.username = ""
	c.password = ""
	c.set = false
}
