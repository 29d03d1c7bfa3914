package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized maps HTTP 401: the supplied credentials were rejected.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrNoCredentials is returned when an authenticated call is attempted
	// without a logged-in session.
	ErrNoCredentials = errors.New("no cached credentials")
)

// ServerError is a non-2xx response whose body the server intends as a
// user-facing plain-text message.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}
