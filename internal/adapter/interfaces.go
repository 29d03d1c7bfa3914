package adapter

import (
	"context"

	"github.com/jzupan/go-card-wallet/models"
)

// CredentialsProvider supplies the credentials cached from the last
// successful login. Every authenticated request re-derives its Basic auth
// header through this single abstraction; no token is ever persisted.
type CredentialsProvider interface {
	BasicAuth() (username, password string, ok bool)
}

// ServerAdapter is the remote account API surface the client consumes.
type ServerAdapter interface {
	// GetUser fetches the authenticated user's full server-side record.
	GetUser(ctx context.Context) (models.User, error)
	// CreateUser registers a new account. Unauthenticated.
	CreateUser(ctx context.Context, user models.User) (models.UserCreationResponse, error)
	// UpdateUser overwrites account fields; the card list rides along as
	// the new authoritative remote collection.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// DeleteUser removes the authenticated account.
	DeleteUser(ctx context.Context) error
	// Verify submits a verification code for one contact channel.
	Verify(ctx context.Context, req models.VerificationRequest) error
	// ResendVerificationCodes re-sends codes for unverified channels.
	ResendVerificationCodes(ctx context.Context) (string, error)

	// InitiateRecovery starts password recovery. Unauthenticated.
	InitiateRecovery(ctx context.Context, req models.RecoveryInitiateRequest) ([]models.RecoveryOption, error)
	// SendRecoveryCode delivers a recovery code over the chosen channel.
	SendRecoveryCode(ctx context.Context, req models.SendRecoveryCodeRequest) (string, error)
	// ResetPassword sets a new password using a valid recovery code.
	ResetPassword(ctx context.Context, req models.RecoveryResetRequest) (string, error)
}
