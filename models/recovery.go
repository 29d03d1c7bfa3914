package models

// VerificationType selects the contact channel for verification and
// recovery codes.
type VerificationType string

const (
	VerificationEmail VerificationType = "EMAIL"
	VerificationPhone VerificationType = "PHONE"
)

// VerificationRequest submits a received verification code for one channel.
type VerificationRequest struct {
	Code string           `json:"code"`
	Type VerificationType `json:"type"`
}

// RecoveryOption is one masked contact channel the server offers during
// password recovery (e.g. "ema**@g****.com").
type RecoveryOption struct {
	Channel     VerificationType `json:"channel"`
	MaskedValue string           `json:"maskedValue"`
}

// RecoveryInitiateRequest starts recovery for a username.
type RecoveryInitiateRequest struct {
	Username string `json:"username"`
}

// SendRecoveryCodeRequest asks the server to deliver a recovery code over
// the chosen channel.
type SendRecoveryCodeRequest struct {
	Username string           `json:"username"`
	Channel  VerificationType `json:"channel"`
}

// RecoveryResetRequest resets the password using a valid recovery code.
type RecoveryResetRequest struct {
	Username     string `json:"username"`
	RecoveryCode string `json:"recoveryCode"`
	NewPassword  string `json:"newPassword"`
}
