package session

import (
	"context"
	"errors"

	"github.com/jzupan/go-card-wallet/models"
)

// RecoveryStep is the position in the password-recovery flow. Steps only
// advance on a successful server response; the sole way back is ResetRecovery.
type RecoveryStep int

const (
	StepEnterUsername RecoveryStep = iota
	StepChooseChannel
	StepEnterCodeAndReset
	StepSuccess
)

func (s RecoveryStep) String() string {
	switch s {
	case StepEnterUsername:
		return "ENTER_USERNAME"
	case StepChooseChannel:
		return "CHOOSE_CHANNEL"
	case StepEnterCodeAndReset:
		return "ENTER_CODE_AND_RESET"
	case StepSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

var errRecoveryOrder = errors.New("recovery step out of order")

func (s *Session) RecoveryStep() RecoveryStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.step
}

// InitiateRecovery looks up the masked contact channels available for the
// account. An account with no verified channel cannot be recovered and the
// flow stays on the first step.
func (s *Session) InitiateRecovery(ctx context.Context, username string) error {
	if s.RecoveryStep() != StepEnterUsername {
		return errRecoveryOrder
	}
	s.begin()

	options, err := s.server.InitiateRecovery(ctx, models.RecoveryInitiateRequest{Username: username})
	if err != nil {
		s.fail(err)
		return err
	}
	if len(options) == 0 {
		err := errors.New("no recovery options available for this account")
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.state = State{Success: true, RecoveryOptions: options}
	s.step = StepChooseChannel
	s.mu.Unlock()
	return nil
}

// SendRecoveryCode asks the server to deliver a one-time code over the chosen
// channel. The channel must be one the initiate step offered.
func (s *Session) SendRecoveryCode(ctx context.Context, username string, channel models.VerificationType) error {
	if s.RecoveryStep() != StepChooseChannel {
		return errRecoveryOrder
	}
	if !s.hasRecoveryChannel(channel) {
		err := errors.New("recovery channel not offered for this account")
		s.fail(err)
		return err
	}
	s.begin()

	if _, err := s.server.SendRecoveryCode(ctx, models.SendRecoveryCodeRequest{Username: username, Channel: channel}); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.state.Loading = false
	s.state.Success = true
	s.step = StepEnterCodeAndReset
	s.mu.Unlock()
	return nil
}

// ResetPassword redeems the delivered code for a new password. The new
// password is held to the same policy as registration.
func (s *Session) ResetPassword(ctx context.Context, username, code, newPassword string) error {
	if s.RecoveryStep() != StepEnterCodeAndReset {
		return errRecoveryOrder
	}
	if !s.ValidatePassword(newPassword) {
		return errors.New(msgWeakPassword)
	}
	s.begin()

	if _, err := s.server.ResetPassword(ctx, models.RecoveryResetRequest{
		Username:     username,
		RecoveryCode: code,
		NewPassword:  newPassword,
	}); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.state = State{Success: true}
	s.step = StepSuccess
	s.mu.Unlock()
	s.log.Info().Str("username", username).Msg("password reset")
	return nil
}

// ResetRecovery returns the flow to the first step and forgets the offered
// channels. Partial rewinds are not supported.
func (s *Session) ResetRecovery() {
	s.mu.Lock()
	s.state = State{}
	s.step = StepEnterUsername
	s.mu.Unlock()
}

func (s *Session) hasRecoveryChannel(channel models.VerificationType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, opt := range s.state.RecoveryOptions {
		if opt.Channel == channel {
			return true
		}
	}
	return false
}
