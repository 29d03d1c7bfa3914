package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzupan/go-card-wallet/models"
)

func recoverableServer() *spyServer {
	return &spyServer{recoveryOptions: []models.RecoveryOption{
		{Channel: models.VerificationEmail, MaskedValue: "an*@e*****.com"},
		{Channel: models.VerificationPhone, MaskedValue: "+386 ** *** 123"},
	}}
}

func TestRecoveryHappyPathAdvancesThroughAllSteps(t *testing.T) {
	server := recoverableServer()
	sess, _ := newTestSession(server, nil)
	ctx := context.Background()

	assert.Equal(t, StepEnterUsername, sess.RecoveryStep())

	require.NoError(t, sess.InitiateRecovery(ctx, "ana"))
	assert.Equal(t, StepChooseChannel, sess.RecoveryStep())
	assert.Len(t, sess.State().RecoveryOptions, 2)

	require.NoError(t, sess.SendRecoveryCode(ctx, "ana", models.VerificationEmail))
	assert.Equal(t, StepEnterCodeAndReset, sess.RecoveryStep())
	require.NotNil(t, server.sendCodeReq)
	assert.Equal(t, models.VerificationEmail, server.sendCodeReq.Channel)

	require.NoError(t, sess.ResetPassword(ctx, "ana", "123456", "Fresh1Password"))
	assert.Equal(t, StepSuccess, sess.RecoveryStep())
	require.NotNil(t, server.resetReq)
	assert.Equal(t, "123456", server.resetReq.RecoveryCode)
	assert.Equal(t, "Fresh1Password", server.resetReq.NewPassword)
	assert.True(t, sess.State().Success)
}

func TestRecoveryStepsRejectOutOfOrderCalls(t *testing.T) {
	sess, _ := newTestSession(recoverableServer(), nil)
	ctx := context.Background()

	assert.ErrorIs(t, sess.SendRecoveryCode(ctx, "ana", models.VerificationEmail), errRecoveryOrder)
	assert.ErrorIs(t, sess.ResetPassword(ctx, "ana", "123456", "Fresh1Password"), errRecoveryOrder)

	require.NoError(t, sess.InitiateRecovery(ctx, "ana"))
	assert.ErrorIs(t, sess.InitiateRecovery(ctx, "ana"), errRecoveryOrder)
	assert.ErrorIs(t, sess.ResetPassword(ctx, "ana", "123456", "Fresh1Password"), errRecoveryOrder)
}

func TestInitiateRecoveryWithNoChannelsStaysOnFirstStep(t *testing.T) {
	server := &spyServer{}
	sess, _ := newTestSession(server, nil)

	err := sess.InitiateRecovery(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, StepEnterUsername, sess.RecoveryStep())
	assert.Contains(t, sess.State().Err, "no recovery options")
}

func TestSendRecoveryCodeRejectsUnofferedChannel(t *testing.T) {
	server := &spyServer{recoveryOptions: []models.RecoveryOption{
		{Channel: models.VerificationEmail, MaskedValue: "an*@e*****.com"},
	}}
	sess, _ := newTestSession(server, nil)
	ctx := context.Background()

	require.NoError(t, sess.InitiateRecovery(ctx, "ana"))
	err := sess.SendRecoveryCode(ctx, "ana", models.VerificationPhone)
	require.Error(t, err)
	assert.Nil(t, server.sendCodeReq)
	assert.Equal(t, StepChooseChannel, sess.RecoveryStep())
}

func TestResetPasswordEnforcesPasswordPolicy(t *testing.T) {
	server := recoverableServer()
	sess, _ := newTestSession(server, nil)
	ctx := context.Background()

	require.NoError(t, sess.InitiateRecovery(ctx, "ana"))
	require.NoError(t, sess.SendRecoveryCode(ctx, "ana", models.VerificationEmail))

	err := sess.ResetPassword(ctx, "ana", "123456", "weak")
	require.Error(t, err)
	assert.Nil(t, server.resetReq)
	assert.Equal(t, StepEnterCodeAndReset, sess.RecoveryStep())
}

func TestFailedStepDoesNotAdvance(t *testing.T) {
	server := recoverableServer()
	server.sendCodeErr = errors.New("server busy")
	sess, _ := newTestSession(server, nil)
	ctx := context.Background()

	require.NoError(t, sess.InitiateRecovery(ctx, "ana"))
	require.Error(t, sess.SendRecoveryCode(ctx, "ana", models.VerificationEmail))
	assert.Equal(t, StepChooseChannel, sess.RecoveryStep())

	server.sendCodeErr = nil
	require.NoError(t, sess.SendRecoveryCode(ctx, "ana", models.VerificationEmail))
	assert.Equal(t, StepEnterCodeAndReset, sess.RecoveryStep())
}

func TestResetRecoveryReturnsToFirstStep(t *testing.T) {
	sess, _ := newTestSession(recoverableServer(), nil)
	ctx := context.Background()

	require.NoError(t, sess.InitiateRecovery(ctx, "ana"))
	require.NoError(t, sess.SendRecoveryCode(ctx, "ana", models.VerificationEmail))

	sess.ResetRecovery()
	assert.Equal(t, StepEnterUsername, sess.RecoveryStep())
	assert.Empty(t, sess.State().RecoveryOptions)
}
