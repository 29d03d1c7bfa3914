package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzupan/go-card-wallet/models"
)

// staticCreds is a CredentialsProvider with fixed credentials.
type staticCreds struct {
	user, pass string
	loggedIn   bool
}

func (c staticCreds) BasicAuth() (string, string, bool) {
	return c.user, c.pass, c.loggedIn
}

func newTestAdapter(serverURL string, creds CredentialsProvider) ServerAdapter {
	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL}, creds)
}

func TestGetUser_SendsBasicAuthPerRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "expected Basic auth header")
		assert.Equal(t, "alice", user)
		assert.Equal(t, "s3cret", pass)

		_ = json.NewEncoder(w).Encode(models.User{Username: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, staticCreds{user: "alice", pass: "s3cret", loggedIn: true})
	got, err := a.GetUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestGetUser_NoCredentials(t *testing.T) {
	a := newTestAdapter("http://localhost:1", staticCreds{})

	_, err := a.GetUser(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestGetUser_UnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, staticCreds{user: "alice", pass: "wrong", loggedIn: true})
	_, err := a.GetUser(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateUser_NoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "registration is unauthenticated")

		_ = json.NewEncoder(w).Encode(models.UserCreationResponse{
			Message:  "created",
			UserID:   7,
			Username: "alice",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, staticCreds{})
	created, err := a.CreateUser(context.Background(), models.User{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
}

func TestCreateUser_ServerErrorCarriesVerbatimBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("username already taken"))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, staticCreds{})
	_, err := a.CreateUser(context.Background(), models.User{Username: "alice"})

	require.Error(t, err)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusConflict, serverErr.Status)
	assert.Equal(t, "username already taken", serverErr.Message)
}

func TestUpdateUser_SendsCardsAsAuthoritativeList(t *testing.T) {
	cards := []models.Card{{ID: "x1", Number: "123", Code: models.Code128}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var got models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Len(t, got.Cards, 1)
		assert.Equal(t, "x1", got.Cards[0].ID)

		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, staticCreds{user: "alice", pass: "s3cret", loggedIn: true})
	updated, err := a.UpdateUser(context.Background(), models.User{Username: "alice", Cards: cards})

	require.NoError(t, err)
	require.Len(t, updated.Cards, 1)
}

func TestDeleteUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, staticCreds{user: "alice", pass: "s3cret", loggedIn: true})
	assert.NoError(t, a.DeleteUser(context.Background()))
}

func TestVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/verify", r.URL.Path)

		var req models.VerificationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.VerificationEmail, req.Type)
		assert.Equal(t, "123456", req.Code)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, staticCreds{user: "alice", pass: "s3cret", loggedIn: true})
	err := a.Verify(context.Background(), models.VerificationRequest{
		Code: "123456",
		Type: models.VerificationEmail,
	})
	assert.NoError(t, err)
}

func TestInitiateRecovery_DecodesMaskedOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recovery/initiate", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.RecoveryOption{
			{Channel: models.VerificationEmail, MaskedValue: "ali**@g****.com"},
			{Channel: models.VerificationPhone, MaskedValue: "386****123"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, staticCreds{})
	options, err := a.InitiateRecovery(context.Background(), models.RecoveryInitiateRequest{Username: "alice"})

	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, models.VerificationEmail, options[0].Channel)
}

func TestResetPassword_ReturnsBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recovery/reset", r.URL.Path)
		_, _ = w.Write([]byte("password reset"))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, staticCreds{})
	msg, err := a.ResetPassword(context.Background(), models.RecoveryResetRequest{
		Username:     "alice",
		RecoveryCode: "000111",
		NewPassword:  "NewPass1",
	})

	require.NoError(t, err)
	assert.Equal(t, "password reset", msg)
}
