// Package adapter wraps the remote account HTTP API behind the
// ServerAdapter interface. Authentication is Basic auth re-derived per
// request from the session's cached credentials.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jzupan/go-card-wallet/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	creds  CredentialsProvider
}

// NewHTTPServerAdapter builds the resty-backed ServerAdapter. The default
// timeout matches the 30s connect/read timeouts of the original client.
func NewHTTPServerAdapter(cfg HTTPClientConfig, creds CredentialsProvider) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli, creds: creds}
}

func (h *httpServerAdapter) GetUser(ctx context.Context) (models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.Get("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.User) (models.UserCreationResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/users")
	if err != nil {
		return models.UserCreationResponse{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserCreationResponse{}, err
	}

	var created models.UserCreationResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.UserCreationResponse{}, fmt.Errorf("decode user creation response: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Put("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var updated models.User
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.User{}, fmt.Errorf("decode updated user response: %w", err)
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/api/users")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Verify(ctx context.Context, vr models.VerificationRequest) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(vr).
		Post("/api/users/verify")
	if err != nil {
		return fmt.Errorf("verify request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ResendVerificationCodes(ctx context.Context) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	resp, err := req.Post("/api/users/resend-codes")
	if err != nil {
		return "", fmt.Errorf("resend codes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (h *httpServerAdapter) InitiateRecovery(ctx context.Context, r models.RecoveryInitiateRequest) ([]models.RecoveryOption, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(r).
		Post("/api/recovery/initiate")
	if err != nil {
		return nil, fmt.Errorf("initiate recovery request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var options []models.RecoveryOption
	if err = json.Unmarshal(resp.Body(), &options); err != nil {
		return nil, fmt.Errorf("decode recovery options: %w", err)
	}
	return options, nil
}

func (h *httpServerAdapter) SendRecoveryCode(ctx context.Context, r models.SendRecoveryCodeRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(r).
		Post("/api/recovery/send-code")
	if err != nil {
		return "", fmt.Errorf("send recovery code request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, r models.RecoveryResetRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(r).
		Post("/api/recovery/reset")
	if err != nil {
		return "", fmt.Errorf("reset password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	username, password, ok := h.creds.BasicAuth()
	if !ok {
		return nil, ErrNoCredentials
	}
	return h.client.R().SetContext(ctx).SetBasicAuth(username, password), nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return &ServerError{Status: resp.StatusCode(), Message: body}
}
