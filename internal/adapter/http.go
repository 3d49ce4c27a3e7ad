package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the account fields to
// POST /api/auth/register and stores the token from the response body via
// SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, fullName, email, password string) (models.AuthResponse, error) {
	var account models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"fullName": fullName, "email": email, "password": password}).
		SetResult(&account).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(account.Token)
	return account, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the token from the response body via
// SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var account models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&account).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(account.Token)
	return account, nil
}

// LoginGoogle implements [ServerAdapter]. It POSTs the Google identity to
// POST /api/auth/google and stores the token from the response body via
// SetToken.
func (h *httpServerAdapter) LoginGoogle(ctx context.Context, fullName, email, googleID string) (models.AuthResponse, error) {
	var account models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"fullName": fullName, "email": email, "googleId": googleID}).
		SetResult(&account).
		Post("/api/auth/google")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("google login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(account.Token)
	return account, nil
}

// Me implements [ServerAdapter]. It GETs GET /api/auth/me and decodes the
// account record. Requires a valid bearer token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var account models.User
	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}

	return account, nil
}

// TrackDownload implements [ServerAdapter]. It POSTs to
// POST /api/auth/track-download and decodes the updated counter state.
// Requires a valid bearer token. Returns [ErrForbidden] (wrapped) when the
// free download limit is reached.
func (h *httpServerAdapter) TrackDownload(ctx context.Context) (models.DownloadStatus, error) {
	resp, err := h.authedRequest(ctx).Post("/api/auth/track-download")
	if err != nil {
		return models.DownloadStatus{}, fmt.Errorf("track download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadStatus{}, err
	}

	var status models.DownloadStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.DownloadStatus{}, fmt.Errorf("decode track download response: %w", err)
	}

	return status, nil
}

// ForgotPassword implements [ServerAdapter]. It POSTs the email to
// POST /api/auth/forgot-password.
func (h *httpServerAdapter) ForgotPassword(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/api/auth/forgot-password")
	if err != nil {
		return fmt.Errorf("forgot password request: %w", err)
	}

	return mapHTTPError(resp)
}

// ResetPassword implements [ServerAdapter]. It POSTs the email, code, and new
// password to POST /api/auth/reset-password.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "otp": otp, "newPassword": newPassword}).
		Post("/api/auth/reset-password")
	if err != nil {
		return fmt.Errorf("reset password request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateOrder implements [ServerAdapter]. It POSTs to POST /api/create-order
// and decodes the opened payment order. Requires a valid bearer token.
func (h *httpServerAdapter) CreateOrder(ctx context.Context) (models.PaymentOrder, error) {
	resp, err := h.authedRequest(ctx).Post("/api/create-order")
	if err != nil {
		return models.PaymentOrder{}, fmt.Errorf("create order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PaymentOrder{}, err
	}

	var order models.PaymentOrder
	if err = json.Unmarshal(resp.Body(), &order); err != nil {
		return models.PaymentOrder{}, fmt.Errorf("decode create order response: %w", err)
	}

	return order, nil
}

// VerifyPayment implements [ServerAdapter]. It POSTs the checkout result to
// POST /api/verify-payment. Requires a valid bearer token.
func (h *httpServerAdapter) VerifyPayment(ctx context.Context, verification models.PaymentVerification) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(verification).
		Post("/api/verify-payment")
	if err != nil {
		return fmt.Errorf("verify payment request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
