package gatewayhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/docuhub/gateway/internal/pkg/logger"
	"github.com/docuhub/gateway/internal/pkg/models"
)

// AuthClient is the HTTP client for the upstream auth service
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAuthClient creates a new auth service client. baseURL must be the
// internal, server-reachable address.
func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	if timeout == 0 {
		timeout = 8 * time.Second
	}
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Login posts form-encoded credentials to the auth service. The field
// name translation (mobile number as "username") is a fixed contract
// with the backend.
func (c *AuthClient) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: login call failed", models.ErrUpstreamUnreachable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading login response", models.ErrUpstreamUnreachable)
	}

	if resp.StatusCode >= 400 {
		return nil, upstreamError(resp.StatusCode, body, "login failed")
	}

	var result models.LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		logger.Warn("malformed login response from auth service", logger.Err(err))
		return nil, models.ErrInvalidUpstreamResponse
	}

	return &result, nil
}

// GetProfile fetches the caller's profile using the given bearer token
func (c *AuthClient) GetProfile(ctx context.Context, accessToken string) (*models.UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: profile call failed", models.ErrUpstreamUnreachable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading profile response", models.ErrUpstreamUnreachable)
	}

	if resp.StatusCode >= 400 {
		return nil, upstreamError(resp.StatusCode, body, "failed to fetch profile")
	}

	var profile models.UserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		logger.Warn("malformed profile response from auth service", logger.Err(err))
		return nil, models.ErrInvalidUpstreamResponse
	}

	return &profile, nil
}

// Signup creates an account on the auth service. Any 2xx answer counts
// as success.
func (c *AuthClient) Signup(ctx context.Context, signupReq *models.SignupRequest) error {
	payload, err := json.Marshal(signupReq)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/signup", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: signup call failed", models.ErrUpstreamUnreachable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading signup response", models.ErrUpstreamUnreachable)
	}

	if resp.StatusCode >= 400 {
		return upstreamError(resp.StatusCode, body, "signup failed")
	}

	return nil
}

// upstreamError builds an UpstreamError from a structured error body.
// FastAPI-style bodies carry the human-readable message under "detail";
// "error" and "message" are accepted as fallbacks.
func upstreamError(statusCode int, body []byte, fallback string) *models.UpstreamError {
	message := extractErrorMessage(body)
	if message == "" {
		message = fmt.Sprintf("%s (status %d)", fallback, statusCode)
	}
	return &models.UpstreamError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func extractErrorMessage(body []byte) string {
	var parsed struct {
		Detail  json.RawMessage `json:"detail"`
		Error   string          `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}

	if len(parsed.Detail) > 0 {
		// detail is usually a plain string; FastAPI validation errors
		// send an object list, which is not safe to relay verbatim
		var detail string
		if err := json.Unmarshal(parsed.Detail, &detail); err == nil {
			return detail
		}
	}
	if parsed.Error != "" {
		return parsed.Error
	}
	return parsed.Message
}
