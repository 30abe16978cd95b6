package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the DashDocs accounts service. It provides the
// unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new accounts service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with an email/password pair and returns an
// authenticated Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp SessionResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", "",
		LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// Register redeems an invitation and returns a Session for the freshly
// created member.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var resp SessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// Bootstrap seeds a fresh deployment. The bootstrap token is the
// pre-configured secret of the deployment, not a session token.
func (c *SDKClient) Bootstrap(
	ctx context.Context,
	bootstrapToken string,
	req BootstrapRequest,
) (BootstrapResponse, error) {
	var resp BootstrapResponse
	err := c.do(ctx, http.MethodPost, "/v1/bootstrap", bootstrapToken, req, &resp)
	return resp, err
}

// Livez reports process liveness.
func (c *SDKClient) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", "", nil, &resp)
	return resp, err
}

// Readyz reports whether the service can reach its database.
func (c *SDKClient) Readyz(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", "", nil, &resp)
	return resp, err
}

// do performs a JSON round trip. A non-2xx status is decoded into an
// APIError. A bearer token is attached when non-empty.
func (c *SDKClient) do(
	ctx context.Context,
	method, path, bearer string,
	body, out any,
) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			errResp.Error = ErrorCodeServerError
			errResp.ErrorDescription = resp.Status
		}
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
