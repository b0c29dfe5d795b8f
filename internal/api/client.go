package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"erpx/internal/models"
)

// apiVersion is the base path prefix for all backend endpoints
const apiVersion = "api"

// Client handles communication with the ERP backend
type Client struct {
	// Base URL of the API server
	BaseURL string

	// Authentication token, empty when no session is held
	AuthToken string

	// HTTP client with a timeout
	client *http.Client

	// Token store for managing authentication tokens
	tokenStore *models.TokenStore
}

// NewClient creates a new API client. A previously persisted token, if any,
// is installed immediately.
func NewClient(baseURL string, tokenStore *models.TokenStore) *Client {
	token := ""
	if tokenStore != nil {
		storedToken, err := tokenStore.GetToken()
		if err == nil && storedToken != "" {
			token = storedToken
		}
	}

	return &Client{
		BaseURL:    baseURL,
		AuthToken:  token,
		tokenStore: tokenStore,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetAuthToken replaces the held token. An empty string clears it. Side
// effect only, no network call.
func (c *Client) SetAuthToken(token string) {
	c.AuthToken = token
}

func (c *Client) get(path string, out interface{}) error {
	return c.do(http.MethodGet, path, nil, out)
}

func (c *Client) post(path string, body interface{}, out interface{}) error {
	return c.do(http.MethodPost, path, body, out)
}

// do performs a request against the backend and decodes the JSON response
// into out. The bearer header is attached only when a token is held; the
// backend is the sole enforcer of access control.
func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	url := fmt.Sprintf("%s/%s%s", c.BaseURL, apiVersion, path)
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrNetwork, err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			fmt.Printf("Warning: Failed to close response body: %v\n", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	}

	return nil
}

// statusError maps a non-2xx response to one of the named error kinds
func statusError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	msg := strings.TrimSpace(string(bodyBytes))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s (%d)", models.ErrUnauthorized, msg, resp.StatusCode)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s (%d)", models.ErrNotFound, msg, resp.StatusCode)
	default:
		return fmt.Errorf("request failed: %s (%d)", msg, resp.StatusCode)
	}
}
