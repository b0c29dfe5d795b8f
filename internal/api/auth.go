package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"erpx/internal/models"
)

// Login authenticates the user with the server. The returned token is not
// installed or persisted here; the session controller owns that decision.
func (c *Client) Login(username, password string) (*models.AuthResponse, error) {
	reqBody, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/%s/auth/login", c.BaseURL, apiVersion), bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrNetwork, err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			fmt.Printf("Warning: Failed to close response body: %v\n", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s (%d)", models.ErrAuthentication, string(body), resp.StatusCode)
	}

	var auth models.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	}

	if auth.Token == "" {
		return nil, fmt.Errorf("%w: no authentication token in server response", models.ErrMalformedResponse)
	}

	return &auth, nil
}

// GetCurrentUser fetches the user that owns the held token
func (c *Client) GetCurrentUser() (*models.User, error) {
	var user models.User
	if err := c.get("/auth/me", &user); err != nil {
		return nil, err
	}

	if user.ID == 0 || user.Username == "" {
		return nil, fmt.Errorf("%w: missing user fields", models.ErrMalformedResponse)
	}

	return &user, nil
}
