package kimloan

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Login authenticates with a username (or phone number) and password.
// A 401 from the backend, and a 2xx response that carries no access token,
// both surface as ErrCredentialsRejected; there is no partially-successful
// login. Anything else is a transport or server error.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	req := LoginRequest{
		Username: username,
		Password: password,
	}

	var resp TokenResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", ErrCredentialsRejected, apiErr.Detail)
		}

		return nil, fmt.Errorf("logging in: %w", err)
	}

	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: login response carried no access token", ErrCredentialsRejected)
	}

	return &resp, nil
}

// RefreshToken exchanges a refresh token for a fresh token pair.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	req := RefreshRequest{RefreshToken: refreshToken}

	var resp TokenResponse
	if err := c.post(ctx, "/auth/refresh", req, &resp); err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}

	if resp.AccessToken == "" {
		return nil, fmt.Errorf("refreshing token: response carried no access token")
	}

	return &resp, nil
}

// Me returns the current user for the session's access token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, fmt.Errorf("fetching current user: %w", err)
	}

	return &user, nil
}

// Logout notifies the backend that the session identified by accessToken
// has ended. The token is passed explicitly so local session state can be
// cleared before this call is made; the notification is best-effort.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("creating logout request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("logout: %w", &APIError{StatusCode: resp.StatusCode})
	}

	return nil
}

// ChangePassword changes the current user's password.
func (c *Client) ChangePassword(ctx context.Context, current, updated string) error {
	req := ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     updated,
		ConfirmPassword: updated,
	}

	if err := c.post(ctx, "/auth/change-password", req, nil); err != nil {
		return fmt.Errorf("changing password: %w", err)
	}

	return nil
}
