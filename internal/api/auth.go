package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/mkuznetsova/habitadm/internal/models"
)

// Login exchanges credentials for a bearer token. The backend expects a
// form-encoded body, not JSON. The token is NOT installed on the client;
// the session layer decides that after the admin check passes.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set(headerContentType, contentTypeForm)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &AuthError{Message: "Неверный логин или пароль"}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := decodeJSON(resp.Body, &payload); err != nil {
		return "", err
	}
	return payload.AccessToken, nil
}

// Me fetches the identity record for the current token.
func (c *Client) Me(ctx context.Context) (models.Identity, error) {
	var me models.Identity
	err := c.get(ctx, "/auth/me", &me)
	return me, err
}
