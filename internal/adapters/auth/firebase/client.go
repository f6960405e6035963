package firebase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petpals-backend/internal/platform/httpclient"
	"petpals-backend/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("firebase client not configured")
	ErrUnauthorized  = errors.New("firebase rejected token")
	ErrUpstream      = errors.New("firebase upstream error")
)

// Config del cliente. BaseURL normalmente es
// https://identitytoolkit.googleapis.com y APIKey la web API key del proyecto.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client valida ID tokens contra el endpoint accounts:lookup.
type Client struct {
	apiKey string
	http   *httpclient.Client
}

func NewClient(cfg Config) *Client {
	c := httpclient.New(cfg.Timeout)
	c.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	return &Client{
		apiKey: strings.TrimSpace(cfg.APIKey),
		http:   c,
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

// LookupToken resuelve un ID token a claims del proveedor.
func (c *Client) LookupToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		Users []struct {
			LocalID string `json:"localId"`
			Email   string `json:"email"`
		} `json:"users"`
	}

	err := c.http.DoJSON(ctx, http.MethodPost,
		"/v1/accounts:lookup?key="+c.apiKey,
		nil,
		map[string]string{"idToken": token},
		&out,
	)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusBadRequest || httpErr.StatusCode == http.StatusUnauthorized {
				// accounts:lookup devuelve 400 con INVALID_ID_TOKEN
				return auth.Claims{}, ErrUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(out.Users) == 0 || strings.TrimSpace(out.Users[0].LocalID) == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	return auth.Claims{
		UserID: strings.TrimSpace(out.Users[0].LocalID),
		Email:  strings.TrimSpace(out.Users[0].Email),
	}, nil
}
