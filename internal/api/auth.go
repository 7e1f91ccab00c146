package api

import (
	"context"
	"net/http"
)

// Register creates a new account. The starting weight is stored immutably on
// the user; the current weight starts equal to it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var user User
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   req,
		op:     "registering the user",
		shape:  errText,
	}, &user)
	return user, err
}

// Login exchanges credentials for the user plus a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body: map[string]string{
			"username": username,
			"password": password,
		},
		op:    "logging in",
		shape: errText,
	}, &result)
	return result, err
}

// ValidateToken checks a stored credential against the backend. A nil error
// means the token is still accepted.
func (c *Client) ValidateToken(ctx context.Context, auth Auth) error {
	return c.do(ctx, call{
		method: http.MethodGet,
		path:   "/auth/validate",
		auth:   &auth,
		op:     "validating the session",
		shape:  errText,
	}, nil)
}
