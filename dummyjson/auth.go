package dummyjson

import "context"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins,omitempty"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken  string `json:"refreshToken"`
	ExpiresInMins int    `json:"expiresInMins,omitempty"`
}

// AuthUser is the user block returned by login and /auth/me.
type AuthUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

// Session is a successful login or refresh response.
type Session struct {
	AuthUser
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest, opts ...RequestOption) (*Response, error) {
	return c.post(ctx, "/auth/login", req, opts...)
}

// CurrentUser calls GET /auth/me; pass Bearer or BearerSpecimen.
func (c *Client) CurrentUser(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.get(ctx, "/auth/me", opts...)
}

func (c *Client) RefreshSession(ctx context.Context, req RefreshRequest, opts ...RequestOption) (*Response, error) {
	return c.post(ctx, "/auth/refresh", req, opts...)
}

// AccessToken logs in and returns the access token, or an error when the
// login is not accepted.
func (c *Client) AccessToken(ctx context.Context, username, password string) (string, error) {
	resp, err := c.Login(ctx, LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	if resp.StatusCode != 200 {
		return "", &StatusError{Op: "login", StatusCode: resp.StatusCode, Message: resp.Message()}
	}
	var session Session
	if err := resp.Decode(&session); err != nil {
		return "", err
	}
	return session.AccessToken, nil
}
