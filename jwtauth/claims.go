package jwtauth

import "time"

// Token types carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims represents parsed and validated token claims. Field names follow the
// demo service's user payload.
type Claims struct {
	UserID    int       // id claim
	Username  string    // username claim
	Email     string    // email claim
	FirstName string    // firstName claim
	LastName  string    // lastName claim
	Gender    string    // gender claim
	Image     string    // image claim
	Role      string    // role claim
	TokenType string    // typ claim
	TokenID   string    // jti claim
	IssuedAt  time.Time // iat claim
	ExpiresAt time.Time // exp claim
	Custom    map[string]interface{}
}

// Identity is the user data an Issuer embeds in tokens.
type Identity struct {
	ID        int
	Username  string
	Email     string
	FirstName string
	LastName  string
	Gender    string
	Image     string
	Role      string
}

// Identity returns the user data carried by the claims.
func (c *Claims) Identity() Identity {
	return Identity{
		ID:        c.UserID,
		Username:  c.Username,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Gender:    c.Gender,
		Image:     c.Image,
		Role:      c.Role,
	}
}
