package jwtauth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultAccessTTL  = 60 * time.Minute
	DefaultRefreshTTL = 30 * 24 * time.Hour
)

// TokenPair is the result of a login or refresh.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// Issuer mints access and refresh tokens signed with the Config's secret.
type Issuer struct {
	cfg        *Config
	refreshTTL time.Duration
	now        func() time.Time
}

// IssuerOption configures an Issuer.
type IssuerOption func(*Issuer)

// WithRefreshTTL sets the refresh token lifetime.
func WithRefreshTTL(ttl time.Duration) IssuerOption {
	return func(i *Issuer) {
		if ttl > 0 {
			i.refreshTTL = ttl
		}
	}
}

// WithIssuerClock overrides time.Now for issued-at and expiry stamps.
func WithIssuerClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer creates an Issuer sharing cfg's secret and algorithm.
func NewIssuer(cfg *Config, opts ...IssuerOption) *Issuer {
	i := &Issuer{
		cfg:        cfg,
		refreshTTL: DefaultRefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue mints a token pair for id. accessTTL <= 0 means DefaultAccessTTL.
func (i *Issuer) Issue(id Identity, accessTTL time.Duration) (TokenPair, error) {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	now := i.now()
	pair := TokenPair{
		AccessExpiresAt:  now.Add(accessTTL),
		RefreshExpiresAt: now.Add(i.refreshTTL),
	}

	var err error
	if pair.AccessToken, err = i.sign(id, TokenTypeAccess, now, pair.AccessExpiresAt); err != nil {
		return TokenPair{}, err
	}
	if pair.RefreshToken, err = i.sign(id, TokenTypeRefresh, now, pair.RefreshExpiresAt); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

// Refresh validates a refresh token and mints a new pair for the same user.
func (i *Issuer) Refresh(refreshToken string, accessTTL time.Duration) (TokenPair, *Claims, error) {
	refreshCfg := *i.cfg
	refreshCfg.tokenType = TokenTypeRefresh

	claims, err := parseAndValidateJWT(refreshToken, &refreshCfg)
	if err != nil {
		return TokenPair{}, nil, err
	}
	pair, err := i.Issue(claims.Identity(), accessTTL)
	if err != nil {
		return TokenPair{}, nil, err
	}
	return pair, claims, nil
}

func (i *Issuer) sign(id Identity, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":        id.ID,
		"username":  id.Username,
		"email":     id.Email,
		"firstName": id.FirstName,
		"lastName":  id.LastName,
		"gender":    id.Gender,
		"image":     id.Image,
		"typ":       tokenType,
		"jti":       uuid.NewString(),
		"iat":       issuedAt.Unix(),
		"exp":       expiresAt.Unix(),
	}
	if id.Role != "" {
		claims["role"] = id.Role
	}

	signed, err := jwt.NewWithClaims(i.cfg.signingMethod, claims).SignedString(i.cfg.secret)
	if err != nil {
		return "", NewValidationError(ErrConfigError, fmt.Sprintf("failed to sign %s token", tokenType), err)
	}
	return signed, nil
}
