package jwtauth

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum HS256 secret size in bytes.
const MinSecretLength = 32

// Config holds immutable configuration for token validation
type Config struct {
	secret          []byte
	signingMethod   jwt.SigningMethod
	clockSkewLeeway time.Duration
	cookieName      string
	tokenType       string
	requiredClaims  []string
	logger          *slog.Logger
}

// ConfigOption is a functional option for configuring validation
type ConfigOption func(*Config) error

// NewConfig creates a new immutable configuration with the given options
func NewConfig(opts ...ConfigOption) (*Config, error) {
	cfg := &Config{
		clockSkewLeeway: 60 * time.Second,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, NewValidationError(ErrConfigError, fmt.Sprintf("configuration error: %v", err), err)
		}
	}

	if cfg.signingMethod == nil || len(cfg.secret) == 0 {
		return nil, NewValidationError(ErrConfigError, "a signing secret must be configured (use WithHS256)", nil)
	}

	return cfg, nil
}

// With returns a copy of c with opts applied on top.
func (c *Config) With(opts ...ConfigOption) (*Config, error) {
	cp := *c
	cp.requiredClaims = append([]string(nil), c.requiredClaims...)
	for _, opt := range opts {
		if err := opt(&cp); err != nil {
			return nil, NewValidationError(ErrConfigError, fmt.Sprintf("configuration error: %v", err), err)
		}
	}
	return &cp, nil
}

// WithHS256 configures HMAC-SHA256 validation with the given secret
func WithHS256(secret []byte) ConfigOption {
	return func(c *Config) error {
		if len(secret) < MinSecretLength {
			return fmt.Errorf("HS256 secret must be at least %d bytes (256 bits), got %d bytes", MinSecretLength, len(secret))
		}
		c.secret = append([]byte(nil), secret...)
		c.signingMethod = jwt.SigningMethodHS256
		return nil
	}
}

// WithClockSkew sets the clock skew tolerance for exp validation
func WithClockSkew(skew time.Duration) ConfigOption {
	return func(c *Config) error {
		if skew < 0 {
			return fmt.Errorf("clock skew must be non-negative, got %v", skew)
		}
		c.clockSkewLeeway = skew
		return nil
	}
}

// WithCookie enables token extraction from a cookie with the given name
func WithCookie(cookieName string) ConfigOption {
	return func(c *Config) error {
		c.cookieName = cookieName
		return nil
	}
}

// WithTokenType rejects tokens whose typ claim differs from tokenType.
// Tokens without a typ claim are rejected too.
func WithTokenType(tokenType string) ConfigOption {
	return func(c *Config) error {
		if tokenType != TokenTypeAccess && tokenType != TokenTypeRefresh {
			return fmt.Errorf("unknown token type %q", tokenType)
		}
		c.tokenType = tokenType
		return nil
	}
}

// WithLogger sets a structured logger for security events
func WithLogger(logger *slog.Logger) ConfigOption {
	return func(c *Config) error {
		c.logger = logger
		return nil
	}
}

// WithRequiredClaims specifies claim names that must be present in the token
func WithRequiredClaims(claims ...string) ConfigOption {
	return func(c *Config) error {
		c.requiredClaims = append(c.requiredClaims, claims...)
		return nil
	}
}

// Algorithm returns the configured signing algorithm name.
func (c *Config) Algorithm() string {
	return c.signingMethod.Alg()
}

func (c *Config) ClockSkewLeeway() time.Duration {
	return c.clockSkewLeeway
}

func (c *Config) CookieName() string {
	return c.cookieName
}

func (c *Config) TokenType() string {
	return c.tokenType
}

func (c *Config) RequiredClaims() []string {
	return c.requiredClaims
}

func (c *Config) Logger() *slog.Logger {
	return c.logger
}
