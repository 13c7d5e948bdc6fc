package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestValidateIssuedToken(t *testing.T) {
	cfg := newTestConfig(t, newSecret(t), WithTokenType(TokenTypeAccess))
	token := issueAccessToken(t, cfg)

	claims, err := cfg.Validate(token)
	if err != nil {
		t.Fatalf("Valid token rejected: %v", err)
	}

	if claims.UserID != emilys.ID || claims.Username != emilys.Username || claims.Email != emilys.Email {
		t.Errorf("Unexpected identity claims: %+v", claims)
	}
	if claims.Identity() != emilys {
		t.Errorf("Identity round trip mismatch: %+v", claims.Identity())
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("Expected access token type, got %q", claims.TokenType)
	}
	if claims.TokenID == "" {
		t.Error("Expected jti claim")
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Errorf("Expected future expiry, got %v", claims.ExpiresAt)
	}
}

func TestValidateErrorCodes(t *testing.T) {
	secret := newSecret(t)
	cfg := newTestConfig(t, secret, WithClockSkew(0))
	future := time.Now().Add(time.Hour).Unix()

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": 1, "exp": future}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	hs384Token, _ := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{"id": 1, "exp": future}).
		SignedString(secret)

	numericAlg := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1, "exp": future})
	numericAlg.Header["alg"] = 256
	numericAlgToken, _ := numericAlg.SignedString(secret)

	tests := []struct {
		name     string
		token    string
		expected ErrorCode
	}{
		{"empty token", "", ErrMissingToken},
		{"blank token", "   ", ErrMissingToken},
		{"not a JWT", "not-a-jwt", ErrMalformed},
		{"two segments", "a.b", ErrMalformed},
		{"expired", signHS256(t, secret, jwt.MapClaims{"id": 1, "exp": time.Now().Add(-time.Minute).Unix()}), ErrExpired},
		{"no expiry", signHS256(t, secret, jwt.MapClaims{"id": 1}), ErrMalformed},
		{"wrong key", signHS256(t, newSecret(t), jwt.MapClaims{"id": 1, "exp": future}), ErrInvalidSignature},
		{"none algorithm", noneToken, ErrNoneAlgorithm},
		{"other HMAC algorithm", hs384Token, ErrUnsupportedAlgorithm},
		{"non-string alg header", numericAlgToken, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cfg.Validate(tt.token)
			if err == nil {
				t.Fatalf("Expected %s, got nil", tt.expected)
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if CodeOf(err) != tt.expected {
				t.Errorf("Expected %s, got %s (%v)", tt.expected, CodeOf(err), err)
			}
		})
	}
}

func TestValidateClockSkew(t *testing.T) {
	secret := newSecret(t)
	token := signHS256(t, secret, jwt.MapClaims{"id": 1, "exp": time.Now().Add(-10 * time.Second).Unix()})

	lenient := newTestConfig(t, secret, WithClockSkew(time.Minute))
	if _, err := lenient.Validate(token); err != nil {
		t.Errorf("Token within clock skew rejected: %v", err)
	}

	strict := newTestConfig(t, secret, WithClockSkew(0))
	if _, err := strict.Validate(token); CodeOf(err) != ErrExpired {
		t.Errorf("Expected EXPIRED without skew, got %v", err)
	}
}

func TestValidateTokenTypeAndRequiredClaims(t *testing.T) {
	secret := newSecret(t)
	future := time.Now().Add(time.Hour).Unix()

	accessOnly := newTestConfig(t, secret, WithTokenType(TokenTypeAccess))
	pair, err := NewIssuer(accessOnly).Issue(emilys, 0)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := accessOnly.Validate(pair.RefreshToken); CodeOf(err) != ErrWrongTokenType {
		t.Errorf("Expected WRONG_TOKEN_TYPE for refresh token, got %v", err)
	}
	untyped := signHS256(t, secret, jwt.MapClaims{"id": 1, "exp": future})
	if _, err := accessOnly.Validate(untyped); CodeOf(err) != ErrWrongTokenType {
		t.Errorf("Expected WRONG_TOKEN_TYPE for untyped token, got %v", err)
	}

	needsTenant := newTestConfig(t, secret, WithRequiredClaims("tenant"))
	if _, err := needsTenant.Validate(untyped); CodeOf(err) != ErrMalformed {
		t.Errorf("Expected MALFORMED for missing claim, got %v", err)
	}
	claims, err := needsTenant.Validate(signHS256(t, secret, jwt.MapClaims{"id": 1, "tenant": "acme", "exp": future}))
	if err != nil {
		t.Fatalf("Token with required claim rejected: %v", err)
	}
	if claims.Custom["tenant"] != "acme" {
		t.Errorf("Expected custom tenant claim, got %v", claims.Custom)
	}
}
