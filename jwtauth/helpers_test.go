package jwtauth

import (
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newSecret(t testing.TB) []byte {
	t.Helper()
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		t.Fatalf("Failed to generate secret: %v", err)
	}
	return secret
}

func newTestConfig(t testing.TB, secret []byte, opts ...ConfigOption) *Config {
	t.Helper()
	cfg, err := NewConfig(append([]ConfigOption{WithHS256(secret)}, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}
	return cfg
}

func signHS256(t testing.TB, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return tokenString
}

var emilys = Identity{
	ID:        1,
	Username:  "emilys",
	Email:     "emily.johnson@x.dummyjson.com",
	FirstName: "Emily",
	LastName:  "Johnson",
	Gender:    "female",
	Image:     "https://dummyjson.com/icon/emilys/128",
	Role:      "admin",
}

func issueAccessToken(t testing.TB, cfg *Config) string {
	t.Helper()
	pair, err := NewIssuer(cfg).Issue(emilys, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return pair.AccessToken
}
