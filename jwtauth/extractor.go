package jwtauth

import (
	"net/http"
	"strings"

	"google.golang.org/grpc/metadata"
)

// parseBearer splits an Authorization value into its token. A bare "Bearer"
// counts as a missing token: HTTP stacks trim the trailing space of
// "Bearer ".
func parseBearer(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if strings.EqualFold(authHeader, "bearer") {
		return "", NewValidationError(ErrMissingToken, "token is empty", nil)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", NewValidationError(ErrMalformed, "invalid authorization format, expected 'Bearer <token>'", nil)
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", NewValidationError(ErrMissingToken, "token is empty", nil)
	}

	return token, nil
}

// extractTokenFromHeader extracts the token from the Authorization header
func extractTokenFromHeader(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", NewValidationError(ErrMissingToken, "authorization header not found", nil)
	}
	return parseBearer(authHeader)
}

// extractTokenFromCookie extracts the token from a cookie
func extractTokenFromCookie(r *http.Request, cookieName string) (string, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return "", NewValidationError(ErrMissingToken, "cookie not found", err)
	}

	token := strings.TrimSpace(cookie.Value)
	if token == "" {
		return "", NewValidationError(ErrMissingToken, "cookie value is empty", nil)
	}

	return token, nil
}

// extractToken checks the Authorization header first, then the cookie if
// configured. A present but broken header is not rescued by the cookie.
func extractToken(r *http.Request, cfg *Config) (string, error) {
	token, err := extractTokenFromHeader(r)
	if err == nil {
		return token, nil
	}

	if cfg.CookieName() != "" && r.Header.Get("Authorization") == "" {
		if token, cookieErr := extractTokenFromCookie(r, cfg.CookieName()); cookieErr == nil {
			return token, nil
		}
	}

	return "", err
}

// extractTokenFromMetadata extracts the token from gRPC metadata
func extractTokenFromMetadata(md metadata.MD) (string, error) {
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", NewValidationError(ErrMissingToken, "authorization metadata not found", nil)
	}
	return parseBearer(values[0])
}
