package jwtauth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Validate parses tokenString and checks its algorithm, signature, expiry,
// token type and required claims.
func (c *Config) Validate(tokenString string) (*Claims, error) {
	return parseAndValidateJWT(tokenString, c)
}

// parseAndValidateJWT parses and validates a token string
func parseAndValidateJWT(tokenString string, cfg *Config) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, NewValidationError(ErrMissingToken, "token is empty", nil)
	}

	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (interface{}, error) {
			return validateAlgorithm(token, cfg)
		},
		jwt.WithLeeway(cfg.ClockSkewLeeway()),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, classifyParseError(err)
	}

	if !token.Valid {
		return nil, NewValidationError(ErrInvalidSignature, "token is invalid", nil)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, NewValidationError(ErrMalformed, "invalid claims format", nil)
	}

	claims := mapJWTClaimsToClaims(mapClaims)

	if cfg.TokenType() != "" && claims.TokenType != cfg.TokenType() {
		return nil, NewValidationError(
			ErrWrongTokenType,
			fmt.Sprintf("expected %s token, got %q", cfg.TokenType(), claims.TokenType),
			nil,
		)
	}

	if err := validateRequiredClaims(mapClaims, cfg); err != nil {
		return nil, err
	}

	return claims, nil
}

// classifyParseError maps golang-jwt errors onto validation codes. Errors
// raised by validateAlgorithm come back wrapped and are returned as is.
func classifyParseError(err error) *ValidationError {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return NewValidationError(ErrExpired, "token has expired", err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return NewValidationError(ErrExpired, "token is not valid yet", err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return NewValidationError(ErrInvalidSignature, "invalid signature", err)
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return NewValidationError(ErrMalformed, "token has no expiry", err)
	}
	return NewValidationError(ErrMalformed, "malformed token", err)
}

// validateAlgorithm ensures the token uses the configured algorithm and returns the signing key
func validateAlgorithm(token *jwt.Token, cfg *Config) (interface{}, error) {
	alg, ok := token.Header["alg"].(string)
	if !ok {
		if _, exists := token.Header["alg"]; exists {
			return nil, NewValidationError(ErrMalformedAlgorithmHeader, "algorithm header must be a string", nil)
		}
		return nil, NewValidationError(ErrMalformed, "missing algorithm in token header", nil)
	}

	if strings.EqualFold(alg, "none") {
		return nil, NewValidationError(ErrNoneAlgorithm, "none algorithm not allowed", nil)
	}

	if alg != cfg.Algorithm() {
		return nil, NewValidationError(
			ErrUnsupportedAlgorithm,
			fmt.Sprintf("algorithm %s not supported (available: %s)", alg, cfg.Algorithm()),
			nil,
		)
	}

	// Guards against a header that names HS256 while the parsed method differs.
	if token.Method.Alg() != cfg.signingMethod.Alg() {
		return nil, NewValidationError(
			ErrInvalidSignature,
			fmt.Sprintf("algorithm confusion detected: token method %s does not match expected method %s",
				token.Method.Alg(), cfg.signingMethod.Alg()),
			nil,
		)
	}

	return cfg.secret, nil
}

var standardClaims = map[string]bool{
	"id": true, "username": true, "email": true, "firstName": true,
	"lastName": true, "gender": true, "image": true, "role": true,
	"typ": true, "jti": true, "iat": true, "exp": true,
}

// mapJWTClaimsToClaims converts jwt.MapClaims to our Claims struct
func mapJWTClaimsToClaims(mapClaims jwt.MapClaims) *Claims {
	claims := &Claims{
		Custom: make(map[string]interface{}),
	}

	if id, ok := mapClaims["id"].(float64); ok {
		claims.UserID = int(id)
	}
	claims.Username, _ = mapClaims["username"].(string)
	claims.Email, _ = mapClaims["email"].(string)
	claims.FirstName, _ = mapClaims["firstName"].(string)
	claims.LastName, _ = mapClaims["lastName"].(string)
	claims.Gender, _ = mapClaims["gender"].(string)
	claims.Image, _ = mapClaims["image"].(string)
	claims.Role, _ = mapClaims["role"].(string)
	claims.TokenType, _ = mapClaims["typ"].(string)
	claims.TokenID, _ = mapClaims["jti"].(string)

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	for key, value := range mapClaims {
		if !standardClaims[key] {
			claims.Custom[key] = value
		}
	}

	return claims
}

// validateRequiredClaims ensures all required claims are present
func validateRequiredClaims(mapClaims jwt.MapClaims, cfg *Config) error {
	for _, claimName := range cfg.RequiredClaims() {
		if _, ok := mapClaims[claimName]; !ok {
			return NewValidationError(
				ErrMalformed,
				fmt.Sprintf("required claim missing: %s", claimName),
				nil,
			)
		}
	}
	return nil
}
