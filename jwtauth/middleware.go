package jwtauth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FailureMessage returns the client-facing message for an authentication
// failure, worded the way the demo service words it.
func FailureMessage(err error) string {
	switch CodeOf(err) {
	case ErrMissingToken:
		return "Access Token is required"
	case ErrExpired:
		return "Token Expired!"
	}
	return "Invalid/Expired Token!"
}

// JWTAuth returns a Gin middleware handler for bearer token authentication.
// Failures abort with 401, a {"message": ...} body and a WWW-Authenticate
// header naming the error code.
func JWTAuth(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		token, extractErr := extractToken(c.Request, cfg)
		claims, err := authenticate(cfg, "http", requestID, token, extractErr, startTime)
		if err != nil {
			c.Header("WWW-Authenticate", challenge(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, buildErrorResponse(err))
			return
		}

		ctx := WithClaims(c.Request.Context(), claims)
		ctx = WithRequestID(ctx, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// buildErrorResponse constructs the failure body
func buildErrorResponse(err error) gin.H {
	return gin.H{"message": FailureMessage(err)}
}

// challenge builds an RFC 6750 WWW-Authenticate value.
func challenge(err error) string {
	code := CodeOf(err)
	if code == ErrMissingToken {
		return "Bearer"
	}
	return fmt.Sprintf(`Bearer error="invalid_token", error_description=%q`, string(code))
}
