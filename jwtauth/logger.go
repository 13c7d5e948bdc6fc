package jwtauth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// SecurityEvent represents a structured security log entry
type SecurityEvent struct {
	EventType     string        // "success" or "failure"
	Transport     string        // "http" or "grpc"
	Timestamp     time.Time     // Event timestamp
	RequestID     string        // Correlation ID
	UserID        int           // id claim (zero on failure)
	Algorithm     string        // alg header, or MALFORMED
	FailureReason ErrorCode     // Error code (on failure)
	Token         string        // Raw token, redacted when logged
	Latency       time.Duration // Validation latency
}

// LogValue implements slog.LogValuer for structured logging with redaction
func (e SecurityEvent) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("event", e.EventType),
		slog.String("transport", e.Transport),
		slog.Time("timestamp", e.Timestamp),
		slog.String("request_id", e.RequestID),
		slog.String("algorithm", e.Algorithm),
		slog.String("token", redactToken(e.Token)),
		slog.Duration("latency", e.Latency),
	}
	if e.EventType == "failure" {
		attrs = append(attrs, slog.String("failure_reason", string(e.FailureReason)))
	} else {
		attrs = append(attrs, slog.String("user_id", strconv.Itoa(e.UserID)))
	}
	return slog.GroupValue(attrs...)
}

// redactToken keeps at most the first 8 characters and the total length.
func redactToken(token string) string {
	if len(token) == 0 {
		return ""
	}
	if len(token) <= 8 {
		return "***"
	}
	return fmt.Sprintf("%s...(%d chars)", token[:8], len(token))
}

// logSecurityEvent emits a security event via the configured logger
func logSecurityEvent(logger *slog.Logger, event SecurityEvent) {
	if logger == nil {
		return
	}

	if event.EventType == "failure" {
		logger.Warn("authentication failed", "auth_event", event)
	} else {
		logger.Info("authentication succeeded", "auth_event", event)
	}
}

// authenticate validates token and records the outcome. Shared by the HTTP
// middleware and the gRPC interceptor.
func authenticate(cfg *Config, transport, requestID, token string, extractErr error, start time.Time) (*Claims, error) {
	var claims *Claims
	err := extractErr
	if err == nil {
		claims, err = parseAndValidateJWT(token, cfg)
	}

	event := SecurityEvent{
		EventType: "success",
		Transport: transport,
		Timestamp: time.Now(),
		RequestID: requestID,
		Algorithm: extractAlgorithmFromToken(token),
		Token:     token,
		Latency:   time.Since(start),
	}
	if err != nil {
		event.EventType = "failure"
		event.FailureReason = CodeOf(err)
	} else {
		event.UserID = claims.UserID
	}
	logSecurityEvent(cfg.Logger(), event)

	return claims, err
}

// extractAlgorithmFromToken reads the alg header without verifying anything.
func extractAlgorithmFromToken(token string) string {
	header, _, ok := strings.Cut(token, ".")
	if !ok {
		return "MALFORMED"
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(header)
	if err != nil {
		return "MALFORMED"
	}

	var parsed struct {
		Alg any `json:"alg"`
	}
	if err := json.Unmarshal(headerBytes, &parsed); err != nil {
		return "MALFORMED"
	}

	if alg, ok := parsed.Alg.(string); ok {
		return alg
	}
	return "MALFORMED"
}
