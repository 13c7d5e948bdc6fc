package jwtauth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/tokenfault"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(cfg *Config) *gin.Engine {
	router := gin.New()
	router.GET("/me", JWTAuth(cfg), func(c *gin.Context) {
		claims := MustGetClaims(c.Request.Context())
		requestID, _ := GetRequestID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "username": claims.Username, "requestId": requestID})
	})
	return router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body %q: %v", w.Body.String(), err)
	}
	return body.Message
}

func TestJWTAuthSuccess(t *testing.T) {
	cfg := newTestConfig(t, newSecret(t))
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueAccessToken(t, cfg))
	req.Header.Set("X-Request-ID", "req-123")
	w := serve(router, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("Expected request id to be echoed, got %q", got)
	}

	var body struct {
		ID        int    `json:"id"`
		Username  string `json:"username"`
		RequestID string `json:"requestId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.ID != emilys.ID || body.Username != emilys.Username || body.RequestID != "req-123" {
		t.Errorf("Unexpected body: %+v", body)
	}
}

func TestJWTAuthFailureResponses(t *testing.T) {
	secret := newSecret(t)
	cfg := newTestConfig(t, secret)
	router := newTestRouter(cfg)
	expired := tokenfault.New(tokenfault.WithSeed(1)).ExpiredJWT(string(secret))

	tests := []struct {
		name          string
		authorization string
		status        int
		message       string
		challenge     string
	}{
		{"no header", "", http.StatusUnauthorized, "Access Token is required", "Bearer"},
		{"bare scheme", "Bearer ", http.StatusUnauthorized, "Access Token is required", "Bearer"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "Invalid/Expired Token!", `error_description="MALFORMED"`},
		{"literal null", "Bearer null", http.StatusUnauthorized, "Invalid/Expired Token!", `error_description="MALFORMED"`},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token Expired!", `error_description="EXPIRED"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := serve(router, req)

			if w.Code != tt.status {
				t.Fatalf("Expected %d, got %d", tt.status, w.Code)
			}
			if msg := decodeMessage(t, w); msg != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, msg)
			}
			if got := w.Header().Get("WWW-Authenticate"); !strings.Contains(got, tt.challenge) {
				t.Errorf("Expected WWW-Authenticate containing %q, got %q", tt.challenge, got)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("Expected generated X-Request-ID")
			}
		})
	}
}

func TestJWTAuthRejectsEveryFaultCategory(t *testing.T) {
	cfg := newTestConfig(t, newSecret(t))
	router := newTestRouter(cfg)
	valid := issueAccessToken(t, cfg)

	for category, specimen := range tokenfault.New(tokenfault.WithSeed(11)).All(tokenfault.Text(valid)) {
		t.Run(string(category), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if !specimen.IsUndefined() {
				req.Header.Set("Authorization", "Bearer "+specimen.String())
			}
			w := serve(router, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("Expected 401, got %d", w.Code)
			}
			if decodeMessage(t, w) == "" {
				t.Error("Expected a non-empty message")
			}
		})
	}
}

func TestJWTAuthCookieFallback(t *testing.T) {
	cfg := newTestConfig(t, newSecret(t), WithCookie("accessToken"))
	router := newTestRouter(cfg)
	token := issueAccessToken(t, cfg)

	t.Run("cookie used without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		if w := serve(router, req); w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("broken header not rescued", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		if w := serve(router, req); w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", w.Code)
		}
	})

	t.Run("empty cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: ""})
		w := serve(router, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", w.Code)
		}
		if msg := decodeMessage(t, w); msg != "Access Token is required" {
			t.Errorf("Unexpected message %q", msg)
		}
	})
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		header   string
		token    string
		expected ErrorCode
	}{
		{"Bearer abc", "abc", ""},
		{"bearer abc", "abc", ""},
		{"Bearer   abc  ", "abc", ""},
		{"Bearer", "", ErrMissingToken},
		{"Bearer    ", "", ErrMissingToken},
		{"Token abc", "", ErrMalformed},
		{"abc", "", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := parseBearer(tt.header)
			if tt.expected == "" {
				if err != nil || token != tt.token {
					t.Errorf("Expected %q, got %q (%v)", tt.token, token, err)
				}
				return
			}
			if CodeOf(err) != tt.expected {
				t.Errorf("Expected %s, got %v", tt.expected, err)
			}
		})
	}
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		code    ErrorCode
		message string
	}{
		{ErrMissingToken, "Access Token is required"},
		{ErrExpired, "Token Expired!"},
		{ErrInvalidSignature, "Invalid/Expired Token!"},
		{ErrMalformed, "Invalid/Expired Token!"},
		{ErrNoneAlgorithm, "Invalid/Expired Token!"},
	}

	for _, tt := range tests {
		if got := FailureMessage(NewValidationError(tt.code, "x", nil)); got != tt.message {
			t.Errorf("%s: expected %q, got %q", tt.code, tt.message, got)
		}
	}
}
