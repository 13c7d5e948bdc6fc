package tokenfault

import "github.com/golang-jwt/jwt/v5"

// Signer turns a claim set into a signed compact token.
type Signer interface {
	Sign(claims map[string]any, secret []byte) (string, error)
}

// SignerFunc adapts a function to Signer.
type SignerFunc func(claims map[string]any, secret []byte) (string, error)

func (f SignerFunc) Sign(claims map[string]any, secret []byte) (string, error) {
	return f(claims, secret)
}

// HS256Signer signs with HMAC-SHA256.
type HS256Signer struct{}

func (HS256Signer) Sign(claims map[string]any, secret []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims)).SignedString(secret)
}
