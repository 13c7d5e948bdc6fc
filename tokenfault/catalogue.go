package tokenfault

// CatalogueVersion names the revision of the fixed token catalogues below.
// Bump it whenever an entry is added or removed.
const CatalogueVersion = "2"

// StructuralFault describes how a malformed token breaks the
// header.payload.signature shape.
type StructuralFault string

const (
	FaultMissingHeader     StructuralFault = "missing-header"
	FaultMissingPayload    StructuralFault = "missing-payload"
	FaultMissingSignature  StructuralFault = "missing-signature"
	FaultWrongSegmentCount StructuralFault = "wrong-segment-count"
	FaultTrailingDot       StructuralFault = "trailing-dot"
	FaultNonBase64         StructuralFault = "non-base64"
)

// MalformedToken is one catalogue entry.
type MalformedToken struct {
	Fault StructuralFault
	Token string
}

const (
	hs256Header   = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9" // {"alg":"HS256","typ":"JWT"}
	samplePayload = "eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ"
	shortPayload  = "eyJzdWIiOiIxMjM0NTY3ODkwIn0"

	// staticExpiredToken decodes to {"sub":"1234567890","exp":1516239022}.
	staticExpiredToken = hs256Header + ".eyJzdWIiOiIxMjM0NTY3ODkwIiwiZXhwIjoxNTE2MjM5MDIyfQ.expired"
)

// No entry splits into exactly three non-empty segments.
var malformedCatalogue = []MalformedToken{
	{FaultWrongSegmentCount, hs256Header},
	{FaultTrailingDot, hs256Header + "."},
	{FaultMissingHeader, "." + samplePayload},
	{FaultMissingPayload, hs256Header + "..signature"},
	{FaultNonBase64, hs256Header + ".@@not-base64@@"},
	{FaultMissingSignature, hs256Header + "." + shortPayload},
	{FaultMissingSignature, hs256Header + "." + shortPayload + "."},
	{FaultWrongSegmentCount, hs256Header + "." + shortPayload + ".signature.extra"},
}

var sqlInjectionCatalogue = []string{
	"'; DROP TABLE users; --",
	"' OR '1'='1' --",
	"' UNION SELECT * FROM users --",
	"admin'--",
	"' OR 1=1#",
}

var xssCatalogue = []string{
	"<script>alert('xss')</script>",
	"javascript:alert('xss')",
	"<img src=x onerror=alert('xss')>",
	"';alert('xss');//",
}

var specialCharacters = []byte{'!', '@', '#', '$', '%', '^', '&', '*', '(', ')', '+', '='}

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// MalformedCatalogue returns a copy of the malformed-token catalogue.
func MalformedCatalogue() []MalformedToken {
	out := make([]MalformedToken, len(malformedCatalogue))
	copy(out, malformedCatalogue)
	return out
}

// SQLInjectionCatalogue returns a copy of the SQL injection payloads.
func SQLInjectionCatalogue() []string {
	return append([]string(nil), sqlInjectionCatalogue...)
}

// XSSCatalogue returns a copy of the XSS payloads.
func XSSCatalogue() []string {
	return append([]string(nil), xssCatalogue...)
}

// SpecialCharacterSet returns the symbols SpecialCharacterToken samples from.
func SpecialCharacterSet() string {
	return string(specialCharacters)
}

// StaticExpiredToken is the fixed expired-shaped token returned when signing
// is unavailable.
func StaticExpiredToken() string {
	return staticExpiredToken
}
