package tokenfault

import (
	"errors"
	"strings"
	"time"
)

const (
	// DefaultRandomLength is the length of the random category's token.
	DefaultRandomLength = 32
	// DefaultTooLongLength exceeds any sensible bearer token size limit.
	DefaultTooLongLength = 2000
	// DefaultSecret signs expired tokens when the caller gives no secret.
	DefaultSecret = "test-secret"

	invalidSignatureLength = 43
	specialSampleSize      = 10
	specialPaddingLength   = 20
)

// Strategy names reported in Result.
const (
	StrategySigned           = "signed"
	StrategyStaticExpired    = "static-expired"
	StrategyTampered         = "tampered"
	StrategyInvalidSignature = "invalid-signature"
	StrategyMalformed        = "malformed"
)

var errSignerUnavailable = errors.New("tokenfault: no signer configured")

// Result is a specimen tagged with the strategy that produced it.
type Result struct {
	Specimen Specimen
	Strategy string
	// Fallback is true when the preferred strategy could not be used.
	Fallback bool
}

// Generator produces invalid tokens. It holds no mutable state of its own and
// is safe for concurrent use when its Source is.
type Generator struct {
	src    Source
	signer Signer
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the randomness source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// WithSeed uses a gofakeit source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.src = NewSource(seed)
	}
}

// WithSigner replaces the HS256 signer. A nil signer disables signing and
// forces the expired category onto its static fallback.
func WithSigner(s Signer) Option {
	return func(g *Generator) {
		g.signer = s
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator. Without options it signs with HS256 and draws
// from a clock-seeded source.
func New(opts ...Option) *Generator {
	g := &Generator{
		signer: HS256Signer{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = NewSource(0)
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// RandomString returns length alphanumeric characters; length <= 0 yields "".
func (g *Generator) RandomString(length int) string {
	if length <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphanumeric[g.src.IntN(len(alphanumeric))])
	}
	return b.String()
}

func (g *Generator) EmptyToken() string {
	return ""
}

func (g *Generator) NullToken() Specimen {
	return Null()
}

func (g *Generator) UndefinedToken() Specimen {
	return Undefined()
}

// MalformedJWT returns a random entry of the malformed catalogue.
func (g *Generator) MalformedJWT() string {
	return pick(g.src, malformedCatalogue).Token
}

// ExpiredJWT returns a signed token whose exp lies 30 minutes in the past.
func (g *Generator) ExpiredJWT(secret string) string {
	tok, _ := g.ExpiredJWTResult(secret).Specimen.Value()
	return tok
}

// ExpiredJWTResult is ExpiredJWT reporting whether the static fallback was
// used instead of signing.
func (g *Generator) ExpiredJWTResult(secret string) Result {
	if secret == "" {
		secret = DefaultSecret
	}
	now := g.now()
	claims := map[string]any{
		"sub":   g.src.UUID(),
		"name":  g.src.Name(),
		"email": g.src.Email(),
		"iat":   now.Add(-time.Hour).Unix(),
		"exp":   now.Add(-30 * time.Minute).Unix(),
	}
	return firstOf(
		strategy{StrategySigned, func() (string, error) {
			if g.signer == nil {
				return "", errSignerUnavailable
			}
			return g.signer.Sign(claims, []byte(secret))
		}},
		strategy{StrategyStaticExpired, infallible(StaticExpiredToken)},
	)
}

// InvalidSignatureJWT returns a well-formed token with a future exp and a
// signature no trusted key produced.
func (g *Generator) InvalidSignatureJWT() string {
	now := g.now()
	payload, err := EncodeSegment(map[string]any{
		"sub":  g.src.UUID(),
		"name": g.src.Name(),
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})
	if err != nil {
		payload = shortPayload
	}
	return Envelope{
		Header:    hs256Header,
		Payload:   payload,
		Signature: g.RandomString(invalidSignatureLength),
	}.String()
}

// TamperedPayloadJWT rewrites the claims of original while keeping its header
// and signature. An empty original counts as absent.
func (g *Generator) TamperedPayloadJWT(original string) string {
	in := Undefined()
	if original != "" {
		in = Text(original)
	}
	tok, _ := g.TamperedPayload(in).Specimen.Value()
	return tok
}

// TamperedPayload elevates role to admin, swaps the subject and extends exp.
//
// Degradation: absent input gives an invalid-signature token, a token without
// exactly three segments gives a malformed one, and a payload that does not
// decode to a JSON object gives an invalid-signature token.
func (g *Generator) TamperedPayload(original Specimen) Result {
	tok, ok := original.Value()
	if !ok || tok == "" {
		return fallback(StrategyInvalidSignature, g.InvalidSignatureJWT)
	}
	env, err := ParseEnvelope(tok)
	if err != nil {
		return fallback(StrategyMalformed, g.MalformedJWT)
	}
	return firstOf(
		strategy{StrategyTampered, func() (string, error) { return g.tamper(env) }},
		strategy{StrategyInvalidSignature, infallible(g.InvalidSignatureJWT)},
	)
}

func (g *Generator) tamper(env Envelope) (string, error) {
	claims, err := env.DecodePayload()
	if err != nil {
		return "", err
	}
	subject := g.src.UUID()
	claims["role"] = "admin"
	claims["sub"] = subject
	claims["userId"] = subject
	claims["exp"] = g.now().Add(24 * time.Hour).Unix()

	payload, err := EncodeSegment(claims)
	if err != nil {
		return "", err
	}
	env.Payload = payload
	return env.String(), nil
}

// SpecialCharacterToken concatenates symbols sampled without replacement with
// random alphanumerics.
func (g *Generator) SpecialCharacterToken() string {
	symbols := make([]byte, len(specialCharacters))
	copy(symbols, specialCharacters)
	for i := 0; i < specialSampleSize; i++ {
		j := i + g.src.IntN(len(symbols)-i)
		symbols[i], symbols[j] = symbols[j], symbols[i]
	}
	return string(symbols[:specialSampleSize]) + g.RandomString(specialPaddingLength)
}

// TooLongToken returns an alphanumeric token of the given length.
func (g *Generator) TooLongToken(length int) string {
	return g.RandomString(length)
}

func (g *Generator) SQLInjectionToken() string {
	return pick(g.src, sqlInjectionCatalogue)
}

func (g *Generator) XSSToken() string {
	return pick(g.src, xssCatalogue)
}

// Generate produces one specimen of category c. The tampered category has no
// input token here and degrades accordingly. Unknown categories fall back to
// RandomInvalid.
func (g *Generator) Generate(c Category) Specimen {
	switch c {
	case CategoryEmpty:
		return Text(g.EmptyToken())
	case CategoryNull:
		return g.NullToken()
	case CategoryUndefined:
		return g.UndefinedToken()
	case CategoryRandom:
		return Text(g.RandomString(DefaultRandomLength))
	case CategoryMalformed:
		return Text(g.MalformedJWT())
	case CategoryExpired:
		return Text(g.ExpiredJWT(""))
	case CategoryInvalidSignature:
		return Text(g.InvalidSignatureJWT())
	case CategoryTamperedPayload:
		return g.TamperedPayload(Undefined()).Specimen
	case CategorySpecialCharacters:
		return Text(g.SpecialCharacterToken())
	case CategoryTooLong:
		return Text(g.TooLongToken(DefaultTooLongLength))
	case CategorySQLInjection:
		return Text(g.SQLInjectionToken())
	case CategoryXSS:
		return Text(g.XSSToken())
	}
	_, s := g.RandomInvalid()
	return s
}

// All returns one specimen per category. original feeds the tampered category.
func (g *Generator) All(original Specimen) map[Category]Specimen {
	out := make(map[Category]Specimen, len(allCategories))
	for _, c := range allCategories {
		if c == CategoryTamperedPayload {
			out[c] = g.TamperedPayload(original).Specimen
			continue
		}
		out[c] = g.Generate(c)
	}
	return out
}

// RandomInvalid picks one of the input-free categories uniformly and returns
// it with its specimen.
func (g *Generator) RandomInvalid() (Category, Specimen) {
	c := pick(g.src, randomInvalidCategories)
	return c, g.Generate(c)
}

type strategy struct {
	name string
	run  func() (string, error)
}

func infallible(fn func() string) func() (string, error) {
	return func() (string, error) { return fn(), nil }
}

// firstOf runs strategies in order and returns the first success. The last
// strategy must not fail.
func firstOf(strategies ...strategy) Result {
	for i, s := range strategies {
		tok, err := s.run()
		if err != nil {
			continue
		}
		return Result{Specimen: Text(tok), Strategy: s.name, Fallback: i > 0}
	}
	return Result{Specimen: Text(staticExpiredToken), Strategy: StrategyStaticExpired, Fallback: true}
}

func fallback(name string, fn func() string) Result {
	return Result{Specimen: Text(fn()), Strategy: name, Fallback: true}
}
