// Package tokenfault generates bearer tokens that an authentication boundary
// must reject.
//
// Every generator covers one fault category (empty, absent, malformed, expired,
// badly signed, tampered, oversized, injection-style, ...). Operations never
// fail: a path that cannot be completed (signing unavailable, unparsable input
// token) degrades to a weaker specimen that is still invalid. Operations with
// such fallbacks have a *Result variant reporting which strategy produced the
// specimen.
//
// Randomness comes from an injectable Source so test runs can be reproduced:
//
//	gen := tokenfault.New(tokenfault.WithSeed(42))
//	for cat, tok := range gen.All(tokenfault.Text(validToken)) {
//		// send tok as a bearer credential, expect 401
//	}
//
// Fixed-set categories (malformed, SQL injection, XSS) draw uniformly from
// catalogues exposed by MalformedCatalogue, SQLInjectionCatalogue and
// XSSCatalogue so tests can assert set membership.
package tokenfault
