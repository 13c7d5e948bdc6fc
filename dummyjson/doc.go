// Package dummyjson wraps the endpoints of the dummyjson demo REST service.
//
// Every wrapper returns the raw *Response so callers can assert on status
// codes and bodies directly; only transport and encoding failures are
// reported as errors. The package's tests are the API test suites
// and run against fakeapi unless DUMMYJSON_LIVE is set.
package dummyjson
