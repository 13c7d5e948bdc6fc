// Package fakeapi is an in-process stand-in for the dummyjson demo service.
//
// It serves the same routes and response shapes from a deterministic,
// seed-generated dataset. Writes are simulated: add, update and delete
// return what the service would store without changing the dataset.
// Authentication goes through jwtauth: /auth/login issues tokens and every
// resource is also served under /auth behind the bearer middleware.
package fakeapi
