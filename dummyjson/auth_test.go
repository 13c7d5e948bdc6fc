package dummyjson_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
	"github.com/Wang-tianhao/dummyjson-apitest-go/tokenfault"
)

type authSuite struct {
	apiSuite
	faults *tokenfault.Generator
}

func TestAuth(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.apiSuite.SetupSuite()
	var opts []tokenfault.Option
	if s.cfg.TokenSeed != 0 {
		opts = append(opts, tokenfault.WithSeed(s.cfg.TokenSeed))
	}
	s.faults = tokenfault.New(opts...)
}

func (s *authSuite) TestLogin() {
	resp := s.success(s.client.Login(s.ctx, dummyjson.LoginRequest{
		Username:      s.cfg.Username,
		Password:      s.cfg.Password,
		ExpiresInMins: 30,
	}))
	var session dummyjson.Session
	s.decode(resp, &session)
	s.Equal(s.cfg.Username, session.Username)
	s.NotEmpty(session.AccessToken)
	s.NotEmpty(session.RefreshToken)
}

func (s *authSuite) TestLoginRejected() {
	tests := []struct {
		name string
		req  dummyjson.LoginRequest
	}{
		{"unregistered username", dummyjson.LoginRequest{Username: "nobody-" + s.faults.RandomString(8), Password: s.cfg.Password}},
		{"wrong password", dummyjson.LoginRequest{Username: s.cfg.Username, Password: "wrong"}},
		{"empty username", dummyjson.LoginRequest{Password: s.cfg.Password}},
		{"empty password", dummyjson.LoginRequest{Username: s.cfg.Username}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.client.Login(s.ctx, tt.req)
			s.ok(resp, err, http.StatusBadRequest)
			s.NotEmpty(resp.Message())
		})
	}
}

func (s *authSuite) TestCurrentUser() {
	token := s.login()
	resp := s.success(s.client.CurrentUser(s.ctx, dummyjson.Bearer(token)))
	var user dummyjson.AuthUser
	s.decode(resp, &user)
	s.Equal(s.cfg.Username, user.Username)
}

func (s *authSuite) TestRefresh() {
	resp := s.success(s.client.Login(s.ctx, dummyjson.LoginRequest{Username: s.cfg.Username, Password: s.cfg.Password}))
	var session dummyjson.Session
	s.decode(resp, &session)

	resp = s.success(s.client.RefreshSession(s.ctx, dummyjson.RefreshRequest{RefreshToken: session.RefreshToken}))
	var refreshed dummyjson.Session
	s.decode(resp, &refreshed)
	s.NotEmpty(refreshed.AccessToken)
	s.NotEmpty(refreshed.RefreshToken)

	s.success(s.client.CurrentUser(s.ctx, dummyjson.Bearer(refreshed.AccessToken)))
}

// Every generated fault is turned away by the authenticated endpoint.
func (s *authSuite) TestInvalidTokensRejected() {
	specimens := s.faults.All(tokenfault.Text(s.login()))
	for _, category := range tokenfault.Categories() {
		specimen := specimens[category]
		s.Run(category.String(), func() {
			resp, err := s.client.CurrentUser(s.ctx, dummyjson.BearerSpecimen(specimen))
			s.ok(resp, err, http.StatusUnauthorized)
			s.NotEmpty(resp.Message())
		})
	}
}

func (s *authSuite) TestScenarios() {
	for _, name := range append(tokenfault.Scenarios(), "nonexistent-scenario") {
		s.Run(name, func() {
			resp, err := s.client.CurrentUser(s.ctx, dummyjson.BearerSpecimen(s.faults.ByScenario(name)))
			s.ok(resp, err, http.StatusUnauthorized)
		})
	}
}

func (s *authSuite) TestExpiredTokenMessage() {
	if s.secret == nil {
		s.T().Skip("the signing secret of a live service is unknown")
	}
	token := s.faults.ExpiredJWT(string(s.secret))
	resp, err := s.client.CurrentUser(s.ctx, dummyjson.Bearer(token))
	s.ok(resp, err, http.StatusUnauthorized)
	s.Equal("Token Expired!", resp.Message())
}

func (s *authSuite) TestAuthenticatedResources() {
	authed := s.client.Authenticated()

	resp, err := authed.Product(s.ctx, 1)
	s.ok(resp, err, http.StatusUnauthorized)

	token := s.login()
	resp = s.success(authed.Product(s.ctx, 1, dummyjson.Bearer(token)))
	var product dummyjson.Product
	s.decode(resp, &product)
	s.Equal(1, product.ID)

	resp, err = authed.Todo(s.ctx, unknownID, dummyjson.Bearer(token))
	s.notFound(resp, err, "Todo", unknownID)
}
