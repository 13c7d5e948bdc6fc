package dummyjson_test

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/Wang-tianhao/dummyjson-apitest-go/config"
	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
	"github.com/Wang-tianhao/dummyjson-apitest-go/fakeapi"
	"github.com/Wang-tianhao/dummyjson-apitest-go/jwtauth"
)

// unknownID never exists in the demo dataset.
const unknownID = 9999

// apiSuite runs against an in-process fakeapi server, or against BASE_URL
// when DUMMYJSON_LIVE=true.
type apiSuite struct {
	suite.Suite
	cfg    config.Suite
	server *httptest.Server
	client *dummyjson.Client
	secret []byte
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *apiSuite) SetupSuite() {
	cfg, err := config.LoadSuite(envFile())
	s.Require().NoError(err)
	s.cfg = cfg

	opts := []dummyjson.Option{dummyjson.WithTimeout(cfg.RequestTimeout)}
	if cfg.Live {
		opts = append(opts,
			dummyjson.WithBaseURL(cfg.BaseURL),
			dummyjson.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		)
	} else {
		gin.SetMode(gin.TestMode)
		s.secret = make([]byte, 32)
		_, err := rand.Read(s.secret)
		s.Require().NoError(err)
		auth, err := jwtauth.NewConfig(jwtauth.WithHS256(s.secret))
		s.Require().NoError(err)
		srv, err := fakeapi.New(auth)
		s.Require().NoError(err)
		s.server = httptest.NewServer(srv.Handler())
		opts = append(opts, dummyjson.WithBaseURL(s.server.URL))
	}
	s.client = dummyjson.New(opts...)
}

func (s *apiSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *apiSuite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), s.cfg.RequestTimeout*3)
}

func (s *apiSuite) TearDownTest() {
	s.cancel()
}

// envFile points at the repository's .env when tests run from a package
// directory.
func envFile() string {
	if _, err := os.Stat(".env"); err == nil {
		return ".env"
	}
	return filepath.Join("..", ".env")
}

// ok asserts a successful call with the given status and returns the
// response.
func (s *apiSuite) ok(resp *dummyjson.Response, err error, status int) *dummyjson.Response {
	s.T().Helper()
	s.Require().NoError(err)
	s.Require().Equal(status, resp.StatusCode, string(resp.Body))
	return resp
}

// success asserts a 200 response.
func (s *apiSuite) success(resp *dummyjson.Response, err error) *dummyjson.Response {
	s.T().Helper()
	return s.ok(resp, err, http.StatusOK)
}

func (s *apiSuite) decode(resp *dummyjson.Response, v any) {
	s.T().Helper()
	s.Require().NoError(resp.Decode(v))
}

// notFound asserts the 404 body "<resource> with id '<id>' not found".
func (s *apiSuite) notFound(resp *dummyjson.Response, err error, resource string, id int) {
	s.T().Helper()
	s.ok(resp, err, http.StatusNotFound)
	s.Equal(fmt.Sprintf("%s with id '%d' not found", resource, id), resp.Message())
}

// hasKeys asserts that an object body contains every key.
func (s *apiSuite) hasKeys(resp *dummyjson.Response, keys ...string) {
	s.T().Helper()
	s.Subset(resp.Keys(), keys)
}

// login returns a fresh access token for the configured demo user.
func (s *apiSuite) login() string {
	s.T().Helper()
	token, err := s.client.AccessToken(s.ctx, s.cfg.Username, s.cfg.Password)
	s.Require().NoError(err)
	s.Require().NotEmpty(token)
	return token
}
