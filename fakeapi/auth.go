package fakeapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wang-tianhao/dummyjson-apitest-go/dummyjson"
	"github.com/Wang-tianhao/dummyjson-apitest-go/jwtauth"
)

func identityOf(u dummyjson.User) jwtauth.Identity {
	return jwtauth.Identity{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    u.Gender,
		Image:     u.Image,
		Role:      u.Role,
	}
}

func authUser(u dummyjson.User) dummyjson.AuthUser {
	return dummyjson.AuthUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    u.Gender,
		Image:     u.Image,
	}
}

func (s *Server) findUser(username string) (dummyjson.User, bool) {
	for _, u := range s.data.Users {
		if u.Username == username {
			return u, true
		}
	}
	return dummyjson.User{}, false
}

func ttlMinutes(mins int) time.Duration {
	if mins <= 0 {
		return 0
	}
	return time.Duration(mins) * time.Minute
}

func (s *Server) accessTTLFor(mins int) time.Duration {
	if ttl := ttlMinutes(mins); ttl > 0 {
		return ttl
	}
	return s.accessTTL
}

func (s *Server) setSessionCookies(c *gin.Context, pair jwtauth.TokenPair) {
	now := s.now()
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(AccessTokenCookie, pair.AccessToken, int(pair.AccessExpiresAt.Sub(now).Seconds()), "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, pair.RefreshToken, int(pair.RefreshExpiresAt.Sub(now).Seconds()), "/", "", true, true)
}

func (s *Server) login(c *gin.Context) {
	var req dummyjson.LoginRequest
	if !bindBody(c, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(c, http.StatusBadRequest, "Username and password required")
		return
	}

	user, ok := s.findUser(req.Username)
	if !ok || user.Password != req.Password {
		respondMessage(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	pair, err := s.issuer.Issue(identityOf(user), s.accessTTLFor(req.ExpiresInMins))
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, "Could not issue tokens")
		return
	}
	s.setSessionCookies(c, pair)
	c.JSON(http.StatusOK, dummyjson.Session{
		AuthUser:     authUser(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// refresh takes the refresh token from the body or, failing that, the
// refreshToken cookie.
func (s *Server) refresh(c *gin.Context) {
	var req dummyjson.RefreshRequest
	if !bindBody(c, &req) {
		return
	}
	token := req.RefreshToken
	if token == "" {
		token, _ = c.Cookie(RefreshTokenCookie)
	}
	if token == "" {
		respondMessage(c, http.StatusUnauthorized, "Refresh token required")
		return
	}

	pair, _, err := s.issuer.Refresh(token, s.accessTTLFor(req.ExpiresInMins))
	if err != nil {
		if jwtauth.CodeOf(err) == jwtauth.ErrExpired {
			respondMessage(c, http.StatusForbidden, "Refresh token expired")
			return
		}
		respondMessage(c, http.StatusForbidden, "Invalid refresh token")
		return
	}
	s.setSessionCookies(c, pair)
	c.JSON(http.StatusOK, gin.H{"accessToken": pair.AccessToken, "refreshToken": pair.RefreshToken})
}

func (s *Server) me(c *gin.Context) {
	claims := jwtauth.MustGetClaims(c.Request.Context())
	if claims.UserID < 1 || claims.UserID > len(s.data.Users) {
		respondMessage(c, http.StatusNotFound, "User with id '%d' not found", claims.UserID)
		return
	}
	c.JSON(http.StatusOK, s.data.Users[claims.UserID-1])
}
