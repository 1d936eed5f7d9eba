package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	cfg := testConfig("admin", "1234")
	logger := testLogger()
	svc := NewService(cfg, logger)

	var seenUser string
	handler := Authenticate(logger, cfg.JWT)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	request := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("valid token", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "admin", "1234")
		require.NoError(t, err)

		rr := request("Bearer " + token)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "admin", seenUser)
	})

	t.Run("missing header", func(t *testing.T) {
		rr := request("")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Authorization header required")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rr := request("Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		rr := request("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Malformed token")
	})

	t.Run("token signed with another key", func(t *testing.T) {
		otherCfg := testConfig("admin", "1234")
		otherCfg.JWT.SecretKey = "another-secret"
		token, err := NewService(otherCfg, logger).Login(context.Background(), "admin", "1234")
		require.NoError(t, err)

		rr := request("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := Claims{
			Username: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin",
				Issuer:    cfg.JWT.Issuer,
				Audience:  jwt.ClaimStrings{cfg.JWT.Audience},
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.SecretKey))
		require.NoError(t, err)

		rr := request("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Token has expired")
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		otherCfg := testConfig("admin", "1234")
		otherCfg.JWT.Issuer = "someone-else"
		token, err := NewService(otherCfg, logger).Login(context.Background(), "admin", "1234")
		require.NoError(t, err)

		rr := request("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid token issuer")
	})
}
