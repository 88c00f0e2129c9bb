package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorlift_backend/internal/clients"
	"tutorlift_backend/internal/config"
)

const testSecret = "auth-test-secret"

type fakeIdentity struct {
	user *clients.IdentityUser
	err  error
}

func (f *fakeIdentity) GetUser(_ context.Context, _ string) (*clients.IdentityUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeIdentity) UpdateUser(_ context.Context, _ string, _ clients.IdentityUpdate) error {
	return nil
}

func authTestConfig(env string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = env
	cfg.JWT.Secret = testSecret
	return cfg
}

func signToken(t *testing.T, uid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uid,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, cfg *config.Config, identity clients.IdentityService, authorization string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/students/uid-1", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}

	AuthMiddleware(cfg, identity)(c)
	return rec, c
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	identity := &fakeIdentity{user: &clients.IdentityUser{
		UID:           "uid-1",
		Email:         "jane@example.com",
		EmailVerified: true,
	}}

	rec, c := runAuth(t, authTestConfig("development"), identity, "Bearer "+signToken(t, "uid-1"))

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", c.GetString("userID"))
	assert.Equal(t, "jane@example.com", c.GetString("userEmail"))
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	rec, _ := runAuth(t, authTestConfig("development"), &fakeIdentity{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "uid-1"})
	signed, err := token.SignedString([]byte("some other secret"))
	require.NoError(t, err)

	rec, _ := runAuth(t, authTestConfig("development"), &fakeIdentity{}, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareUnknownAccountIsUnauthorized(t *testing.T) {
	identity := &fakeIdentity{err: &clients.ProviderError{
		Provider:   "identity",
		StatusCode: http.StatusNotFound,
		Message:    "no such account",
	}}

	rec, _ := runAuth(t, authTestConfig("development"), identity, "Bearer "+signToken(t, "uid-1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareProviderOutageIsInternal(t *testing.T) {
	for name, err := range map[string]error{
		"provider 5xx": &clients.ProviderError{
			Provider:   "identity",
			StatusCode: http.StatusServiceUnavailable,
			Message:    "backend unavailable",
		},
		"network": errors.New("dial tcp: connection refused"),
	} {
		t.Run(name, func(t *testing.T) {
			rec, _ := runAuth(t, authTestConfig("development"), &fakeIdentity{err: err}, "Bearer "+signToken(t, "uid-1"))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
		})
	}
}

func TestAuthMiddlewareRejectsDisabledAccount(t *testing.T) {
	identity := &fakeIdentity{user: &clients.IdentityUser{UID: "uid-1", Disabled: true}}

	rec, _ := runAuth(t, authTestConfig("development"), identity, "Bearer "+signToken(t, "uid-1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareProductionRequiresVerifiedEmail(t *testing.T) {
	identity := &fakeIdentity{user: &clients.IdentityUser{UID: "uid-1", EmailVerified: false}}

	rec, _ := runAuth(t, authTestConfig("production"), identity, "Bearer "+signToken(t, "uid-1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runAuth(t, authTestConfig("development"), identity, "Bearer "+signToken(t, "uid-1"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
