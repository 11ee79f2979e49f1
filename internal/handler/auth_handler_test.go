package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-api/internal/models"
	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
)

type mockAuthService struct {
	result *models.LoginResponse
	err    error
}

func (m *mockAuthService) Login(_ context.Context, _ models.LoginRequest) (*models.LoginResponse, error) {
	return m.result, m.err
}

func TestAuthHandlerLogin(t *testing.T) {
	svc := &mockAuthService{result: &models.LoginResponse{
		AccessToken: "token-123",
		ExpiresAt:   time.Now().Add(time.Hour),
		User:        models.User{ID: "u-1", Role: models.RoleAdmin},
	}}
	h := NewAuthHandler(svc)

	body := `{"email":"admin@learnsphere.test","password":"s3cret"}`
	c, w := newTestContext(t, http.MethodPost, "/api/auth/login", body)
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.Nil(t, env.Error)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "token-123", resp.AccessToken)
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	svc := &mockAuthService{err: appErrors.Clone(appErrors.ErrInvalidCredentials, "")}
	h := NewAuthHandler(svc)

	c, w := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"nope"}`)
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, env.Error.Code)
}

func TestAuthHandlerLoginMalformedBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	c, w := newTestContext(t, http.MethodPost, "/api/auth/login", `{`)
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
