package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/types"
)

func TestLoginProxiesToRecordAPI(t *testing.T) {
	env := SetupTestEnv(t)
	env.API.On("Login", mock.Anything, "nutri@mexase.com", "s3nh4").
		Return("upstream-token", nil).Once()

	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/login", "",
		types.LoginRequest{Email: "nutri@mexase.com", Password: "s3nh4"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "upstream-token", resp.Token)

	env.API.AssertExpectations(t)
}

func TestLoginRejectsBadPayload(t *testing.T) {
	env := SetupTestEnv(t)

	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/login", "",
		map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := SetupTestEnv(t)
	env.API.On("Login", mock.Anything, "nutri@mexase.com", "wrong").
		Return("", &client.APIError{Status: http.StatusUnauthorized, Message: "credenciais inválidas"}).Once()

	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/login", "",
		types.LoginRequest{Email: "nutri@mexase.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredUpstreamTokenAnswers401(t *testing.T) {
	env := SetupTestEnv(t)
	env.API.On("GetBaselineDietaryData", mock.Anything, mock.Anything, 5).
		Return(nil, false, client.ErrTokenExpired).Once()

	// The baseline check fails open, so session creation still succeeds;
	// the expiry only surfaces on calls that depend on the upstream.
	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/pacientes/5/consultas/sessoes", env.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeSession(t, w.Body.Bytes())
	assert.NotEmpty(t, resp.Warning)
}
