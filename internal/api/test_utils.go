package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Antonio12313/mexase-api/internal/middleware"
	"github.com/Antonio12313/mexase-api/internal/mocks"
	"github.com/Antonio12313/mexase-api/internal/service"
)

const testJWTSecret = "test-secret"

// TestEnv bundles everything a handler test needs: the router, the mocked
// record API behind it and a valid bearer token.
type TestEnv struct {
	Router *gin.Engine
	API    *mocks.MockRecordAPI
	Store  *mocks.MemorySessionStore
	Token  string
}

// SetupTestEnv wires the handlers against a mocked record API and an
// in-memory session store.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recordAPI := new(mocks.MockRecordAPI)
	store := mocks.NewMemorySessionStore()

	authService := service.NewAuthService(recordAPI, testJWTSecret)
	wizardService := service.NewWizardService(recordAPI, store)

	token, err := authService.GenerateToken(2)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	router := gin.New()
	v1 := router.Group("/api/v1")

	NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	NewWizardHandler(wizardService, nil).RegisterRoutes(protected)

	return &TestEnv{
		Router: router,
		API:    recordAPI,
		Store:  store,
		Token:  token,
	}
}

// PerformRequest runs one request through the router with the given bearer
// token; a nil body sends no payload.
func PerformRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}
