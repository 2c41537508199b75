package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/service"
	"github.com/Antonio12313/mexase-api/internal/types"
)

// AuthHandler proxies authentication to the record API; no credentials are
// stored on this side.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/login", h.Login)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciais inválidas"})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.LoginResponse{Token: token})
}
