package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Antonio12313/mexase-api/internal/client"
)

// NutritionistHandler serves the authenticated nutritionist's own registry
// record.
type NutritionistHandler struct {
	api *client.Client
}

func NewNutritionistHandler(api *client.Client) *NutritionistHandler {
	return &NutritionistHandler{api: api}
}

func (h *NutritionistHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/nutricionista/me", h.Me)
}

func (h *NutritionistHandler) Me(c *gin.Context) {
	n, err := h.api.GetNutritionist(c.Request.Context(), bearerToken(c), nutritionistID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}
