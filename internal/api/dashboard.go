package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/types"
)

// DashboardHandler proxies the registry's aggregate charts.
type DashboardHandler struct {
	api *client.Client
}

func NewDashboardHandler(api *client.Client) *DashboardHandler {
	return &DashboardHandler{api: api}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/pacientes-por-genero", h.PatientsByGender)
		dashboard.GET("/pacientes-por-setor", h.PatientsBySector)
	}
}

func (h *DashboardHandler) PatientsByGender(c *gin.Context) {
	points, err := h.api.PatientsByGender(c.Request.Context(), bearerToken(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if points == nil {
		points = []types.ChartPoint{}
	}
	c.JSON(http.StatusOK, gin.H{"data": points})
}

func (h *DashboardHandler) PatientsBySector(c *gin.Context) {
	points, err := h.api.PatientsBySector(c.Request.Context(), bearerToken(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if points == nil {
		points = []types.ChartPoint{}
	}
	c.JSON(http.StatusOK, gin.H{"data": points})
}
