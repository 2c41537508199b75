package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/service"
)

// writeError maps service and record API errors onto HTTP answers. Expired
// upstream tokens become 401 so the frontend can redirect to login instead
// of showing a permission error.
func writeError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var apiErr *client.APIError

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "sessão de consulta não encontrada"})
	case errors.Is(err, service.ErrUnknownSection), errors.Is(err, service.ErrSectionBody):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrExamIndex):
		c.JSON(http.StatusBadRequest, gin.H{"error": "índice de exame inválido"})
	case errors.Is(err, service.ErrAtFinalStage),
		errors.Is(err, service.ErrAtFirstStage),
		errors.Is(err, service.ErrNotAtFinalStage),
		errors.Is(err, service.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "o rascunho contém valores inválidos",
			"campos": validationErr.Fields,
		})
	case errors.Is(err, client.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sessão expirada, faça login novamente"})
	case errors.Is(err, client.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "registro não encontrado"})
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = "erro no serviço de registros"
		}
		c.JSON(apiErr.Status, gin.H{"error": msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro interno"})
	}
}

// bearerToken returns the raw record API token stashed by the auth
// middleware.
func bearerToken(c *gin.Context) string {
	return c.GetString("token")
}

// nutritionistID returns the authenticated nutritionist id from the context.
func nutritionistID(c *gin.Context) int {
	return c.GetInt("nutritionist_id")
}
