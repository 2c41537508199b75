package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Antonio12313/mexase-api/internal/middleware"
	"github.com/Antonio12313/mexase-api/internal/service"
	"github.com/Antonio12313/mexase-api/internal/types"
)

// WizardHandler exposes the consultation intake wizard: session lifecycle,
// stage navigation, section updates and submission.
type WizardHandler struct {
	wizard      *service.WizardService
	rateLimiter *middleware.RateLimiter
}

func NewWizardHandler(wizard *service.WizardService, rateLimiter *middleware.RateLimiter) *WizardHandler {
	return &WizardHandler{wizard: wizard, rateLimiter: rateLimiter}
}

func (h *WizardHandler) RegisterRoutes(router *gin.RouterGroup) {
	if h.rateLimiter != nil {
		router.POST("/pacientes/:id/consultas/sessoes", h.rateLimiter.RateLimitMiddleware(), h.StartSession)
	} else {
		router.POST("/pacientes/:id/consultas/sessoes", h.StartSession)
	}

	sessions := router.Group("/sessoes")
	{
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/avancar", h.Advance)
		sessions.POST("/:id/voltar", h.Back)
		sessions.PUT("/:id/secoes/:secao", h.UpdateSection)
		sessions.POST("/:id/exames", h.AddExam)
		sessions.DELETE("/:id/exames/:indice", h.RemoveExam)
		sessions.POST("/:id/submeter", h.Submit)
	}
}

// StartSession opens an intake session for the patient. The optional
// ?consulta= query binds the session to an existing consultation for
// editing.
func (h *WizardHandler) StartSession(c *gin.Context) {
	patientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de paciente inválido"})
		return
	}

	consultationID := c.Query("consulta")
	sess, err := h.wizard.StartSession(c.Request.Context(), bearerToken(c), patientID, consultationID, nutritionistID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess.Response())
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	sess, err := h.wizard.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Response())
}

func (h *WizardHandler) Advance(c *gin.Context) {
	sess, err := h.wizard.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Response())
}

func (h *WizardHandler) Back(c *gin.Context) {
	sess, err := h.wizard.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Response())
}

// UpdateSection replaces one draft section. The body is handed to the
// service raw; which type it decodes into depends on the section name.
func (h *WizardHandler) UpdateSection(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição ilegível"})
		return
	}

	sess, err := h.wizard.UpdateSection(c.Request.Context(), c.Param("id"), c.Param("secao"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Response())
}

func (h *WizardHandler) AddExam(c *gin.Context) {
	var req types.AddExamRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	sess, err := h.wizard.AddExam(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Response())
}

func (h *WizardHandler) RemoveExam(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("indice"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "índice de exame inválido"})
		return
	}

	sess, err := h.wizard.RemoveExam(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Response())
}

// Submit sends the assembled draft to the record API and, on success,
// destroys the session.
func (h *WizardHandler) Submit(c *gin.Context) {
	result, err := h.wizard.Submit(c.Request.Context(), bearerToken(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
