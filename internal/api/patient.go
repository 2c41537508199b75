package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/models"
)

// PatientHandler proxies the patient registry and the patient-level baseline
// sections (family history, lifestyle, dietary data) of the record API.
type PatientHandler struct {
	api *client.Client
}

func NewPatientHandler(api *client.Client) *PatientHandler {
	return &PatientHandler{api: api}
}

func (h *PatientHandler) RegisterRoutes(router *gin.RouterGroup) {
	patients := router.Group("/pacientes")
	{
		patients.GET("", h.ListPatients)
		patients.POST("", h.CreatePatient)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.POST("/:id/inativar", h.DeactivatePatient)

		patients.GET("/:id/historico-familiar", h.GetFamilyHistory)
		patients.POST("/:id/historico-familiar", h.saveFamilyHistory(false))
		patients.PUT("/:id/historico-familiar", h.saveFamilyHistory(true))
		patients.GET("/:id/estilo-vida", h.GetLifestyle)
		patients.POST("/:id/estilo-vida", h.saveLifestyle(false))
		patients.PUT("/:id/estilo-vida", h.saveLifestyle(true))
		patients.GET("/:id/dados-dieteticos", h.GetDietaryData)
		patients.POST("/:id/dados-dieteticos", h.saveDietaryData(false))
		patients.PUT("/:id/dados-dieteticos", h.saveDietaryData(true))

		patients.GET("/:id/consultas", h.ListConsultations)
		patients.GET("/:id/evolucao", h.AnthropometricEvolution)
	}

	router.GET("/consultas/:id", h.GetConsultation)
	router.GET("/setores", h.ListSectors)
}

func patientID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de paciente inválido"})
		return 0, false
	}
	return id, true
}

func (h *PatientHandler) ListPatients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	list, err := h.api.ListPatients(c.Request.Context(), bearerToken(c), page, limit, c.Query("filtro"), c.Query("valor"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	p, err := h.api.GetPatient(c.Request.Context(), bearerToken(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.api.CreatePatient(c.Request.Context(), bearerToken(c), &p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.api.UpdatePatient(c.Request.Context(), bearerToken(c), id, &p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PatientHandler) DeactivatePatient(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	if err := h.api.DeactivatePatient(c.Request.Context(), bearerToken(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "paciente inativado"})
}

func (h *PatientHandler) GetFamilyHistory(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	data, err := h.api.GetFamilyHistory(c.Request.Context(), bearerToken(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *PatientHandler) saveFamilyHistory(editing bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := patientID(c)
		if !ok {
			return
		}
		var data models.FamilyHistory
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := h.api.SaveFamilyHistory(c.Request.Context(), bearerToken(c), id, &data, editing); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

func (h *PatientHandler) GetLifestyle(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	data, err := h.api.GetLifestyle(c.Request.Context(), bearerToken(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *PatientHandler) saveLifestyle(editing bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := patientID(c)
		if !ok {
			return
		}
		var data models.Lifestyle
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := h.api.SaveLifestyle(c.Request.Context(), bearerToken(c), id, &data, editing); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

func (h *PatientHandler) GetDietaryData(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	data, found, err := h.api.GetBaselineDietaryData(c.Request.Context(), bearerToken(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "dados dietéticos não cadastrados"})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *PatientHandler) saveDietaryData(editing bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := patientID(c)
		if !ok {
			return
		}
		var data models.DietaryData
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := h.api.SaveBaselineDietaryData(c.Request.Context(), bearerToken(c), id, &data, editing); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

func (h *PatientHandler) ListConsultations(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	list, err := h.api.ListConsultations(c.Request.Context(), bearerToken(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []client.ConsultationSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *PatientHandler) AnthropometricEvolution(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}
	points, err := h.api.AnthropometricEvolution(c.Request.Context(), bearerToken(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if points == nil {
		points = []client.EvolutionPoint{}
	}
	c.JSON(http.StatusOK, gin.H{"data": points})
}

func (h *PatientHandler) GetConsultation(c *gin.Context) {
	rec, err := h.api.GetConsultationByID(c.Request.Context(), bearerToken(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *PatientHandler) ListSectors(c *gin.Context) {
	list, err := h.api.ListSectors(c.Request.Context(), bearerToken(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
