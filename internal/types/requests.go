package types

import "github.com/Antonio12313/mexase-api/internal/models"

// LoginRequest carries credentials forwarded to the record API.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

// LoginResponse returns the upstream bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// SessionResponse is the wizard session as seen by the frontend. Warning is
// set when a collaborator fetch failed and the draft fell back to defaults;
// the session stays usable.
type SessionResponse struct {
	ID              string                    `json:"id"`
	PatientID       int                       `json:"id_paciente"`
	ConsultationID  string                    `json:"id_consulta,omitempty"`
	Stage           int                       `json:"etapa"`
	FirstStage      int                       `json:"etapa_inicial"`
	BaselineSkipped bool                      `json:"pular_coleta_inicial"`
	Warning         string                    `json:"aviso,omitempty"`
	Draft           *models.ConsultationDraft `json:"rascunho"`
}

// AddExamRequest optionally seeds the new lab-result row; omitted fields
// fall back to the row skeleton (unit mg/dL, date today).
type AddExamRequest struct {
	Name     string  `json:"nome_exame"`
	Value    float64 `json:"valor"`
	Unit     string  `json:"unidade"`
	ExamDate string  `json:"data_exame"`
}

// SubmitResponse reports the consultation id the record API created or
// updated.
type SubmitResponse struct {
	ConsultationID string `json:"id_consulta"`
	Updated        bool   `json:"editada"`
}

// ListMeta is the pagination envelope the record API uses on list endpoints.
type ListMeta struct {
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
}

// PatientList is a page of registry patients.
type PatientList struct {
	Data []models.Patient `json:"data"`
	Meta ListMeta         `json:"meta"`
}

// SectorList is the sector reference list.
type SectorList struct {
	Data []models.Sector `json:"data"`
	Meta ListMeta        `json:"meta"`
}

// ChartPoint is one slice/bar of a dashboard chart.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"valor"`
}
