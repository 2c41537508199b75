package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Antonio12313/mexase-api/internal/models"
	"github.com/Antonio12313/mexase-api/internal/types"
)

// LifestyleRecord is the lifestyle section as the record API returns it: the
// numeric fields come back as JSON numbers (or null) and are stringified
// during hydration because the draft edits them as text.
type LifestyleRecord struct {
	ExerciseType      string       `json:"tipo_exercicio"`
	ExerciseFrequency *json.Number `json:"frequencia_exercicio_semana"`
	ExerciseDuration  *json.Number `json:"duracao_exercicio_minutos"`
	DietGuidance      string       `json:"orientacao_dieta"`
	SmokingStatus     string       `json:"tabagista_status"`
	AlcoholUse        bool         `json:"etilista"`
	AlcoholYears      *json.Number `json:"duracao_etilismo_anos"`
	AlcoholFrequency  string       `json:"frequencia_etilismo"`
	DentalProblem     bool         `json:"problema_denticao"`
	SleepHours        *json.Number `json:"tempo_sono_horas"`
	Medications       string       `json:"medicamentos"`
	Supplements       string       `json:"suplementos"`
	SaltRestriction   bool         `json:"restricao_sal"`
	SugarRestriction  bool         `json:"restricao_acucar"`
	OtherRestrictions string       `json:"outras_restricoes"`
	MealLocation      string       `json:"local_refeicoes"`
	MealPreparer      string       `json:"quem_prepara_refeicoes"`
}

// ConsultationRecord is the full consultation as stored upstream. The
// anthropometric fields sit at the record's top level, the optional sections
// may be absent entirely, and the recall comes back as a flat list tagged by
// tipo_refeicao. Note the record lists classifications under "classificacoes"
// while the draft and the submission payload call it "classificacao".
type ConsultationRecord struct {
	ID int `json:"id"`
	models.ConsultationBase

	FamilyHistory   *models.FamilyHistory      `json:"historicoFamiliar"`
	Lifestyle       *LifestyleRecord           `json:"estiloVida"`
	DietaryData     *models.DietaryData        `json:"dadosDieteticos"`
	Recall          []models.Meal              `json:"recordatorio"`
	Exams           []models.BiochemicalExam   `json:"dados_bioquimicos"`
	Diagnosis       models.Diagnosis           `json:"diagnostico"`
	Classifications []models.ClassificationRow `json:"classificacoes"`
}

// ConsultationSummary is one row of a patient's consultation listing.
type ConsultationSummary struct {
	ID            int     `json:"id"`
	Date          string  `json:"data_consulta"`
	Objective     string  `json:"objetivo_consulta"`
	CurrentWeight float64 `json:"peso_atual"`
	CurrentBMI    float64 `json:"imc_atual"`
}

type savedConsultation struct {
	ID int `json:"id"`
}

// GetConsultationByID fetches the full consultation record.
func (c *Client) GetConsultationByID(ctx context.Context, token, id string) (*ConsultationRecord, error) {
	var rec ConsultationRecord
	if err := c.do(ctx, http.MethodGet, "/consulta/"+id, token, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateConsultation creates a new consultation for the patient and returns
// the created record's id.
func (c *Client) CreateConsultation(ctx context.Context, token string, patientID int, payload *types.ConsultationPayload) (int, error) {
	var saved savedConsultation
	path := fmt.Sprintf("/paciente/%d/consulta", patientID)
	if err := c.do(ctx, http.MethodPost, path, token, payload, &saved); err != nil {
		return 0, err
	}
	return saved.ID, nil
}

// UpdateConsultation replaces the consultation addressed by id.
func (c *Client) UpdateConsultation(ctx context.Context, token, consultationID string, payload *types.ConsultationPayload) error {
	return c.do(ctx, http.MethodPut, "/consulta/"+consultationID, token, payload, nil)
}

// ListConsultations returns the consultation summaries of one patient.
func (c *Client) ListConsultations(ctx context.Context, token string, patientID int) ([]ConsultationSummary, error) {
	var list []ConsultationSummary
	path := fmt.Sprintf("/paciente/%d/consultas", patientID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// EvolutionPoint is one consultation's anthropometric snapshot for the
// patient dashboard chart.
type EvolutionPoint struct {
	Date          string  `json:"data_consulta"`
	CurrentWeight float64 `json:"peso_atual"`
	CurrentBMI    float64 `json:"imc_atual"`
}

// AnthropometricEvolution returns the per-consultation evolution series.
func (c *Client) AnthropometricEvolution(ctx context.Context, token string, patientID int) ([]EvolutionPoint, error) {
	var points []EvolutionPoint
	path := fmt.Sprintf("/paciente/%d/evolucao-antropometrica", patientID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}
