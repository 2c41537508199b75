package types

import "github.com/Antonio12313/mexase-api/internal/models"

// LifestylePayload is the wire form of the lifestyle section. The four
// numeric-like fields edited as text become nullable integers here; null
// means absent, never zero, since a zero would read as a clinical value.
type LifestylePayload struct {
	ExerciseType      string `json:"tipo_exercicio"`
	ExerciseFrequency *int   `json:"frequencia_exercicio_semana"`
	ExerciseDuration  *int   `json:"duracao_exercicio_minutos"`
	DietGuidance      string `json:"orientacao_dieta"`
	SmokingStatus     string `json:"tabagista_status"`
	AlcoholUse        bool   `json:"etilista"`
	AlcoholYears      *int   `json:"duracao_etilismo_anos"`
	AlcoholFrequency  string `json:"frequencia_etilismo"`
	DentalProblem     bool   `json:"problema_denticao"`
	SleepHours        *int   `json:"tempo_sono_horas"`
	Medications       string `json:"medicamentos"`
	Supplements       string `json:"suplementos"`
	SaltRestriction   bool   `json:"restricao_sal"`
	SugarRestriction  bool   `json:"restricao_acucar"`
	OtherRestrictions string `json:"outras_restricoes"`
	MealLocation      string `json:"local_refeicoes"`
	MealPreparer      string `json:"quem_prepara_refeicoes"`
}

// ConsultationPayload is the assembled draft sent to the record API on
// submission. Recall is the de-keyed six-element list; Exams never serializes
// as null even when all rows were removed.
type ConsultationPayload struct {
	FamilyHistory  models.FamilyHistory       `json:"historicoFamiliar"`
	Lifestyle      LifestylePayload           `json:"estiloVida"`
	Base           models.ConsultationBase    `json:"consultaBase"`
	Recall         []models.Meal              `json:"recordatorio"`
	DietaryData    models.DietaryData         `json:"dadosDieteticos"`
	Exams          []models.BiochemicalExam   `json:"dados_bioquimicos"`
	Diagnosis      models.Diagnosis           `json:"diagnostico"`
	Classification []models.ClassificationRow `json:"classificacao"`
}
