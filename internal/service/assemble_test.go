package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/models"
)

func TestClinicalInt(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"", nil},
		{"  ", nil},
		{"abc", nil},
		{"0", nil},
		{"3", intPtr(3)},
		{" 12 ", intPtr(12)},
	}
	for _, tt := range tests {
		got := clinicalInt(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "input %q", tt.in)
		} else {
			assert.NotNil(t, got, "input %q", tt.in)
			assert.Equal(t, *tt.want, *got)
		}
	}
}

func intPtr(n int) *int { return &n }

func TestAssemblePayloadDeKeysRecall(t *testing.T) {
	d := models.NewDraft(4, 1)
	d.Recall.Lunch.Foods = "arroz e feijão"

	payload := AssemblePayload(d)

	assert.Len(t, payload.Recall, 6)
	for i, meal := range payload.Recall {
		assert.Equal(t, models.MealTypes[i], meal.Type)
	}
	assert.Equal(t, "arroz e feijão", payload.Recall[2].Foods)
}

func TestAssemblePayloadExamsNeverNull(t *testing.T) {
	d := models.NewDraft(4, 1)
	d.Exams = nil

	payload := AssemblePayload(d)
	assert.NotNil(t, payload.Exams)

	data, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"dados_bioquimicos":[]`)
}

func TestAssemblePayloadLifestyleCoercion(t *testing.T) {
	d := models.NewDraft(4, 1)
	d.Lifestyle.ExerciseFrequency = "4"
	d.Lifestyle.ExerciseDuration = ""
	d.Lifestyle.SleepHours = "0"
	d.Lifestyle.AlcoholYears = "dez"

	payload := AssemblePayload(d)

	assert.NotNil(t, payload.Lifestyle.ExerciseFrequency)
	assert.Equal(t, 4, *payload.Lifestyle.ExerciseFrequency)
	assert.Nil(t, payload.Lifestyle.ExerciseDuration)
	assert.Nil(t, payload.Lifestyle.SleepHours)
	assert.Nil(t, payload.Lifestyle.AlcoholYears)
}

func TestAssemblePayloadWireNames(t *testing.T) {
	d := models.NewDraft(4, 1)
	data, err := json.Marshal(AssemblePayload(d))
	assert.NoError(t, err)

	var m map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "classificacao")
	assert.NotContains(t, m, "classificacoes")
	assert.Contains(t, m, "recordatorio")
	assert.Contains(t, m, "consultaBase")
}

func TestHydrateThenAssembleRoundTrip(t *testing.T) {
	rec := &client.ConsultationRecord{
		ConsultationBase: models.ConsultationBase{PatientID: 5, NutritionistID: 2},
		Recall: []models.Meal{
			{Type: models.MealLunch, Foods: "frango"},
			{Type: models.MealBreakfast, Foods: "café"},
			{Type: models.MealLateSnack, Foods: "chá"},
			{Type: models.MealDinner, Foods: "sopa"},
		},
	}

	payload := AssemblePayload(DraftFromRecord(rec))

	// All six slots survive, in canonical order, none dropped or duplicated.
	assert.Len(t, payload.Recall, 6)
	seen := map[models.MealType]int{}
	for i, meal := range payload.Recall {
		assert.Equal(t, models.MealTypes[i], meal.Type)
		seen[meal.Type]++
	}
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
	assert.Equal(t, "frango", payload.Recall[2].Foods)
	assert.Empty(t, payload.Recall[1].Foods)
}

func TestValidateDraftAcceptsDefaults(t *testing.T) {
	d := models.NewDraft(4, 1)
	assert.NoError(t, ValidateDraft(d))
}

func TestValidateDraftRejectsBadUnit(t *testing.T) {
	d := models.NewDraft(4, 1)
	d.Exams[0].Unit = "parsecs"

	err := ValidateDraft(d)
	assert.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "dados_bioquimicos.0.unidade")
}

func TestValidateDraftRejectsBadFrequency(t *testing.T) {
	d := models.NewDraft(4, 1)
	d.Recall.Breakfast.Frequency = "Anual"

	err := ValidateDraft(d)
	assert.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "recordatorio.Desjejum.frequencia")
}

func TestValidateDraftRejectsBadFoodGroup(t *testing.T) {
	d := models.NewDraft(4, 1)
	d.Recall.Dinner.FoodGroupIDs = []int{1, 99}

	err := ValidateDraft(d)
	assert.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "recordatorio.Jantar.grupos_alimentares_ids")
}

func TestValidateDraftSmokingStatus(t *testing.T) {
	d := models.NewDraft(4, 1)
	d.Lifestyle.SmokingStatus = ""
	assert.NoError(t, ValidateDraft(d))

	d.Lifestyle.SmokingStatus = "EX_TABAGISTA"
	assert.NoError(t, ValidateDraft(d))

	d.Lifestyle.SmokingStatus = "FUMANTE"
	assert.Error(t, ValidateDraft(d))
}
