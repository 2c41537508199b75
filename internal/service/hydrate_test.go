package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/models"
)

func jsonNumber(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func TestDraftFromRecordFillsSlotsByType(t *testing.T) {
	rec := &client.ConsultationRecord{
		ConsultationBase: models.ConsultationBase{PatientID: 5, NutritionistID: 2},
		Recall: []models.Meal{
			{Type: models.MealLunch, Foods: "frango grelhado", Weekday: models.Friday, Frequency: models.FrequencyWeekly},
			{Type: models.MealBreakfast, Foods: "pão e café", Weekday: models.Monday, Frequency: models.FrequencyDaily},
		},
	}

	d := DraftFromRecord(rec)

	assert.Equal(t, "pão e café", d.Recall.Breakfast.Foods)
	assert.Equal(t, "frango grelhado", d.Recall.Lunch.Foods)
	assert.Equal(t, models.Friday, d.Recall.Lunch.Weekday)

	// Slots missing from the record keep their skeletons.
	assert.Equal(t, models.MealDinner, d.Recall.Dinner.Type)
	assert.Empty(t, d.Recall.Dinner.Foods)
	assert.Equal(t, models.FrequencyDaily, d.Recall.Dinner.Frequency)

	for i, slot := range d.Recall.Slots() {
		assert.Equal(t, models.MealTypes[i], slot.Type)
		assert.NotNil(t, slot.FoodGroupIDs)
	}
}

func TestDraftFromRecordDuplicateSlotKeepsFirst(t *testing.T) {
	rec := &client.ConsultationRecord{
		Recall: []models.Meal{
			{Type: models.MealDinner, Foods: "sopa"},
			{Type: models.MealDinner, Foods: "pizza"},
		},
	}

	d := DraftFromRecord(rec)
	assert.Equal(t, "sopa", d.Recall.Dinner.Foods)
	assert.Len(t, d.Recall.List(), 6)
}

func TestDraftFromRecordNilSectionsDefault(t *testing.T) {
	rec := &client.ConsultationRecord{
		ConsultationBase: models.ConsultationBase{PatientID: 9, NutritionistID: 1},
	}

	d := DraftFromRecord(rec)

	assert.Equal(t, models.FamilyHistory{}, d.FamilyHistory)
	assert.Equal(t, models.Lifestyle{}, d.Lifestyle)
	assert.Equal(t, models.DietaryData{}, d.DietaryData)
	assert.NotNil(t, d.Exams)
	assert.Empty(t, d.Exams)
	assert.Len(t, d.Classification, len(models.ClassificationParameters))
	assert.Equal(t, 9, d.Base.PatientID)
}

func TestDraftFromRecordLifestyleNumbersBecomeText(t *testing.T) {
	rec := &client.ConsultationRecord{
		Lifestyle: &client.LifestyleRecord{
			ExerciseFrequency: jsonNumber("3"),
			ExerciseDuration:  nil,
			SleepHours:        jsonNumber("8"),
			AlcoholYears:      nil,
			Medications:       "losartana",
		},
	}

	d := DraftFromRecord(rec)

	assert.Equal(t, "3", d.Lifestyle.ExerciseFrequency)
	assert.Equal(t, "", d.Lifestyle.ExerciseDuration)
	assert.Equal(t, "8", d.Lifestyle.SleepHours)
	assert.Equal(t, "", d.Lifestyle.AlcoholYears)
	assert.Equal(t, "losartana", d.Lifestyle.Medications)
}

func TestDraftFromRecordExamDates(t *testing.T) {
	rec := &client.ConsultationRecord{
		Exams: []models.BiochemicalExam{
			{Name: "Glicemia", ExamDate: "2026-03-10T00:00:00.000Z"},
			{Name: "Colesterol", ExamDate: "2026-03-11"},
			{Name: "Ureia", ExamDate: ""},
		},
	}

	d := DraftFromRecord(rec)

	assert.Equal(t, "2026-03-10", d.Exams[0].ExamDate)
	assert.Equal(t, "2026-03-11", d.Exams[1].ExamDate)
	assert.Equal(t, time.Now().Format("2006-01-02"), d.Exams[2].ExamDate)
}

func TestDraftFromRecordKeepsStoredClassifications(t *testing.T) {
	stored := []models.ClassificationRow{
		{Parameter: "peso_atual", Value: "adequado"},
		{Parameter: "imc_atual", Value: "eutrofia"},
	}
	rec := &client.ConsultationRecord{Classifications: stored}

	d := DraftFromRecord(rec)
	assert.Equal(t, stored, d.Classification)
}
