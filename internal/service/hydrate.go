package service

import (
	"encoding/json"
	"strings"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/models"
)

// DraftFromRecord reshapes a stored consultation into the draft the wizard
// edits. Sections the record omits fall back to their default skeletons so
// the hydrated draft always validates; nothing is ever left undefined.
func DraftFromRecord(rec *client.ConsultationRecord) *models.ConsultationDraft {
	d := models.NewDraft(rec.PatientID, rec.NutritionistID)

	// Anthropometric fields live at the record's top level. Nullable text
	// fields decode to "" already, which is exactly the editable shape.
	d.Base = rec.ConsultationBase

	if rec.FamilyHistory != nil {
		d.FamilyHistory = *rec.FamilyHistory
	}
	if rec.DietaryData != nil {
		d.DietaryData = *rec.DietaryData
	}
	if rec.Lifestyle != nil {
		d.Lifestyle = lifestyleFromRecord(rec.Lifestyle)
	}

	// The record's recall is a flat list tagged by tipo_refeicao. Every
	// fixed slot is filled from the first matching entry; a missing entry
	// leaves the slot at its skeleton. Slots are never dropped or duplicated.
	recall := models.DefaultRecall()
	for i, t := range models.MealTypes {
		for _, m := range rec.Recall {
			if m.Type == t {
				meal := m
				if meal.FoodGroupIDs == nil {
					meal.FoodGroupIDs = []int{}
				}
				*recall.Slots()[i] = meal
				break
			}
		}
	}
	d.Recall = recall

	exams := make([]models.BiochemicalExam, len(rec.Exams))
	for i, e := range rec.Exams {
		e.ExamDate = calendarDate(e.ExamDate)
		exams[i] = e
	}
	d.Exams = exams

	d.Diagnosis = rec.Diagnosis

	// Classification rows come back verbatim, already in canonical order.
	if len(rec.Classifications) > 0 {
		d.Classification = rec.Classifications
	}

	return d
}

// lifestyleFromRecord stringifies the numeric lifestyle fields: the editing
// surface treats them as text until submission coerces them back.
func lifestyleFromRecord(ls *client.LifestyleRecord) models.Lifestyle {
	return models.Lifestyle{
		ExerciseType:      ls.ExerciseType,
		ExerciseFrequency: numberString(ls.ExerciseFrequency),
		ExerciseDuration:  numberString(ls.ExerciseDuration),
		DietGuidance:      ls.DietGuidance,
		SmokingStatus:     ls.SmokingStatus,
		AlcoholUse:        ls.AlcoholUse,
		AlcoholYears:      numberString(ls.AlcoholYears),
		AlcoholFrequency:  ls.AlcoholFrequency,
		DentalProblem:     ls.DentalProblem,
		SleepHours:        numberString(ls.SleepHours),
		Medications:       ls.Medications,
		Supplements:       ls.Supplements,
		SaltRestriction:   ls.SaltRestriction,
		SugarRestriction:  ls.SugarRestriction,
		OtherRestrictions: ls.OtherRestrictions,
		MealLocation:      ls.MealLocation,
		MealPreparer:      ls.MealPreparer,
	}
}

func numberString(n *json.Number) string {
	if n == nil {
		return ""
	}
	return n.String()
}

// calendarDate truncates an upstream timestamp to its bare calendar date and
// substitutes today when the record carries none.
func calendarDate(s string) string {
	if s == "" {
		return models.Today()
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}
