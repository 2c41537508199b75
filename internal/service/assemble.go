package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Antonio12313/mexase-api/internal/models"
	"github.com/Antonio12313/mexase-api/internal/types"
)

// ValidationError blocks a submission with field-level messages; entered data
// is never silently dropped.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid draft: " + strings.Join(parts, "; ")
}

// ValidateDraft checks enumerated-value membership across the draft before
// assembly. Free-text completeness is not enforced; only shape is.
func ValidateDraft(d *models.ConsultationDraft) error {
	fields := make(map[string]string)

	if st := d.Lifestyle.SmokingStatus; st != "" {
		switch models.SmokingStatus(st) {
		case models.SmokerStatusNo, models.SmokerStatus, models.SmokerStatusEx:
		default:
			fields["estiloVida.tabagista_status"] = "valor desconhecido"
		}
	}

	for i, slot := range d.Recall.Slots() {
		name := string(models.MealTypes[i])
		switch slot.Frequency {
		case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyBiweekly, models.FrequencyMonthly:
		default:
			fields["recordatorio."+name+".frequencia"] = "valor desconhecido"
		}
		switch slot.Weekday {
		case models.Sunday, models.Monday, models.Tuesday, models.Wednesday,
			models.Thursday, models.Friday, models.Saturday:
		default:
			fields["recordatorio."+name+".dia_semana"] = "valor desconhecido"
		}
		for _, g := range slot.FoodGroupIDs {
			if g < 1 || g > models.FoodGroupCount {
				fields["recordatorio."+name+".grupos_alimentares_ids"] = "grupo alimentar inválido"
				break
			}
		}
	}

	for i, exam := range d.Exams {
		if !models.ValidLabUnit(exam.Unit) {
			fields[fmt.Sprintf("dados_bioquimicos.%d.unidade", i)] = "unidade desconhecida"
		}
		if exam.ExamDate == "" {
			fields[fmt.Sprintf("dados_bioquimicos.%d.data_exame", i)] = "a data do exame é obrigatória"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// AssemblePayload converts the draft into the record API's wire shape: the
// recall is de-keyed into its six-element list, the lifestyle text numerics
// become nullable integers and the exam list always serializes, even empty.
func AssemblePayload(d *models.ConsultationDraft) *types.ConsultationPayload {
	exams := d.Exams
	if exams == nil {
		exams = []models.BiochemicalExam{}
	}
	return &types.ConsultationPayload{
		FamilyHistory:  d.FamilyHistory,
		Lifestyle:      lifestylePayload(d.Lifestyle),
		Base:           d.Base,
		Recall:         d.Recall.List(),
		DietaryData:    d.DietaryData,
		Exams:          exams,
		Diagnosis:      d.Diagnosis,
		Classification: d.Classification,
	}
}

func lifestylePayload(ls models.Lifestyle) types.LifestylePayload {
	return types.LifestylePayload{
		ExerciseType:      ls.ExerciseType,
		ExerciseFrequency: clinicalInt(ls.ExerciseFrequency),
		ExerciseDuration:  clinicalInt(ls.ExerciseDuration),
		DietGuidance:      ls.DietGuidance,
		SmokingStatus:     ls.SmokingStatus,
		AlcoholUse:        ls.AlcoholUse,
		AlcoholYears:      clinicalInt(ls.AlcoholYears),
		AlcoholFrequency:  ls.AlcoholFrequency,
		DentalProblem:     ls.DentalProblem,
		SleepHours:        clinicalInt(ls.SleepHours),
		Medications:       ls.Medications,
		Supplements:       ls.Supplements,
		SaltRestriction:   ls.SaltRestriction,
		SugarRestriction:  ls.SugarRestriction,
		OtherRestrictions: ls.OtherRestrictions,
		MealLocation:      ls.MealLocation,
		MealPreparer:      ls.MealPreparer,
	}
}

// clinicalInt coerces a text-edited numeric field. Empty, non-numeric and
// zero all map to null: a zero here would read as a measured clinical value,
// not as absence.
func clinicalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}
