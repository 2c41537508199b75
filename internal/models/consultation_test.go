package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft(7, 3)

	assert.Equal(t, 7, d.Base.PatientID)
	assert.Equal(t, 3, d.Base.NutritionistID)

	slots := d.Recall.Slots()
	for i, slot := range slots {
		assert.Equal(t, MealTypes[i], slot.Type)
		assert.Equal(t, Monday, slot.Weekday)
		assert.Equal(t, FrequencyDaily, slot.Frequency)
		assert.NotNil(t, slot.FoodGroupIDs)
		assert.Empty(t, slot.FoodGroupIDs)
	}

	assert.Len(t, d.Exams, 1)
	assert.Equal(t, DefaultLabUnit, d.Exams[0].Unit)
	assert.Equal(t, time.Now().Format("2006-01-02"), d.Exams[0].ExamDate)

	assert.Len(t, d.Classification, len(ClassificationParameters))
	for i, row := range d.Classification {
		assert.Equal(t, ClassificationParameters[i], row.Parameter)
		assert.Empty(t, row.Value)
	}
}

func TestClassificationParametersEndWithBodyFat(t *testing.T) {
	assert.Equal(t, "percentual_gc", ClassificationParameters[len(ClassificationParameters)-1])
}

func TestRecallSlotLookup(t *testing.T) {
	r := DefaultRecall()
	for _, mt := range MealTypes {
		slot := r.Slot(mt)
		assert.NotNil(t, slot)
		assert.Equal(t, mt, slot.Type)
	}
	assert.Nil(t, r.Slot(MealType("Brunch")))
}

func TestRecallListOrder(t *testing.T) {
	r := DefaultRecall()
	r.Lunch.Foods = "arroz, feijão"

	list := r.List()
	assert.Len(t, list, 6)
	for i, meal := range list {
		assert.Equal(t, MealTypes[i], meal.Type)
	}
	assert.Equal(t, "arroz, feijão", list[2].Foods)
}

func TestRecallJSONUsesSlotKeys(t *testing.T) {
	data, err := json.Marshal(DefaultRecall())
	assert.NoError(t, err)

	var m map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"desjejum", "colacao", "almoco", "lanche", "jantar", "ceia"} {
		assert.Contains(t, m, key)
	}
}

func TestBodyFatOmittedWhenNil(t *testing.T) {
	data, err := json.Marshal(ConsultationBase{})
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "percentual_gc")

	v := 21.5
	data, err = json.Marshal(ConsultationBase{BodyFatPercent: &v})
	assert.NoError(t, err)
	assert.Contains(t, string(data), "percentual_gc")
}

func TestValidLabUnit(t *testing.T) {
	assert.True(t, ValidLabUnit("mg/dL"))
	assert.True(t, ValidLabUnit("Outro"))
	assert.False(t, ValidLabUnit("parsecs"))
}
