package models

// MealType identifies one of the six fixed recall slots. The wire values are
// the Portuguese labels used by the mexase record API.
type MealType string

const (
	MealBreakfast       MealType = "Desjejum"
	MealMidMorningSnack MealType = "Colação"
	MealLunch           MealType = "Almoço"
	MealAfternoonSnack  MealType = "Lanche"
	MealDinner          MealType = "Jantar"
	MealLateSnack       MealType = "Ceia"
)

// MealTypes lists the slot types in canonical recall order.
var MealTypes = [6]MealType{
	MealBreakfast,
	MealMidMorningSnack,
	MealLunch,
	MealAfternoonSnack,
	MealDinner,
	MealLateSnack,
}

type Weekday string

const (
	Sunday    Weekday = "Domingo"
	Monday    Weekday = "Segunda-feira"
	Tuesday   Weekday = "Terça-feira"
	Wednesday Weekday = "Quarta-feira"
	Thursday  Weekday = "Quinta-feira"
	Friday    Weekday = "Sexta-feira"
	Saturday  Weekday = "Sábado"
)

// MealFrequency is how often a recall meal is consumed.
type MealFrequency string

const (
	FrequencyDaily    MealFrequency = "Diário"
	FrequencyWeekly   MealFrequency = "Semanal"
	FrequencyBiweekly MealFrequency = "Quinzenal"
	FrequencyMonthly  MealFrequency = "Mensal"
)

type SmokingStatus string

// Smoking status values accepted by the record API.
const (
	SmokerStatusNo SmokingStatus = "NAO_TABAGISTA"
	SmokerStatus   SmokingStatus = "TABAGISTA"
	SmokerStatusEx SmokingStatus = "EX_TABAGISTA"
)

// FoodGroupCount is the size of the fixed food-group reference list; meal
// entries reference groups by id 1..FoodGroupCount.
const FoodGroupCount = 7

// LabUnits is the fixed list of units accepted for biochemical exam results.
var LabUnits = []string{
	"g/dL", "mg/dL", "mmol/L", "U/L", "μmol/L", "ng/mL", "pg/mL",
	"IU/L", "mEq/L", "g/L", "mg/L", "mmHg", "µg/dL", "mL/min", "U/gHb",
	"U/gCr", "U/mL", "ng/dL", "mmol/mol", "mg/mL", "µmol/mol", "mIU/L",
	"U/mg", "U/g", "U/µL", "mg/mmol", "mmol/mmol", "µg/mL", "ng/µL", "Outro",
}

// DefaultLabUnit is the unit preselected for a freshly added exam row.
const DefaultLabUnit = "mg/dL"

// ValidLabUnit reports whether u is a member of the fixed lab-unit list.
func ValidLabUnit(u string) bool {
	for _, v := range LabUnits {
		if v == u {
			return true
		}
	}
	return false
}
