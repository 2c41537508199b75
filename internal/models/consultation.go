package models

import "time"

// FamilyHistory is the hereditary-condition section of a consultation draft.
// Field names on the wire are the record API's Portuguese names.
type FamilyHistory struct {
	Hypertension     bool   `json:"historico_hipertensao"`
	Diabetes         bool   `json:"historico_diabetes"`
	Dyslipidemia     bool   `json:"historico_dislipidemia"`
	Cancer           bool   `json:"historico_cancer"`
	HeartDisease     bool   `json:"historico_cardiacas"`
	ThyroidDisease   bool   `json:"historico_tireoide"`
	ExcessWeight     bool   `json:"historico_excesso_peso"`
	OtherConditions  string `json:"historico_outras_condicoes"`
	FamilyBackground string `json:"antecedentes_familiares"`
}

// Lifestyle holds habit data. The four numeric-like fields (exercise
// frequency/duration, sleep hours, alcohol years) stay strings while the
// draft is being edited and are only coerced to numbers at submission.
type Lifestyle struct {
	ExerciseType      string `json:"tipo_exercicio"`
	ExerciseFrequency string `json:"frequencia_exercicio_semana"`
	ExerciseDuration  string `json:"duracao_exercicio_minutos"`
	DietGuidance      string `json:"orientacao_dieta"`
	SmokingStatus     string `json:"tabagista_status"`
	AlcoholUse        bool   `json:"etilista"`
	AlcoholYears      string `json:"duracao_etilismo_anos"`
	AlcoholFrequency  string `json:"frequencia_etilismo"`
	DentalProblem     bool   `json:"problema_denticao"`
	SleepHours        string `json:"tempo_sono_horas"`
	Medications       string `json:"medicamentos"`
	Supplements       string `json:"suplementos"`
	SaltRestriction   bool   `json:"restricao_sal"`
	SugarRestriction  bool   `json:"restricao_acucar"`
	OtherRestrictions string `json:"outras_restricoes"`
	MealLocation      string `json:"local_refeicoes"`
	MealPreparer      string `json:"quem_prepara_refeicoes"`
}

// ConsultationBase is the anthropometric/session record of the draft.
type ConsultationBase struct {
	BowelElimination string `json:"eliminacao_intestinal" binding:"max=60"`
	StoolFrequency   string `json:"frequencia_evacuatoria" binding:"max=60"`
	Objective        string `json:"objetivo_consulta" binding:"max=150"`

	CurrentWeight float64 `json:"peso_atual"`
	UsualWeight   float64 `json:"peso_habitual"`
	Height        float64 `json:"estatura"`
	CurrentBMI    float64 `json:"imc_atual"`

	ArmCircumference   float64 `json:"cb"`
	WaistCircumference float64 `json:"cc"`
	HipCircumference   float64 `json:"cq"`
	NeckCircumference  float64 `json:"c_pescoco"`

	TricepsSkinfold     float64 `json:"dct"`
	BicepsSkinfold      float64 `json:"dcb"`
	SubscapularSkinfold float64 `json:"dcse"`
	SuprailiacSkinfold  float64 `json:"dcsi"`
	ThighSkinfold       float64 `json:"dcx"`
	AbdominalSkinfold   float64 `json:"dca"`

	CorrectedArmMuscleArea float64 `json:"ambc"`
	ArmMuscleCircumference float64 `json:"cmb"`
	SkinfoldSum            float64 `json:"somatorio_dobras"`

	NutritionistID int `json:"id_nutricionista"`
	PatientID      int `json:"id_paciente"`

	BodyFatPercent *float64 `json:"percentual_gc,omitempty"`
}

// Meal is one recall entry. Type is fixed per slot and never changes after
// the draft is created.
type Meal struct {
	Type         MealType      `json:"tipo_refeicao"`
	Weekday      Weekday       `json:"dia_semana"`
	Time         string        `json:"horario_refeicao"`
	Foods        string        `json:"alimentos_consumidos" binding:"max=250"`
	Frequency    MealFrequency `json:"frequencia"`
	Observation  string        `json:"observacao" binding:"max=250"`
	FoodGroupIDs []int         `json:"grupos_alimentares_ids"`
}

// Recall is the six fixed meal slots of a consultation. The slots are named
// fields rather than a keyed map so a typo cannot silently create a new slot.
type Recall struct {
	Breakfast       Meal `json:"desjejum"`
	MidMorningSnack Meal `json:"colacao"`
	Lunch           Meal `json:"almoco"`
	AfternoonSnack  Meal `json:"lanche"`
	Dinner          Meal `json:"jantar"`
	LateSnack       Meal `json:"ceia"`
}

// Slots returns pointers to the six slots in canonical order, indexed the
// same way as MealTypes.
func (r *Recall) Slots() [6]*Meal {
	return [6]*Meal{
		&r.Breakfast,
		&r.MidMorningSnack,
		&r.Lunch,
		&r.AfternoonSnack,
		&r.Dinner,
		&r.LateSnack,
	}
}

// Slot returns the slot holding the given meal type, or nil for an unknown
// type.
func (r *Recall) Slot(t MealType) *Meal {
	switch t {
	case MealBreakfast:
		return &r.Breakfast
	case MealMidMorningSnack:
		return &r.MidMorningSnack
	case MealLunch:
		return &r.Lunch
	case MealAfternoonSnack:
		return &r.AfternoonSnack
	case MealDinner:
		return &r.Dinner
	case MealLateSnack:
		return &r.LateSnack
	}
	return nil
}

// List flattens the recall into the six-element ordered list the record API
// expects; the slot keys are discarded and only tipo_refeicao identifies the
// meal from here on.
func (r *Recall) List() []Meal {
	return []Meal{
		r.Breakfast,
		r.MidMorningSnack,
		r.Lunch,
		r.AfternoonSnack,
		r.Dinner,
		r.LateSnack,
	}
}

// DietaryData is the patient-level dietary baseline section.
type DietaryData struct {
	FoodAversions   string `json:"aversao_alimentos" binding:"max=150"`
	FoodPreferences string `json:"preferencia_alimentos" binding:"max=150"`
	FoodAllergies   string `json:"alergia_alimentos" binding:"max=150"`
}

// BiochemicalExam is one lab result row.
type BiochemicalExam struct {
	Name     string  `json:"nome_exame"`
	Value    float64 `json:"valor"`
	Unit     string  `json:"unidade"`
	ExamDate string  `json:"data_exame"`
}

// Diagnosis is the final wizard stage.
type Diagnosis struct {
	Nutritional string `json:"diagnostico_nutricional"`
	DietTherapy string `json:"diagnostico_dietoterapia"`
	Conduct     string `json:"conduta_nutricional"`
}

// ClassificationRow attaches a clinician-entered qualitative label to one
// anthropometric parameter of ConsultationBase.
type ClassificationRow struct {
	Parameter string `json:"parametro"`
	Value     string `json:"valor_classificacao"`
}

// ClassificationParameters is the canonical ordered list of anthropometric
// parameter keys. UI rows are matched to ConsultationBase fields by these
// keys, so the order and identity never change.
var ClassificationParameters = [18]string{
	"peso_atual",
	"peso_habitual",
	"estatura",
	"imc_atual",
	"cb",
	"cc",
	"cq",
	"c_pescoco",
	"dct",
	"dcb",
	"dcse",
	"dcsi",
	"dcx",
	"dca",
	"ambc",
	"cmb",
	"somatorio_dobras",
	"percentual_gc",
}

// ConsultationDraft is the aggregate edited across wizard stages.
type ConsultationDraft struct {
	FamilyHistory  FamilyHistory       `json:"historicoFamiliar"`
	Lifestyle      Lifestyle           `json:"estiloVida"`
	Base           ConsultationBase    `json:"consultaBase"`
	Recall         Recall              `json:"recordatorio"`
	DietaryData    DietaryData         `json:"dadosDieteticos"`
	Exams          []BiochemicalExam   `json:"dados_bioquimicos"`
	Diagnosis      Diagnosis           `json:"diagnostico"`
	Classification []ClassificationRow `json:"classificacao"`
}

// NewDraft builds a draft with every section at its default skeleton.
func NewDraft(patientID, nutritionistID int) *ConsultationDraft {
	return &ConsultationDraft{
		Base: ConsultationBase{
			NutritionistID: nutritionistID,
			PatientID:      patientID,
		},
		Recall:         DefaultRecall(),
		Exams:          []BiochemicalExam{DefaultExam()},
		Classification: DefaultClassification(),
	}
}

// DefaultMeal is the empty skeleton for one recall slot.
func DefaultMeal(t MealType) Meal {
	return Meal{
		Type:         t,
		Weekday:      Monday,
		Frequency:    FrequencyDaily,
		FoodGroupIDs: []int{},
	}
}

// DefaultRecall returns the six slots, each at its skeleton.
func DefaultRecall() Recall {
	return Recall{
		Breakfast:       DefaultMeal(MealBreakfast),
		MidMorningSnack: DefaultMeal(MealMidMorningSnack),
		Lunch:           DefaultMeal(MealLunch),
		AfternoonSnack:  DefaultMeal(MealAfternoonSnack),
		Dinner:          DefaultMeal(MealDinner),
		LateSnack:       DefaultMeal(MealLateSnack),
	}
}

// DefaultExam is a fresh lab-result row dated today.
func DefaultExam() BiochemicalExam {
	return BiochemicalExam{
		Unit:     DefaultLabUnit,
		ExamDate: Today(),
	}
}

// DefaultClassification returns the 18 canonical parameter rows with empty
// values.
func DefaultClassification() []ClassificationRow {
	rows := make([]ClassificationRow, len(ClassificationParameters))
	for i, p := range ClassificationParameters {
		rows[i] = ClassificationRow{Parameter: p}
	}
	return rows
}

// Today is the bare ISO calendar date used for exam-date defaults.
func Today() string {
	return time.Now().Format("2006-01-02")
}
