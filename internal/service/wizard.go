package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Antonio12313/mexase-api/internal/models"
	"github.com/Antonio12313/mexase-api/internal/types"
)

// Wizard stages in order. A session starts at StageFamilyHistory, or at
// StageRecall when the patient already has baseline data on file.
const (
	StageFamilyHistory = 1
	StageLifestyle     = 2
	StageDietaryData   = 3
	StageRecall        = 4
	StageAnthropometry = 5
	StageBiochemical   = 6
	StageDiagnosis     = 7
)

// Section names accepted by UpdateSection, matching the route segments.
const (
	SectionFamilyHistory  = "historico-familiar"
	SectionLifestyle      = "estilo-vida"
	SectionDietaryData    = "dados-dieteticos"
	SectionRecall         = "recordatorio"
	SectionAnthropometry  = "avaliacao-antropometrica"
	SectionBiochemical    = "dados-bioquimicos"
	SectionDiagnosis      = "diagnostico"
	SectionClassification = "classificacao"
)

var (
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrAtFinalStage    = errors.New("already at the final stage")
	ErrAtFirstStage    = errors.New("already at the session's first stage")
	ErrNotAtFinalStage = errors.New("submission is only available at the final stage")
	ErrSubmitInFlight  = errors.New("a submission for this session is already in flight")
	ErrUnknownSection  = errors.New("unknown wizard section")
	ErrSectionBody     = errors.New("malformed section body")
	ErrExamIndex       = errors.New("exam index out of range")
)

// WizardSession is one in-progress consultation intake. It owns the draft
// exclusively until submission succeeds or the session expires.
type WizardSession struct {
	ID             string                    `json:"id"`
	PatientID      int                       `json:"patient_id"`
	ConsultationID string                    `json:"consultation_id,omitempty"`
	NutritionistID int                       `json:"nutritionist_id"`
	Stage          int                       `json:"stage"`
	FirstStage     int                       `json:"first_stage"`
	Warning        string                    `json:"warning,omitempty"`
	Draft          *models.ConsultationDraft `json:"draft"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// BaselineSkipped reports whether stages 1-3 were skipped for this session.
func (s *WizardSession) BaselineSkipped() bool {
	return s.FirstStage == StageRecall
}

// Advance moves to the next stage; at the final stage only Submit remains.
func (s *WizardSession) Advance() error {
	if s.Stage >= StageDiagnosis {
		return ErrAtFinalStage
	}
	s.Stage++
	return nil
}

// Back moves to the previous stage, never crossing the session's first
// stage: skipped baseline stages stay unreachable.
func (s *WizardSession) Back() error {
	if s.Stage <= s.FirstStage {
		return ErrAtFirstStage
	}
	s.Stage--
	return nil
}

// Response shapes the session for the API layer.
func (s *WizardSession) Response() *types.SessionResponse {
	return &types.SessionResponse{
		ID:              s.ID,
		PatientID:       s.PatientID,
		ConsultationID:  s.ConsultationID,
		Stage:           s.Stage,
		FirstStage:      s.FirstStage,
		BaselineSkipped: s.BaselineSkipped(),
		Warning:         s.Warning,
		Draft:           s.Draft,
	}
}

// WizardService drives consultation intake sessions: stage sequencing,
// section updates, reconciliation with existing records and final
// submission to the record API.
type WizardService struct {
	api   RecordAPI
	store SessionStore
}

func NewWizardService(api RecordAPI, store SessionStore) *WizardService {
	return &WizardService{api: api, store: store}
}

// StartSession opens a session for the patient. When consultationID is set
// the existing record is fetched and reshaped into the draft (edit mode).
// Both collaborator fetches fail open: on error the draft keeps its default
// skeleton and the failure is carried as a non-blocking warning.
func (s *WizardService) StartSession(ctx context.Context, token string, patientID int, consultationID string, nutritionistID int) (*WizardSession, error) {
	now := time.Now()
	sess := &WizardSession{
		ID:             uuid.New().String(),
		PatientID:      patientID,
		NutritionistID: nutritionistID,
		Stage:          StageFamilyHistory,
		FirstStage:     StageFamilyHistory,
		Draft:          models.NewDraft(patientID, nutritionistID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	baseline, found, err := s.api.GetBaselineDietaryData(ctx, token, patientID)
	switch {
	case err != nil:
		log.Printf("baseline check failed for patient %d: %v", patientID, err)
		sess.Warning = "não foi possível verificar os dados dietéticos do paciente"
	case found:
		sess.FirstStage = StageRecall
		sess.Stage = StageRecall
		if baseline != nil {
			// carried through, never re-collected in this session
			sess.Draft.DietaryData = *baseline
		}
	}

	if consultationID != "" {
		sess.ConsultationID = consultationID
		rec, err := s.api.GetConsultationByID(ctx, token, consultationID)
		if err != nil {
			log.Printf("hydration failed for consultation %s: %v", consultationID, err)
			sess.Warning = "não foi possível carregar a consulta; o formulário iniciou vazio"
		} else {
			sess.Draft = DraftFromRecord(rec)
		}
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save wizard session: %w", err)
	}
	return sess, nil
}

// GetSession loads an existing session.
func (s *WizardService) GetSession(ctx context.Context, id string) (*WizardSession, error) {
	return s.store.Get(ctx, id)
}

// Advance moves the session one stage forward and persists it.
func (s *WizardService) Advance(ctx context.Context, id string) (*WizardSession, error) {
	return s.transition(ctx, id, (*WizardSession).Advance)
}

// Back moves the session one stage backward and persists it.
func (s *WizardService) Back(ctx context.Context, id string) (*WizardSession, error) {
	return s.transition(ctx, id, (*WizardSession).Back)
}

func (s *WizardService) transition(ctx context.Context, id string, step func(*WizardSession) error) (*WizardSession, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := step(sess); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update wizard session: %w", err)
	}
	return sess, nil
}

// UpdateSection replaces one draft section from its JSON body. The switch is
// exhaustive over the known sections; invariants (fixed slot types, canonical
// classification rows, session identity on the base record) are re-imposed on
// whatever the caller sent.
func (s *WizardService) UpdateSection(ctx context.Context, id, section string, body []byte) (*WizardSession, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch section {
	case SectionFamilyHistory:
		var v models.FamilyHistory
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSectionBody, section, err)
		}
		sess.Draft.FamilyHistory = v

	case SectionLifestyle:
		var v models.Lifestyle
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSectionBody, section, err)
		}
		sess.Draft.Lifestyle = v

	case SectionDietaryData:
		var v models.DietaryData
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSectionBody, section, err)
		}
		sess.Draft.DietaryData = v

	case SectionRecall:
		var v models.Recall
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSectionBody, section, err)
		}
		for i, slot := range v.Slots() {
			slot.Type = models.MealTypes[i]
			if slot.FoodGroupIDs == nil {
				slot.FoodGroupIDs = []int{}
			}
		}
		sess.Draft.Recall = v

	case SectionAnthropometry:
		var v models.ConsultationBase
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSectionBody, section, err)
		}
		v.PatientID = sess.PatientID
		v.NutritionistID = sess.NutritionistID
		sess.Draft.Base = v

	case SectionBiochemical:
		var v []models.BiochemicalExam
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSectionBody, section, err)
		}
		if v == nil {
			v = []models.BiochemicalExam{}
		}
		sess.Draft.Exams = v

	case SectionDiagnosis:
		var v models.Diagnosis
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSectionBody, section, err)
		}
		sess.Draft.Diagnosis = v

	case SectionClassification:
		var v []models.ClassificationRow
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSectionBody, section, err)
		}
		// only values move; row identity and order are fixed
		byParam := make(map[string]string, len(v))
		for _, row := range v {
			byParam[row.Parameter] = row.Value
		}
		for i := range sess.Draft.Classification {
			if val, ok := byParam[sess.Draft.Classification[i].Parameter]; ok {
				sess.Draft.Classification[i].Value = val
			}
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	if err := s.store.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update wizard session: %w", err)
	}
	return sess, nil
}

// AddExam appends a lab-result row, defaulting unit and date.
func (s *WizardService) AddExam(ctx context.Context, id string, req *types.AddExamRequest) (*WizardSession, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	exam := models.DefaultExam()
	if req != nil {
		if req.Name != "" {
			exam.Name = req.Name
		}
		exam.Value = req.Value
		if req.Unit != "" {
			exam.Unit = req.Unit
		}
		if req.ExamDate != "" {
			exam.ExamDate = req.ExamDate
		}
	}
	sess.Draft.Exams = append(sess.Draft.Exams, exam)
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update wizard session: %w", err)
	}
	return sess, nil
}

// RemoveExam drops the lab-result row at index.
func (s *WizardService) RemoveExam(ctx context.Context, id string, index int) (*WizardSession, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sess.Draft.Exams) {
		return nil, ErrExamIndex
	}
	sess.Draft.Exams = append(sess.Draft.Exams[:index], sess.Draft.Exams[index+1:]...)
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update wizard session: %w", err)
	}
	return sess, nil
}

// Submit assembles the draft and sends it to the record API: update when the
// session is bound to a consultation id, create addressed by patient id
// otherwise. On failure the session and its draft are left untouched for
// correction and retry; on success the session is destroyed.
func (s *WizardService) Submit(ctx context.Context, token, id string) (*types.SubmitResponse, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Stage != StageDiagnosis {
		return nil, ErrNotAtFinalStage
	}
	if err := ValidateDraft(sess.Draft); err != nil {
		return nil, err
	}

	ok, err := s.store.BeginSubmit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("acquire submit guard: %w", err)
	}
	if !ok {
		return nil, ErrSubmitInFlight
	}

	payload := AssemblePayload(sess.Draft)

	if sess.ConsultationID != "" {
		if err := s.api.UpdateConsultation(ctx, token, sess.ConsultationID, payload); err != nil {
			_ = s.store.EndSubmit(ctx, id)
			return nil, err
		}
		_ = s.store.Delete(ctx, id)
		return &types.SubmitResponse{ConsultationID: sess.ConsultationID, Updated: true}, nil
	}

	createdID, err := s.api.CreateConsultation(ctx, token, sess.PatientID, payload)
	if err != nil {
		_ = s.store.EndSubmit(ctx, id)
		return nil, err
	}
	_ = s.store.Delete(ctx, id)
	return &types.SubmitResponse{ConsultationID: strconv.Itoa(createdID)}, nil
}
