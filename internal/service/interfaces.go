package service

import (
	"context"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/models"
	"github.com/Antonio12313/mexase-api/internal/types"
)

// RecordAPI is the slice of the record API the services depend on.
type RecordAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	GetBaselineDietaryData(ctx context.Context, token string, patientID int) (*models.DietaryData, bool, error)
	GetConsultationByID(ctx context.Context, token, id string) (*client.ConsultationRecord, error)
	CreateConsultation(ctx context.Context, token string, patientID int, payload *types.ConsultationPayload) (int, error)
	UpdateConsultation(ctx context.Context, token, consultationID string, payload *types.ConsultationPayload) error
}

// SessionStore persists wizard sessions between requests. Each session owns
// exactly one draft for its lifetime.
type SessionStore interface {
	Save(ctx context.Context, s *WizardSession) error
	Get(ctx context.Context, id string) (*WizardSession, error)
	Update(ctx context.Context, s *WizardSession) error
	Delete(ctx context.Context, id string) error

	// BeginSubmit marks the session as submitting; it reports false when a
	// submission is already in flight. EndSubmit clears the marker after a
	// failed attempt so the draft can be retried.
	BeginSubmit(ctx context.Context, id string) (bool, error)
	EndSubmit(ctx context.Context, id string) error
}
