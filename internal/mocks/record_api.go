package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Antonio12313/mexase-api/internal/client"
	"github.com/Antonio12313/mexase-api/internal/models"
	"github.com/Antonio12313/mexase-api/internal/types"
)

// MockRecordAPI is a testify mock of the record API slice the services use.
type MockRecordAPI struct {
	mock.Mock
}

func (m *MockRecordAPI) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockRecordAPI) GetBaselineDietaryData(ctx context.Context, token string, patientID int) (*models.DietaryData, bool, error) {
	args := m.Called(ctx, token, patientID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.DietaryData), args.Bool(1), args.Error(2)
}

func (m *MockRecordAPI) GetConsultationByID(ctx context.Context, token, id string) (*client.ConsultationRecord, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.ConsultationRecord), args.Error(1)
}

func (m *MockRecordAPI) CreateConsultation(ctx context.Context, token string, patientID int, payload *types.ConsultationPayload) (int, error) {
	args := m.Called(ctx, token, patientID, payload)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordAPI) UpdateConsultation(ctx context.Context, token, consultationID string, payload *types.ConsultationPayload) error {
	args := m.Called(ctx, token, consultationID, payload)
	return args.Error(0)
}
