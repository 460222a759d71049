package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/job-analyzer/internal/models"
)

type MockAnalysisRepository struct {
	mock.Mock
}

func (m *MockAnalysisRepository) Create(ctx context.Context, record *models.AnalysisRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAnalysisRepository) FindRecent(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	args := m.Called(ctx, limit)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.AnalysisRecord), args.Error(1)
}
