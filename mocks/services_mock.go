package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/job-analyzer/internal/models"
	"alfredoptarigan/job-analyzer/internal/services"
)

type MockGeminiService struct {
	mock.Mock
}

func (m *MockGeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockPDFParser struct {
	mock.Mock
}

func (m *MockPDFParser) ExtractText(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

type MockAnalysisClient struct {
	mock.Mock
}

func (m *MockAnalysisClient) Analyze(ctx context.Context, prompt, contextText string) services.Analysis {
	args := m.Called(ctx, prompt, contextText)
	return args.Get(0).(services.Analysis)
}

type MockAnalyzerService struct {
	mock.Mock
}

func (m *MockAnalyzerService) AnalyzeResume(ctx context.Context, req *models.UploadRequest) (*models.ResumeAnalysisResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ResumeAnalysisResponse), args.Error(1)
}

func (m *MockAnalyzerService) AnalyzeJob(ctx context.Context, req *models.JobPostingRequest) (*models.JobAnalysisResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.JobAnalysisResponse), args.Error(1)
}

func (m *MockAnalyzerService) AnalyzeCompatibility(ctx context.Context, req *models.CompatibilityRequest) (*models.CompatibilityAnalysisResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CompatibilityAnalysisResponse), args.Error(1)
}
