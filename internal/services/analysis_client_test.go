package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alfredoptarigan/job-analyzer/internal/services"
	"alfredoptarigan/job-analyzer/mocks"
)

func TestAnalyze_Success(t *testing.T) {
	logger, _ := test.NewNullLogger()
	gemini := new(mocks.MockGeminiService)

	expectedInput := "prompt\n\n--- CONTEXTO ---\nsome context\n\n--- FIM CONTEXTO ---"
	gemini.On("GenerateText", mock.Anything, expectedInput).Return("model analysis", nil)

	client := services.NewAnalysisClient(gemini, services.DefaultMaxContextLength, logger)
	result := client.Analyze(context.Background(), "prompt", "some context")

	assert.Equal(t, "model analysis", result.Text)
	assert.False(t, result.Degraded)
	assert.False(t, result.Truncated)
	gemini.AssertExpectations(t)
}

func TestAnalyze_TruncatesLongContext(t *testing.T) {
	logger, hook := test.NewNullLogger()
	gemini := new(mocks.MockGeminiService)

	// Multi-byte runes make sure the cut is by character, not by byte.
	head := strings.Repeat("é", services.DefaultMaxContextLength)
	contextText := head + "TAIL"

	gemini.On("GenerateText", mock.Anything, services.BuildModelInput("prompt", head)).Return("ok", nil)

	client := services.NewAnalysisClient(gemini, 0, logger)
	result := client.Analyze(context.Background(), "prompt", contextText)

	assert.Equal(t, "ok", result.Text)
	assert.True(t, result.Truncated)
	gemini.AssertExpectations(t)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && strings.Contains(entry.Message, "truncated") {
			warned = true
		}
	}
	assert.True(t, warned, "expected a truncation warning")
}

func TestAnalyze_ContextAtLimitIsNotTruncated(t *testing.T) {
	logger, _ := test.NewNullLogger()
	gemini := new(mocks.MockGeminiService)

	contextText := strings.Repeat("a", 10)
	gemini.On("GenerateText", mock.Anything, services.BuildModelInput("p", contextText)).Return("ok", nil)

	client := services.NewAnalysisClient(gemini, 10, logger)
	result := client.Analyze(context.Background(), "p", contextText)

	assert.False(t, result.Truncated)
	gemini.AssertExpectations(t)
}

func TestAnalyze_EmptyResponseFallsBack(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "empty response error", text: "", err: services.ErrEmptyResponse},
		{name: "wrapped empty response error", text: "", err: errors.Join(errors.New("nil response"), services.ErrEmptyResponse)},
		{name: "blank text without error", text: "  \n ", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			gemini := new(mocks.MockGeminiService)
			gemini.On("GenerateText", mock.Anything, mock.Anything).Return(tt.text, tt.err)

			client := services.NewAnalysisClient(gemini, 0, logger)
			result := client.Analyze(context.Background(), "p", "c")

			assert.Equal(t, services.FallbackAnalysis, result.Text)
			assert.True(t, result.Degraded)
		})
	}
}

func TestAnalyze_ProviderErrorIsSoftFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	gemini := new(mocks.MockGeminiService)
	gemini.On("GenerateText", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	client := services.NewAnalysisClient(gemini, 0, logger)
	result := client.Analyze(context.Background(), "p", "c")

	assert.True(t, result.Degraded)
	assert.Contains(t, result.Text, "quota exceeded")
	assert.True(t, strings.HasPrefix(result.Text, "Sorry, an error occurred"))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
