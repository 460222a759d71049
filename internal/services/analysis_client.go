package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxContextLength = 100000

	FallbackAnalysis = "The AI could not generate an analysis for this text at this time."
	providerErrorFmt = "Sorry, an error occurred while analyzing the text with the AI: %v"
)

// Analysis is the text produced for one prompt. Degraded is set when Text is a
// fallback message instead of model output.
type Analysis struct {
	Text      string
	Degraded  bool
	Truncated bool
}

// AnalysisClient sends an instruction prompt plus context to the model. It never
// fails: provider problems come back as a degraded Analysis.
type AnalysisClient interface {
	Analyze(ctx context.Context, prompt, contextText string) Analysis
}

type analysisClient struct {
	gemini           GeminiService
	maxContextLength int
	log              logrus.FieldLogger
}

func NewAnalysisClient(gemini GeminiService, maxContextLength int, log logrus.FieldLogger) AnalysisClient {
	if maxContextLength <= 0 {
		maxContextLength = DefaultMaxContextLength
	}

	return &analysisClient{
		gemini:           gemini,
		maxContextLength: maxContextLength,
		log:              log,
	}
}

// Analyze implements AnalysisClient.
func (a *analysisClient) Analyze(ctx context.Context, prompt, contextText string) Analysis {
	var result Analysis

	if utf8.RuneCountInString(contextText) > a.maxContextLength {
		contextText = truncateRunes(contextText, a.maxContextLength)
		result.Truncated = true
		a.log.WithField("max_context_length", a.maxContextLength).
			Warn("✂️ Context truncated to avoid exceeding the model token limit")
	}

	a.log.WithField("context_length", utf8.RuneCountInString(contextText)).Info("🤖 Sending prompt to Gemini")

	text, err := a.gemini.GenerateText(ctx, BuildModelInput(prompt, contextText))
	if err != nil {
		result.Degraded = true
		if errors.Is(err, ErrEmptyResponse) {
			a.log.Warn("⚠️ Gemini returned no usable text, using fallback analysis")
			result.Text = FallbackAnalysis
			return result
		}

		a.log.WithError(err).Error("❌ Gemini request failed")
		result.Text = fmt.Sprintf(providerErrorFmt, err)
		return result
	}

	if strings.TrimSpace(text) == "" {
		a.log.Warn("⚠️ Gemini returned no usable text, using fallback analysis")
		result.Degraded = true
		result.Text = FallbackAnalysis
		return result
	}

	a.log.Info("✅ Gemini analysis received")
	result.Text = text
	return result
}

// BuildModelInput joins the instruction and the context with delimiter markers.
func BuildModelInput(prompt, contextText string) string {
	return prompt + "\n\n--- CONTEXTO ---\n" + contextText + "\n\n--- FIM CONTEXTO ---"
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
