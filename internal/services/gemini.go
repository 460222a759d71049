package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"alfredoptarigan/job-analyzer/internal/config"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("no text content in response")

// GeminiService is the remote model capability used by AnalysisClient.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	client          *genai.Client
	modelName       string
	temperature     float32
	maxOutputTokens int32
	log             logrus.FieldLogger
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, log logrus.FieldLogger) (GeminiService, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, config.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	log.WithField("model", cfg.Model).Info("✅ Gemini client initialized")

	return &geminiService{
		client:          client,
		modelName:       cfg.Model,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
		log:             log,
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("nil response: %w", ErrEmptyResponse)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		g.logEmptyResponse(resp)
		return "", ErrEmptyResponse
	}

	g.log.WithField("chars", len(text)).Debug("📊 Gemini response received")

	return text, nil
}

func (g *geminiService) logEmptyResponse(resp *genai.GenerateContentResponse) {
	entry := g.log.WithField("model", g.modelName)

	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		candidate := resp.Candidates[0]
		entry = entry.WithField("finish_reason", candidate.FinishReason)

		var ratings []string
		for _, r := range candidate.SafetyRatings {
			if r == nil {
				continue
			}
			ratings = append(ratings, fmt.Sprintf("%s: %s", r.Category, r.Probability))
		}
		if len(ratings) > 0 {
			entry = entry.WithField("safety_ratings", strings.Join(ratings, ", "))
		}
	}

	if resp.PromptFeedback != nil {
		entry = entry.WithField("block_reason", resp.PromptFeedback.BlockReason)
	}

	entry.Warn("⚠️ Gemini returned an empty response")
}
