package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/job-analyzer/internal/models"
	"alfredoptarigan/job-analyzer/internal/repositories"
)

const PreviewLength = 200

// AnalyzerService validates analysis requests, extracts text when needed and
// asks the AnalysisClient for the analysis. Returned errors are either a
// *ValidationError or a server side failure.
type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, req *models.UploadRequest) (*models.ResumeAnalysisResponse, error)
	AnalyzeJob(ctx context.Context, req *models.JobPostingRequest) (*models.JobAnalysisResponse, error)
	AnalyzeCompatibility(ctx context.Context, req *models.CompatibilityRequest) (*models.CompatibilityAnalysisResponse, error)
}

type analyzerService struct {
	pdfParser     PDFParserService
	client        AnalysisClient
	promptBuilder *PromptBuilder
	history       repositories.AnalysisRepository
	log           logrus.FieldLogger
}

// NewAnalyzerService wires the analyzer. history may be nil when the audit log
// is disabled.
func NewAnalyzerService(
	pdfParser PDFParserService,
	client AnalysisClient,
	history repositories.AnalysisRepository,
	log logrus.FieldLogger,
) AnalyzerService {
	return &analyzerService{
		pdfParser:     pdfParser,
		client:        client,
		promptBuilder: NewPromptBuilder(),
		history:       history,
		log:           log,
	}
}

func (a *analyzerService) AnalyzeResume(ctx context.Context, req *models.UploadRequest) (*models.ResumeAnalysisResponse, error) {
	if req == nil || len(req.Data) == 0 {
		a.log.Warn("⚠️ Résumé upload without a file or with an empty file")
		return nil, newValidationError(models.CodeEmptyFile, "No file was uploaded or the file is empty.")
	}

	log := a.log.WithFields(logrus.Fields{
		"filename":     req.Filename,
		"size":         len(req.Data),
		"content_type": req.ContentType,
	})
	log.Info("📄 Résumé received")

	if req.ContentType != models.PDFContentType {
		log.Warn("⚠️ Résumé rejected: unsupported file type")
		return nil, newValidationError(models.CodeInvalidFileType, "Invalid file format. Please upload a PDF.")
	}

	text, err := a.pdfParser.ExtractText(req.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract résumé text: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		log.Warn("⚠️ Résumé rejected: no extractable text")
		return nil, newValidationError(models.CodeEmptyText, "Could not extract any text from the PDF. Make sure it is not a scanned image.")
	}

	log.WithField("chars", utf8.RuneCountInString(text)).Info("📖 Résumé text extracted")

	analysis := a.client.Analyze(ctx, a.promptBuilder.BuildResumePrompt(), text)

	a.record(ctx, &models.AnalysisRecord{
		Kind:           models.KindResume,
		Filename:       req.Filename,
		InputLength:    utf8.RuneCountInString(text),
		AnalysisLength: utf8.RuneCountInString(analysis.Text),
		Degraded:       analysis.Degraded,
		Truncated:      analysis.Truncated,
	})

	return &models.ResumeAnalysisResponse{
		Message:     fmt.Sprintf("Résumé '%s' received and analyzed successfully.", req.Filename),
		Filename:    req.Filename,
		TextPreview: TextPreview(text, PreviewLength),
		Analysis:    analysis.Text,
	}, nil
}

func (a *analyzerService) AnalyzeJob(ctx context.Context, req *models.JobPostingRequest) (*models.JobAnalysisResponse, error) {
	if req == nil {
		req = &models.JobPostingRequest{}
	}

	if err := req.Validate(); err != nil {
		a.log.WithError(err).Warn("⚠️ Job posting rejected by validation")
		return nil, newValidationError(models.CodeInvalidRequest, err.Error())
	}

	a.log.WithFields(logrus.Fields{
		"link":  req.Link,
		"chars": utf8.RuneCountInString(req.Description),
	}).Info("📋 Job posting received")

	contextText := a.promptBuilder.BuildJobContext(req.Link, req.Description)
	analysis := a.client.Analyze(ctx, a.promptBuilder.BuildJobPrompt(), contextText)

	a.record(ctx, &models.AnalysisRecord{
		Kind:           models.KindJob,
		Link:           req.Link,
		InputLength:    utf8.RuneCountInString(req.Description),
		AnalysisLength: utf8.RuneCountInString(analysis.Text),
		Degraded:       analysis.Degraded,
		Truncated:      analysis.Truncated,
	})

	return &models.JobAnalysisResponse{
		Message:  "Job posting received and analyzed successfully.",
		Link:     req.Link,
		Analysis: analysis.Text,
	}, nil
}

func (a *analyzerService) AnalyzeCompatibility(ctx context.Context, req *models.CompatibilityRequest) (*models.CompatibilityAnalysisResponse, error) {
	if req == nil {
		req = &models.CompatibilityRequest{}
	}

	if err := req.Validate(); err != nil {
		a.log.WithError(err).Warn("⚠️ Compatibility request rejected by validation")
		return nil, newValidationError(models.CodeInvalidRequest, err.Error())
	}

	a.log.WithFields(logrus.Fields{
		"resume_chars": utf8.RuneCountInString(req.ResumeText),
		"job_chars":    utf8.RuneCountInString(req.JobText),
	}).Info("🔗 Compatibility request received")

	contextText := a.promptBuilder.BuildCompatibilityContext(req.ResumeText, req.JobText)
	analysis := a.client.Analyze(ctx, a.promptBuilder.BuildCompatibilityPrompt(), contextText)

	a.record(ctx, &models.AnalysisRecord{
		Kind:           models.KindCompatibility,
		InputLength:    utf8.RuneCountInString(contextText),
		AnalysisLength: utf8.RuneCountInString(analysis.Text),
		Degraded:       analysis.Degraded,
		Truncated:      analysis.Truncated,
	})

	return &models.CompatibilityAnalysisResponse{
		Message:  "Compatibility analysis completed successfully.",
		Analysis: analysis.Text,
	}, nil
}

// record writes the audit entry. Failures never reach the caller.
func (a *analyzerService) record(ctx context.Context, rec *models.AnalysisRecord) {
	if a.history == nil {
		return
	}

	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()

	if err := a.history.Create(ctx, rec); err != nil {
		a.log.WithError(err).WithField("kind", rec.Kind).Warn("⚠️ Failed to record analysis history")
	}
}
