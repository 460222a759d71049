package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"alfredoptarigan/job-analyzer/internal/config"
	"alfredoptarigan/job-analyzer/internal/logging"
	"alfredoptarigan/job-analyzer/internal/models"
	"alfredoptarigan/job-analyzer/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand(newAnalyzerFromEnv)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

// analyzerFactory builds the analyzer lazily so --help works without an API key.
type analyzerFactory func(ctx context.Context) (services.AnalyzerService, services.PDFParserService, error)

func newAnalyzerFromEnv(ctx context.Context) (services.AnalyzerService, services.PDFParserService, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	// Logs go to stderr so stdout stays valid JSON.
	log := logging.New(cfg)
	log.SetOutput(os.Stderr)

	gemini, err := services.NewGeminiService(ctx, cfg.Gemini, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}

	parser := services.NewPDFParserService()
	client := services.NewAnalysisClient(gemini, cfg.Gemini.MaxContextLength, log)

	return services.NewAnalyzerService(parser, client, nil, log), parser, nil
}

func newRootCommand(factory analyzerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze résumés and job postings with Gemini",
		Long: `analyze runs the same analyses as the HTTP API against local files and prints
the JSON response to stdout.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newResumeCmd(factory),
		newJobCmd(factory),
		newCompatibilityCmd(factory),
	)
	return cmd
}

func newResumeCmd(factory analyzerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "resume <file.pdf>",
		Short: "Analyze a résumé PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}

			analyzer, _, err := factory(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := analyzer.AnalyzeResume(cmd.Context(), &models.UploadRequest{
				Data:        data,
				ContentType: contentTypeFromExt(path),
				Filename:    filepath.Base(path),
			})
			if err != nil {
				return describeError(err)
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newJobCmd(factory analyzerFactory) *cobra.Command {
	var description, descriptionFile, link string

	cmd := &cobra.Command{
		Use:   "job",
		Short: "Analyze a job posting description",
		RunE: func(cmd *cobra.Command, args []string) error {
			if descriptionFile != "" {
				data, err := os.ReadFile(descriptionFile)
				if err != nil {
					return fmt.Errorf("read description: %w", err)
				}
				description = string(data)
			}

			analyzer, _, err := factory(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := analyzer.AnalyzeJob(cmd.Context(), &models.JobPostingRequest{
				Description: description,
				Link:        link,
			})
			if err != nil {
				return describeError(err)
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Job description text")
	cmd.Flags().StringVar(&descriptionFile, "description-file", "", "Read the job description from a file")
	cmd.Flags().StringVarP(&link, "link", "l", "", "Job posting URL (optional)")
	cmd.MarkFlagsMutuallyExclusive("description", "description-file")
	cmd.MarkFlagsOneRequired("description", "description-file")
	return cmd
}

func newCompatibilityCmd(factory analyzerFactory) *cobra.Command {
	var resumeFile, jobFile string

	cmd := &cobra.Command{
		Use:   "compatibility",
		Short: "Compare a résumé against a job posting",
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, parser, err := factory(cmd.Context())
			if err != nil {
				return err
			}

			resumeText, err := readTextFile(parser, resumeFile)
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}
			jobText, err := readTextFile(parser, jobFile)
			if err != nil {
				return fmt.Errorf("read job: %w", err)
			}

			resp, err := analyzer.AnalyzeCompatibility(cmd.Context(), &models.CompatibilityRequest{
				ResumeText: resumeText,
				JobText:    jobText,
			})
			if err != nil {
				return describeError(err)
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&resumeFile, "resume-file", "", "Résumé as .pdf or plain text")
	cmd.Flags().StringVar(&jobFile, "job-file", "", "Job posting as .pdf or plain text")
	_ = cmd.MarkFlagRequired("resume-file")
	_ = cmd.MarkFlagRequired("job-file")
	return cmd
}

// readTextFile returns the file content, extracting PDF text for .pdf files.
func readTextFile(parser services.PDFParserService, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if contentTypeFromExt(path) == models.PDFContentType {
		return parser.ExtractText(data)
	}
	return string(data), nil
}

func contentTypeFromExt(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return models.PDFContentType
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func describeError(err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%s (%s)", verr.Message, verr.Code)
	}
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
