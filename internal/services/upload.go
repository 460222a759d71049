package services

import (
	"fmt"
	"io"
	"mime/multipart"

	"alfredoptarigan/job-analyzer/internal/models"
)

// UploadService buffers multipart uploads in memory. Nothing is written to disk.
type UploadService interface {
	ReadUpload(file *multipart.FileHeader) (*models.UploadRequest, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

// ReadUpload implements UploadService. A nil header yields an empty request so
// the analyzer reports it as a missing file.
func (s *uploadService) ReadUpload(file *multipart.FileHeader) (*models.UploadRequest, error) {
	if file == nil {
		return &models.UploadRequest{}, nil
	}

	req := &models.UploadRequest{
		ContentType: file.Header.Get("Content-Type"),
		Filename:    file.Filename,
	}

	if file.Size > s.maxFileSize {
		return nil, newValidationError(
			models.CodeFileTooLarge,
			fmt.Sprintf("The file is too large. Max size: %d bytes.", s.maxFileSize),
		)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	if int64(len(data)) > s.maxFileSize {
		return nil, newValidationError(
			models.CodeFileTooLarge,
			fmt.Sprintf("The file is too large. Max size: %d bytes.", s.maxFileSize),
		)
	}

	req.Data = data
	return req, nil
}
