package models

// Error codes returned in ErrorResponse.Code.
const (
	CodeEmptyFile         = "ERR_001"
	CodeInvalidFileType   = "ERR_002"
	CodeEmptyText         = "ERR_003"
	CodeInvalidRequest    = "ERR_004"
	CodeInternalServerErr = "ERR_005"
	CodeFileTooLarge      = "ERR_006"
)

type ResumeAnalysisResponse struct {
	Message     string `json:"message"`
	Filename    string `json:"filename"`
	TextPreview string `json:"textPreview"`
	Analysis    string `json:"analysis"`
}

type JobAnalysisResponse struct {
	Message  string `json:"message"`
	Link     string `json:"link"`
	Analysis string `json:"analysis"`
}

type CompatibilityAnalysisResponse struct {
	Message  string `json:"message"`
	Analysis string `json:"analysis"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type HistoryResponse struct {
	Count   int              `json:"count"`
	Records []AnalysisRecord `json:"records"`
}
