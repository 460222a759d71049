package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisKind string

const (
	KindResume        AnalysisKind = "resume"
	KindJob           AnalysisKind = "job"
	KindCompatibility AnalysisKind = "compatibility"
)

// AnalysisRecord is an audit entry for a completed analysis. Only metadata is
// stored, never the submitted text or the model output.
type AnalysisRecord struct {
	ID             uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Kind           AnalysisKind `gorm:"type:text;not null;index" json:"kind"`
	Filename       string       `gorm:"type:text" json:"filename,omitempty"`
	Link           string       `gorm:"type:text" json:"link,omitempty"`
	InputLength    int          `gorm:"not null" json:"input_length"`
	AnalysisLength int          `gorm:"not null" json:"analysis_length"`
	Degraded       bool         `gorm:"not null;default:false" json:"degraded"`
	Truncated      bool         `gorm:"not null;default:false" json:"truncated"`
	CreatedAt      time.Time    `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

func (AnalysisRecord) TableName() string {
	return "analysis_records"
}
