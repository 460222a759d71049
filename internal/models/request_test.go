package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPostingRequest_Validate(t *testing.T) {
	valid := strings.Repeat("a", 30)

	tests := []struct {
		name     string
		req      JobPostingRequest
		wantErr  bool
		contains []string
	}{
		{name: "minimum length", req: JobPostingRequest{Description: valid}},
		{name: "maximum length", req: JobPostingRequest{Description: strings.Repeat("b", 5000)}},
		{name: "with link", req: JobPostingRequest{Description: valid, Link: "https://jobs.example.com/42"}},
		{name: "non-http link", req: JobPostingRequest{Description: valid, Link: "ftp://files.example.com/job.txt"}},
		{
			name:     "link without scheme",
			req:      JobPostingRequest{Description: valid, Link: "jobs.example.com/42"},
			wantErr:  true,
			contains: []string{"not a valid URL"},
		},
		{
			name:     "missing description",
			req:      JobPostingRequest{},
			wantErr:  true,
			contains: []string{"The job description is required."},
		},
		{
			name:     "blank description",
			req:      JobPostingRequest{Description: strings.Repeat(" ", 40)},
			wantErr:  true,
			contains: []string{"The job description is required."},
		},
		{
			name:     "too short",
			req:      JobPostingRequest{Description: strings.Repeat("a", 29)},
			wantErr:  true,
			contains: []string{"at least 30 characters"},
		},
		{
			name:     "too long",
			req:      JobPostingRequest{Description: strings.Repeat("a", 5001)},
			wantErr:  true,
			contains: []string{"cannot exceed 5000 characters"},
		},
		{
			name:     "malformed link and short description",
			req:      JobPostingRequest{Description: "short", Link: "not a url"},
			wantErr:  true,
			contains: []string{"at least 30 characters", "not a valid URL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			for _, want := range tt.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestJobPostingRequest_CountsCharactersNotBytes(t *testing.T) {
	// 30 accented runes is 60 bytes.
	req := JobPostingRequest{Description: strings.Repeat("ç", 30)}
	assert.NoError(t, req.Validate())

	req = JobPostingRequest{Description: strings.Repeat("ç", 29)}
	assert.Error(t, req.Validate())
}

func TestCompatibilityRequest_Validate(t *testing.T) {
	long := strings.Repeat("x", 100)

	assert.NoError(t, (&CompatibilityRequest{ResumeText: long, JobText: long}).Validate())

	err := (&CompatibilityRequest{ResumeText: "short", JobText: ""}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "résumé text looks too short")
	assert.Contains(t, err.Error(), "job text is required")

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
