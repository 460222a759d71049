package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const PDFContentType = "application/pdf"

// UploadRequest is a buffered résumé upload.
type UploadRequest struct {
	Data        []byte
	ContentType string
	Filename    string
}

type JobPostingRequest struct {
	Description string `json:"description" validate:"required,notblank,min=30,max=5000"`
	Link        string `json:"link,omitempty" validate:"omitempty,url"`
}

type CompatibilityRequest struct {
	ResumeText string `json:"resumeText" validate:"required,notblank,min=100"`
	JobText    string `json:"jobText" validate:"required,notblank,min=100"`
}

// ValidationErrors holds one human readable message per failed field rule.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, " ")
}

var fieldMessages = map[string]string{
	"description.required": "The job description is required.",
	"description.notblank": "The job description is required.",
	"description.min":      "The job description must be at least 30 characters long.",
	"description.max":      "The job description cannot exceed 5000 characters.",
	"link.url":             "The job link provided is not a valid URL.",
	"resumeText.required":  "The résumé text is required for the compatibility analysis.",
	"resumeText.notblank":  "The résumé text is required for the compatibility analysis.",
	"resumeText.min":       "The résumé text looks too short for a useful analysis. It must be at least 100 characters long.",
	"jobText.required":     "The job text is required for the compatibility analysis.",
	"jobText.notblank":     "The job text is required for the compatibility analysis.",
	"jobText.min":          "The job text looks too short for a useful analysis. It must be at least 100 characters long.",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

func (r *JobPostingRequest) Validate() error {
	return validateStruct(r)
}

func (r *CompatibilityRequest) Validate() error {
	return validateStruct(r)
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fe.Error())
	}

	return messages
}
