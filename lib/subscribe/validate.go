// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribe

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Alert texts for blocked submissions.
const (
	companyFormIncomplete  = "Please fill all fields and select at least one category."
	techTeamFormIncomplete = "Please enter your email, topic, and select at least one publisher."
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

// FieldError is one failed rule of a submission.
type FieldError struct {
	Field string
	Tag   string
}

// ValidationError blocks a submission client-side. Message is the
// text shown to the user; Fields lists every failed rule.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, len(e.Fields))
	for index, field := range e.Fields {
		parts[index] = field.Field + " failed on " + field.Tag
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// companySubmission is the validated shape of the company form.
type companySubmission struct {
	Email      string   `form:"email" validate:"notblank"`
	Company    string   `form:"company" validate:"notblank"`
	Categories []string `form:"categories" validate:"min=1"`
}

// techTeamSubmission is the validated shape of the tech-team form.
type techTeamSubmission struct {
	Email     string   `form:"email" validate:"notblank"`
	Topic     string   `form:"topic" validate:"notblank"`
	TechTeams []string `form:"techteams" validate:"min=1"`
}

// validateSubmission checks submission and maps failures to a
// *ValidationError carrying message.
func validateSubmission(submission any, message string) error {
	err := getValidator().Struct(submission)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	failures := make([]FieldError, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		failures = append(failures, FieldError{
			Field: fieldError.Field(),
			Tag:   fieldError.Tag(),
		})
	}
	return &ValidationError{Message: message, Fields: failures}
}

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		// Whitespace-only input counts as empty.
		if err := validate.RegisterValidation("notblank", func(level validator.FieldLevel) bool {
			return strings.TrimSpace(level.Field().String()) != ""
		}); err != nil {
			panic("subscribe: registering notblank: " + err.Error())
		}
	})
	return validate
}
