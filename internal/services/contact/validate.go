package contact

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed submission.schema.json
var submissionSchemaJSON []byte

var requiredFieldOrder = []string{FieldName, FieldEmail, FieldPhone, FieldLocation, FieldDescription}

var (
	submissionSchemaOnce sync.Once
	submissionSchema     *gojsonschema.Schema
	submissionSchemaErr  error
)

func loadSubmissionSchema() (*gojsonschema.Schema, error) {
	submissionSchemaOnce.Do(func() {
		submissionSchema, submissionSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(submissionSchemaJSON))
	})
	return submissionSchema, submissionSchemaErr
}

// Validate checks required fields. Whitespace-only values count as missing.
// A failure is a *Error with ReasonMissingField listing the fields in form
// order.
func Validate(s Submission) error {
	schema, err := loadSubmissionSchema()
	if err != nil {
		return fmt.Errorf("load submission schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(presentFields(s.Normalized())))
	if err != nil {
		return fmt.Errorf("validate submission: %w", err)
	}
	if result.Valid() {
		return nil
	}

	missing := make(map[string]bool, len(requiredFieldOrder))
	for _, resultErr := range result.Errors() {
		field := resultErr.Field()
		if property, ok := resultErr.Details()["property"].(string); ok && property != "" {
			field = property
		}
		missing[field] = true
	}
	fields := make([]string, 0, len(missing))
	for _, field := range requiredFieldOrder {
		if missing[field] {
			fields = append(fields, field)
		}
	}
	return MissingFields(fields...)
}

// presentFields keeps only non-empty values so "required" covers blanks.
func presentFields(s Submission) map[string]any {
	doc := make(map[string]any, 7)
	add := func(key, value string) {
		if value != "" {
			doc[key] = value
		}
	}
	add(FieldName, s.Name)
	add(FieldEmail, s.Email)
	add(FieldPhone, s.Phone)
	add(FieldLocation, s.Location)
	add(FieldProjectType, s.ProjectType)
	add(FieldTimeline, s.Timeline)
	add(FieldDescription, s.Description)
	return doc
}
