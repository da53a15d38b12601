package contact

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Submission is the contact form record.
type Submission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	ProjectType string `json:"projectType,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
	Description string `json:"description"`
}

// Form field names posted by the landing page form.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldLocation    = "location"
	FieldProjectType = "project-type"
	FieldTimeline    = "timeline"
	FieldDescription = "description"
)

// UnmarshalJSON accepts both the form's hyphenated "project-type" key and
// "projectType".
func (s *Submission) UnmarshalJSON(data []byte) error {
	type plain Submission
	var payload struct {
		plain
		HyphenProjectType string `json:"project-type"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	*s = Submission(payload.plain)
	if s.ProjectType == "" {
		s.ProjectType = payload.HyphenProjectType
	}
	return nil
}

// SubmissionFromForm reads a submission from url-encoded form values.
func SubmissionFromForm(values url.Values) Submission {
	projectType := values.Get(FieldProjectType)
	if projectType == "" {
		projectType = values.Get("projectType")
	}
	return Submission{
		Name:        values.Get(FieldName),
		Email:       values.Get(FieldEmail),
		Phone:       values.Get(FieldPhone),
		Location:    values.Get(FieldLocation),
		ProjectType: projectType,
		Timeline:    values.Get(FieldTimeline),
		Description: values.Get(FieldDescription),
	}
}

// Normalized returns a copy with surrounding whitespace removed.
func (s Submission) Normalized() Submission {
	return Submission{
		Name:        strings.TrimSpace(s.Name),
		Email:       strings.TrimSpace(s.Email),
		Phone:       strings.TrimSpace(s.Phone),
		Location:    strings.TrimSpace(s.Location),
		ProjectType: strings.TrimSpace(s.ProjectType),
		Timeline:    strings.TrimSpace(s.Timeline),
		Description: strings.TrimSpace(s.Description),
	}
}
