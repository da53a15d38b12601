package contact

import (
	"encoding/json"
	"net/url"
	"testing"
)

func TestSubmissionUnmarshalAcceptsBothProjectTypeKeys(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body string
		want string
	}{
		"hyphenated": {body: `{"name":"Ana","project-type":"Kitchen"}`, want: "Kitchen"},
		"camel case": {body: `{"name":"Ana","projectType":"Bath"}`, want: "Bath"},
		"camel wins": {body: `{"projectType":"Bath","project-type":"Kitchen"}`, want: "Bath"},
		"absent":     {body: `{"name":"Ana"}`, want: ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var s Submission
			if err := json.Unmarshal([]byte(tc.body), &s); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if s.ProjectType != tc.want {
				t.Fatalf("ProjectType = %q, want %q", s.ProjectType, tc.want)
			}
		})
	}
}

func TestSubmissionUnmarshalKeepsOtherFields(t *testing.T) {
	t.Parallel()

	var s Submission
	body := `{"name":"Ana","email":"ana@example.com","phone":"1","location":"Austin","timeline":"Soon","description":"Deck"}`
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Submission{Name: "Ana", Email: "ana@example.com", Phone: "1", Location: "Austin", Timeline: "Soon", Description: "Deck"}
	if s != want {
		t.Fatalf("submission = %+v, want %+v", s, want)
	}
}

func TestSubmissionFromForm(t *testing.T) {
	t.Parallel()

	values := url.Values{
		FieldName:        {"Ana"},
		FieldEmail:       {"ana@example.com"},
		FieldPhone:       {"555"},
		FieldLocation:    {"Austin"},
		FieldProjectType: {"Kitchen"},
		FieldTimeline:    {"3 months"},
		FieldDescription: {"New cabinets"},
	}
	s := SubmissionFromForm(values)
	if s.ProjectType != "Kitchen" || s.Timeline != "3 months" || s.Description != "New cabinets" {
		t.Fatalf("SubmissionFromForm() = %+v", s)
	}

	camel := SubmissionFromForm(url.Values{"projectType": {"Bath"}})
	if camel.ProjectType != "Bath" {
		t.Fatalf("ProjectType = %q, want %q", camel.ProjectType, "Bath")
	}
}

func TestSubmissionNormalized(t *testing.T) {
	t.Parallel()

	got := Submission{Name: "  Ana ", Description: "\nDeck\n"}.Normalized()
	if got.Name != "Ana" || got.Description != "Deck" {
		t.Fatalf("Normalized() = %+v", got)
	}
}
