package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{
			name: "empty document is valid",
			doc:  Document{},
		},
		{
			name: "complete document is valid",
			doc: Document{
				PersonalInfo: PersonalInfo{
					Name:       "Jane Doe",
					Email:      "jane@example.com",
					ProfilePic: "https://cdn.example.com/jane.png",
					Linkedin:   "https://linkedin.com/in/janedoe",
				},
				Skills:   []SkillGroup{{Category: "Backend", Items: []string{"Go"}}},
				Projects: []Project{{ID: 1, Title: "CMS", Link: "https://example.com"}},
				Socials:  []Social{{Platform: "github", URL: "https://github.com/janedoe"}},
			},
		},
		{
			name: "bad email",
			doc: Document{
				PersonalInfo: PersonalInfo{Email: "nope"},
			},
			wantErr: true,
		},
		{
			name: "bad profile pic url",
			doc: Document{
				PersonalInfo: PersonalInfo{ProfilePic: "://broken"},
			},
			wantErr: true,
		},
		{
			name: "negative project id",
			doc: Document{
				Projects: []Project{{ID: -1, Title: "x"}},
			},
			wantErr: true,
		},
		{
			name: "skill group missing category",
			doc: Document{
				Skills: []SkillGroup{{Items: []string{"Go"}}},
			},
			wantErr: true,
		},
		{
			name: "social missing platform",
			doc: Document{
				Socials: []Social{{URL: "https://example.com"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPersonalInfoFieldsCoverEveryJSONKey(t *testing.T) {
	// The enumerated field list drives the admin editor; keep it in sync with
	// the struct's wire keys.
	want := []string{
		"name", "profilePic", "title", "email", "phone", "location",
		"summary", "linkedin", "github", "website", "resumeLink",
	}

	got := make([]string, len(PersonalInfoFields))
	for i, f := range PersonalInfoFields {
		got[i] = f.Field
	}

	assert.Equal(t, want, got)
}
