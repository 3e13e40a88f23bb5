package portfolio

import "time"

// Document is the single structured record holding all public-site content.
// At most one instance exists in storage; the repository enforces the
// singleton row.
type Document struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Skills       []SkillGroup `json:"skills"`
	Projects     []Project    `json:"projects"`
	Socials      []Social     `json:"socials"`
}

// PersonalInfo fields are all optional strings; JSON keys match the wire
// contract the client renders from.
type PersonalInfo struct {
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
	Title      string `json:"title"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Summary    string `json:"summary"`
	Linkedin   string `json:"linkedin"`
	Github     string `json:"github"`
	Website    string `json:"website"`
	ResumeLink string `json:"resumeLink"`
}

// SkillGroup is one display section of skills. Category names need not be
// unique; slice order is display order.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Project ids are unique within the document. New projects arrive with id 0
// and get max(existing)+1 assigned by the service.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Link        string   `json:"link"`
	Github      string   `json:"github,omitempty"`
}

type Social struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// StoredDocument pairs the document with its row timestamps.
type StoredDocument struct {
	Document  Document
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldKind describes how the admin editor should render a personal-info field.
type FieldKind string

const (
	FieldText      FieldKind = "text"
	FieldMultiline FieldKind = "multiline"
	FieldURL       FieldKind = "url"
)

// FieldMeta is one entry of the enumerated personal-info field list.
type FieldMeta struct {
	Field string    `json:"field"`
	Label string    `json:"label"`
	Kind  FieldKind `json:"kind"`
}

// PersonalInfoFields enumerates the editable personal-info fields with type
// metadata, replacing the client's dynamic key iteration.
var PersonalInfoFields = []FieldMeta{
	{Field: "name", Label: "Name", Kind: FieldText},
	{Field: "profilePic", Label: "Profile Picture", Kind: FieldURL},
	{Field: "title", Label: "Title", Kind: FieldText},
	{Field: "email", Label: "Email", Kind: FieldText},
	{Field: "phone", Label: "Phone", Kind: FieldText},
	{Field: "location", Label: "Location", Kind: FieldText},
	{Field: "summary", Label: "Summary", Kind: FieldMultiline},
	{Field: "linkedin", Label: "LinkedIn", Kind: FieldURL},
	{Field: "github", Label: "GitHub", Kind: FieldURL},
	{Field: "website", Label: "Website", Kind: FieldURL},
	{Field: "resumeLink", Label: "Resume", Kind: FieldURL},
}
