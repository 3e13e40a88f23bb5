package portfolio

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validate checks the incoming replacement document.
// Shape errors are caught by JSON binding; this layer checks field content.
func (d Document) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.PersonalInfo),
		validation.Field(&d.Skills),
		validation.Field(&d.Projects),
		validation.Field(&d.Socials),
	)
}

func (p PersonalInfo) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Length(0, 200)),
		validation.Field(&p.Email, validation.When(p.Email != "", is.Email.Error("invalid email format"))),
		validation.Field(&p.ProfilePic, urlWhenSet(p.ProfilePic)...),
		validation.Field(&p.Linkedin, urlWhenSet(p.Linkedin)...),
		validation.Field(&p.Github, urlWhenSet(p.Github)...),
		validation.Field(&p.Website, urlWhenSet(p.Website)...),
		validation.Field(&p.ResumeLink, urlWhenSet(p.ResumeLink)...),
	)
}

func (g SkillGroup) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Category,
			validation.Required.Error("skill category is required"),
			validation.Length(1, 100),
		),
	)
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Min(0).Error("project id must not be negative")),
		validation.Field(&p.Title,
			validation.Required.Error("project title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&p.Link, urlWhenSet(p.Link)...),
		validation.Field(&p.Github, urlWhenSet(p.Github)...),
	)
}

func (s Social) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Platform, validation.Required.Error("social platform is required")),
		validation.Field(&s.URL,
			validation.Required.Error("social url is required"),
			is.URL.Error("invalid url"),
		),
	)
}

func urlWhenSet(value string) []validation.Rule {
	return []validation.Rule{
		validation.When(value != "", is.URL.Error("invalid url")),
	}
}
