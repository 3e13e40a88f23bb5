package portfolio

// DefaultDocument is the fixed seed the store is populated with on first read.
// The admin panel replaces it with real content; the placeholders keep the
// public site renderable in the meantime.
func DefaultDocument() *Document {
	return &Document{
		PersonalInfo: PersonalInfo{
			Name:     "Your Name",
			Title:    "Software Developer",
			Location: "Remote",
			Summary:  "Edit this portfolio from the admin panel.",
		},
		Skills: []SkillGroup{
			{Category: "Languages", Items: []string{"Go", "JavaScript"}},
			{Category: "Tools", Items: []string{"PostgreSQL", "Docker"}},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "Sample Project",
				Description: "Replace this with a real project.",
				TechStack:   []string{"Go"},
				Link:        "https://example.com",
			},
		},
		Socials: []Social{},
	}
}
