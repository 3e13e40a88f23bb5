package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/portfolio"
)

// fakeRepository keeps the singleton document in memory.
type fakeRepository struct {
	doc       *portfolio.Document
	seedCalls int
	getErr    error
}

func (f *fakeRepository) clone(d *portfolio.Document) *portfolio.Document {
	raw, _ := json.Marshal(d)
	var out portfolio.Document
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (f *fakeRepository) Get(ctx context.Context) (*portfolio.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.doc == nil {
		return nil, portfolio.ErrNotFound
	}
	return f.clone(f.doc), nil
}

func (f *fakeRepository) Seed(ctx context.Context, doc *portfolio.Document) (*portfolio.Document, error) {
	f.seedCalls++
	if f.doc == nil {
		f.doc = f.clone(doc)
	}
	return f.clone(f.doc), nil
}

func (f *fakeRepository) Replace(ctx context.Context, doc *portfolio.Document) (*portfolio.Document, error) {
	f.doc = f.clone(doc)
	return f.clone(f.doc), nil
}

func TestGet_ReadOrCreate(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewPortfolioService(repo)

	first, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, portfolio.DefaultDocument(), first)
	assert.Equal(t, 1, repo.seedCalls)

	// Second read returns identical data without reseeding
	second, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.seedCalls)
}

func TestGet_StorageErrorPropagates(t *testing.T) {
	repo := &fakeRepository{getErr: errors.New("connection refused")}
	svc := NewPortfolioService(repo)

	_, err := svc.Get(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, repo.seedCalls)
}

func TestReplace_RoundTrip(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewPortfolioService(repo)

	doc := &portfolio.Document{
		PersonalInfo: portfolio.PersonalInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
		Skills: []portfolio.SkillGroup{
			{Category: "Backend", Items: []string{"Go", "PostgreSQL"}},
		},
		Projects: []portfolio.Project{
			{ID: 1, Title: "CMS", TechStack: []string{"Go"}, Link: "https://example.com/cms"},
		},
		Socials: []portfolio.Social{
			{Platform: "github", URL: "https://github.com/janedoe"},
		},
	}

	stored, err := svc.Replace(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, doc, stored)

	read, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, read)
}

func TestReplace_IsFullReplace(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewPortfolioService(repo)

	_, err := svc.Get(context.Background()) // seeds the default
	require.NoError(t, err)

	// Replacement omits skills entirely; they must not survive from the seed.
	stored, err := svc.Replace(context.Background(), &portfolio.Document{
		PersonalInfo: portfolio.PersonalInfo{Name: "Jane"},
	})
	require.NoError(t, err)
	assert.Empty(t, stored.Skills)
	assert.Empty(t, stored.Projects)

	read, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, read.Skills)
}

func TestReplace_AssignsProjectIDs(t *testing.T) {
	tests := []struct {
		name    string
		in      []portfolio.Project
		wantIDs []int
	}{
		{
			name:    "new project gets max plus one",
			in:      []portfolio.Project{{ID: 1, Title: "a"}, {ID: 3, Title: "b"}, {ID: 0, Title: "c"}},
			wantIDs: []int{1, 3, 4},
		},
		{
			name:    "empty document starts at one",
			in:      []portfolio.Project{{ID: 0, Title: "first"}},
			wantIDs: []int{1},
		},
		{
			name:    "multiple new projects get sequential ids",
			in:      []portfolio.Project{{ID: 5, Title: "a"}, {ID: 0, Title: "b"}, {ID: 0, Title: "c"}},
			wantIDs: []int{5, 6, 7},
		},
		{
			name:    "existing ids untouched",
			in:      []portfolio.Project{{ID: 2, Title: "a"}, {ID: 7, Title: "b"}},
			wantIDs: []int{2, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPortfolioService(&fakeRepository{})

			stored, err := svc.Replace(context.Background(), &portfolio.Document{Projects: tt.in})
			require.NoError(t, err)

			got := make([]int, len(stored.Projects))
			for i, p := range stored.Projects {
				got[i] = p.ID
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestReplace_RejectsDuplicateProjectIDs(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewPortfolioService(repo)

	_, err := svc.Replace(context.Background(), &portfolio.Document{
		Projects: []portfolio.Project{
			{ID: 1, Title: "a"},
			{ID: 1, Title: "b"},
		},
	})

	assert.ErrorIs(t, err, portfolio.ErrDuplicateProjectID)
	assert.Nil(t, repo.doc, "store must not be mutated on validation failure")
}

func TestReplace_RejectsInvalidDocument(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewPortfolioService(repo)

	tests := []struct {
		name string
		doc  *portfolio.Document
	}{
		{
			name: "bad email",
			doc: &portfolio.Document{
				PersonalInfo: portfolio.PersonalInfo{Email: "not-an-email"},
			},
		},
		{
			name: "skill group without category",
			doc: &portfolio.Document{
				Skills: []portfolio.SkillGroup{{Items: []string{"Go"}}},
			},
		},
		{
			name: "project without title",
			doc: &portfolio.Document{
				Projects: []portfolio.Project{{ID: 1}},
			},
		},
		{
			name: "social without url",
			doc: &portfolio.Document{
				Socials: []portfolio.Social{{Platform: "github"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Replace(context.Background(), tt.doc)
			assert.Error(t, err)
		})
	}

	assert.Nil(t, repo.doc)
}
