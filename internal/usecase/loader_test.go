package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeExperienceRepo struct {
	list []domain.Experience
	err  error
}

func (f *fakeExperienceRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Experience, error) {
	return f.list, f.err
}
func (f *fakeExperienceRepo) Create(ctx context.Context, e *domain.Experience) error { return f.err }
func (f *fakeExperienceRepo) Update(ctx context.Context, e *domain.Experience) error { return f.err }
func (f *fakeExperienceRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return f.err }

type fakeEducationRepo struct {
	list []domain.Education
	err  error
}

func (f *fakeEducationRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Education, error) {
	return f.list, f.err
}
func (f *fakeEducationRepo) Create(ctx context.Context, e *domain.Education) error { return f.err }
func (f *fakeEducationRepo) Update(ctx context.Context, e *domain.Education) error { return f.err }
func (f *fakeEducationRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return f.err }

type fakeProjectRepo struct {
	list []domain.Project
	err  error
}

func (f *fakeProjectRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	return f.list, f.err
}
func (f *fakeProjectRepo) Create(ctx context.Context, p *domain.Project) error  { return f.err }
func (f *fakeProjectRepo) Update(ctx context.Context, p *domain.Project) error  { return f.err }
func (f *fakeProjectRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return f.err }

type fakeSkillRepo struct {
	list []domain.Skill
	err  error
}

func (f *fakeSkillRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	return f.list, f.err
}
func (f *fakeSkillRepo) CreateBatch(ctx context.Context, skills []*domain.Skill) error {
	return f.err
}
func (f *fakeSkillRepo) Update(ctx context.Context, s *domain.Skill) error      { return f.err }
func (f *fakeSkillRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return f.err }

func TestLoaderAssemblesAllSections(t *testing.T) {
	loader := NewLoader(
		&fakeExperienceRepo{list: []domain.Experience{{Company: "Acme", Title: "Dev", StartDate: *date("2021-03-01")}}},
		&fakeEducationRepo{list: []domain.Education{{Institution: "School", Degree: "BSc", StartDate: *date("2017-09-01")}}},
		&fakeProjectRepo{list: []domain.Project{{Name: "p1", Description: "d1"}}},
		&fakeSkillRepo{list: []domain.Skill{{Name: "Go", Category: CategoryProgramming}}},
	)

	doc := loader.Load(context.Background(), Identity{ID: uuid.New(), Email: "a@b.c"})
	require.Len(t, doc.Experience, 1)
	require.Len(t, doc.Education, 1)
	require.Len(t, doc.Projects, 1)
	require.Equal(t, "Go", doc.Skills.Programming)
}

func TestLoaderFailedFetchAssemblesEmptySection(t *testing.T) {
	loader := NewLoader(
		&fakeExperienceRepo{list: []domain.Experience{{Company: "Acme", Title: "Dev", StartDate: *date("2021-03-01")}}},
		&fakeEducationRepo{err: errors.New("connection refused")},
		&fakeProjectRepo{list: []domain.Project{{Name: "p1", Description: "d1"}}},
		&fakeSkillRepo{list: []domain.Skill{{Name: "Go", Category: CategoryProgramming}}},
	)

	doc := loader.Load(context.Background(), Identity{ID: uuid.New()})
	require.Empty(t, doc.Education, "failed fetch becomes an empty section")
	require.NotNil(t, doc.Education)
	require.Len(t, doc.Experience, 1)
	require.Len(t, doc.Projects, 1)
	require.Equal(t, "Go", doc.Skills.Programming)
}

func TestLoaderAllFetchesFailStillAssembles(t *testing.T) {
	boom := errors.New("boom")
	loader := NewLoader(
		&fakeExperienceRepo{err: boom},
		&fakeEducationRepo{err: boom},
		&fakeProjectRepo{err: boom},
		&fakeSkillRepo{err: boom},
	)

	doc := loader.Load(context.Background(), Identity{ID: uuid.New(), Email: "a@b.c"})
	require.NotNil(t, doc)
	require.Equal(t, "a@b.c", doc.PersonalInfo.Name)
	require.Empty(t, doc.Experience)
	require.Empty(t, doc.Education)
	require.Empty(t, doc.Projects)
	require.Equal(t, "", doc.Skills.Programming)
}
