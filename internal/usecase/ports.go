package usecase

import (
	"context"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// Repository ports consumed by the usecases and HTTP handlers. The pgx
// implementations live in internal/adapter/repository; tests substitute
// in-memory fakes.

type ExperienceRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Experience, error)
	Create(ctx context.Context, e *domain.Experience) error
	Update(ctx context.Context, e *domain.Experience) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type EducationRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Education, error)
	Create(ctx context.Context, e *domain.Education) error
	Update(ctx context.Context, e *domain.Education) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ProjectRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type SkillRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error)
	// CreateBatch persists all skills or none; the form submits one
	// category with a list of names, each becoming its own record.
	CreateBatch(ctx context.Context, skills []*domain.Skill) error
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Renderer turns preview HTML into a PDF for export.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type UserRepo interface {
	// Ensure returns the local user row for the authenticated subject,
	// creating it on first sight.
	Ensure(ctx context.Context, id uuid.UUID, email string) (*domain.User, error)
}
