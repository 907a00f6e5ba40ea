package repository

import (
	"context"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ProjectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepo(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

func (r *ProjectRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, name, description, project_url, stack, bullets, created_at, updated_at
		FROM projects WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.ProjectURL, &p.Stack, &p.Bullets, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Stack == nil {
		p.Stack = []string{}
	}
	if p.Bullets == nil {
		p.Bullets = []string{}
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO projects (id, user_id, name, description, project_url, stack, bullets, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.UserID, p.Name, p.Description, p.ProjectURL, p.Stack, p.Bullets, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *ProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now()
	if p.Stack == nil {
		p.Stack = []string{}
	}
	if p.Bullets == nil {
		p.Bullets = []string{}
	}

	tag, err := r.pool.Exec(ctx, `UPDATE projects SET name = $1, description = $2, project_url = $3, stack = $4, bullets = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8`,
		p.Name, p.Description, p.ProjectURL, p.Stack, p.Bullets, p.UpdatedAt, p.ID, p.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
