package repository

import (
	"context"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ExperienceRepo struct {
	pool *pgxpool.Pool
}

func NewExperienceRepo(pool *pgxpool.Pool) *ExperienceRepo {
	return &ExperienceRepo{pool: pool}
}

// List returns the user's experiences newest-first by start date, matching
// the order the editor expects to receive them in.
func (r *ExperienceRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Experience, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, company, title, location, start_date, end_date, bullets, created_at, updated_at
		FROM experiences WHERE user_id = $1 ORDER BY start_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.UserID, &e.Company, &e.Title, &e.Location, &e.StartDate, &e.EndDate, &e.Bullets, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExperienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Bullets == nil {
		e.Bullets = []string{}
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO experiences (id, user_id, company, title, location, start_date, end_date, bullets, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		e.ID, e.UserID, e.Company, e.Title, e.Location, e.StartDate, e.EndDate, e.Bullets, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *ExperienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	e.UpdatedAt = time.Now()
	if e.Bullets == nil {
		e.Bullets = []string{}
	}

	tag, err := r.pool.Exec(ctx, `UPDATE experiences SET company = $1, title = $2, location = $3, start_date = $4, end_date = $5, bullets = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9`,
		e.Company, e.Title, e.Location, e.StartDate, e.EndDate, e.Bullets, e.UpdatedAt, e.ID, e.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExperienceRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
