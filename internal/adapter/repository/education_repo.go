package repository

import (
	"context"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type EducationRepo struct {
	pool *pgxpool.Pool
}

func NewEducationRepo(pool *pgxpool.Pool) *EducationRepo {
	return &EducationRepo{pool: pool}
}

func (r *EducationRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Education, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, institution, degree, gpa, start_date, end_date, created_at, updated_at
		FROM education WHERE user_id = $1 ORDER BY start_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.GPA, &e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EducationRepo) Create(ctx context.Context, e *domain.Education) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := r.pool.Exec(ctx, `INSERT INTO education (id, user_id, institution, degree, gpa, start_date, end_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.UserID, e.Institution, e.Degree, e.GPA, e.StartDate, e.EndDate, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *EducationRepo) Update(ctx context.Context, e *domain.Education) error {
	e.UpdatedAt = time.Now()

	tag, err := r.pool.Exec(ctx, `UPDATE education SET institution = $1, degree = $2, gpa = $3, start_date = $4, end_date = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8`,
		e.Institution, e.Degree, e.GPA, e.StartDate, e.EndDate, e.UpdatedAt, e.ID, e.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EducationRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
