package repository

import (
	"context"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type SkillRepo struct {
	pool *pgxpool.Pool
}

func NewSkillRepo(pool *pgxpool.Pool) *SkillRepo {
	return &SkillRepo{pool: pool}
}

func (r *SkillRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, name, category, created_at, updated_at
		FROM skills WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CreateBatch inserts all skills in one transaction so a mid-batch failure
// leaves nothing behind.
func (r *SkillRepo) CreateBatch(ctx context.Context, skills []*domain.Skill) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now()
	for _, s := range skills {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		s.CreatedAt = now
		s.UpdatedAt = now
		if _, err := tx.Exec(ctx, `INSERT INTO skills (id, user_id, name, category, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			s.ID, s.UserID, s.Name, s.Category, s.CreatedAt, s.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *SkillRepo) Update(ctx context.Context, s *domain.Skill) error {
	s.UpdatedAt = time.Now()

	tag, err := r.pool.Exec(ctx, `UPDATE skills SET name = $1, category = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5`,
		s.Name, s.Category, s.UpdatedAt, s.ID, s.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SkillRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
