package repository

import (
	"context"
	"strings"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Ensure looks up the local user row for an authenticated subject and
// creates it on first sight. The default display name is the email prefix.
func (r *UserRepo) Ensure(ctx context.Context, id uuid.UUID, email string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `SELECT id, email, name, created_at, updated_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err == nil {
		return &u, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	now := time.Now()
	u = domain.User{ID: id, Email: email, Name: name, CreatedAt: now, UpdatedAt: now}
	if _, err := r.pool.Exec(ctx, `INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5) ON CONFLICT (id) DO NOTHING`,
		u.ID, u.Email, u.Name, u.CreatedAt, u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
