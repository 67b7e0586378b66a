package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

type Users struct{ pool *pgxpool.Pool }

func NewUsers(p *pgxpool.Pool) *Users { return &Users{pool: p} }

// Upsert registers the user on first contact and refreshes the mutable
// profile fields on every later one. Last write wins.
func (r *Users) Upsert(ctx context.Context, u domain.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users(user_id, handle, first_name, last_name)
		VALUES($1,$2,$3,$4)
		ON CONFLICT (user_id) DO UPDATE
		SET handle=EXCLUDED.handle,
			first_name=EXCLUDED.first_name,
			last_name=EXCLUDED.last_name,
			last_seen_at=now()
	`, u.ID, u.Handle, u.FirstName, u.LastName)
	if err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", u.ID, err)
	}
	return nil
}

func (r *Users) Get(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, handle, first_name, last_name, registered_at, last_seen_at
		FROM users WHERE user_id=$1
	`, id).Scan(&u.ID, &u.Handle, &u.FirstName, &u.LastName, &u.RegisteredAt, &u.LastSeenAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &u, nil
}

// FindByHandle matches the normalized handle exactly, case-insensitively.
// Returns (nil, nil) when nobody carries it.
func (r *Users) FindByHandle(ctx context.Context, handle string) (*domain.User, error) {
	handle = domain.NormalizeHandle(handle)
	var u domain.User
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, handle, first_name, last_name, registered_at, last_seen_at
		FROM users WHERE lower(handle) = $1
	`, handle).Scan(&u.ID, &u.Handle, &u.FirstName, &u.LastName, &u.RegisteredAt, &u.LastSeenAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by handle %s: %w", handle, err)
	}
	return &u, nil
}
