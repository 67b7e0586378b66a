package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

// Entries covers the income and expense ledgers; the two tables share a
// shape and every query is parameterized by kind.
type Entries struct{ pool *pgxpool.Pool }

func NewEntries(p *pgxpool.Pool) *Entries { return &Entries{pool: p} }

func tableFor(kind domain.EntryKind) string {
	if kind == domain.KindIncome {
		return "incomes"
	}
	return "expenses"
}

func (r *Entries) Insert(ctx context.Context, kind domain.EntryKind, userID int64, handle *string, amount decimal.Decimal, category string) (domain.Entry, error) {
	e := domain.Entry{UserID: userID, Handle: handle, Amount: amount, Category: category}
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s(user_id, handle, amount, category)
		VALUES($1,$2,$3,$4)
		RETURNING id, recorded_at
	`, tableFor(kind)), userID, handle, amount, category).Scan(&e.ID, &e.RecordedAt)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("failed to insert %s for user %d: %w", kind, userID, err)
	}
	return e, nil
}

// List returns the owner's entries newest-first; a nil period means all-time.
func (r *Entries) List(ctx context.Context, kind domain.EntryKind, userID int64, p *domain.Period) ([]domain.Entry, error) {
	q := fmt.Sprintf(`
		SELECT id, user_id, handle, amount, category, recorded_at
		FROM %s WHERE user_id=$1`, tableFor(kind))
	args := []any{userID}
	if p != nil {
		q += ` AND recorded_at >= $2 AND recorded_at < $3`
		args = append(args, p.From, p.To)
	}
	q += ` ORDER BY recorded_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s for user %d: %w", kind, userID, err)
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Handle, &e.Amount, &e.Category, &e.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListRecent returns the newest limit entries, for the deletion picker.
func (r *Entries) ListRecent(ctx context.Context, kind domain.EntryKind, userID int64, limit int) ([]domain.Entry, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, user_id, handle, amount, category, recorded_at
		FROM %s WHERE user_id=$1
		ORDER BY recorded_at DESC
		LIMIT $2
	`, tableFor(kind)), userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent %s for user %d: %w", kind, userID, err)
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Handle, &e.Amount, &e.Category, &e.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Sum totals the owner's amounts over the same filter List uses.
// The sum over no rows is zero.
func (r *Entries) Sum(ctx context.Context, kind domain.EntryKind, userID int64, p *domain.Period) (decimal.Decimal, error) {
	q := fmt.Sprintf(`SELECT COALESCE(SUM(amount),0) FROM %s WHERE user_id=$1`, tableFor(kind))
	args := []any{userID}
	if p != nil {
		q += ` AND recorded_at >= $2 AND recorded_at < $3`
		args = append(args, p.From, p.To)
	}
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s for user %d: %w", kind, userID, err)
	}
	return total, nil
}

// Delete removes the entry only when userID owns it. A miss is not an error;
// the caller gets false and words it for the user.
func (r *Entries) Delete(ctx context.Context, kind domain.EntryKind, id, userID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE id=$1 AND user_id=$2`, tableFor(kind)), id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s %d: %w", kind, id, err)
	}
	return tag.RowsAffected() > 0, nil
}
