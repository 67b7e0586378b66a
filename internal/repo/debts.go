package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

type Debts struct{ pool *pgxpool.Pool }

func NewDebts(p *pgxpool.Pool) *Debts { return &Debts{pool: p} }

// Insert appends a debt owned by fromID. The counterparty is either bound to
// a registered user or kept as the entered label; to_name holds the reference
// as a frozen snapshot either way.
func (r *Debts) Insert(ctx context.Context, fromID int64, fromHandle *string, cp domain.Counterparty, amount decimal.Decimal, description string) (domain.Debt, error) {
	d := domain.Debt{
		FromUserID:  fromID,
		FromHandle:  fromHandle,
		ToUserID:    cp.UserID,
		ToName:      cp.Name,
		Amount:      amount,
		Description: description,
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO debts(from_user_id, from_handle, to_user_id, to_name, amount, description)
		VALUES($1,$2,$3,$4,$5,$6)
		RETURNING id, recorded_at
	`, fromID, fromHandle, cp.UserID, cp.Name, amount, description).Scan(&d.ID, &d.RecordedAt)
	if err != nil {
		return domain.Debt{}, fmt.Errorf("failed to insert debt for user %d: %w", fromID, err)
	}
	return d, nil
}

func (r *Debts) List(ctx context.Context, userID int64, p *domain.Period) ([]domain.Debt, error) {
	q := `
		SELECT id, from_user_id, from_handle, to_user_id, to_name, amount, description, recorded_at, is_paid
		FROM debts WHERE from_user_id=$1`
	args := []any{userID}
	if p != nil {
		q += ` AND recorded_at >= $2 AND recorded_at < $3`
		args = append(args, p.From, p.To)
	}
	q += ` ORDER BY recorded_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for user %d: %w", userID, err)
	}
	defer rows.Close()
	return scanDebts(rows)
}

func (r *Debts) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.Debt, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, from_user_id, from_handle, to_user_id, to_name, amount, description, recorded_at, is_paid
		FROM debts WHERE from_user_id=$1
		ORDER BY recorded_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent debts for user %d: %w", userID, err)
	}
	defer rows.Close()
	return scanDebts(rows)
}

// Sum totals every debt the user recorded, paid or not. Statistics use this;
// the finance summary uses SumOutstanding.
func (r *Debts) Sum(ctx context.Context, userID int64, p *domain.Period) (decimal.Decimal, error) {
	q := `SELECT COALESCE(SUM(amount),0) FROM debts WHERE from_user_id=$1`
	args := []any{userID}
	if p != nil {
		q += ` AND recorded_at >= $2 AND recorded_at < $3`
		args = append(args, p.From, p.To)
	}
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum debts for user %d: %w", userID, err)
	}
	return total, nil
}

// SumOutstanding totals only unpaid debts.
func (r *Debts) SumOutstanding(ctx context.Context, userID int64, p *domain.Period) (decimal.Decimal, error) {
	q := `SELECT COALESCE(SUM(amount),0) FROM debts WHERE from_user_id=$1 AND is_paid=false`
	args := []any{userID}
	if p != nil {
		q += ` AND recorded_at >= $2 AND recorded_at < $3`
		args = append(args, p.From, p.To)
	}
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum outstanding debts for user %d: %w", userID, err)
	}
	return total, nil
}

// SumOutstandingBetween totals unpaid debts fromID owes to the bound user toID.
func (r *Debts) SumOutstandingBetween(ctx context.Context, fromID, toID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount),0) FROM debts
		WHERE from_user_id=$1 AND to_user_id=$2 AND is_paid=false
	`, fromID, toID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum debts between %d and %d: %w", fromID, toID, err)
	}
	return total, nil
}

func (r *Debts) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM debts WHERE id=$1 AND from_user_id=$2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete debt %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Settle marks the owner's debt paid. Settling an already-paid, foreign or
// unknown id reports false.
func (r *Debts) Settle(ctx context.Context, id, ownerID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE debts SET is_paid=true
		WHERE id=$1 AND from_user_id=$2 AND is_paid=false
	`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to settle debt %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanDebts(rows pgx.Rows) ([]domain.Debt, error) {
	var out []domain.Debt
	for rows.Next() {
		var d domain.Debt
		if err := rows.Scan(&d.ID, &d.FromUserID, &d.FromHandle, &d.ToUserID, &d.ToName,
			&d.Amount, &d.Description, &d.RecordedAt, &d.IsPaid); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
