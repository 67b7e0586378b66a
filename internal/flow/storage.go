package flow

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

// Store contracts the engine depends on; internal/repo satisfies them.
// Lookups return (nil, nil) on a miss, deletes report false instead of erring.

type UserStore interface {
	Upsert(ctx context.Context, u domain.User) error
	Get(ctx context.Context, id int64) (*domain.User, error)
	FindByHandle(ctx context.Context, handle string) (*domain.User, error)
}

type EntryStore interface {
	Insert(ctx context.Context, kind domain.EntryKind, userID int64, handle *string, amount decimal.Decimal, category string) (domain.Entry, error)
	List(ctx context.Context, kind domain.EntryKind, userID int64, p *domain.Period) ([]domain.Entry, error)
	ListRecent(ctx context.Context, kind domain.EntryKind, userID int64, limit int) ([]domain.Entry, error)
	Sum(ctx context.Context, kind domain.EntryKind, userID int64, p *domain.Period) (decimal.Decimal, error)
	Delete(ctx context.Context, kind domain.EntryKind, id, userID int64) (bool, error)
}

type DebtStore interface {
	Insert(ctx context.Context, fromID int64, fromHandle *string, cp domain.Counterparty, amount decimal.Decimal, description string) (domain.Debt, error)
	List(ctx context.Context, userID int64, p *domain.Period) ([]domain.Debt, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]domain.Debt, error)
	Sum(ctx context.Context, userID int64, p *domain.Period) (decimal.Decimal, error)
	SumOutstanding(ctx context.Context, userID int64, p *domain.Period) (decimal.Decimal, error)
	SumOutstandingBetween(ctx context.Context, fromID, toID int64) (decimal.Decimal, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
	Settle(ctx context.Context, id, ownerID int64) (bool, error)
}
