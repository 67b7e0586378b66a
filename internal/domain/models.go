package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64
	Handle       *string // normalized "@name", nil while the user has no username
	FirstName    string
	LastName     string
	RegisteredAt time.Time
	LastSeenAt   time.Time
}

// EntryKind selects between the income and expense ledgers.
type EntryKind string

const (
	KindIncome  EntryKind = "income"
	KindExpense EntryKind = "expense"
)

type Entry struct {
	ID         int64
	UserID     int64
	Handle     *string // owner's handle snapshot at write time
	Amount     decimal.Decimal
	Category   string
	RecordedAt time.Time
}

type Debt struct {
	ID          int64
	FromUserID  int64
	FromHandle  *string
	ToUserID    *int64 // set only when the counterparty matched a registered handle
	ToName      string // handle or free-text label as entered
	Amount      decimal.Decimal
	Description string
	RecordedAt  time.Time
	IsPaid      bool
}

// Counterparty is the result of resolving the "to" side of a debt.
// Resolution never fails: either UserID is bound or Name is an opaque label.
type Counterparty struct {
	UserID    *int64
	Name      string
	FirstName string // display name of the bound user, empty when unbound
}

func (c Counterparty) Bound() bool { return c.UserID != nil }
