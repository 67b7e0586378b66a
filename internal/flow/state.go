package flow

import (
	"github.com/shopspring/decimal"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

// State enumerates every conversation position. Each flow is a short linear
// chain; StateMainMenu is home.
type State int

const (
	StateMainMenu State = iota

	StateIncomeAmount
	StateIncomeCategory
	StateIncomeCustomCategory

	StateExpenseAmount
	StateExpenseCategory
	StateExpenseCustomCategory

	StateDebtAmount
	StateDebtPerson
	StateDebtDescription

	StateStatsMenu
	StateStatsMonth

	StateFinanceMonth

	StateDeleteMenu
	StateDeleteIncome
	StateDeleteExpense
	StateDeleteDebt

	StateProfileMenu
)

// scratch holds the partially collected input of the current flow. It is
// owned by exactly one session and zeroed whenever the flow commits, is
// cancelled, or falls back to the home state.
type scratch struct {
	amount       decimal.Decimal
	statsKind    string
	counterparty *domain.Counterparty
}

func (s *scratch) reset() { *s = scratch{} }
