package flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

// actor identifies the user behind the current message, with the handle
// snapshot that gets denormalized into the records they write.
type actor struct {
	id     int64
	handle *string
}

type handlerFunc func(ctx context.Context, s *Session, a actor, text string) ([]Reply, error)

// Engine drives the per-user conversation automaton and commits completed
// flows to the ledger stores.
type Engine struct {
	users   UserStore
	entries EntryStore
	debts   DebtStore

	now      func() time.Time
	handlers map[State]handlerFunc
}

func NewEngine(users UserStore, entries EntryStore, debts DebtStore) *Engine {
	e := &Engine{
		users:   users,
		entries: entries,
		debts:   debts,
		now:     time.Now,
	}
	e.handlers = map[State]handlerFunc{
		StateMainMenu: e.mainMenu,

		StateIncomeAmount:         e.entryAmount(domain.KindIncome),
		StateIncomeCategory:       e.entryCategory(domain.KindIncome),
		StateIncomeCustomCategory: e.entryCustomCategory(domain.KindIncome),

		StateExpenseAmount:         e.entryAmount(domain.KindExpense),
		StateExpenseCategory:       e.entryCategory(domain.KindExpense),
		StateExpenseCustomCategory: e.entryCustomCategory(domain.KindExpense),

		StateDebtAmount:      e.debtAmount,
		StateDebtPerson:      e.debtPerson,
		StateDebtDescription: e.debtDescription,

		StateStatsMenu:  e.statsMenu,
		StateStatsMonth: e.statsMonth,

		StateFinanceMonth: e.financeMonth,

		StateDeleteMenu:    e.deleteMenu,
		StateDeleteIncome:  e.deletePick(domain.KindIncome),
		StateDeleteExpense: e.deletePick(domain.KindExpense),
		StateDeleteDebt:    e.deleteDebtPick,

		StateProfileMenu: e.profileMenu,
	}
	return e
}

// Handle processes one inbound message against the user's session. The
// session lock keeps processing strictly serial per user; sessions of
// different users run independently.
func (e *Engine) Handle(ctx context.Context, sess *Session, in Inbound) ([]Reply, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	user := domain.User{ID: in.UserID, FirstName: in.FirstName, LastName: in.LastName}
	if h := domain.NormalizeHandle(in.Handle); h != "" {
		user.Handle = &h
	}
	if err := e.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, nil
	}

	a := actor{id: in.UserID, handle: user.Handle}

	// Commands work regardless of the conversation position.
	switch {
	case strings.HasPrefix(text, "/start"):
		return e.cmdStart(sess, user), nil
	case strings.HasPrefix(text, "/cancel"):
		return e.cancel(sess), nil
	case strings.HasPrefix(text, "/find"):
		return e.cmdFind(ctx, a, text)
	case strings.HasPrefix(text, "/paid"):
		return e.cmdPaid(ctx, a, text)
	}

	return e.handlers[sess.state](ctx, sess, a, text)
}

func (e *Engine) mainMenu(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
	switch text {
	case btnIncomes:
		s.state = StateIncomeAmount
		return []Reply{{Text: "Введите сумму дохода:", RemoveKeyboard: true}}, nil
	case btnExpenses:
		s.state = StateExpenseAmount
		return []Reply{{Text: "Введите сумму расхода:", RemoveKeyboard: true}}, nil
	case btnDebts:
		s.state = StateDebtAmount
		return []Reply{{Text: "Введите сумму долга:", RemoveKeyboard: true}}, nil
	case btnStats:
		s.state = StateStatsMenu
		return []Reply{{Text: "Выберите тип статистики:", Keyboard: statsMenuKeyboard()}}, nil
	case btnFinance:
		s.state = StateFinanceMonth
		return []Reply{{Text: "Выберите месяц для просмотра статистики:", Keyboard: monthsKeyboard()}}, nil
	case btnDelete:
		s.state = StateDeleteMenu
		return []Reply{{Text: "Что вы хотите удалить?", Keyboard: deleteMenuKeyboard()}}, nil
	case btnProfile:
		s.state = StateProfileMenu
		return []Reply{{Text: "Меню профиля:", Keyboard: profileMenuKeyboard()}}, nil
	default:
		return []Reply{{Text: "Выберите действие из меню.", Keyboard: mainMenuKeyboard()}}, nil
	}
}

// cancel discards scratch and returns to the home state.
func (e *Engine) cancel(s *Session) []Reply {
	return e.home(s, "Действие отменено.")
}

func (e *Engine) home(s *Session, msg string) []Reply {
	s.scratch.reset()
	s.state = StateMainMenu
	return []Reply{{Text: msg, Keyboard: mainMenuKeyboard()}}
}

// resolvePeriod maps a month-keyboard choice onto its bucket and a
// user-facing label. All-time yields a nil period.
func (e *Engine) resolvePeriod(text string) (*domain.Period, string, bool) {
	if text == btnAllTime {
		return nil, "за все время", true
	}
	year := e.now().Year()
	p, ok := domain.MonthPeriod(text, year)
	if !ok {
		return nil, "", false
	}
	return p, fmt.Sprintf("за %s %d", strings.ToLower(text), year), true
}

// resolveCounterparty binds "@handle" input to a registered user when the
// handle matches, and otherwise keeps the input as an opaque label. The
// binding is attempted once, here, and never re-validated at commit time.
func (e *Engine) resolveCounterparty(ctx context.Context, raw string) (domain.Counterparty, error) {
	if strings.HasPrefix(raw, domain.HandleSigil) {
		u, err := e.users.FindByHandle(ctx, raw)
		if err != nil {
			return domain.Counterparty{}, err
		}
		if u != nil {
			id := u.ID
			return domain.Counterparty{
				UserID:    &id,
				Name:      domain.NormalizeHandle(raw),
				FirstName: u.FirstName,
			}, nil
		}
	}
	return domain.Counterparty{Name: raw}, nil
}
