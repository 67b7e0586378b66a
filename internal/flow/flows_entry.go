package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

func entryNoun(kind domain.EntryKind) string {
	if kind == domain.KindIncome {
		return "Доход"
	}
	return "Расход"
}

func entryCategories(kind domain.EntryKind) []string {
	if kind == domain.KindIncome {
		return incomeCategories
	}
	return expenseCategories
}

func entryCategoryState(kind domain.EntryKind) State {
	if kind == domain.KindIncome {
		return StateIncomeCategory
	}
	return StateExpenseCategory
}

func entryCustomState(kind domain.EntryKind) State {
	if kind == domain.KindIncome {
		return StateIncomeCustomCategory
	}
	return StateExpenseCustomCategory
}

// entryAmount collects the amount of an income or expense. Bad input
// re-prompts without leaving the state.
func (e *Engine) entryAmount(kind domain.EntryKind) handlerFunc {
	return func(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
		if text == btnBack {
			return e.cancel(s), nil
		}
		amount, err := domain.ParseAmount(text)
		if errors.Is(err, domain.ErrNonPositiveAmount) {
			return []Reply{{Text: "Сумма должна быть положительной!"}}, nil
		}
		if err != nil {
			return []Reply{{Text: "Введите корректную сумму (например: 1500 или 1500.50)"}}, nil
		}
		s.scratch.amount = amount
		s.state = entryCategoryState(kind)
		return []Reply{{Text: "Выберите категорию:", Keyboard: categoryKeyboard(entryCategories(kind))}}, nil
	}
}

func (e *Engine) entryCategory(kind domain.EntryKind) handlerFunc {
	return func(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
		if text == btnBack {
			return e.cancel(s), nil
		}
		if !contains(entryCategories(kind), text) {
			return []Reply{{Text: "Пожалуйста, выберите категорию из предложенных."}}, nil
		}
		if text == categoryOther {
			s.state = entryCustomState(kind)
			return []Reply{{Text: "Введите название категории:", RemoveKeyboard: true}}, nil
		}
		return e.commitEntry(ctx, s, a, kind, text)
	}
}

func (e *Engine) entryCustomCategory(kind domain.EntryKind) handlerFunc {
	return func(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
		if text == btnBack {
			return e.cancel(s), nil
		}
		return e.commitEntry(ctx, s, a, kind, text)
	}
}

// commitEntry is the terminal step: persist, confirm, return home.
func (e *Engine) commitEntry(ctx context.Context, s *Session, a actor, kind domain.EntryKind, category string) ([]Reply, error) {
	entry, err := e.entries.Insert(ctx, kind, a.id, a.handle, s.scratch.amount, category)
	if err != nil {
		return nil, err
	}
	msg := fmt.Sprintf("✅ %s %s руб. (%s) от %s добавлен!",
		entryNoun(kind),
		domain.FormatAmount(entry.Amount),
		category,
		entry.RecordedAt.Format("2006-01-02"),
	)
	return e.home(s, msg), nil
}
