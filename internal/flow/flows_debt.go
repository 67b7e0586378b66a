package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

func (e *Engine) debtAmount(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
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
	s.state = StateDebtPerson
	return []Reply{{Text: "Введите имя того, кому вы должны, или его @юзернейм:", Keyboard: backKeyboard()}}, nil
}

// debtPerson resolves the counterparty once, at entry time.
func (e *Engine) debtPerson(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
	if text == btnBack {
		return e.cancel(s), nil
	}
	cp, err := e.resolveCounterparty(ctx, text)
	if err != nil {
		return nil, err
	}
	s.scratch.counterparty = &cp
	s.state = StateDebtDescription

	if cp.Bound() {
		return []Reply{{
			Text:     fmt.Sprintf("Долг будет записан на пользователя %s (%s)\nВведите описание долга:", cp.FirstName, cp.Name),
			Keyboard: backKeyboard(),
		}}, nil
	}
	return []Reply{{Text: "Введите описание долга:", Keyboard: backKeyboard()}}, nil
}

func (e *Engine) debtDescription(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
	if text == btnBack {
		return e.cancel(s), nil
	}
	cp := s.scratch.counterparty
	debt, err := e.debts.Insert(ctx, a.id, a.handle, *cp, s.scratch.amount, text)
	if err != nil {
		return nil, err
	}

	person := cp.Name
	if cp.Bound() && cp.FirstName != "" {
		person = cp.FirstName
	}
	msg := fmt.Sprintf("✅ Долг %s руб. (%s) от %s\nДля: %s\nУспешно добавлен!",
		domain.FormatAmount(debt.Amount),
		debt.Description,
		debt.RecordedAt.Format("2006-01-02"),
		person,
	)
	return e.home(s, msg), nil
}
