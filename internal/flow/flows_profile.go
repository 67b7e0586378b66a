package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

func (e *Engine) profileMenu(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
	switch text {
	case btnBack:
		return e.cancel(s), nil
	case btnMyData:
		return e.showProfile(ctx, s, a)
	case btnMyStats:
		return e.showOwnStats(ctx, s, a)
	default:
		return []Reply{{Text: "Пожалуйста, выберите пункт из меню."}}, nil
	}
}

func (e *Engine) showProfile(ctx context.Context, s *Session, a actor) ([]Reply, error) {
	u, err := e.users.Get(ctx, a.id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return e.home(s, "Профиль не найден! Начните с команды /start"), nil
	}

	totalIncome, err := e.entries.Sum(ctx, domain.KindIncome, a.id, nil)
	if err != nil {
		return nil, err
	}
	totalExpense, err := e.entries.Sum(ctx, domain.KindExpense, a.id, nil)
	if err != nil {
		return nil, err
	}
	totalDebts, err := e.debts.SumOutstanding(ctx, a.id, nil)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf(
		"📌 Ваш профиль:\n"+
			"👤 Имя: %s\n"+
			"📛 Юзернейм: %s\n"+
			"🆔 ID: %d\n"+
			"📅 Регистрация: %s\n\n"+
			"💰 Общие доходы: %s руб.\n"+
			"💸 Общие расходы: %s руб.\n"+
			"🧾 Текущие долги: %s руб.\n\n"+
			"Чтобы другие пользователи могли ссылаться на вас, установите username в настройках Telegram",
		fullName(u),
		handleOrUnset(u.Handle),
		u.ID,
		u.RegisteredAt.Format("02.01.2006 15:04"),
		domain.FormatAmount(totalIncome),
		domain.FormatAmount(totalExpense),
		domain.FormatAmount(totalDebts),
	)
	return []Reply{{Text: msg, Keyboard: profileMenuKeyboard()}}, nil
}

func (e *Engine) showOwnStats(ctx context.Context, s *Session, a actor) ([]Reply, error) {
	income, err := e.entries.Sum(ctx, domain.KindIncome, a.id, nil)
	if err != nil {
		return nil, err
	}
	expense, err := e.entries.Sum(ctx, domain.KindExpense, a.id, nil)
	if err != nil {
		return nil, err
	}
	debts, err := e.debts.SumOutstanding(ctx, a.id, nil)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf(
		"📊 Моя статистика (за все время):\n\n"+
			"💰 Доходы: %s руб.\n"+
			"💸 Расходы: %s руб.\n"+
			"📉 Баланс: %s руб.\n"+
			"🧾 Непогашенные долги: %s руб.",
		domain.FormatAmount(income),
		domain.FormatAmount(expense),
		domain.FormatAmount(income.Sub(expense)),
		domain.FormatAmount(debts),
	)
	return []Reply{{Text: msg, Keyboard: profileMenuKeyboard()}}, nil
}

func fullName(u *domain.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func handleOrUnset(h *string) string {
	if h == nil || *h == "" {
		return "не установлен"
	}
	return *h
}
