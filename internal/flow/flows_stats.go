package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

func (e *Engine) statsMenu(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
	if text == btnBack {
		return e.cancel(s), nil
	}
	if !contains([]string{btnIncomes, btnExpenses, btnDebts}, text) {
		return []Reply{{Text: "Пожалуйста, выберите тип из предложенных."}}, nil
	}
	s.scratch.statsKind = text
	s.state = StateStatsMonth
	return []Reply{{Text: "Выберите месяц:", Keyboard: monthsKeyboard()}}, nil
}

func (e *Engine) statsMonth(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
	if text == btnBack {
		s.state = StateStatsMenu
		return []Reply{{Text: "Выберите тип статистики:", Keyboard: statsMenuKeyboard()}}, nil
	}
	period, label, ok := e.resolvePeriod(text)
	if !ok {
		return []Reply{{Text: "Пожалуйста, выберите месяц из предложенных."}}, nil
	}
	return e.showStats(ctx, s, a, period, label)
}

// showStats renders every matching record as one line plus a total, splitting
// into chunks when the text outgrows one message.
func (e *Engine) showStats(ctx context.Context, s *Session, a actor, period *domain.Period, label string) ([]Reply, error) {
	kindLabel := s.scratch.statsKind
	var (
		lines []string
		total decimal.Decimal
	)

	switch kindLabel {
	case btnIncomes, btnExpenses:
		kind := domain.KindIncome
		if kindLabel == btnExpenses {
			kind = domain.KindExpense
		}
		entries, err := e.entries.List(ctx, kind, a.id, period)
		if err != nil {
			return nil, err
		}
		total, err = e.entries.Sum(ctx, kind, a.id, period)
		if err != nil {
			return nil, err
		}
		for _, en := range entries {
			lines = append(lines, fmt.Sprintf("• %s руб. (%s) - %s",
				domain.FormatAmount(en.Amount), en.Category, en.RecordedAt.Format("02.01.2006")))
		}
	case btnDebts:
		debts, err := e.debts.List(ctx, a.id, period)
		if err != nil {
			return nil, err
		}
		total, err = e.debts.Sum(ctx, a.id, period)
		if err != nil {
			return nil, err
		}
		for _, d := range debts {
			who := d.ToName
			if who == "" {
				who = d.Description
			}
			lines = append(lines, fmt.Sprintf("• %s руб. для %s - %s",
				domain.FormatAmount(d.Amount), who, d.RecordedAt.Format("02.01.2006")))
		}
	}

	s.state = StateStatsMenu
	if len(lines) == 0 {
		return []Reply{{
			Text:     fmt.Sprintf("Нет данных (%s) %s.", strings.ToLower(kindLabel), label),
			Keyboard: statsMenuKeyboard(),
		}}, nil
	}

	msg := fmt.Sprintf("📊 %s %s:\n\n%s\n\n💰 Итого: %s руб.",
		kindLabel, label, strings.Join(lines, "\n"), domain.FormatAmount(total))
	return chunked(msg, statsMenuKeyboard()), nil
}

// financeMonth is the narrower per-bucket report: income, expense, balance,
// and the sum of unpaid debts only.
func (e *Engine) financeMonth(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
	if text == btnBack {
		return e.home(s, "Отменено."), nil
	}
	period, label, ok := e.resolvePeriod(text)
	if !ok {
		return []Reply{{Text: "Пожалуйста, выберите месяц из предложенных."}}, nil
	}

	income, err := e.entries.Sum(ctx, domain.KindIncome, a.id, period)
	if err != nil {
		return nil, err
	}
	expense, err := e.entries.Sum(ctx, domain.KindExpense, a.id, period)
	if err != nil {
		return nil, err
	}
	debts, err := e.debts.SumOutstanding(ctx, a.id, period)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf(
		"📊 <b>Финансы %s</b>\n\n💰 Доходы: %s руб.\n💸 Расходы: %s руб.\n📉 Баланс: %s руб.\n🧾 Долги: %s руб.",
		label,
		domain.FormatAmount(income),
		domain.FormatAmount(expense),
		domain.FormatAmount(income.Sub(expense)),
		domain.FormatAmount(debts),
	)
	s.scratch.reset()
	s.state = StateMainMenu
	return []Reply{{Text: msg, Keyboard: mainMenuKeyboard(), HTML: true}}, nil
}
