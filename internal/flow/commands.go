package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

func (e *Engine) cmdStart(s *Session, u domain.User) []Reply {
	s.scratch.reset()
	s.state = StateMainMenu
	msg := fmt.Sprintf(
		"Привет, %s!\n"+
			"Твой юзернейм: %s\n\n"+
			"Я бот для учета финансов с системой аккаунтов.\n"+
			"Другие пользователи могут ссылаться на тебя через @юзернейм\n\n"+
			"Чтобы установить/изменить юзернейм:\n"+
			"1. Откройте настройки Telegram\n"+
			"2. Перейдите в 'Изменить профиль'\n"+
			"3. Установите 'Имя пользователя'",
		u.FirstName,
		handleOrUnset(u.Handle),
	)
	return []Reply{{Text: msg, Keyboard: mainMenuKeyboard()}}
}

// cmdFind reports whether debts exist in either direction between the caller
// and the looked-up user. Works from any conversation position and leaves the
// state untouched.
func (e *Engine) cmdFind(ctx context.Context, a actor, text string) ([]Reply, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return []Reply{{Text: "Укажите юзернейм после команды, например: /find @username"}}, nil
	}
	handle := domain.NormalizeHandle(fields[1])

	u, err := e.users.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return []Reply{{Text: fmt.Sprintf("Пользователь %s не найден в системе", handle)}}, nil
	}

	owes, err := e.debts.SumOutstandingBetween(ctx, a.id, u.ID)
	if err != nil {
		return nil, err
	}
	owed, err := e.debts.SumOutstandingBetween(ctx, u.ID, a.id)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Найден пользователь:\n")
	fmt.Fprintf(&b, "👤 Имя: %s\n", fullName(u))
	fmt.Fprintf(&b, "📛 Юзернейм: %s\n", handle)
	fmt.Fprintf(&b, "🆔 ID: %d\n", u.ID)
	fmt.Fprintf(&b, "📅 Регистрация: %s\n\n", u.RegisteredAt.Format("02.01.2006"))

	if owes.IsPositive() {
		fmt.Fprintf(&b, "→ Вы должны ему: %s руб.\n", domain.FormatAmount(owes))
	}
	if owed.IsPositive() {
		fmt.Fprintf(&b, "← Он должен вам: %s руб.", domain.FormatAmount(owed))
	}
	if !owes.IsPositive() && !owed.IsPositive() {
		b.WriteString("Нет активных долгов между вами")
	}
	return []Reply{{Text: b.String()}}, nil
}

// cmdPaid settles one of the caller's debts by id. A foreign, unknown or
// already-settled id gets a neutral answer.
func (e *Engine) cmdPaid(ctx context.Context, a actor, text string) ([]Reply, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return []Reply{{Text: "Используй: /paid <id>\nПример: /paid 12"}}, nil
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || id <= 0 {
		return []Reply{{Text: "Неверный id долга. Пример: /paid 12"}}, nil
	}

	ok, err := e.debts.Settle(ctx, id, a.id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Reply{{Text: "Долг не найден или уже оплачен."}}, nil
	}
	return []Reply{{Text: fmt.Sprintf("✅ Долг #%d оплачен", id)}}, nil
}
