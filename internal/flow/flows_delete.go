package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

// recordsPerPage bounds the deletion picker to the newest records.
const recordsPerPage = 5

func (e *Engine) deleteMenu(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
	switch text {
	case btnBack:
		return e.cancel(s), nil
	case btnIncomes:
		return e.listDeletableEntries(ctx, s, a, domain.KindIncome)
	case btnExpenses:
		return e.listDeletableEntries(ctx, s, a, domain.KindExpense)
	case btnDebts:
		return e.listDeletableDebts(ctx, s, a)
	default:
		return []Reply{{Text: "Пожалуйста, выберите тип из предложенных."}}, nil
	}
}

func (e *Engine) listDeletableEntries(ctx context.Context, s *Session, a actor, kind domain.EntryKind) ([]Reply, error) {
	entries, err := e.entries.ListRecent(ctx, kind, a.id, recordsPerPage)
	if err != nil {
		return nil, err
	}
	noun := strings.ToLower(entryNoun(kind))
	if len(entries) == 0 {
		plural := "доходов"
		if kind == domain.KindExpense {
			plural = "расходов"
		}
		return []Reply{{Text: fmt.Sprintf("Нет %s для удаления.", plural), Keyboard: deleteMenuKeyboard()}}, nil
	}

	var rows [][]string
	for _, en := range entries {
		rows = append(rows, []string{fmt.Sprintf("Удалить %s #%d: %s руб. (%s) %s",
			noun, en.ID, domain.FormatAmount(en.Amount), en.Category, en.RecordedAt.Format("02.01.2006"))})
	}
	rows = append(rows, []string{btnBack})

	if kind == domain.KindIncome {
		s.state = StateDeleteIncome
	} else {
		s.state = StateDeleteExpense
	}
	return []Reply{{Text: fmt.Sprintf("Выберите %s для удаления:", noun), Keyboard: rows}}, nil
}

func (e *Engine) listDeletableDebts(ctx context.Context, s *Session, a actor) ([]Reply, error) {
	debts, err := e.debts.ListRecent(ctx, a.id, recordsPerPage)
	if err != nil {
		return nil, err
	}
	if len(debts) == 0 {
		return []Reply{{Text: "Нет долгов для удаления.", Keyboard: deleteMenuKeyboard()}}, nil
	}

	var rows [][]string
	for _, d := range debts {
		who := d.ToName
		if who == "" {
			who = d.Description
		}
		rows = append(rows, []string{fmt.Sprintf("Удалить долг #%d: %s руб. (%s) %s",
			d.ID, domain.FormatAmount(d.Amount), who, d.RecordedAt.Format("02.01.2006"))})
	}
	rows = append(rows, []string{btnBack})

	s.state = StateDeleteDebt
	return []Reply{{Text: "Выберите долг для удаления:", Keyboard: rows}}, nil
}

// deletePick handles a picker choice for incomes or expenses. Unknown,
// already-deleted and foreign ids all get the same neutral answer.
func (e *Engine) deletePick(kind domain.EntryKind) handlerFunc {
	return func(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
		if text == btnBack {
			s.state = StateDeleteMenu
			return []Reply{{Text: "Что вы хотите удалить?", Keyboard: deleteMenuKeyboard()}}, nil
		}
		id, ok := parseRecordID(text)
		if !ok {
			return []Reply{{Text: "Ошибка формата. Попробуйте еще раз.", Keyboard: backKeyboard()}}, nil
		}
		deleted, err := e.entries.Delete(ctx, kind, id, a.id)
		if err != nil {
			return nil, err
		}
		s.state = StateDeleteMenu
		noun := entryNoun(kind)
		if deleted {
			return []Reply{{Text: fmt.Sprintf("%s успешно удален!", noun), Keyboard: deleteMenuKeyboard()}}, nil
		}
		return []Reply{{Text: fmt.Sprintf("Не удалось удалить %s. Возможно, он уже был удален.", strings.ToLower(noun)), Keyboard: deleteMenuKeyboard()}}, nil
	}
}

func (e *Engine) deleteDebtPick(ctx context.Context, s *Session, a actor, text string) ([]Reply, error) {
	if text == btnBack {
		s.state = StateDeleteMenu
		return []Reply{{Text: "Что вы хотите удалить?", Keyboard: deleteMenuKeyboard()}}, nil
	}
	id, ok := parseRecordID(text)
	if !ok {
		return []Reply{{Text: "Ошибка формата. Попробуйте еще раз.", Keyboard: backKeyboard()}}, nil
	}
	deleted, err := e.debts.Delete(ctx, id, a.id)
	if err != nil {
		return nil, err
	}
	s.state = StateDeleteMenu
	if deleted {
		return []Reply{{Text: "Долг успешно удален!", Keyboard: deleteMenuKeyboard()}}, nil
	}
	return []Reply{{Text: "Не удалось удалить долг. Возможно, он уже был удален.", Keyboard: deleteMenuKeyboard()}}, nil
}

// parseRecordID extracts the id from a picker line of the form
// "Удалить <kind> #<id>: ...".
func parseRecordID(text string) (int64, bool) {
	_, after, ok := strings.Cut(text, "#")
	if !ok {
		return 0, false
	}
	idStr, _, ok := strings.Cut(after, ":")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
