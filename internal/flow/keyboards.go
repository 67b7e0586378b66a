package flow

import "github.com/Rusik2379/FinansistFrol/internal/domain"

// Menu buttons. These literals are the option sets the fixed-choice states
// match against, so they must stay byte-identical to the keyboard labels.
const (
	btnIncomes  = "Доходы"
	btnExpenses = "Расходы"
	btnDebts    = "Долги"
	btnStats    = "Статистика"
	btnFinance  = "Финансы"
	btnDelete   = "Удалить"
	btnProfile  = "Мой профиль"
	btnMyData   = "Мои данные"
	btnMyStats  = "Моя статистика"
	btnBack     = "Назад"
	btnAllTime  = "За все время"

	// categoryOther opens the free-text custom category state.
	categoryOther = "Другое"
)

var (
	incomeCategories  = []string{"Зарплата", "Подарок", "Перевод", categoryOther}
	expenseCategories = []string{"Жилье", "Еда", "Транспорт", "Здоровье", categoryOther}
)

func mainMenuKeyboard() [][]string {
	return [][]string{
		{btnIncomes, btnExpenses},
		{btnDebts, btnStats},
		{btnFinance, btnDelete},
		{btnProfile},
	}
}

func statsMenuKeyboard() [][]string {
	return [][]string{{btnIncomes, btnExpenses}, {btnDebts, btnBack}}
}

func deleteMenuKeyboard() [][]string {
	return [][]string{{btnIncomes, btnExpenses}, {btnDebts, btnBack}}
}

func profileMenuKeyboard() [][]string {
	return [][]string{{btnMyData, btnMyStats}, {btnBack}}
}

func backKeyboard() [][]string {
	return [][]string{{btnBack}}
}

func monthsKeyboard() [][]string {
	var rows [][]string
	for i := 0; i < len(domain.Months); i += 3 {
		rows = append(rows, domain.Months[i:i+3])
	}
	return append(rows, []string{btnAllTime, btnBack})
}

func categoryKeyboard(categories []string) [][]string {
	var rows [][]string
	for i := 0; i < len(categories); i += 2 {
		end := i + 2
		if end > len(categories) {
			end = len(categories)
		}
		rows = append(rows, categories[i:end])
	}
	return rows
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
