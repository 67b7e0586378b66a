package domain

import "time"

// Months as they appear on the month keyboard, January first.
var Months = []string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// Period is a half-open time range [From, To). A nil *Period means all-time.
type Period struct {
	From time.Time
	To   time.Time
}

func (p *Period) Contains(t time.Time) bool {
	if p == nil {
		return true
	}
	return !t.Before(p.From) && t.Before(p.To)
}

// MonthPeriod maps a keyboard month name onto its bucket within year.
// The bucket runs from the 1st to the 1st of the next month, except December:
// its upper bound is the literal December 31 of the same year.
func MonthPeriod(name string, year int) (*Period, bool) {
	for i, m := range Months {
		if m != name {
			continue
		}
		from := time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		var to time.Time
		if i+1 < 12 {
			to = time.Date(year, time.Month(i+2), 1, 0, 0, 0, 0, time.UTC)
		} else {
			to = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		}
		return &Period{From: from, To: to}, true
	}
	return nil, false
}
