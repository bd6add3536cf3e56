package notify

import (
	"sort"
	"time"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// Window returns the first and last day of the period containing now, both
// at midnight in now's location. Weeks run Monday to Sunday.
func Window(period domain.BirthdayPeriod, now time.Time) (from, until time.Time) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch period {
	case domain.BirthdayPeriodWeekly:
		offset := (int(today.Weekday()) + 6) % 7
		from = today.AddDate(0, 0, -offset)
		return from, from.AddDate(0, 0, 6)
	case domain.BirthdayPeriodMonthly:
		from = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		return from, from.AddDate(0, 1, -1)
	default:
		return today, today
	}
}

// monthsFor lists the birth months that can land in [from, until]. February
// is added whenever March is covered, for Feb 29 birthdays in common years.
func monthsFor(from, until time.Time) []time.Month {
	seen := make(map[time.Month]bool, 3)
	var months []time.Month
	add := func(m time.Month) {
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	for d := from; !d.After(until); d = d.AddDate(0, 0, 1) {
		add(d.Month())
		if d.Month() == time.March {
			add(time.February)
		}
	}
	return months
}

func sortBirthdays(list []Birthday) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].Alumnus.Name < list[j].Alumnus.Name
	})
}
