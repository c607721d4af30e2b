// Package calendar supplies the biblical date shown on the home sheet.
// The values are fixed; no calendar arithmetic is done.
package calendar

import "strconv"

// Month is the fixed month of the home strip.
const Month = "Aviv"

const today = 10

// Day is one cell of the week strip.
type Day struct {
	Number  int
	Weekday string
	Feast   string
	Shabbat bool
}

// Label renders the day as "Aviv 14th".
func (d Day) Label() string {
	return Month + " " + strconv.Itoa(d.Number) + DaySuffix(d.Number)
}

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Today returns the current biblical date.
func Today() string {
	return Day{Number: today}.Label()
}

// UpcomingDays returns n days starting today. Pesach falls on the 14th and
// every seventh day is a Shabbat.
func UpcomingDays(n int) []Day {
	days := make([]Day, 0, max(n, 0))
	for i := range max(n, 0) {
		d := Day{
			Number:  today + i,
			Weekday: weekdays[i%len(weekdays)],
		}
		if d.Number == 14 {
			d.Feast = "Pesach"
		}
		d.Shabbat = d.Weekday == "Sat"
		days = append(days, d)
	}
	return days
}

// DaySuffix returns the English ordinal suffix for n.
func DaySuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
