package attendance

import "time"

// DateLayout is the canonical calendar-day form used for record keys and
// range queries.
const DateLayout = "2006-01-02"

// DateOf renders t as a calendar day in the reference location. Computing
// the day locally (not in UTC) keeps late-evening check-ins on the right
// date.
func DateOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// MonthWindow returns the first and last calendar day of now's month in the
// reference location.
func MonthWindow(now time.Time, loc *time.Location) (first, last time.Time) {
	n := now.In(loc)
	first = time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, loc)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// ElapsedDays counts calendar days from the first of now's month through
// min(now, last of month), inclusive. Weekends count: the policy treats
// every calendar day as absence-eligible.
func ElapsedDays(now time.Time, loc *time.Location) int {
	first, last := MonthWindow(now, loc)
	n := now.In(loc)
	end := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	if end.After(last) {
		end = last
	}
	days := 0
	for d := first; !d.After(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
