package scheduling

import "time"

// StartOfDay is local midnight of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns local midnight of the Monday on or before t.
// Sunday belongs to the week that started six days earlier.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	w := int(t.Weekday())
	if w == 0 {
		w = 7
	}
	return time.Date(t.Year(), t.Month(), t.Day()-w+1, 0, 0, 0, 0, loc)
}

// WeekDays returns the seven local midnights Monday..Sunday of the week
// containing anchor. Days are built by calendar arithmetic so a DST change
// inside the week does not shift a day off midnight.
func WeekDays(anchor time.Time, loc *time.Location) [7]time.Time {
	monday := StartOfWeek(anchor, loc)
	var days [7]time.Time
	for i := range days {
		days[i] = time.Date(monday.Year(), monday.Month(), monday.Day()+i, 0, 0, 0, 0, loc)
	}
	return days
}

// DayBounds returns the half-open interval [midnight, next midnight) for the
// local day containing t.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := StartOfDay(t, loc)
	end := time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, loc)
	return start, end
}

// WeekBounds returns [monday midnight, next monday midnight).
func WeekBounds(anchor time.Time, loc *time.Location) (time.Time, time.Time) {
	monday := StartOfWeek(anchor, loc)
	return monday, time.Date(monday.Year(), monday.Month(), monday.Day()+7, 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
