package domain

import "time"

// NormalizeDate обнуляет время, оставляя только календарную дату
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NightsBetween returns the number of nights between check-in and check-out
// Может быть нулем или отрицательным для вырожденных диапазонов
func NightsBetween(checkIn, checkOut time.Time) int {
	in := NormalizeDate(checkIn)
	out := NormalizeDate(checkOut)
	return int(out.Sub(in).Hours() / 24)
}
