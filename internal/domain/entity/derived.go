package entity

import (
	"strconv"
	"time"
)

// Derived profile attributes. These are never stored; they are computed
// from BirthDate/CreatedAt against an injected "now" so tests can pin
// the clock.

// Age returns the full years between birthDate and now, counting a year
// only once the birthday has passed in the current year. ok is false
// when birthDate is absent or not a parseable 8-digit date.
func Age(birthDate string, now time.Time) (int, bool) {
	year, month, day, ok := splitBirthDate(birthDate)
	if !ok {
		return 0, false
	}
	age := now.Year() - year
	if int(now.Month()) < month || (int(now.Month()) == month && now.Day() < day) {
		age--
	}
	return age, true
}

// BirthYear returns the year component of an 8-digit birth date.
func BirthYear(birthDate string) (int, bool) {
	year, _, _, ok := splitBirthDate(birthDate)
	if !ok {
		return 0, false
	}
	return year, true
}

// DaysSinceJoined counts whole calendar days between createdAt and now,
// both truncated to midnight, plus one so the joining day is day 1.
// A zero createdAt also reports day 1.
func DaysSinceJoined(createdAt, now time.Time) int {
	if createdAt.IsZero() {
		return 1
	}
	joined := time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), 0, 0, 0, 0, createdAt.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(today.Sub(joined).Hours()/24) + 1
}

func splitBirthDate(birthDate string) (year, month, day int, ok bool) {
	if len(birthDate) != 8 {
		return 0, 0, 0, false
	}
	year, err := strconv.Atoi(birthDate[:4])
	if err != nil {
		return 0, 0, 0, false
	}
	month, err = strconv.Atoi(birthDate[4:6])
	if err != nil {
		return 0, 0, 0, false
	}
	day, err = strconv.Atoi(birthDate[6:8])
	if err != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}
