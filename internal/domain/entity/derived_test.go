package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge_BirthdayBoundary(t *testing.T) {
	t.Parallel()

	// Day before the birthday: the year has not been counted yet.
	age, ok := Age("20030913", date(2024, time.September, 12))
	require.True(t, ok)
	assert.Equal(t, 20, age)

	// On the birthday itself it has.
	age, ok = Age("20030913", date(2024, time.September, 13))
	require.True(t, ok)
	assert.Equal(t, 21, age)

	age, ok = Age("20030913", date(2024, time.September, 14))
	require.True(t, ok)
	assert.Equal(t, 21, age)
}

func TestAge_EarlierMonth(t *testing.T) {
	t.Parallel()

	age, ok := Age("19990101", date(2024, time.June, 1))
	require.True(t, ok)
	assert.Equal(t, 25, age)

	age, ok = Age("19991231", date(2024, time.June, 1))
	require.True(t, ok)
	assert.Equal(t, 24, age)
}

func TestAge_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := Age("", date(2024, time.June, 1))
	assert.False(t, ok)

	_, ok = Age("199909", date(2024, time.June, 1))
	assert.False(t, ok)

	_, ok = Age("1999O913", date(2024, time.June, 1))
	assert.False(t, ok)
}

func TestBirthYear(t *testing.T) {
	t.Parallel()

	year, ok := BirthYear("20030913")
	require.True(t, ok)
	assert.Equal(t, 2003, year)

	_, ok = BirthYear("")
	assert.False(t, ok)
}

func TestDaysSinceJoined(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

	// Joining day counts as day 1 regardless of time of day.
	assert.Equal(t, 1, DaysSinceJoined(time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC), now))
	assert.Equal(t, 2, DaysSinceJoined(time.Date(2024, time.March, 9, 0, 1, 0, 0, time.UTC), now))
	assert.Equal(t, 11, DaysSinceJoined(date(2024, time.February, 29), now))

	// Missing createdAt reports day 1.
	assert.Equal(t, 1, DaysSinceJoined(time.Time{}, now))
}

func TestNewProfileView(t *testing.T) {
	t.Parallel()

	now := date(2024, time.September, 13)
	u := &User{
		ID:        "u-1",
		Email:     "user@example.com",
		Nickname:  "tester",
		BirthDate: "20030913",
		Gender:    GenderFemale,
		Bio:       "hello",
		CreatedAt: date(2024, time.September, 11),
	}

	v := NewProfileView(u, now)
	require.NotNil(t, v.Age)
	assert.Equal(t, 21, *v.Age)
	require.NotNil(t, v.BirthYear)
	assert.Equal(t, 2003, *v.BirthYear)
	assert.Equal(t, 3, v.DaysSinceJoined)
	assert.Equal(t, "user@example.com", v.Email)

	// Unknown birth date surfaces as null, not an error.
	v = NewProfileView(&User{ID: "u-2", CreatedAt: now}, now)
	assert.Nil(t, v.Age)
	assert.Nil(t, v.BirthYear)
	assert.Equal(t, 1, v.DaysSinceJoined)
}
