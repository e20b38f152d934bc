package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.September, 13, 12, 0, 0, 0, time.UTC)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		code Code
	}{
		{"valid", "user@example.com", ""},
		{"valid with dots", "first.last@mail.example.co", ""},
		{"trimmed", "  user@example.com  ", ""},
		{"empty", "", Required},
		{"whitespace only", "   ", Required},
		{"no at sign", "userexample.com", InvalidFormat},
		{"no tld", "user@example", InvalidFormat},
		{"double at", "user@@example.com", InvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Email(tt.raw)
			if tt.code == "" {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.code, v.Code)
			assert.Equal(t, "email", v.Field)
		})
	}
}

func TestNickname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		code Code
	}{
		{"ascii", "neo_2024", ""},
		{"hangul", "테스트유저", ""},
		{"mixed with hyphen", "유저-one", ""},
		{"min length", "ab", ""},
		{"max length", strings.Repeat("a", 20), ""},
		{"empty", "", Required},
		{"one char", "a", TooShort},
		{"too long", strings.Repeat("a", 21), TooLong},
		{"space inside", "bad name", InvalidCharacters},
		{"emoji", "user😀", InvalidCharacters},
		{"punctuation", "user!", InvalidCharacters},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Nickname(tt.raw)
			if tt.code == "" {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.code, v.Code)
		})
	}
}

func TestBirthDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		code Code
	}{
		{"valid", "20030913", ""},
		{"leap day", "20000229", ""},
		{"first of range", "19000101", ""},
		{"current year", "20240101", ""},
		{"empty", "", Required},
		{"too short", "2003091", InvalidFormat},
		{"letters", "2003O913", InvalidFormat},
		{"month 13", "20031301", InvalidFormat},
		{"day 32", "20030132", InvalidFormat},
		{"before 1900", "18991231", InvalidFormat},
		{"future year", "20250101", FutureYear},
		{"feb 30", "20030230", ImpossibleDate},
		{"feb 29 non-leap", "20010229", ImpossibleDate},
		{"apr 31", "20030431", ImpossibleDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := BirthDate(tt.raw, fixedNow)
			if tt.code == "" {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.code, v.Code)
		})
	}
}

func TestProfileImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"absent", "", true},
		{"jpg", "https://cdn.example.com/a.jpg", true},
		{"uppercase ext", "http://cdn.example.com/a.PNG", true},
		{"webp", "https://cdn.example.com/pic.webp", true},
		{"no scheme", "cdn.example.com/a.jpg", false},
		{"ftp scheme", "ftp://cdn.example.com/a.jpg", false},
		{"wrong ext", "https://cdn.example.com/a.pdf", false},
		{"no ext", "https://cdn.example.com/a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ProfileImage(tt.raw)
			if tt.valid {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, InvalidImageURL, v.Code)
		})
	}
}

func TestBio(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Bio(""))
	assert.Nil(t, Bio(strings.Repeat("a", 100)))
	assert.Nil(t, Bio(strings.Repeat("글", 100)))

	v := Bio(strings.Repeat("a", 101))
	require.NotNil(t, v)
	assert.Equal(t, TooLong, v.Code)
}

func TestGender(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"", "F", "M", "N"} {
		assert.Nil(t, Gender(ok), ok)
	}
	for _, bad := range []string{"f", "X", "FM"} {
		v := Gender(bad)
		require.NotNil(t, v, bad)
		assert.Equal(t, InvalidFormat, v.Code)
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Password("secret"))
	assert.Nil(t, Password("password123"))

	v := Password("")
	require.NotNil(t, v)
	assert.Equal(t, Required, v.Code)

	v = Password("12345")
	require.NotNil(t, v)
	assert.Equal(t, TooShort, v.Code)
}
