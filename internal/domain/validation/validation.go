// Package validation holds the pure field validators for user input.
// Validators never touch storage and never mutate their input; callers
// aggregate the returned violations so a single response can report
// every broken field at once.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Code identifies the constraint a field violated.
type Code string

const (
	Required          Code = "Required"
	InvalidFormat     Code = "InvalidFormat"
	TooShort          Code = "TooShort"
	TooLong           Code = "TooLong"
	InvalidCharacters Code = "InvalidCharacters"
	FutureYear        Code = "FutureYear"
	ImpossibleDate    Code = "ImpossibleDate"
	InvalidImageURL   Code = "InvalidImageUrl"
)

// Violation describes one broken constraint on one field.
type Violation struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

const (
	NicknameMinLen = 2
	NicknameMaxLen = 20
	PasswordMinLen = 6
	BioMaxLen      = 100
)

var (
	emailRe     = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	nicknameRe  = regexp.MustCompile(`^[가-힣a-zA-Z0-9_-]+$`)
	birthDateRe = regexp.MustCompile(`^(19|20)\d{2}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])$`)
	imageURLRe  = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)$`)
)

// Email validates shape only; lowercasing happens at the storage
// boundary, not here.
func Email(raw string) *Violation {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &Violation{Field: "email", Code: Required, Message: "email is required"}
	}
	if !emailRe.MatchString(raw) {
		return &Violation{Field: "email", Code: InvalidFormat, Message: "must be a valid email address"}
	}
	return nil
}

func Password(raw string) *Violation {
	if raw == "" {
		return &Violation{Field: "password", Code: Required, Message: "password is required"}
	}
	if utf8.RuneCountInString(raw) < PasswordMinLen {
		return &Violation{Field: "password", Code: TooShort, Message: fmt.Sprintf("must be at least %d characters long", PasswordMinLen)}
	}
	return nil
}

// Nickname allows Hangul syllables, ASCII letters, digits, underscore
// and hyphen, 2-20 characters after trimming.
func Nickname(raw string) *Violation {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &Violation{Field: "nickname", Code: Required, Message: "nickname is required"}
	}
	n := utf8.RuneCountInString(raw)
	if n < NicknameMinLen {
		return &Violation{Field: "nickname", Code: TooShort, Message: fmt.Sprintf("must be at least %d characters long", NicknameMinLen)}
	}
	if n > NicknameMaxLen {
		return &Violation{Field: "nickname", Code: TooLong, Message: fmt.Sprintf("must be at most %d characters long", NicknameMaxLen)}
	}
	if !nicknameRe.MatchString(raw) {
		return &Violation{Field: "nickname", Code: InvalidCharacters, Message: "may only contain Hangul, letters, digits, underscore and hyphen"}
	}
	return nil
}

// BirthDate expects exactly 8 digits (YYYYMMDD). The pattern check is
// loose about month lengths, so the value must also survive a calendar
// round-trip: Feb 30 normalizes to Mar 1 and is rejected.
func BirthDate(raw string, now time.Time) *Violation {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &Violation{Field: "birthDate", Code: Required, Message: "birthDate is required"}
	}
	if !birthDateRe.MatchString(raw) {
		return &Violation{Field: "birthDate", Code: InvalidFormat, Message: "must be 8 digits, e.g. 20030913"}
	}
	year, _ := strconv.Atoi(raw[:4])
	month, _ := strconv.Atoi(raw[4:6])
	day, _ := strconv.Atoi(raw[6:8])
	if year > now.Year() {
		return &Violation{Field: "birthDate", Code: FutureYear, Message: "birth year cannot be in the future"}
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return &Violation{Field: "birthDate", Code: ImpossibleDate, Message: "not a real calendar date"}
	}
	return nil
}

// ProfileImage accepts an empty value; otherwise the URL must be
// absolute http(s) and end in a recognized image extension.
func ProfileImage(raw string) *Violation {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if !imageURLRe.MatchString(raw) {
		return &Violation{Field: "profileImage", Code: InvalidImageURL, Message: "must be an http(s) URL ending in jpg, jpeg, png, gif or webp"}
	}
	return nil
}

func Bio(raw string) *Violation {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) > BioMaxLen {
		return &Violation{Field: "bio", Code: TooLong, Message: fmt.Sprintf("must be at most %d characters long", BioMaxLen)}
	}
	return nil
}

// Gender accepts the empty string (defaulted by the caller) or one of
// the three enumerated values.
func Gender(raw string) *Violation {
	switch raw {
	case "", "F", "M", "N":
		return nil
	}
	return &Violation{Field: "gender", Code: InvalidFormat, Message: "must be one of F, M, N"}
}
