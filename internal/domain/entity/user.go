package entity

import (
	"time"
)

// Gender values accepted for a user profile. N means "not disclosed"
// and is the default when registration omits the field.
const (
	GenderFemale = "F"
	GenderMale   = "M"
	GenderNone   = "N"
)

// User is the aggregate root for the identity domain.
// PasswordHash holds a bcrypt hash and must never reach a response body;
// only the repository's credential lookup populates it.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nickname     string
	BirthDate    string // 8 digits, YYYYMMDD
	Gender       string
	ProfileImage string
	Bio          string
	IsAdmin      bool
	CreatedAt    time.Time
}
