package entity

import "time"

// ProfileView is the subset of a User that is safe for external
// exposure. There is deliberately no password field, so no
// serialization path can leak the hash.
type ProfileView struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Nickname        string    `json:"nickname"`
	BirthDate       string    `json:"birthDate"`
	Age             *int      `json:"age"`
	BirthYear       *int      `json:"birthYear"`
	DaysSinceJoined int       `json:"daysSinceJoined"`
	Gender          string    `json:"gender"`
	ProfileImage    string    `json:"profileImage,omitempty"`
	Bio             string    `json:"bio"`
	IsAdmin         bool      `json:"isAdmin"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewProfileView assembles the public view of u, computing the derived
// attributes against now.
func NewProfileView(u *User, now time.Time) ProfileView {
	v := ProfileView{
		ID:              u.ID,
		Email:           u.Email,
		Nickname:        u.Nickname,
		BirthDate:       u.BirthDate,
		DaysSinceJoined: DaysSinceJoined(u.CreatedAt, now),
		Gender:          u.Gender,
		ProfileImage:    u.ProfileImage,
		Bio:             u.Bio,
		IsAdmin:         u.IsAdmin,
		CreatedAt:       u.CreatedAt,
	}
	if age, ok := Age(u.BirthDate, now); ok {
		v.Age = &age
	}
	if year, ok := BirthYear(u.BirthDate); ok {
		v.BirthYear = &year
	}
	return v
}
