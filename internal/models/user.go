package models

import "time"

// User is a back-office operator account.
type User struct {
	Base         `bson:",inline"`
	Email        string     `bson:"email"                 json:"email"`
	Name         string     `bson:"name"                  json:"name"`
	PasswordHash string     `bson:"passwordHash"          json:"-"`
	Role         string     `bson:"role"                  json:"role"`
	LastLoginAt  *time.Time `bson:"lastLoginAt,omitempty" json:"last_login_at,omitempty"`
}

func (u *User) ApplyDefaults(now time.Time) {
	if u.Role == "" {
		u.Role = "admin"
	}
	u.Touch(now)
}

func (u *User) Validate() error {
	return firstErr(
		requireString("email", u.Email),
		requireString("passwordHash", u.PasswordHash),
	)
}
