package models

import "time"

// Account roles. The very first account ever registered becomes an admin;
// everyone after that is a regular user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is the stored form of a registered user. PasswordHash is a bcrypt
// hash and is never serialized to JSON.
type Account struct {
	ID            string    `bson:"id" json:"id"`
	Username      string    `bson:"username" json:"username"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	Role          string    `bson:"role" json:"role"`
	Notifications []string  `bson:"notifications" json:"notifications"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SessionProfile is the public projection of an Account kept in the session
// store and returned to clients. It carries everything the UI needs and
// excludes the credential hash.
type SessionProfile struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Role          string   `json:"role"`
	Notifications []string `json:"notifications"`
}

// Profile builds the public projection of the account.
func (a Account) Profile() SessionProfile {
	return SessionProfile{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		Role:          a.Role,
		Notifications: a.Notifications,
	}
}

// IsAdmin reports whether the account may use the admin panel.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
