package models

import "time"

// User is an account of the brand coach. Every field, session and message
// row is scoped to exactly one user.
type User struct {
	// UserID is the internal identifier. Never serialized; clients learn
	// it only through the token subject.
	UserID int64 `json:"-"`

	// Login is unique across accounts.
	Login string `json:"login"`

	// Name is a display name and may be empty.
	Name string `json:"name,omitempty"`

	// Password is the plaintext password of a register or login request.
	// It is cleared as soon as it was hashed or compared.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash kept by the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table backing [User].
func (u User) TableName() string {
	return "users"
}
