package users

import "time"

// User is a registered account. PasswordHash is empty for accounts created
// through an OAuth provider.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
