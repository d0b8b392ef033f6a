package models

// User represents a user of the application.
// Roles is stored as a TEXT[] column.
type User struct {
	UserID       string   `db:"user_id"`
	Name         string   `db:"name"`
	Phone        *string  `db:"phone"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Roles        []string `db:"roles"`
	Timestamps
}
