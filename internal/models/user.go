package models

// User is a row of the users table.
type User struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	UserType     string `db:"user_type"`
	PasswordHash string `db:"password"`
}
