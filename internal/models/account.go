package models

import "fmt"

// Account is a seed record. Secret holds the plaintext password and is only
// used to derive a hash; it is never stored.
type Account struct {
	Identifier  string `json:"id"`
	DisplayName string `json:"name"`
	Role        string `json:"role"`
	Secret      string `json:"password"`
}

// User builds the persisted row for the account using the given password hash.
func (a Account) User(passwordHash string) *User {
	return &User{
		ID:           a.Identifier,
		Name:         a.DisplayName,
		UserType:     a.Role,
		PasswordHash: passwordHash,
	}
}

// String omits the secret so accounts are safe to log.
func (a Account) String() string {
	return fmt.Sprintf("%s %s (%s)", a.Identifier, a.DisplayName, a.Role)
}
