package entities

import "github.com/aarondl/null/v8"

// Customer is a self-service account. PasswordHash holds a bcrypt hash,
// never the plaintext.
type Customer struct {
	ID           uint64
	FullName     string
	Email        string
	PasswordHash string
	Phone        null.String
	Status       string
}
