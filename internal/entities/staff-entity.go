package entities

import "github.com/aarondl/null/v8"

// Staff is an employee account. Role is one of the closed staff role set
// and drives the employee gate.
type Staff struct {
	ID           uint64
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	HireDate     null.String
	BranchCode   null.String
}
