package entities

import "github.com/aarondl/null/v8"

// Category is a node in the self-referential category tree. The schema does
// not forbid cycles; the seeder is the write path that does.
type Category struct {
	Code       string
	Name       string
	ParentCode null.String
}
