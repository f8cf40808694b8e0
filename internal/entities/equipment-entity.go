package entities

import "github.com/aarondl/null/v8"

// Equipment is a rentable product type; physical units are EquipmentCopy
// rows.
type Equipment struct {
	ID           uint64
	Name         string
	Brand        string
	Model        string
	DailyRate    float64
	Deposit      float64
	Status       string
	CategoryCode null.String

	// CategoryName and BranchName are join projections filled by listing
	// queries, not columns of the equipment table.
	CategoryName string
	BranchName   string
}
