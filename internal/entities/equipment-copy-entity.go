package entities

import "github.com/aarondl/null/v8"

// EquipmentCopy is one physical, serialized unit of an Equipment type held
// at a branch.
type EquipmentCopy struct {
	EquipCode    string
	EquipID      uint64
	CopyNo       int
	BranchCode   string
	Condition    null.String
	PurchaseDate null.String
	SerialNumber string
}
