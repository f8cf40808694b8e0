package entities

// Reservation is a customer request for an equipment type over a date
// range. It is type-level: no copy is assigned at request time.
type Reservation struct {
	ID         uint64
	CustomerID uint64
	EquipID    uint64
	Status     string
	StartDate  string
	EndDate    string
}
