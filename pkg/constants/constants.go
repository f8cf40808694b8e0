package constants

//============== ROLES ==============

// RoleCustomer is the session role for a logged-in customer. Staff roles
// carry the role column value from the staff table.
const RoleCustomer = "customer"

// StaffRoles is the closed set of employee roles. Any of them passes the
// employee gate.
var StaffRoles = []string{RoleClerk, RoleManager, RoleTech}

const (
	RoleClerk   = "Clerk"
	RoleManager = "Manager"
	RoleTech    = "Tech"
)

// IsStaffRole reports whether role belongs to the employee role set.
func IsStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

//============== CUSTOMER STATUSES ==============

const (
	CustomerStatusActive   = "Active"
	CustomerStatusInactive = "Inactive"
)

//============== EQUIPMENT STATUSES ==============

const (
	EquipmentStatusActive      = "Active"
	EquipmentStatusMaintenance = "Maintenance"
)

//============== RESERVATION STATUSES ==============

const ReservationStatusPending = "Pending"

//============== SESSION ==============

const (
	// SessionCookieName is the only client-side state the web service keeps.
	SessionCookieName = "rental_session"

	// CacheKeySession is the store key prefix. Format: session:<token>.
	CacheKeySession = "session:%s"
)
