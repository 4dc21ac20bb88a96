package domain

// Role identifiers form a fixed, process-wide enumeration; they are not
// persisted per request.
const (
	RoleSuperAdmin = 1
	RoleAdmin      = 2
	RoleDoctor     = 3
	RolePatient    = 4
	RoleGuest      = 5
)

// Role pairs a role identifier with its display name.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var roles = map[int]Role{
	RoleSuperAdmin: {ID: RoleSuperAdmin, Name: "SUPER_ADMIN"},
	RoleAdmin:      {ID: RoleAdmin, Name: "ADMIN"},
	RoleDoctor:     {ID: RoleDoctor, Name: "DOCTOR"},
	RolePatient:    {ID: RolePatient, Name: "PATIENT"},
	RoleGuest:      {ID: RoleGuest, Name: "GUEST"},
}

// RoleByID looks up a role in the fixed enumeration.
func RoleByID(id int) (Role, bool) {
	r, ok := roles[id]
	return r, ok
}

// RoleAssignment links a user to exactly one role.
// Invariant: UserID equals the id of the user it was resolved for.
type RoleAssignment struct {
	UserID string `json:"user_id"`
	RoleID int    `json:"role_id"`
}
