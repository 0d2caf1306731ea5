package authz

import "strings"

// Role is the closed set of account roles. Every authenticated user carries
// exactly one.
type Role string

const (
	RoleBoard    Role = "BOARD"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
	RoleGuest    Role = "GUEST"
)

var allRoles = []Role{RoleBoard, RoleHR, RoleManager, RoleEmployee, RoleGuest}

func ParseRole(raw string) (Role, bool) {
	candidate := Role(strings.ToUpper(strings.TrimSpace(raw)))
	for _, role := range allRoles {
		if role == candidate {
			return role, true
		}
	}
	return "", false
}

func (r Role) Valid() bool {
	for _, role := range allRoles {
		if role == r {
			return true
		}
	}
	return false
}

// Staff reports whether the role belongs to an account that can be linked to
// an employee record. Guests never are.
func (r Role) Staff() bool {
	return r.Valid() && r != RoleGuest
}

// Principal is the authenticated actor for one request. EmployeeID is the
// linked employee record when the account belongs to staff; it is empty for
// guest accounts and for staff accounts that were never linked.
type Principal struct {
	UserID     string
	Role       Role
	EmployeeID string
}

func (p Principal) HasEmployeeLink() bool {
	return p.EmployeeID != ""
}

// ActorID is the identity recorded on approvals and audit entries: the
// employee link when present, otherwise the raw user id.
func (p Principal) ActorID() string {
	if p.EmployeeID != "" {
		return p.EmployeeID
	}
	return p.UserID
}
