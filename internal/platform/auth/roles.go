package auth

import "fmt"

// Role is the capability a user carries. The set is closed: every user
// has exactly one role and anything outside the set is rejected at
// parse time.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
	RoleNurse   Role = "nurse"
)

var validRoles = map[Role]bool{
	RoleAdmin:   true,
	RoleDoctor:  true,
	RolePatient: true,
	RoleNurse:   true,
}

// ParseRole validates a raw role string against the closed role set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !validRoles[r] {
		return "", fmt.Errorf("invalid role: %q", s)
	}
	return r, nil
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return validRoles[r]
}

func (r Role) String() string {
	return string(r)
}
