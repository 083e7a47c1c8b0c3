package model

import "fmt"

// Role is the portal user category. It decides which actions a doctor card offers.
type Role int

const (
	RoleAdmin Role = iota + 1
	RoleDoctor
	RolePatient
	RoleLoggedPatient
)

// String returns the wire name stored in sessions and used in backend paths.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleDoctor:
		return "doctor"
	case RolePatient:
		return "patient"
	case RoleLoggedPatient:
		return "loggedPatient"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// BackendUser is the user segment the backend expects in role-scoped paths.
// Logged in patients are plain patients to the backend.
func (r Role) BackendUser() string {
	if r == RoleLoggedPatient {
		return RolePatient.String()
	}
	return r.String()
}

// ParseRole maps a wire name to a Role. Unknown names are an error.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "doctor":
		return RoleDoctor, nil
	case "patient":
		return RolePatient, nil
	case "loggedPatient":
		return RoleLoggedPatient, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if r < RoleAdmin || r > RoleLoggedPatient {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
