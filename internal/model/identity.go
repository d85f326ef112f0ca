package model

// Role is the caller's access level, resolved by an external credential step.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity is the resolved caller context consumed by the filter pipeline.
// For RoleUser, only records whose manager name equals DisplayName are
// visible; the pipeline enforces this regardless of any filter selection.
type Identity struct {
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
}

// IsAdmin reports whether the identity bypasses the manager-scope restriction.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
