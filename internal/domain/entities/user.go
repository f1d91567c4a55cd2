package entities

// UserRole defines user roles. The role gates what this service shapes
// for display; real access enforcement lives in the upstream backend.
type UserRole string

const (
	// RoleOperator sees full meeting records including transcript and analysis
	RoleOperator UserRole = "operator"
	// RoleBasic sees meeting metadata only
	RoleBasic UserRole = "basic"
)

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleOperator, RoleBasic:
		return true
	}
	return false
}

// User represents an account known to this service
type User struct {
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
