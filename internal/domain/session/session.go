// Package session models the externally owned session that access guards read.
package session

// Role is the privilege level carried by an authenticated user.
type Role string

// Role constants ordered by privilege.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var roleLevel = map[Role]int{
	RoleUser:  1,
	RoleAdmin: 2,
}

// Satisfies reports whether r grants at least the required role.
// Unknown roles satisfy nothing.
func (r Role) Satisfies(required Role) bool {
	have, ok := roleLevel[r]
	if !ok {
		return false
	}
	need, ok := roleLevel[required]
	if !ok {
		return false
	}
	return have >= need
}

// User is the authenticated principal reported by the session provider.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// State is a snapshot of the session context: the current user (nil when
// absent) and whether the provider is still resolving it.
type State struct {
	User    *User
	Loading bool
}

// Resolving returns a state whose user is not yet known.
func Resolving() State { return State{Loading: true} }

// Anonymous returns a resolved state with no user.
func Anonymous() State { return State{} }

// Authenticated returns a resolved state for u.
func Authenticated(u User) State { return State{User: &u} }
