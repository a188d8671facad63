// Package role defines the coarse authorization categories used across the
// dashboard and the static navigation tables derived from them.
package role

import "strings"

// Role identifies a coarse authorization category. Exactly one role is active
// per session.
type Role string

const (
	Admin      Role = "admin"
	Agent      Role = "agent"
	Operations Role = "operations"
	Support    Role = "support"
	Merchant   Role = "merchant"
)

// Default is the role assumed when a session reports none.
const Default = Admin

// Parse normalizes s into a Role. The boolean reports whether s named a known
// role; on failure the returned Role is Default.
func Parse(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case Admin:
		return Admin, true
	case Agent:
		return Agent, true
	case Operations:
		return Operations, true
	case Support:
		return Support, true
	case Merchant:
		return Merchant, true
	}
	return Default, false
}

// String implements fmt.Stringer.
func (r Role) String() string { return string(r) }

// RoutePrefix returns the route prefix a role's pages live under.
func RoutePrefix(r Role) string {
	switch r {
	case Agent:
		return "/agent"
	case Operations:
		return "/operations"
	case Support:
		return "/support"
	case Merchant:
		return "/merchant"
	default:
		return "/admin"
	}
}
