// Package authz decides whether a session may reach a navigation target.
// Decisions are pure functions of the session snapshot passed in; nothing
// is cached, so every navigation attempt is evaluated against the state as
// it stands right then.
package authz

import (
	"github.com/kimloan/loanctl/internal/session"
	"github.com/kimloan/loanctl/kimloan"
)

// Decision is the outcome of an access check.
type Decision int

const (
	// DenyUnauthenticated means no session is established; the caller
	// should be sent to login.
	DenyUnauthenticated Decision = iota

	// DenyForbidden means the session is authenticated but the user's
	// role does not satisfy the requirement.
	DenyForbidden

	// Allow grants access.
	Allow
)

// String implements fmt.Stringer for log output.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyForbidden:
		return "forbidden"
	default:
		return "unauthenticated"
	}
}

// CanAccess checks a single role requirement. An empty required role admits
// any authenticated session.
func CanAccess(snap session.Snapshot, required kimloan.Role) Decision {
	if !snap.IsAuthenticated || snap.User == nil {
		return DenyUnauthenticated
	}

	if required == "" || snap.User.Role == required {
		return Allow
	}

	return DenyForbidden
}

// CanAccessAny allows a session whose role matches any of the given roles.
// With no roles it behaves like CanAccess with an empty requirement.
func CanAccessAny(snap session.Snapshot, roles ...kimloan.Role) Decision {
	if !snap.IsAuthenticated || snap.User == nil {
		return DenyUnauthenticated
	}

	if len(roles) == 0 {
		return Allow
	}

	for _, role := range roles {
		if snap.User.Role == role {
			return Allow
		}
	}

	return DenyForbidden
}

// HasPermission reports whether the user's role grants the named
// permission, per the backend's default role-permission table.
func HasPermission(user *kimloan.User, permission string) bool {
	if user == nil {
		return false
	}

	perms, ok := rolePermissions[user.Role]
	if !ok {
		return false
	}

	_, granted := perms[permission]

	return granted
}

// Require checks a permission against a session snapshot, folding the
// authenticated-but-forbidden and unauthenticated cases into Decisions.
func Require(snap session.Snapshot, permission string) Decision {
	if !snap.IsAuthenticated || snap.User == nil {
		return DenyUnauthenticated
	}

	if permission == "" || HasPermission(snap.User, permission) {
		return Allow
	}

	return DenyForbidden
}
