package authz

import (
	"github.com/JuanDPAffi/redelex-api/internal/session"
)

// Decision is the outcome of a guard. A denial always carries a concrete
// navigation target; blocking without redirecting would strand the user on
// a route they cannot see.
type Decision struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func RedirectTo(path string) Decision {
	return Decision{RedirectTo: path}
}

// Guard decides whether a session may enter a route. Guards never return
// errors and never panic; lack of entitlement is resolved to a redirect.
type Guard func(s *session.Session) Decision

// AuthGuard admits any authenticated session.
func (n *Navigator) AuthGuard() Guard {
	return func(s *session.Session) Decision {
		if s == nil {
			return RedirectTo(n.login)
		}
		return Allow()
	}
}

// RoleGuard admits sessions whose role is in the allowed set. Denied
// sessions are sent to their own default route, never back into the area
// that rejected them.
func (n *Navigator) RoleGuard(allowed ...session.Role) Guard {
	return func(s *session.Session) Decision {
		if s == nil {
			return RedirectTo(n.login)
		}
		if HasRole(s, allowed...) {
			return Allow()
		}
		return RedirectTo(n.ResolveDefaultRoute(s))
	}
}

// PermissionGuard admits sessions holding the required capability.
func (n *Navigator) PermissionGuard(required string) Guard {
	return func(s *session.Session) Decision {
		if s == nil {
			return RedirectTo(n.login)
		}
		if HasPermission(s, required) {
			return Allow()
		}
		return RedirectTo(n.ResolveDefaultRoute(s))
	}
}

// LandingGuard turns a bare parent path into the first screen the session
// is entitled to see. It never allows; it always redirects, including to
// login for unauthenticated visitors.
func (n *Navigator) LandingGuard() Guard {
	return func(s *session.Session) Decision {
		return RedirectTo(n.ResolveDefaultRoute(s))
	}
}
