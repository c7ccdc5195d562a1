package authz

import (
	"github.com/JuanDPAffi/redelex-api/internal/session"
)

// The evaluator is the single place where the admin override lives. Guards,
// the menu filter and the service layer all go through these three
// functions; earlier revisions of the system scattered the admin check and
// produced redirect loops when the variants disagreed.

// HasPermission reports whether the session satisfies a capability token.
// A nil session never satisfies anything.
func HasPermission(s *session.Session, token string) bool {
	if s == nil {
		return false
	}
	if s.Role == session.RoleAdmin {
		return true
	}
	for _, p := range s.Permissions {
		if p == token {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the session satisfies at least one of
// the tokens. An empty list is a vacuous grant for any authenticated
// session; authentication still precedes authorization, so a nil session
// fails even with an empty list.
func HasAnyPermission(s *session.Session, tokens []string) bool {
	if s == nil {
		return false
	}
	if len(tokens) == 0 {
		return true
	}
	if s.Role == session.RoleAdmin {
		return true
	}
	for _, t := range tokens {
		for _, p := range s.Permissions {
			if p == t {
				return true
			}
		}
	}
	return false
}

// HasRole reports whether the session's role is in the allowed set. Admin
// passes even when not listed.
func HasRole(s *session.Session, allowed ...session.Role) bool {
	if s == nil {
		return false
	}
	if s.Role == session.RoleAdmin {
		return true
	}
	for _, r := range allowed {
		if s.Role == r {
			return true
		}
	}
	return false
}
