package navigation

import (
	"strings"

	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/session"
)

// Service evaluates the declarative route table and menu for a session.
// The shell asks it where a navigation attempt should land instead of
// duplicating guard logic client-side.
type Service struct {
	nav    *authz.Navigator
	routes []Route
	menu   []authz.MenuSection
	logger *zap.Logger
}

func NewService(nav *authz.Navigator, logger *zap.Logger) *Service {
	return &Service{
		nav:    nav,
		routes: Routes(nav),
		menu:   MenuSections(),
		logger: logger,
	}
}

func (s *Service) Navigator() *authz.Navigator { return s.nav }

// match finds the route covering a path: exact first, then the longest
// prefix route.
func (s *Service) match(path string) (Route, bool) {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}

	var best Route
	var found bool
	for _, r := range s.routes {
		if r.Path == path {
			return r, true
		}
		if r.Prefix && strings.HasPrefix(path, r.Path+"/") {
			if !found || len(r.Path) > len(best.Path) {
				best = r
				found = true
			}
		}
	}
	return best, found
}

// Authorize runs the guard chain for a navigation attempt. Unknown paths
// fall through to the login route, mirroring the shell's catch-all. A
// denial is logged and always carries the session's own default route, so
// re-evaluating the target can never produce a second denial.
func (s *Service) Authorize(sess *session.Session, path string) authz.Decision {
	route, ok := s.match(path)
	if !ok {
		return authz.RedirectTo(s.nav.LoginPath())
	}

	for _, guard := range route.Guards {
		if d := guard(sess); !d.Allowed {
			s.logger.Info("navegación denegada",
				zap.String("path", path),
				zap.String("redirectTo", d.RedirectTo),
			)
			return d
		}
	}
	return authz.Allow()
}

// DefaultRoute exposes the resolver for post-login navigation.
func (s *Service) DefaultRoute(sess *session.Session) string {
	return s.nav.ResolveDefaultRoute(sess)
}

// Menu returns the visible sidebar for a session.
func (s *Service) Menu(sess *session.Session) []authz.MenuSection {
	return authz.FilterMenu(s.menu, sess)
}
