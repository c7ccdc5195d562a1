package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

// GuardMiddleware enforces route-level access rules after Auth has resolved
// the session. Denials carry the route the client should land on instead,
// so the front end never has to guess where to send a rejected user.
type GuardMiddleware struct {
	navigator *authz.Navigator
	logger    *zap.Logger
}

func NewGuardMiddleware(navigator *authz.Navigator, logger *zap.Logger) *GuardMiddleware {
	return &GuardMiddleware{navigator: navigator, logger: logger}
}

func (m *GuardMiddleware) deny(c echo.Context, sess *session.Session) error {
	redirect := m.navigator.ResolveDefaultRoute(sess)
	m.logger.Warn("acceso denegado",
		zap.Uint64("userID", sess.UserID),
		zap.String("rol", string(sess.Role)),
		zap.String("uri", c.Request().RequestURI),
		zap.String("redirectTo", redirect))
	return c.JSON(http.StatusForbidden, &utils.HttpResponse{
		Status:  false,
		Body:    map[string]string{"redirectTo": redirect},
		Message: apperrors.Message(apperrors.ErrForbidden),
	})
}

// RequirePermission passes holders of any of the given permissions.
func (m *GuardMiddleware) RequirePermission(permissions ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.FromContext(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}
			if !authz.HasAnyPermission(sess, permissions) {
				return m.deny(c, sess)
			}
			return next(c)
		}
	}
}

// RequireRole passes members of any of the given roles.
func (m *GuardMiddleware) RequireRole(roles ...session.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.FromContext(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}
			if !authz.HasRole(sess, roles...) {
				return m.deny(c, sess)
			}
			return next(c)
		}
	}
}
