package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/session"
	"github.com/JuanDPAffi/redelex-api/pkg/contextkeys"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/service"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

type AuthMiddleware struct {
	jwtService   service.JWTService
	sessionStore *session.Store
	logger       *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, sessionStore *session.Store, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtSvc,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Auth validates the bearer token and resolves the caller's session. A
// valid token whose session was cleared (logout, deactivation) is rejected:
// the token alone is not enough.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("token rechazado", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		sess := m.sessionStore.Get(c.Request().Context(), claims.UserID)
		if sess == nil {
			m.logger.Warn("token válido sin sesión activa", zap.Uint64("userID", claims.UserID))
			return utils.ErrorResponse(c, apperrors.ErrSessionNotFound, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.SessionKey, sess)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
