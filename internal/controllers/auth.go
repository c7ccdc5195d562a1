package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/services"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/service"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	navigator   *authz.Navigator
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	navigator *authz.Navigator,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		navigator:   navigator,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func sessionDTO(sess *session.Session) dto.UserSessionDTO {
	return dto.UserSessionDTO{
		ID:          sess.UserID,
		Name:        sess.Name,
		Email:       sess.Email,
		Role:        string(sess.Role),
		Permissions: sess.Permissions,
	}
}

func (ctrl *AuthController) setRefreshCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     "refreshToken",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (ctrl *AuthController) respondWithSession(c echo.Context, sess *session.Session, message string) error {
	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(sess.UserID)
	if err != nil {
		ctrl.logger.Error("no se pudieron generar los tokens", zap.Uint64("userID", sess.UserID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	ctrl.setRefreshCookie(c, refreshToken, ctrl.jwtSvc.GetRefreshTokenTTL())

	response := dto.AuthResponseDTO{
		User:         sessionDTO(sess),
		AccessToken:  accessToken,
		DefaultRoute: ctrl.navigator.ResolveDefaultRoute(sess),
	}
	return utils.SuccessResponse(c, response, message, http.StatusOK)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("formato de datos de inicio de sesión no válido"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	sess, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("inicio de sesión fallido", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	return ctrl.respondWithSession(c, sess, "Inicio de sesión exitoso")
}

func (ctrl *AuthController) Register(c echo.Context) error {
	var payload dto.RegisterDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("formato de datos de registro no válido"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	user, activationToken, err := ctrl.authService.Register(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	// Hasta que haya un mailer, el token de activación viaja en la respuesta.
	body := map[string]interface{}{"id": user.ID, "email": user.Email, "activationToken": activationToken}
	return utils.SuccessResponse(c, body, "Registro exitoso, revise su correo para activar la cuenta", http.StatusCreated)
}

func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie("refreshToken")
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	claims, err := ctrl.jwtSvc.ValidateToken(cookie.Value)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	if !claims.IsRefreshToken {
		return ctrl.errorResponse(c, apperrors.ErrTokenIsNotRefresh)
	}

	sess, err := ctrl.authService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return ctrl.respondWithSession(c, sess, "Tokens renovados")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	if userID, err := utils.GetUserIDFromCtx(c.Request().Context()); err == nil {
		ctrl.authService.Logout(c.Request().Context(), userID)
	}

	c.SetCookie(&http.Cookie{
		Name:     "refreshToken",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	return utils.SuccessResponse(c, nil, "Sesión cerrada", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	sess, err := ctrl.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	body := map[string]interface{}{
		"user":         sessionDTO(sess),
		"defaultRoute": ctrl.navigator.ResolveDefaultRoute(sess),
	}
	return utils.SuccessResponse(c, body, "Perfil obtenido", http.StatusOK)
}

func (ctrl *AuthController) ActivateAccount(c echo.Context) error {
	var payload dto.ActivateAccountDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("formato de datos no válido"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	if err := ctrl.authService.ActivateAccount(c.Request().Context(), payload); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, nil, "Cuenta activada, ya puede iniciar sesión", http.StatusOK)
}

func (ctrl *AuthController) RequestPasswordReset(c echo.Context) error {
	var payload dto.RequestPasswordResetDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("formato de datos no válido"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	// The message is identical whether or not the account exists. Until a
	// mailer is wired, the token itself travels in the response body when
	// the account does exist.
	body := map[string]interface{}{}
	token, err := ctrl.authService.RequestPasswordReset(c.Request().Context(), payload.Email)
	if err != nil {
		ctrl.logger.Error("error generando el token de restablecimiento", zap.Error(err))
	} else if token != "" {
		body["resetToken"] = token
	}
	return utils.SuccessResponse(c, body, "Si el correo existe, recibirá instrucciones para restablecer la contraseña", http.StatusOK)
}

func (ctrl *AuthController) ResetPassword(c echo.Context) error {
	var payload dto.ResetPasswordDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("formato de datos no válido"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	if err := ctrl.authService.ResetPassword(c.Request().Context(), payload); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, nil, "Contraseña actualizada", http.StatusOK)
}
