package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/dto"
	"github.com/JuanDPAffi/redelex-api/internal/navigation"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
)

// NavigationController exposes the routing decisions to the front end: the
// menu it should render, whether a path is reachable, and where a fresh
// session lands.
type NavigationController struct {
	navService *navigation.Service
	logger     *zap.Logger
}

func NewNavigationController(navService *navigation.Service, logger *zap.Logger) *NavigationController {
	return &NavigationController{navService: navService, logger: logger}
}

func (ctrl *NavigationController) Menu(c echo.Context) error {
	sess, err := session.FromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	menu := ctrl.navService.Menu(sess)
	return utils.SuccessResponse(c, menu, "Menú generado", http.StatusOK)
}

func (ctrl *NavigationController) Authorize(c echo.Context) error {
	sess, err := session.FromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.AuthorizePathDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("formato de datos no válido"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	decision := ctrl.navService.Authorize(sess, payload.Path)
	body := dto.NavigationDecisionDTO{
		Allowed:    decision.Allowed,
		RedirectTo: decision.RedirectTo,
	}
	return utils.SuccessResponse(c, body, "Decisión de navegación", http.StatusOK)
}

func (ctrl *NavigationController) DefaultRoute(c echo.Context) error {
	sess, err := session.FromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	body := map[string]string{"defaultRoute": ctrl.navService.DefaultRoute(sess)}
	return utils.SuccessResponse(c, body, "Ruta por defecto", http.StatusOK)
}
