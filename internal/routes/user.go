package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/controllers"
	"github.com/JuanDPAffi/redelex-api/pkg/middleware"
)

func runUserRouter(secureGroup *echo.Group, userCtrl *controllers.UserController, guardMW *middleware.GuardMiddleware) {
	view := guardMW.RequirePermission(authz.UsersView, authz.UsersManage)
	manage := guardMW.RequirePermission(authz.UsersManage)

	secureGroup.GET("/users", userCtrl.GetUsers, view)
	secureGroup.GET("/users/:id", userCtrl.FindUser, view)
	secureGroup.POST("/users", userCtrl.CreateUser, manage)
	secureGroup.PUT("/users/:id", userCtrl.UpdateUser, manage)
	secureGroup.PATCH("/users/:id/status", userCtrl.ToggleStatus, manage)
	secureGroup.PATCH("/users/:id/role", userCtrl.ChangeRole, manage)
	secureGroup.PUT("/users/:id/permissions", userCtrl.UpdatePermissions, manage)
}
