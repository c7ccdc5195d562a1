package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/controllers"
	"github.com/JuanDPAffi/redelex-api/pkg/middleware"
)

func runInmobiliariaRouter(secureGroup *echo.Group, inmoCtrl *controllers.InmobiliariaController, guardMW *middleware.GuardMiddleware) {
	view := guardMW.RequirePermission(authz.InmoView, authz.InmoManage)
	manage := guardMW.RequirePermission(authz.InmoManage)

	inmoGroup := secureGroup.Group("/inmobiliarias")
	{
		inmoGroup.GET("", inmoCtrl.GetInmobiliarias, view)
		inmoGroup.GET("/export", inmoCtrl.Export, view)
		inmoGroup.GET("/:id", inmoCtrl.FindInmobiliaria, view)
		inmoGroup.POST("", inmoCtrl.CreateInmobiliaria, manage)
		inmoGroup.POST("/import", inmoCtrl.Import, manage)
		inmoGroup.PUT("/:id", inmoCtrl.UpdateInmobiliaria, manage)
		inmoGroup.DELETE("/:id", inmoCtrl.DeleteInmobiliaria, manage)
	}
}
