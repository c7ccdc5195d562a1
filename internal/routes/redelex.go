package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/controllers"
	"github.com/JuanDPAffi/redelex-api/pkg/middleware"
)

// The proceso endpoints mirror the legacy Redelex API paths the front end
// already consumes.
func runRedelexRouter(secureGroup *echo.Group, procesoCtrl *controllers.ProcesoController, guardMW *middleware.GuardMiddleware) {
	redelexGroup := secureGroup.Group("/redelex")
	{
		redelexGroup.GET("/mis-procesos", procesoCtrl.MisProcesos,
			guardMW.RequirePermission(authz.ProcesosViewOwn))
		redelexGroup.GET("/procesos-por-identificacion/:identificacion", procesoCtrl.ProcesosPorIdentificacion,
			guardMW.RequirePermission(authz.ProcesosViewAll))
		redelexGroup.GET("/proceso/:id", procesoCtrl.Detalle,
			guardMW.RequirePermission(authz.ProcesosViewDetail, authz.ProcesosViewAll, authz.ProcesosViewOwn))
		redelexGroup.GET("/informe-inmobiliaria/:id", procesoCtrl.InformeInmobiliaria,
			guardMW.RequirePermission(authz.ReportsView))
	}
}
