package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/JuanDPAffi/redelex-api/internal/controllers"
)

// Navigation endpoints need a session but no further gating: each answer is
// computed from the caller's own permissions.
func runNavigationRouter(secureGroup *echo.Group, navCtrl *controllers.NavigationController) {
	secureGroup.GET("/menu", navCtrl.Menu)

	navGroup := secureGroup.Group("/navigation")
	{
		navGroup.POST("/authorize", navCtrl.Authorize)
		navGroup.GET("/default", navCtrl.DefaultRoute)
	}
}
