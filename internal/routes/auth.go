package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/JuanDPAffi/redelex-api/internal/controllers"
	"github.com/JuanDPAffi/redelex-api/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/refresh_token", authCtrl.RefreshToken)
		authGroup.POST("/activate", authCtrl.ActivateAccount)
		authGroup.POST("/request_password_reset", authCtrl.RequestPasswordReset)
		authGroup.POST("/reset_password", authCtrl.ResetPassword)
		authGroup.POST("/logout", authCtrl.Logout, authMW.Auth)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
