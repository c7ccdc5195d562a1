package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/authz"
	"github.com/JuanDPAffi/redelex-api/internal/navigation"
	"github.com/JuanDPAffi/redelex-api/internal/repositories"
	"github.com/JuanDPAffi/redelex-api/internal/routes"
	"github.com/JuanDPAffi/redelex-api/internal/services"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	"github.com/JuanDPAffi/redelex-api/pkg/config"
	"github.com/JuanDPAffi/redelex-api/pkg/database/postgresql"
	apperrors "github.com/JuanDPAffi/redelex-api/pkg/errors"
	applogger "github.com/JuanDPAffi/redelex-api/pkg/logger"
	"github.com/JuanDPAffi/redelex-api/pkg/service"
	"github.com/JuanDPAffi/redelex-api/pkg/utils"
	"github.com/JuanDPAffi/redelex-api/seeders"
)

func main() {
	e := echo.New()
	e.HideBanner = true
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("pánico recuperado",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Error interno del servidor", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	e.Validator = utils.NewValidator(validator.New())

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()
	if err := postgresql.Migrate(dbConn, "migrations"); err != nil {
		logger.Fatal("no se pudieron aplicar las migraciones", zap.Error(err))
	}
	if err := seeders.Run(context.Background(), dbConn, logger); err != nil {
		logger.Fatal("no se pudieron aplicar los seeds", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("no se pudo conectar a Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	sessionStore := session.NewStore(cacheRepo, services.NewProfileSource(userRepo), cfg.Auth.SessionTTL, logger)

	navigator := authz.NewNavigator(nil)
	navService := navigation.NewService(navigator, logger)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, sessionStore, navService, cfg, logger)

	logger.Info("servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("el servidor se detuvo", zap.Error(err))
	}
}
