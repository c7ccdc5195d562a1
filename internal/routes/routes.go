package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JuanDPAffi/redelex-api/internal/controllers"
	"github.com/JuanDPAffi/redelex-api/internal/navigation"
	"github.com/JuanDPAffi/redelex-api/internal/repositories"
	"github.com/JuanDPAffi/redelex-api/internal/services"
	"github.com/JuanDPAffi/redelex-api/internal/session"
	"github.com/JuanDPAffi/redelex-api/pkg/config"
	"github.com/JuanDPAffi/redelex-api/pkg/middleware"
	"github.com/JuanDPAffi/redelex-api/pkg/service"
)

// InitRouter builds the dependency graph and mounts every endpoint under
// /api. Repositories, then services, then controllers, then routers.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	sessionStore *session.Store,
	navService *navigation.Service,
	cfg *config.Config,
	logger *zap.Logger,
) {
	api := e.Group("/api")

	authMW := middleware.NewAuthMiddleware(jwtSvc, sessionStore, logger)
	guardMW := middleware.NewGuardMiddleware(navService.Navigator(), logger)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	inmoRepo := repositories.NewInmobiliariaRepository(dbConn, logger)
	procesoRepo := repositories.NewProcesoRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, cacheRepo, sessionStore, cfg.Auth, logger)
	userService := services.NewUserService(userRepo, sessionStore, logger)
	inmoService := services.NewInmobiliariaService(inmoRepo, logger)
	inmoImporter := services.NewInmobiliariaImporter(inmoRepo, logger)
	procesoService := services.NewProcesoService(procesoRepo, logger)
	reportService := services.NewReportService(procesoRepo, logger)

	authCtrl := controllers.NewAuthController(authService, jwtSvc, navService.Navigator(), logger)
	userCtrl := controllers.NewUserController(userService, logger)
	inmoCtrl := controllers.NewInmobiliariaController(inmoService, inmoImporter, logger)
	procesoCtrl := controllers.NewProcesoController(procesoService, reportService, logger)
	navCtrl := controllers.NewNavigationController(navService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authCtrl, authMW)
	runNavigationRouter(secureGroup, navCtrl)
	runUserRouter(secureGroup, userCtrl, guardMW)
	runInmobiliariaRouter(secureGroup, inmoCtrl, guardMW)
	runRedelexRouter(secureGroup, procesoCtrl, guardMW)
}
