package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pechomax/pechomax-api/internal/api/handler"
	"github.com/pechomax/pechomax-api/internal/api/middleware"
	"github.com/pechomax/pechomax-api/internal/core/domain"
	"github.com/pechomax/pechomax-api/internal/core/service"
	"github.com/pechomax/pechomax-api/internal/core/token"
	"github.com/pechomax/pechomax-api/internal/infrastructure/db/postgres"
	"github.com/pechomax/pechomax-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the knobs the HTTP layer needs beyond its backing
// connections.
type RouterConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
	PageSize      int
	SecureCookie  bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pechomax"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.SessionSecret, cfg.SessionTTL)

	userRepo := postgres.NewUserRepository(pool)
	levelRepo := postgres.NewLevelRepository(pool)
	catchRepo := postgres.NewCatchRepository(pool)
	speciesRepo := postgres.NewSpeciesRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	ranking := redis.NewRankingCache(rdb)

	authService := service.NewAuthService(userRepo, codec, log)
	progression := service.NewProgressionService(userRepo, levelRepo, log)
	catchService := service.NewCatchService(catchRepo, speciesRepo, progression, txRunner, ranking, log)
	levelService := service.NewLevelService(levelRepo, log)
	speciesService := service.NewSpeciesService(speciesRepo, log)
	userService := service.NewUserService(userRepo, codec, log)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.SecureCookie)
	catchHandler := handler.NewCatchHandler(catchService, cfg.PageSize)
	levelHandler := handler.NewLevelHandler(levelService, cfg.PageSize)
	speciesHandler := handler.NewSpeciesHandler(speciesService, cfg.PageSize)
	userHandler := handler.NewUserHandler(userService, cfg.SessionTTL, cfg.SecureCookie)
	leaderboardHandler := handler.NewLeaderboardHandler(ranking)

	session := middleware.Session(codec)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleUser)

	// --- Auth routes ---
	e.POST("/auth/init", authHandler.Init)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/login", authHandler.Whoami, session, anyRole)
	e.GET("/auth/logout", authHandler.Logout, session, anyRole)

	// --- Catches ---
	e.GET("/catches", catchHandler.List)
	e.GET("/catches/self", catchHandler.ListSelf, session, anyRole)
	e.GET("/catches/:id", catchHandler.Get)
	e.POST("/catches", catchHandler.Create, session, anyRole)
	e.PUT("/catches/:id", catchHandler.Update, session, anyRole)
	e.DELETE("/catches/:id", catchHandler.Delete, session, anyRole)

	// --- Levels (admin-only, including reads) ---
	e.GET("/levels", levelHandler.List, session, adminOnly)
	e.GET("/levels/:id", levelHandler.Get, session, adminOnly)
	e.POST("/levels", levelHandler.Create, session, adminOnly)
	e.PUT("/levels/:id", levelHandler.Update, session, adminOnly)
	e.DELETE("/levels/:id", levelHandler.Delete, session, adminOnly)

	// --- Species (public reads, admin mutations) ---
	e.GET("/species", speciesHandler.List)
	e.GET("/species/:id", speciesHandler.Get)
	e.POST("/species", speciesHandler.Create, session, adminOnly)
	e.PUT("/species/:id", speciesHandler.Update, session, adminOnly)
	e.DELETE("/species/:id", speciesHandler.Delete, session, adminOnly)

	// --- Profile ---
	e.GET("/users/self", userHandler.GetSelf, session, anyRole)
	e.PUT("/users/self", userHandler.UpdateSelf, session, anyRole)

	// --- Leaderboard ---
	e.GET("/leaderboard", leaderboardHandler.Top)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
