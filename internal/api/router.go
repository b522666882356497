package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tenantive/accounts-api/internal/api/handler"
	"github.com/tenantive/accounts-api/internal/api/middleware"
	"github.com/tenantive/accounts-api/internal/core/ports"
	"github.com/tenantive/accounts-api/internal/core/rbac"
	"github.com/tenantive/accounts-api/internal/core/service"
	"github.com/tenantive/accounts-api/internal/infrastructure/config"
	mongodb "github.com/tenantive/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tenantive/accounts-api/internal/infrastructure/db/redis"
	"github.com/tenantive/accounts-api/internal/pkg/token"
	"github.com/tenantive/accounts-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login throttling is then disabled.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get(), cfg.Development())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.AppName)

	userRepo := mongodb.NewUserRepository(db)
	tokenRepo := mongodb.NewTokenRepository(db)
	orgRepo := mongodb.NewOrganizationRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	itemRepo := mongodb.NewItemRepository(db)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	tokenService := service.NewTokenService(codec, tokenRepo, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	authService := service.NewAuthService(userRepo, tokenService, throttle, logger.Get())
	userService := service.NewUserService(userRepo, logger.Get())
	orgService := service.NewOrganizationService(orgRepo)
	productService := service.NewProductService(productRepo, orgRepo)
	itemService := service.NewItemService(itemRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	productHandler := handler.NewProductHandler(productService)
	itemHandler := handler.NewItemHandler(itemService)

	guard := func(required ...rbac.Permission) echo.MiddlewareFunc {
		return middleware.Guard(codec, userRepo, required...)
	}

	g := e.Group("/api")

	// --- Auth routes ---
	g.POST("/auth/login", authHandler.Login)
	g.POST("/auth/refresh-tokens", authHandler.RefreshTokens, guard())

	// --- User routes ---
	g.POST("/users", userHandler.Create, guard(rbac.ManageUsers))
	g.GET("/users", userHandler.Fetch, guard(rbac.GetUsers, rbac.ManageUsers))
	g.GET("/me", userHandler.Me, guard(rbac.GetMe))
	g.GET("/users/:id", userHandler.Show, guard(rbac.GetUsers))
	g.PUT("/users/:id", userHandler.Update, guard(rbac.ManageUsers, rbac.UpdateMe))
	g.DELETE("/users/:id", userHandler.Remove, guard(rbac.ManageUsers, rbac.DeleteMe))

	// --- Organization routes ---
	g.POST("/organizations", orgHandler.Create, guard(rbac.ManageOrgs))
	g.GET("/organizations", orgHandler.Fetch, guard(rbac.GetOrgs))
	g.GET("/organizations/:id", orgHandler.Show, guard(rbac.GetOrgs))
	g.PUT("/organizations/:id", orgHandler.Update, guard(rbac.ManageOrgs))
	g.DELETE("/organizations/:id", orgHandler.Remove, guard(rbac.ManageOrgs))

	// --- Product routes ---
	g.POST("/products", productHandler.Create, guard(rbac.ManageProducts))
	g.GET("/products", productHandler.Fetch, guard(rbac.GetProducts))
	g.GET("/products/:id", productHandler.Show, guard(rbac.GetProducts))
	g.PUT("/products/:id", productHandler.Update, guard(rbac.ManageProducts))
	g.DELETE("/products/:id", productHandler.Remove, guard(rbac.ManageProducts))

	// --- Item routes ---
	g.POST("/items", itemHandler.Create, guard(rbac.ManageItems))
	g.GET("/items", itemHandler.Fetch, guard(rbac.GetItems))
	g.GET("/items/:id", itemHandler.Show, guard(rbac.GetItems))
	g.PUT("/items/:id", itemHandler.Update, guard(rbac.ManageItems))
	g.DELETE("/items/:id", itemHandler.Remove, guard(rbac.ManageItems))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
