package bootstrap

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/emre/advisehub/docs" // Import generated swagger docs
	appControllers "github.com/emre/advisehub/internal/app/controllers"
	appMigrations "github.com/emre/advisehub/internal/app/migrations"
	appRepos "github.com/emre/advisehub/internal/app/repositories"
	appRoutes "github.com/emre/advisehub/internal/app/routes"
	appServices "github.com/emre/advisehub/internal/app/services"
	"github.com/emre/advisehub/internal/config"
	"github.com/emre/advisehub/internal/db"
	"github.com/emre/advisehub/internal/engine"
	appMiddleware "github.com/emre/advisehub/internal/middleware"
	pkgAuth "github.com/emre/advisehub/internal/pkg/auth"
	"github.com/emre/advisehub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService     *appServices.CatalogService
	AdvisingService    *appServices.AdvisingService
	PlanningService    *appServices.PlanningService
	CatalogController  *appControllers.CatalogController
	AdvisingController *appControllers.AdvisingController
	PlanningController *appControllers.PlanningController
	AdvisorMiddleware  *appMiddleware.AdvisorMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	tokenExp, err := time.ParseDuration(cfg.Auth.TokenExpiration)
	if err != nil {
		tokenExp = 12 * time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.Auth.Issuer,
	})

	deps.CatalogService = appServices.NewCatalogService(deps.Repos.SnapshotRepository, lgr)
	deps.AdvisingService = appServices.NewAdvisingService(deps.Repos.AdvisingRepository, deps.Repos.BypassRepository, lgr)

	limits := engine.Limits{
		MaxSemesterCredits:     cfg.Advising.MaxSemesterCredits,
		TypicalSemesterCredits: cfg.Advising.TypicalSemesterCredits,
		DeferHorizon:           cfg.Advising.DeferHorizon,
	}
	deps.PlanningService = appServices.NewPlanningService(
		deps.CatalogService,
		deps.AdvisingService,
		limits,
		cfg.Advising.ForecastHorizon,
		lgr,
	)

	deps.AdvisorMiddleware = appMiddleware.NewAdvisorMiddleware(deps.JWTService)

	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.AdvisingController = appControllers.NewAdvisingController(deps.AdvisingService)
	deps.PlanningController = appControllers.NewPlanningController(deps.PlanningService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.CatalogController,
		deps.AdvisingController,
		deps.PlanningController,
		deps.AdvisorMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
