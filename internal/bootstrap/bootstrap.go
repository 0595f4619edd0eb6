package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/baris/okulport/docs" // Import generated swagger docs
	appControllers "github.com/baris/okulport/internal/app/controllers"
	appMigrations "github.com/baris/okulport/internal/app/migrations"
	appRepos "github.com/baris/okulport/internal/app/repositories"
	appRoutes "github.com/baris/okulport/internal/app/routes"
	appServices "github.com/baris/okulport/internal/app/services"
	"github.com/baris/okulport/internal/config"
	"github.com/baris/okulport/internal/db"
	appMiddleware "github.com/baris/okulport/internal/middleware"
	"github.com/baris/okulport/internal/pkg/logger"
	"github.com/baris/okulport/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AccessService     appServices.AccessService // Interface type
	RosterService     appServices.RosterService // Interface type
	RecordService     appServices.RecordService // Interface type
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
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

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed demo data in development mode only
	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
			// Log the error but don't necessarily fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	recordStore := appServices.NewRecordStore(
		deps.Repos.GradeRepository,
		deps.Repos.AbsenceRepository,
		deps.Repos.NotificationRepository,
	)

	deps.AccessService = appServices.NewAccessService(
		deps.Repos.StudentRepository,
		deps.Repos.AccessRequestRepository,
		recordStore,
		lgr,
	)
	deps.RosterService = appServices.NewRosterService(deps.Repos.StudentRepository, lgr)
	deps.RecordService = appServices.NewRecordService(deps.Repos.StudentRepository, recordStore)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(cfg.Admin.APIKey)

	deps.AuthController = appControllers.NewAuthController(deps.AccessService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.AccessService)
	deps.AdminController = appControllers.NewAdminController(
		deps.AccessService,
		deps.RosterService,
		deps.RecordService,
		lgr,
	)

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

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
