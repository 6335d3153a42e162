package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kdanquah/regportal/internal/app/catalog"
	appControllers "github.com/kdanquah/regportal/internal/app/controllers"
	appMigrations "github.com/kdanquah/regportal/internal/app/migrations"
	appRepos "github.com/kdanquah/regportal/internal/app/repositories"
	appRoutes "github.com/kdanquah/regportal/internal/app/routes"
	appServices "github.com/kdanquah/regportal/internal/app/services"
	"github.com/kdanquah/regportal/internal/config"
	"github.com/kdanquah/regportal/internal/db"
	appMiddleware "github.com/kdanquah/regportal/internal/middleware"
	pkgAuth "github.com/kdanquah/regportal/internal/pkg/auth"
	"github.com/kdanquah/regportal/internal/pkg/filestorage"
	"github.com/kdanquah/regportal/internal/pkg/helpers"
	"github.com/kdanquah/regportal/internal/pkg/logger"
	"github.com/kdanquah/regportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services               *appServices.Services
	Catalog                *catalog.Catalog
	AuthController         *appControllers.AuthController
	CatalogController      *appControllers.CatalogController
	StudentController      *appControllers.StudentController
	RegistrationController *appControllers.RegistrationController
	WorkflowController     *appControllers.WorkflowController
	ExportController       *appControllers.ExportController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
	Logger                 zerolog.Logger
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Catalog = catalog.Default()
	if cfg.Catalog.Path != "" {
		deps.Catalog, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			lgr.Error().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load course catalogue")
			return nil, fmt.Errorf("failed to load course catalogue: %w", err)
		}
		lgr.Info().Str("path", cfg.Catalog.Path).Msg("Course catalogue loaded")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(deps.Repos.AdminRepository, deps.JWTService)
	draftService := appServices.NewDraftService(helpers.ParseDuration(cfg.Drafts.TTL, 30*time.Minute))

	deps.Services = appServices.NewServices(deps.Repos, deps.FileStorage, deps.Catalog, authService, draftService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.CatalogController = appControllers.NewCatalogController(deps.Catalog)
	deps.StudentController = appControllers.NewStudentController(
		deps.Services.StudentService,
		deps.Services.AttachmentService,
		deps.Services.DraftService,
	)
	deps.RegistrationController = appControllers.NewRegistrationController(
		deps.Services.RegistrationService,
		deps.Services.AttachmentService,
		deps.Services.DraftService,
	)
	deps.WorkflowController = appControllers.NewWorkflowController(deps.Services.ApprovalService)
	deps.ExportController = appControllers.NewExportController(deps.Services.ExportService)

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

	// Student ids carry slashes (PS/ACC/2024/001), so clients send them
	// percent-encoded; matching must happen on the raw path.
	router.UseRawPath = true
	router.UnescapePathValues = true

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CatalogController,
		deps.StudentController,
		deps.RegistrationController,
		deps.WorkflowController,
		deps.ExportController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
