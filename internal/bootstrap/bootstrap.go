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

	appControllers "github.com/kemumsa/backend/internal/app/controllers"
	appMigrations "github.com/kemumsa/backend/internal/app/migrations"
	appRepos "github.com/kemumsa/backend/internal/app/repositories"
	appRoutes "github.com/kemumsa/backend/internal/app/routes"
	appServices "github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/config"
	"github.com/kemumsa/backend/internal/db"
	appMiddleware "github.com/kemumsa/backend/internal/middleware"
	pkgAuth "github.com/kemumsa/backend/internal/pkg/auth"
	"github.com/kemumsa/backend/internal/pkg/filestorage"
	"github.com/kemumsa/backend/internal/pkg/helpers"
	"github.com/kemumsa/backend/internal/pkg/logger"
	"github.com/kemumsa/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	MemberService         appServices.MemberService
	EventService          appServices.EventService
	ExecutiveService      appServices.ExecutiveService
	ClassLeaderService    appServices.ClassLeaderService
	ResourceService       appServices.ResourceService
	MessageService        appServices.MessageService
	CarouselService       appServices.CarouselService
	AdminService          appServices.AdminService
	StatisticsService     appServices.StatisticsService
	MemberController      *appControllers.MemberController
	EventController       *appControllers.EventController
	ExecutiveController   *appControllers.ExecutiveController
	ClassLeaderController *appControllers.ClassLeaderController
	ResourceController    *appControllers.ResourceController
	MessageController     *appControllers.MessageController
	CarouselController    *appControllers.CarouselController
	AdminController       *appControllers.AdminController
	StatisticsController  *appControllers.StatisticsController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
	FileStorage           *filestorage.LocalStorage
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage base URL must match the static file serving endpoint
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.MemberService = appServices.NewMemberService(deps.Repos.MemberRepository, deps.JWTService, deps.FileStorage)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, deps.FileStorage)
	deps.ExecutiveService = appServices.NewExecutiveService(deps.Repos.ExecutiveRepository, deps.FileStorage)
	deps.ClassLeaderService = appServices.NewClassLeaderService(deps.Repos.ClassLeaderRepository, deps.FileStorage)
	deps.ResourceService = appServices.NewResourceService(deps.Repos.ResourceRepository)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository)
	deps.CarouselService = appServices.NewCarouselService(deps.Repos.CarouselRepository, deps.FileStorage)
	deps.AdminService = appServices.NewAdminService(deps.Repos.AdminRepository, deps.Repos.CommunicationRepository, deps.JWTService)
	deps.StatisticsService = appServices.NewStatisticsService(deps.Repos.MemberRepository, deps.Repos.EventRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.MemberController = appControllers.NewMemberController(deps.MemberService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.ExecutiveController = appControllers.NewExecutiveController(deps.ExecutiveService)
	deps.ClassLeaderController = appControllers.NewClassLeaderController(deps.ClassLeaderService)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)
	deps.CarouselController = appControllers.NewCarouselController(deps.CarouselService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.MemberService)
	deps.StatisticsController = appControllers.NewStatisticsController(deps.StatisticsService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.Gzip())
	router.Use(appMiddleware.NoCache())

	if cfg.Server.EnableSwagger {
		appRoutes.SetupSwagger(router)
	}

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.MemberController,
		deps.EventController,
		deps.ExecutiveController,
		deps.ClassLeaderController,
		deps.ResourceController,
		deps.MessageController,
		deps.CarouselController,
		deps.AdminController,
		deps.StatisticsController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
