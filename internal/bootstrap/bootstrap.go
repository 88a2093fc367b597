package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/studentregistry/internal/app/controllers"
	appMigrations "github.com/yigit/studentregistry/internal/app/migrations"
	appRepos "github.com/yigit/studentregistry/internal/app/repositories"
	appRoutes "github.com/yigit/studentregistry/internal/app/routes"
	appServices "github.com/yigit/studentregistry/internal/app/services"
	"github.com/yigit/studentregistry/internal/config"
	"github.com/yigit/studentregistry/internal/db"
	appMiddleware "github.com/yigit/studentregistry/internal/middleware"
	"github.com/yigit/studentregistry/internal/pkg/filestorage"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// configPathEnv overrides the default config file location
const configPathEnv = "CONFIG_PATH"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	FileStorage       filestorage.FileStorage
	StudentService    appServices.StudentService
	StudentController *appControllers.StudentController
	Logger            zerolog.Logger
	// StaticDir is set when documents live on local disk and can be served at /uploads
	StaticDir string
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if p := os.Getenv(configPathEnv); p != "" {
		configPath = p
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if !cfg.Database.MigrateOnStart {
		lgr.Info().Msg("Skipping database migrations")
		return database.Pool, nil
	}

	lgr.Info().Msg("Running database migrations...")
	if err := RunMigrations(cfg.Database.URL); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database.Pool, nil
}

// RunMigrations applies the embedded schema migrations to databaseURL.
func RunMigrations(databaseURL string) error {
	migrator, err := appMigrations.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close migrator")
		}
	}()
	return migrator.Up()
}

// SetupFileStorage creates the document store selected by storage.driver.
// The returned directory is empty unless documents are kept on local disk.
func SetupFileStorage(ctx context.Context, cfg *config.Config) (filestorage.FileStorage, string, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMinio:
		m := cfg.Storage.Minio
		storage, err := filestorage.NewMinioStorage(ctx, filestorage.MinioConfig{
			Endpoint:  m.Endpoint,
			AccessKey: m.AccessKey,
			SecretKey: m.SecretKey,
			Bucket:    m.Bucket,
			UseSSL:    m.UseSSL,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize minio storage: %w", err)
		}
		return storage, "", nil
	default:
		storage, err := filestorage.NewLocalStorage(cfg.Storage.Path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize file storage: %w", err)
		}
		return storage, storage.BasePath(), nil
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	storage, staticDir, err := SetupFileStorage(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to initialize file storage")
		return nil, err
	}
	deps.FileStorage = storage
	deps.StaticDir = staticDir

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.FileStorage)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger(), appMiddleware.Metrics())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.StudentController)

	if deps.StaticDir != "" {
		appRoutes.SetupStaticFiles(router, deps.StaticDir)
		lgr.Info().Str("path", deps.StaticDir).Msg("Static file serving configured for uploads directory")
	}

	return router
}
