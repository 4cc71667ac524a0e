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

	appControllers "github.com/swapnilk/acadesk/internal/app/controllers"
	appMigrations "github.com/swapnilk/acadesk/internal/app/migrations"
	appRepos "github.com/swapnilk/acadesk/internal/app/repositories"
	appRoutes "github.com/swapnilk/acadesk/internal/app/routes"
	appServices "github.com/swapnilk/acadesk/internal/app/services"
	"github.com/swapnilk/acadesk/internal/config"
	"github.com/swapnilk/acadesk/internal/db"
	appMiddleware "github.com/swapnilk/acadesk/internal/middleware"
	pkgAuth "github.com/swapnilk/acadesk/internal/pkg/auth"
	"github.com/swapnilk/acadesk/internal/pkg/email"
	"github.com/swapnilk/acadesk/internal/pkg/filestorage"
	"github.com/swapnilk/acadesk/internal/pkg/helpers"
	"github.com/swapnilk/acadesk/internal/pkg/logger"
	"github.com/swapnilk/acadesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	EmailService   email.EmailService
	AuthMiddleware *appMiddleware.AuthMiddleware
	RateLimiter    *appMiddleware.RateLimiter
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
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
// seeds the bootstrap account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Pool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, "")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	yearService := appServices.NewAcademicYearService(deps.Repos.AcademicYearRepository, deps.Repos.DivisionRepository)
	divisionService := appServices.NewDivisionService(deps.Repos.DivisionRepository, deps.Repos.AcademicYearRepository, deps.Repos.BatchRepository)
	batchService := appServices.NewBatchService(deps.Repos.BatchRepository, deps.Repos.DivisionRepository, deps.Repos.StudentRepository)
	studentService := appServices.NewStudentService(database, deps.Repos.StudentRepository, deps.Repos.BatchRepository, deps.Repos.AttendanceRepository)
	subjectService := appServices.NewSubjectService(deps.Repos.SubjectRepository)
	teacherService := appServices.NewTeacherService(database, deps.Repos.TeacherRepository, deps.Repos.UserRepository, deps.Repos.BatchRepository, deps.Repos.SubjectRepository)
	userService := appServices.NewUserService(deps.Repos.UserRepository)
	attendanceService := appServices.NewAttendanceService(deps.Repos.AttendanceRepository, deps.Repos.StudentRepository, deps.Repos.SubjectRepository)
	defaulterService := appServices.NewDefaulterService(
		database,
		deps.Repos.AttendanceRepository,
		deps.Repos.DefaulterLetterRepository,
		deps.FileStorage,
		deps.EmailService,
		cfg.Defaulter.Threshold,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)
	deps.RateLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.Requests, helpers.ParseDuration(cfg.RateLimit.Window, time.Hour))

	deps.Controllers = appRoutes.Controllers{
		Auth:            appControllers.NewAuthController(authService),
		AcademicYear:    appControllers.NewAcademicYearController(yearService),
		Division:        appControllers.NewDivisionController(divisionService),
		Batch:           appControllers.NewBatchController(batchService),
		Student:         appControllers.NewStudentController(studentService),
		Subject:         appControllers.NewSubjectController(subjectService),
		Teacher:         appControllers.NewTeacherController(teacherService),
		User:            appControllers.NewUserController(userService),
		Attendance:      appControllers.NewAttendanceController(attendanceService),
		DefaulterLetter: appControllers.NewDefaulterLetterController(defaulterService),
	}

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
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.RateLimiter)

	return router
}
