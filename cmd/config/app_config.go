package config

import (
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
	"io"
	"os"
	"path/filepath"
	"recipehub/internal/api/handlers"
	"recipehub/internal/api/routes"
	"recipehub/internal/middleware"
	"recipehub/internal/utils"
	"recipehub/internal/utils/mailing"
	"recipehub/internal/utils/storage"
	"recipehub/pkg/auth"
	"recipehub/pkg/generator"
	"recipehub/pkg/jwt"
	"recipehub/pkg/recipe"
	"recipehub/pkg/tag"
	"recipehub/pkg/user"
)

var logFilePath = "./logs/app.log"

// Services holds every domain service, shared by the HTTP server and the CLI.
type Services struct {
	JWT           jwt.JWTService
	User          user.UserService
	Recipe        recipe.RecipeService
	Tag           tag.TagService
	Generator     generator.GeneratorService
	Authenticator *auth.Authenticator
}

// NewServices wires repositories into services. store may be nil for
// commands that never touch recipe images.
func NewServices(cfg *utils.Config, db *gorm.DB, store storage.Storage) Services {
	var mailer mailing.Mailer = mailing.NoopMailer{}
	if cfg.MailEnabled() {
		mailer = mailing.NewMailer(mailing.LoadMailConfig(cfg))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	refreshTokenRepository := user.NewRefreshTokenRepository(db)
	tagRepository := tag.NewTagRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL())
	userService := user.NewUserService(userRepository, refreshTokenRepository, jwtService, mailer, cfg.RefreshTTL())
	recipeService := recipe.NewRecipeService(recipeRepository, tagRepository, store, cfg.MaxUploadSize)
	tagService := tag.NewTagService(tagRepository, recipeService)

	return Services{
		JWT:           jwtService,
		User:          userService,
		Recipe:        recipeService,
		Tag:           tagService,
		Generator:     generator.NewGeneratorService(cfg),
		Authenticator: auth.NewDefaultAuthenticator(jwtService, userRepository),
	}
}

// NewApp builds the HTTP app. The returned closer releases the access log
// file and must be closed after shutdown.
func NewApp(cfg *utils.Config, db *gorm.DB, services Services) (*fiber.App, io.Closer, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "recipehub",
		BodyLimit:    int(cfg.MaxUploadSize) + 1<<20,
		ErrorHandler: middleware.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware(services.Authenticator)
	validator := utils.Validate

	// setting up logging and limiter
	logOutput, logFile, err := openLogOutput(logFilePath)
	if err != nil {
		return nil, nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     logOutput,
	}))
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateWindow(),
		}))
	}

	sqlDB, err := db.DB()
	if err != nil {
		_ = logFile.Close()
		return nil, nil, fmt.Errorf("database handle: %w", err)
	}

	// Handler
	userHandler := handlers.NewUserHandler(services.User, validator)
	recipeHandler := handlers.NewRecipeHandler(services.Recipe, services.Generator, validator)
	tagHandler := handlers.NewTagHandler(services.Tag)
	healthHandler := handlers.NewHealthHandler(sqlDB)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		RecipeHandler: recipeHandler,
		TagHandler:    tagHandler,
		HealthHandler: healthHandler,
		Middleware:    middlewares,
		CORSOrigins:   cfg.CORSOrigins,
	}
	routesConfig.Setup()
	return app, logFile, nil
}

// openLogOutput writes access logs to stdout and to the log file.
func openLogOutput(path string) (io.Writer, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}
	return io.MultiWriter(os.Stdout, file), file, nil
}
