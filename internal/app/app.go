package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dtalero78/siigo-retiros/internal/config"
	"github.com/dtalero78/siigo-retiros/internal/controller"
	"github.com/dtalero78/siigo-retiros/internal/repository"
	"github.com/dtalero78/siigo-retiros/internal/service"
	"github.com/dtalero78/siigo-retiros/internal/survey"
	"github.com/dtalero78/siigo-retiros/pkg/database"
	"github.com/dtalero78/siigo-retiros/pkg/logger"
	"github.com/dtalero78/siigo-retiros/pkg/monitoring"
	"github.com/dtalero78/siigo-retiros/pkg/security"
	"github.com/dtalero78/siigo-retiros/pkg/tracing"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	response *repository.ResponseRepository
	user     *repository.UserRepository
}

type services struct {
	response *service.ResponseService
	user     *service.UserService
	whatsapp *service.WhatsAppService
	ai       *service.AIService
	export   *service.ExportService
	backup   *service.BackupService
}

type controllers struct {
	question *controller.QuestionController
	response *controller.ResponseController
	user     *controller.UserController
	whatsapp *controller.WhatsAppController
	admin    *controller.AdminController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		response: repository.NewResponseRepository(db),
		user:     repository.NewUserRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client, resolver *survey.Resolver, renderer *survey.Renderer) (*services, error) {
	mapper := survey.NewMapper(resolver, logger.Log)

	s := &services{}
	s.ai = service.NewAIService(cfg.AI)
	s.response = service.NewResponseService(
		repos.response, repos.user,
		resolver, renderer, mapper,
		s.ai, rdb, logger.Log,
	)
	s.user = service.NewUserService(repos.user, logger.Log)
	s.whatsapp = service.NewWhatsAppService(cfg.Twilio, cfg.Survey, repos.user, logger.Log)
	s.export = service.NewExportService(repos.response, resolver)

	backup, err := service.NewBackupService(cfg.Backup, repos.response, repos.user, logger.Log)
	if err != nil {
		return nil, err
	}
	s.backup = backup
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, resolver *survey.Resolver, renderer *survey.Renderer) *controllers {
	return &controllers{
		question: controller.NewQuestionController(resolver, renderer),
		response: controller.NewResponseController(s.response, s.export),
		user:     controller.NewUserController(s.user),
		whatsapp: controller.NewWhatsAppController(s.whatsapp, s.user),
		admin:    controller.NewAdminController(s.backup),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	// Release mode only migrates when asked to; everywhere else the
	// schema is kept current on startup.
	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	resolver := survey.DefaultResolver()
	renderer := survey.NewRenderer(logger.Log)

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb, resolver, renderer)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, resolver, renderer)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("exit-survey", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Redis close failed", zap.Error(err))
		}
	}
	logger.Log.Info("Server exited")
	logger.Log.Sync()
}
