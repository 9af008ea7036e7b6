package app

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mathlearn_backend/internal/config"
	"mathlearn_backend/internal/controller"
	"mathlearn_backend/internal/repository"
	"mathlearn_backend/internal/service"
	"mathlearn_backend/pkg/database"
	"mathlearn_backend/pkg/logger"
	"mathlearn_backend/pkg/monitoring"
	"mathlearn_backend/pkg/security"
	"mathlearn_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	question  *repository.QuestionRepository
	result    *repository.ResultRepository
	progress  *repository.ProgressRepository
	material  *repository.MaterialRepository
	category  *repository.CategoryRepository
	actionLog *repository.ActionLogRepository
}

type services struct {
	storage   *service.StorageService
	auth      *service.AuthService
	user      *service.UserService
	question  *service.QuestionService
	generator *service.TestGenerator
	session   *service.SessionService
	analytics *service.AnalyticsService
	progress  *service.ProgressService
	content   *service.ContentService
	report    *service.ReportService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	test      *controller.TestController
	question  *controller.QuestionController
	analytics *controller.AnalyticsController
	progress  *controller.ProgressController
	content   *controller.ContentController
	report    *controller.ReportController
	logs      *controller.LogController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 配置文件变更后由 watcher 调用
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		question:  repository.NewQuestionRepository(db),
		result:    repository.NewResultRepository(db),
		progress:  repository.NewProgressRepository(db),
		material:  repository.NewMaterialRepository(db),
		category:  repository.NewCategoryRepository(db),
		actionLog: repository.NewActionLogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.actionLog, cfg)
	s.user = service.NewUserService(repos.user)
	s.question = service.NewQuestionService(repos.question)
	s.generator = service.NewTestGenerator(repos.question, cfg.Test, rand.NewSource(time.Now().UnixNano()))
	s.session = service.NewSessionService(s.generator, repos.result, repos.actionLog)
	s.analytics = service.NewAnalyticsService(repos.result, cfg.Test.WeakTopicThreshold)
	s.progress = service.NewProgressService(repos.progress, repos.actionLog)
	s.content = service.NewContentService(repos.material, repos.category, s.storage, cfg, rdb)
	s.report = service.NewReportService(s.analytics, cfg)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, s.user),
		user:      controller.NewUserController(s.user),
		test:      controller.NewTestController(s.session),
		question:  controller.NewQuestionController(s.question),
		analytics: controller.NewAnalyticsController(s.analytics),
		progress:  controller.NewProgressController(s.progress),
		content:   controller.NewContentController(s.content),
		report:    controller.NewReportController(s.report, s.session, s.user),
		logs:      controller.NewLogController(repos.actionLog),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(func(c *gin.Context) {
		c.Set("config", a.Config)
		c.Next()
	})

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
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

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, repos, db)

	// 配置热更新时同步出题参数和薄弱主题阈值
	app.RegisterConfigCallback(func(c *config.Config) {
		services.generator.SetConfig(c.Test)
		services.analytics.SetThreshold(c.Test.WeakTopicThreshold)
	})

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("mathlearn-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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

	// 等待中断信号优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
