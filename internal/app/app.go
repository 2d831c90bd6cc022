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

	"skillbridge_backend/internal/ai"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/controller"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/pkg/database"
	"skillbridge_backend/pkg/logger"
	"skillbridge_backend/pkg/monitoring"
	"skillbridge_backend/pkg/security"
	"skillbridge_backend/pkg/tracing"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	KeyPool *ai.KeyPool
}

type repositories struct {
	user    *repository.UserRepository
	jobRole *repository.JobRoleRepository
	profile *repository.ProfileRepository
}

type services struct {
	auth      *service.AuthService
	jobRole   *service.JobRoleService
	resume    *service.ResumeService
	analysis  *service.AnalysisService
	roadmap   *service.RoadmapService
	resource  *service.ResourceService
	progress  *service.ProgressService
	assistant *service.AssistantService
}

type controllers struct {
	auth      *controller.AuthController
	job       *controller.JobController
	resume    *controller.ResumeController
	analysis  *controller.AnalysisController
	roadmap   *controller.RoadmapController
	resource  *controller.ResourceController
	assistant *controller.AssistantController
	progress  *controller.ProgressController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		jobRole: repository.NewJobRoleRepository(db),
		profile: repository.NewProfileRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client, orch *ai.Orchestrator) (*services, error) {
	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	return &services{
		auth:      service.NewAuthService(repos.user, cfg),
		jobRole:   service.NewJobRoleService(repos.jobRole),
		resume:    service.NewResumeService(repos.profile, storage),
		analysis:  service.NewAnalysisService(repos.profile, repos.jobRole, orch),
		roadmap:   service.NewRoadmapService(repos.profile, orch),
		resource:  service.NewResourceService(orch),
		progress:  service.NewProgressService(repos.profile),
		assistant: service.NewAssistantService(repos.profile, orch, rdb),
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		job:       controller.NewJobController(s.jobRole),
		resume:    controller.NewResumeController(s.resume),
		analysis:  controller.NewAnalysisController(s.analysis),
		roadmap:   controller.NewRoadmapController(s.roadmap),
		resource:  controller.NewResourceController(s.resource),
		assistant: controller.NewAssistantController(s.assistant),
		progress:  controller.NewProgressController(s.progress),
		health:    controller.NewHealthController(db, rdb, a.KeyPool),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = 15 * time.Minute
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

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, assistant chat history disabled", zap.Error(err))
		rdb = nil
	}

	pool := ai.NewKeyPoolFromEnv(cfg.Gemini)
	if !pool.HasKey() {
		logger.Log.Warn("No Gemini API key configured, AI tasks will use fallbacks")
	}
	orch := ai.NewOrchestrator(pool, ai.NewGeminiGenerator, cfg.Gemini.MaxRetries, logger.Log)

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		KeyPool: pool,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb, orch)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skillbridge-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ApplyConfig takes over hot-reloadable settings from a freshly loaded
// config. Middlewares hold a pointer to the original config, so updating
// its fields in place is enough for settings read per-request; connection
// settings require a restart.
func (a *App) ApplyConfig(newCfg *config.Config) {
	a.Config.JWT = newCfg.JWT
	a.Config.Gemini = newCfg.Gemini
	logger.Log.Info("Configuration reloaded")
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
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.Redis != nil {
		a.Redis.Close()
	}
	logger.Log.Sync()

	log.Println("Server exiting")
}
