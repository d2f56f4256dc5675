package app

import (
	"college_portal_backend/internal/config"
	"college_portal_backend/internal/controller"
	"college_portal_backend/internal/repository"
	"college_portal_backend/internal/service"
	"college_portal_backend/pkg/database"
	"college_portal_backend/pkg/logger"
	"college_portal_backend/pkg/monitoring"
	"college_portal_backend/pkg/security"
	"college_portal_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	branch        *repository.BranchRepository
	teacher       *repository.TeacherRepository
	student       *repository.StudentRepository
	marks         *repository.MarksRepository
	note          *repository.NoteRepository
	subjectConfig *repository.SubjectConfigRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	roster    *service.RosterService
	subject   *service.SubjectService
	marks     *service.MarksService
	report    *service.ReportService
	notes     *service.NotesService
	dashboard *service.DashboardService
}

type controllers struct {
	auth      *controller.AuthController
	dashboard *controller.DashboardController
	roster    *controller.RosterController
	marks     *controller.MarksController
	subject   *controller.SubjectController
	report    *controller.ReportController
	notes     *controller.NotesController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig hands a freshly loaded config to every registered callback.
// The config watcher calls this when the file changes on disk.
func (a *App) ApplyConfig(newCfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(newCfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		branch:        repository.NewBranchRepository(db),
		teacher:       repository.NewTeacherRepository(db),
		student:       repository.NewStudentRepository(db),
		marks:         repository.NewMarksRepository(db),
		note:          repository.NewNoteRepository(db),
		subjectConfig: repository.NewSubjectConfigRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.teacher, repos.student, repos.branch, cfg)
	s.subject = service.NewSubjectService(repos.subjectConfig, rdb)
	s.roster = service.NewRosterService(repos.student, repos.branch, repos.marks)
	s.marks = service.NewMarksService(repos.student, repos.marks, s.subject)
	s.report = service.NewReportService(repos.student, repos.marks, cfg)
	s.notes = service.NewNotesService(repos.note, repos.student, repos.marks, s.subject, s.storage, rdb, cfg)
	s.dashboard = service.NewDashboardService(repos.student, repos.note, repos.marks, repos.branch)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		dashboard: controller.NewDashboardController(s.dashboard),
		roster:    controller.NewRosterController(s.roster),
		marks:     controller.NewMarksController(s.marks),
		subject:   controller.NewSubjectController(s.subject),
		report:    controller.NewReportController(s.report),
		notes:     controller.NewNotesController(s.notes),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
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
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("college-portal", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

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
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
