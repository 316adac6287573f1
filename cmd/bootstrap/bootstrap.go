package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-frontdesk/config"
	deliveryHttp "hotel-frontdesk/internal/delivery/http"
	"hotel-frontdesk/internal/delivery/http/handler"
	"hotel-frontdesk/internal/delivery/http/middleware"
	"hotel-frontdesk/internal/infrastructure/cache"
	"hotel-frontdesk/internal/infrastructure/database"
	"hotel-frontdesk/internal/jobs"
	"hotel-frontdesk/internal/repository"
	"hotel-frontdesk/internal/service"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/rabbitmq"
	"hotel-frontdesk/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   *rabbitmq.Publisher
	Cron        *cron.Cron
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger()
	app.Log = log

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, log); err != nil {
			app.Close()
			return nil, err
		}
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize event publisher; RabbitMQ is optional
	events := service.NewNoopEventPublisher(log)
	if cfg.RabbitMQ.URL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		app.Publisher = publisher
		events = service.NewRabbitEventPublisher(publisher, log)
		log.Info("RabbitMQ connected successfully")
	}

	// Initialize all layers
	server, roomTypeUsecase := initializeServer(cfg, log, db, redisClient, events)
	app.Server = server

	// Scheduled jobs
	app.Cron = cron.New()
	if err := jobs.InitCronJobs(app.Cron, cfg.Jobs, roomTypeUsecase, log); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to start cron jobs: %w", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	events service.EventPublisher,
) (*http.Server, usecase.RoomTypeUsecase) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	transactor := repository.NewTransactor(db)
	categoryRepo := repository.NewRoomCategoryRepository()
	statusRepo := repository.NewRoomStatusRepository()
	roomRepo := repository.NewRoomRepository()
	statusHistoryRepo := repository.NewRoomStatusHistoryRepository()
	roomTypeRepo := repository.NewRoomTypeRepository()
	roomTypeHistoryRepo := repository.NewRoomTypeHistoryRepository()
	guestRepo := repository.NewGuestRepository()
	bookingRepo := repository.NewBookingRepository()
	paymentRepo := repository.NewPaymentRepository()
	settingRepo := repository.NewSystemSettingRepository()
	preferenceRepo := repository.NewPreferenceRepository(redisClient)

	// Initialize services
	cacheService := service.NewRedisCacheService(redisClient, cfg.Redis.CacheTTL, log)
	transitionService := service.NewStatusTransitionService(log, roomRepo, statusRepo, statusHistoryRepo)
	roomTypeHistoryService := service.NewRoomTypeHistoryService(log, roomTypeHistoryRepo)

	// Initialize usecases
	categoryUsecase := usecase.NewRoomCategoryUsecase(db, log, categoryRepo)
	statusUsecase := usecase.NewRoomStatusUsecase(db, log, transactor, statusRepo, roomRepo, statusHistoryRepo, transitionService, cacheService, events)
	roomUsecase := usecase.NewRoomUsecase(db, log, roomRepo, categoryRepo, statusRepo)
	roomTypeUsecase := usecase.NewRoomTypeUsecase(db, log, transactor, roomTypeRepo, roomTypeHistoryRepo, roomTypeHistoryService, events)
	guestUsecase := usecase.NewGuestUsecase(db, log, guestRepo, bookingRepo)
	settingUsecase := usecase.NewSettingUsecase(db, log, settingRepo, cacheService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, transactor, bookingRepo, guestRepo, paymentRepo, roomRepo, statusRepo, transitionService, settingUsecase, events)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, transactor, paymentRepo, bookingRepo, events)
	outOfOrderUsecase := usecase.NewOutOfOrderUsecase(db, log, transactor, roomRepo, statusHistoryRepo, transitionService, events)
	preferenceUsecase := usecase.NewPreferenceUsecase(log, preferenceRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, roomRepo, bookingRepo, paymentRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Category:   handler.NewRoomCategoryHandler(categoryUsecase, customValidator),
		Status:     handler.NewRoomStatusHandler(statusUsecase, customValidator),
		Room:       handler.NewRoomHandler(roomUsecase, customValidator),
		RoomType:   handler.NewRoomTypeHandler(roomTypeUsecase, customValidator),
		Guest:      handler.NewGuestHandler(guestUsecase, customValidator),
		Booking:    handler.NewBookingHandler(bookingUsecase, customValidator),
		Payment:    handler.NewPaymentHandler(paymentUsecase, customValidator),
		OutOfOrder: handler.NewOutOfOrderHandler(outOfOrderUsecase, customValidator),
		Setting:    handler.NewSettingHandler(settingUsecase, customValidator),
		Preference: handler.NewPreferenceHandler(preferenceUsecase),
		Dashboard:  handler.NewDashboardHandler(dashboardUsecase),
	}

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)
	staffMiddleware := middleware.NewStaffMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, corsMiddleware, staffMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, roomTypeUsecase
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Let a running purge finish before the database goes away
	if app.Cron != nil {
		select {
		case <-app.Cron.Stop().Done():
		case <-ctx.Done():
			app.Log.Warn("Cron jobs did not stop before shutdown timeout")
		}
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, rabbitmq)
func (app *App) Close() {
	if app.Publisher != nil {
		app.Publisher.Close()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
