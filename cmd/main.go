package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/lensroom/studio-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/lensroom/studio-booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/lensroom/studio-booking-service/internal/api/handlers/get_booking"
	getFreeWindowsHandler "github.com/lensroom/studio-booking-service/internal/api/handlers/get_free_windows"
	getPriceScheduleHandler "github.com/lensroom/studio-booking-service/internal/api/handlers/get_price_schedule"
	getStudioBookingsHandler "github.com/lensroom/studio-booking-service/internal/api/handlers/get_studio_bookings"
	getUserBookingsHandler "github.com/lensroom/studio-booking-service/internal/api/handlers/get_user_bookings"
	resolveTierPriceHandler "github.com/lensroom/studio-booking-service/internal/api/handlers/resolve_tier_price"
	"github.com/lensroom/studio-booking-service/internal/api/middleware"
	"github.com/lensroom/studio-booking-service/internal/config"
	bookingRepo "github.com/lensroom/studio-booking-service/internal/infra/storage/booking"
	pricingRepo "github.com/lensroom/studio-booking-service/internal/infra/storage/pricing"
	studioServiceClient "github.com/lensroom/studio-booking-service/internal/integrations/studioservice"
	bookingsService "github.com/lensroom/studio-booking-service/internal/service/bookings"
	createBookingUC "github.com/lensroom/studio-booking-service/internal/usecase/create_booking"
	getFreeWindowsUC "github.com/lensroom/studio-booking-service/internal/usecase/get_free_windows"
	getPriceScheduleUC "github.com/lensroom/studio-booking-service/internal/usecase/get_price_schedule"
	resolveTierPriceUC "github.com/lensroom/studio-booking-service/internal/usecase/resolve_tier_price"
	"github.com/lensroom/studio-booking-service/pkg/dbmetrics"
	"github.com/lensroom/studio-booking-service/pkg/logger"
	"github.com/lensroom/studio-booking-service/pkg/metrics"
	"github.com/lensroom/studio-booking-service/pkg/simpletxmanager"
	"github.com/lensroom/studio-booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting StudioBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент StudioService
	httpClient := studioServiceClient.NewClient(
		cfg.StudioService.URL,
		time.Duration(cfg.StudioService.Timeout)*time.Second,
		log,
	)
	log.Info("StudioService client initialized (url=%s, timeout=%ds)",
		cfg.StudioService.URL, cfg.StudioService.Timeout)

	// Оборачиваем клиента в read-through кеш (если включен Redis)
	var studioClient studioServiceClient.StudioProvider = httpClient
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		studioClient = studioServiceClient.NewCachedClient(
			httpClient,
			redisClient,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		log.Info("StudioService cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Address, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		pricingRepository *pricingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		pricingRepository = pricingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		pricingRepository = pricingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		studioClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		pricingRepository,
		studioClient,
		txMgr,
		log,
	)

	getFreeWindowsUseCase := getFreeWindowsUC.NewUseCase(
		bookingRepository,
		studioClient,
		log,
	)

	getPriceScheduleUseCase := getPriceScheduleUC.NewUseCase(
		pricingRepository,
		log,
	)

	resolveTierPriceUseCase := resolveTierPriceUC.NewUseCase(
		pricingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getFreeWindows := getFreeWindowsHandler.NewHandler(getFreeWindowsUseCase, log)
	getPriceSchedule := getPriceScheduleHandler.NewHandler(getPriceScheduleUseCase, log)
	resolveTierPrice := resolveTierPriceHandler.NewHandler(resolveTierPriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getStudioBookings := getStudioBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные окна комнаты на дату
	api.HandleFunc("/studios/{studioId}/rooms/{roomId}/free-windows",
		getFreeWindows.Handle).Methods(http.MethodGet)

	// Ценовая шкала пакета комнаты
	api.HandleFunc("/rooms/{roomId}/price-schedule",
		getPriceSchedule.Handle).Methods(http.MethodGet)

	// Цена бронирования по тарифному правилу
	api.HandleFunc("/rooms/{roomId}/tier-price",
		resolveTierPrice.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление студией (для владельцев) ---
	// Список бронирований студии
	protected.HandleFunc("/studios/{studioId}/bookings", getStudioBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
