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

	cancelReservationHandler "github.com/st-neumann/SNR-BookingService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/st-neumann/SNR-BookingService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/st-neumann/SNR-BookingService/internal/api/handlers/get_availability"
	getCustomerReservationsHandler "github.com/st-neumann/SNR-BookingService/internal/api/handlers/get_customer_reservations"
	getReservationHandler "github.com/st-neumann/SNR-BookingService/internal/api/handlers/get_reservation"
	listDayOverridesHandler "github.com/st-neumann/SNR-BookingService/internal/api/handlers/list_day_overrides"
	listReservationsHandler "github.com/st-neumann/SNR-BookingService/internal/api/handlers/list_reservations"
	upsertDayOverrideHandler "github.com/st-neumann/SNR-BookingService/internal/api/handlers/upsert_day_override"
	"github.com/st-neumann/SNR-BookingService/internal/api/middleware"
	"github.com/st-neumann/SNR-BookingService/internal/config"
	overrideRepo "github.com/st-neumann/SNR-BookingService/internal/infra/storage/dayoverride"
	reservationRepo "github.com/st-neumann/SNR-BookingService/internal/infra/storage/reservation"
	overridesService "github.com/st-neumann/SNR-BookingService/internal/service/overrides"
	reservationsService "github.com/st-neumann/SNR-BookingService/internal/service/reservations"
	admitReservationUC "github.com/st-neumann/SNR-BookingService/internal/usecase/admit_reservation"
	getAvailabilityUC "github.com/st-neumann/SNR-BookingService/internal/usecase/get_availability"
	"github.com/st-neumann/SNR-BookingService/pkg/dbmetrics"
	"github.com/st-neumann/SNR-BookingService/pkg/logger"
	"github.com/st-neumann/SNR-BookingService/pkg/metrics"
	"github.com/st-neumann/SNR-BookingService/pkg/simpletxmanager"
	"github.com/st-neumann/SNR-BookingService/pkg/txmanager"
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

	log.Info("Starting SNR-BookingService...")
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

	// Политика движка доступности из конфигурации
	dayDefaults := cfg.Booking.DayDefaults()
	policy := getAvailabilityUC.Policy{
		DayDefaults:      dayDefaults,
		MaxRangeDays:     cfg.Booking.MaxRangeDays,
		UrgentWindowDays: cfg.Booking.UrgentWindowDays,
	}
	log.Info("Booking policy: weekday=%d, saturday=%d, sunday=%d, max_range=%d days, urgent_window=%d days",
		dayDefaults.Weekday, dayDefaults.Saturday, dayDefaults.Sunday,
		cfg.Booking.MaxRangeDays, cfg.Booking.UrgentWindowDays)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		overrideRepository    *overrideRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		overrideRepository = overrideRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		overrideRepository = overrideRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		log,
	)
	overridesSvc := overridesService.NewService(
		overrideRepository,
		dayDefaults,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		overrideRepository,
		policy,
		log,
	)

	admitReservationUseCase := admitReservationUC.NewUseCase(
		reservationRepository,
		overrideRepository,
		dayDefaults,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(admitReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getCustomerReservations := getCustomerReservationsHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	upsertDayOverride := upsertDayOverrideHandler.NewHandler(overridesSvc, log)
	listDayOverrides := listDayOverridesHandler.NewHandler(overridesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Доступность слотов по диапазону дат
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Допуск нового бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список бронирований за период (back-office)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/reservations", getCustomerReservations.Handle).Methods(http.MethodGet)

	// --- Управление вместимостью дней (back-office) ---
	// Список настроек дней за период
	protected.HandleFunc("/days", listDayOverrides.Handle).Methods(http.MethodGet)

	// Создание или замена настройки дня
	protected.HandleFunc("/days/{date}", upsertDayOverride.Handle).Methods(http.MethodPut)

	// Удаление настройки дня
	protected.HandleFunc("/days/{date}", upsertDayOverride.HandleDelete).Methods(http.MethodDelete)

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

	log.Info("Server stopped gracefully")
}
