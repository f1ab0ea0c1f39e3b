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

	createBookingHandler "github.com/Mohanrajjicate/drone-booking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/Mohanrajjicate/drone-booking/internal/api/handlers/get_booking"
	getBookingOptionsHandler "github.com/Mohanrajjicate/drone-booking/internal/api/handlers/get_booking_options"
	getDateBookingsHandler "github.com/Mohanrajjicate/drone-booking/internal/api/handlers/get_date_bookings"
	getDaySlotsHandler "github.com/Mohanrajjicate/drone-booking/internal/api/handlers/get_day_slots"
	getMonthAvailabilityHandler "github.com/Mohanrajjicate/drone-booking/internal/api/handlers/get_month_availability"
	validateFormHandler "github.com/Mohanrajjicate/drone-booking/internal/api/handlers/validate_form"
	"github.com/Mohanrajjicate/drone-booking/internal/api/middleware"
	"github.com/Mohanrajjicate/drone-booking/internal/config"
	availabilityCache "github.com/Mohanrajjicate/drone-booking/internal/infra/cache/availability"
	"github.com/Mohanrajjicate/drone-booking/internal/infra/storage"
	bookingRepo "github.com/Mohanrajjicate/drone-booking/internal/infra/storage/booking"
	bookingsService "github.com/Mohanrajjicate/drone-booking/internal/service/bookings"
	createBookingUC "github.com/Mohanrajjicate/drone-booking/internal/usecase/create_booking"
	getDaySlotsUC "github.com/Mohanrajjicate/drone-booking/internal/usecase/get_day_slots"
	getMonthAvailabilityUC "github.com/Mohanrajjicate/drone-booking/internal/usecase/get_month_availability"
	validateFormUC "github.com/Mohanrajjicate/drone-booking/internal/usecase/validate_form"
	"github.com/Mohanrajjicate/drone-booking/pkg/logger"
	"github.com/Mohanrajjicate/drone-booking/pkg/metrics"
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

	log.Info("Starting drone-booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Проверяем соединение: без БД ограничение уникальности слотов
	// не работает, стартовать бессмысленно
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := storage.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Часовой пояс площадки: по нему считаются "сегодня" и прошедшие даты
	loc := cfg.Booking.Location()
	log.Info("Venue timezone: %s", loc)

	// Инициализируем репозиторий и кэш занятости
	bookingRepository := bookingRepo.NewRepository(db)
	monthCache := availabilityCache.New()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, monthCache, loc, log)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(bookingRepository, monthCache, loc, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(bookingRepository, monthCache, loc, log)
	validateFormUseCase := validateFormUC.NewUseCase(log)

	// Инициализируем handlers
	var bookingMetrics createBookingHandler.Metrics
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
	}
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, bookingMetrics, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	validateForm := validateFormHandler.NewHandler(validateFormUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDateBookings := getDateBookingsHandler.NewHandler(bookingSvc, log)
	getBookingOptions := getBookingOptionsHandler.NewHandler(log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Календарь и доступность слотов
	api.HandleFunc("/availability/day", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/{year}/{month}", getMonthAvailability.Handle).Methods(http.MethodGet)

	// Справочники для формы бронирования
	api.HandleFunc("/booking-options", getBookingOptions.Handle).Methods(http.MethodGet)

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getDateBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/validate", validateForm.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)

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
