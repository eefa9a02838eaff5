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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/m04kA/SMC-WashBooking/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-WashBooking/internal/api/handlers/delete_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-WashBooking/internal/api/handlers/get_available_slots"
	getQuoteHandler "github.com/m04kA/SMC-WashBooking/internal/api/handlers/get_quote"
	getStatsHandler "github.com/m04kA/SMC-WashBooking/internal/api/handlers/get_stats"
	getUserReservationsHandler "github.com/m04kA/SMC-WashBooking/internal/api/handlers/get_user_reservations"
	listBookedHoursHandler "github.com/m04kA/SMC-WashBooking/internal/api/handlers/list_booked_hours"
	listReservationsHandler "github.com/m04kA/SMC-WashBooking/internal/api/handlers/list_reservations"
	verifyReservationHandler "github.com/m04kA/SMC-WashBooking/internal/api/handlers/verify_reservation"
	"github.com/m04kA/SMC-WashBooking/internal/api/middleware"
	"github.com/m04kA/SMC-WashBooking/internal/config"
	reservationRepo "github.com/m04kA/SMC-WashBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-WashBooking/internal/jobs/occupancy"
	"github.com/m04kA/SMC-WashBooking/internal/pricing"
	reservationsService "github.com/m04kA/SMC-WashBooking/internal/service/reservations"
	statsService "github.com/m04kA/SMC-WashBooking/internal/service/stats"
	createReservationUC "github.com/m04kA/SMC-WashBooking/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-WashBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-WashBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-WashBooking/pkg/logger"
	"github.com/m04kA/SMC-WashBooking/pkg/metrics"
	"github.com/m04kA/SMC-WashBooking/pkg/txmanager"
)

// serviceRoute ограничивает {service} известными коллекциями
const serviceRoute = "/{service:lavages|tolerie|polissage|detailing}"

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

	log.Info("Starting SMC-WashBooking...")

	// Метрики опциональны: nil-коллектор безопасен во всех вызовах
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	stopMetricsCh := make(chan struct{})

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

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	if err := wrappedDB.PingContext(pingCtx); err != nil {
		cancelPing()
		log.Fatal("Failed to ping database: %v", err)
	}
	cancelPing()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий и менеджер транзакций
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	statsSvc := statsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservationRepository, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getQuote := getQuoteHandler.NewHandler(pricing.Resolve, log)
	listBookedHours := listBookedHoursHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	verifyReservation := verifyReservationHandler.NewHandler(reservationSvc, log)
	getStats := getStatsHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			middleware.WithTrustedProxy(cfg.RateLimit.TrustProxy),
		)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// ADMIN ROUTES (JWT с ролью admin)
	// ============================================================

	// /stats регистрируем раньше маршрутов коллекций
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.JWTSecret), middleware.RequireAdmin)

	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc(serviceRoute, listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc(serviceRoute+"/{id:[0-9]+}/verify", verifyReservation.Handle).Methods(http.MethodPut)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc(serviceRoute+"/by-date", listBookedHours.Handle).Methods(http.MethodPost)
	api.HandleFunc(serviceRoute+"/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc(serviceRoute+"/quote", getQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (JWT в заголовке Authorization)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	protected.HandleFunc(serviceRoute, createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc(serviceRoute+"/user/{email}", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc(serviceRoute+"/{id:[0-9]+}", deleteReservation.Handle).Methods(http.MethodDelete)

	// CORS и восстановление после panic
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-Request-ID"}),
		gorillaHandlers.ExposedHeaders([]string{"X-Request-ID"}),
	)(r)
	handler = gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log: log}),
	)(handler)

	// Фоновые задачи
	var occupancyJob *occupancy.Job
	if cfg.Jobs.OccupancyEnabled {
		occupancyJob = occupancy.NewJob(reservationRepository, metricsCollector, log, cfg.Jobs.OccupancySchedule)
		if err := occupancyJob.Start(); err != nil {
			log.Fatal("Failed to start occupancy job: %v", err)
		}
	}

	if limiter != nil {
		go func() {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					limiter.Cleanup()
				case <-stopMetricsCh:
					return
				}
			}
		}()
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	if occupancyJob != nil {
		occupancyJob.Stop()
	}

	// Останавливаем сбор метрик connection pool и очистку лимитера
	close(stopMetricsCh)

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

// recoveryLogger пишет восстановленные panic в логгер приложения
type recoveryLogger struct {
	log *logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Recovered from panic: %s", fmt.Sprint(v...))
}
