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

	cancelAppointmentHandler "github.com/atelierhub/SBM-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/atelierhub/SBM-SchedulingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/atelierhub/SBM-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/atelierhub/SBM-SchedulingService/internal/api/handlers/get_available_slots"
	getCustomerAppointmentsHandler "github.com/atelierhub/SBM-SchedulingService/internal/api/handlers/get_customer_appointments"
	getDayViewHandler "github.com/atelierhub/SBM-SchedulingService/internal/api/handlers/get_day_view"
	getMonthGridHandler "github.com/atelierhub/SBM-SchedulingService/internal/api/handlers/get_month_grid"
	rescheduleAppointmentHandler "github.com/atelierhub/SBM-SchedulingService/internal/api/handlers/reschedule_appointment"
	updateStatusHandler "github.com/atelierhub/SBM-SchedulingService/internal/api/handlers/update_status"
	"github.com/atelierhub/SBM-SchedulingService/internal/api/middleware"
	"github.com/atelierhub/SBM-SchedulingService/internal/config"
	appointmentRepo "github.com/atelierhub/SBM-SchedulingService/internal/infra/storage/appointment"
	catalogServiceClient "github.com/atelierhub/SBM-SchedulingService/internal/integrations/catalogservice"
	customerServiceClient "github.com/atelierhub/SBM-SchedulingService/internal/integrations/customerservice"
	appointmentsService "github.com/atelierhub/SBM-SchedulingService/internal/service/appointments"
	calendarService "github.com/atelierhub/SBM-SchedulingService/internal/service/calendar"
	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
	createAppointmentUC "github.com/atelierhub/SBM-SchedulingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/atelierhub/SBM-SchedulingService/internal/usecase/get_available_slots"
	getDayViewUC "github.com/atelierhub/SBM-SchedulingService/internal/usecase/get_day_view"
	rescheduleAppointmentUC "github.com/atelierhub/SBM-SchedulingService/internal/usecase/reschedule_appointment"
	"github.com/atelierhub/SBM-SchedulingService/pkg/dbmetrics"
	"github.com/atelierhub/SBM-SchedulingService/pkg/logger"
	"github.com/atelierhub/SBM-SchedulingService/pkg/metrics"
	"github.com/atelierhub/SBM-SchedulingService/pkg/simpletxmanager"
	"github.com/atelierhub/SBM-SchedulingService/pkg/txmanager"
	"github.com/atelierhub/SBM-SchedulingService/pkg/types"
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

	log.Info("Starting SBM-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Сетка слотов из конфигурации
	grid := timegrid.Config{
		DayStart:    types.TimeString(cfg.Schedule.DayStart),
		DayEnd:      types.TimeString(cfg.Schedule.DayEnd),
		StepMinutes: cfg.Schedule.SlotStepMinutes,
	}
	if err := grid.Validate(); err != nil {
		log.Fatal("Invalid schedule config: %v", err)
	}
	log.Info("Slot grid configured: %s-%s, step %dm",
		cfg.Schedule.DayStart, cfg.Schedule.DayEnd, cfg.Schedule.SlotStepMinutes)

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

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds, CustomerService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout, cfg.CustomerService.URL, cfg.CustomerService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var appointmentRepository *appointmentRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	calendarSvc := calendarService.NewService(log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalogClient,
		grid,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogClient,
		customerClient,
		txMgr,
		grid,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogClient,
		txMgr,
		grid,
		log,
	)
	getDayViewUseCase := getDayViewUC.NewUseCase(appointmentRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getMonthGrid := getMonthGridHandler.NewHandler(calendarSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDayView := getDayViewHandler.NewHandler(getDayViewUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Классификация слотов дня для формы записи
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Месячная сетка для календаря выбора даты
	api.HandleFunc("/calendar/{year}/{month}", getMonthGrid.Handle).Methods(http.MethodGet)

	// Публичная self-service форма записи
	api.HandleFunc("/public/appointments", createAppointment.HandlePublic).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи сотрудником (может сразу подтвердить)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Смена статуса записи (confirm/complete/invoice)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Перенос записи (дата/услуга/мастер)
	protected.HandleFunc("/appointments/{appointmentId}/schedule", rescheduleAppointment.Handle).Methods(http.MethodPut)

	// История записей клиента
	protected.HandleFunc("/customers/{customerId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// Дневной календарь с раскладкой пересечений
	protected.HandleFunc("/day-view", getDayView.Handle).Methods(http.MethodGet)

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
