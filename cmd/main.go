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

	cancelAppointmentHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/create_appointment"
	createMasterHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/create_master"
	createSalonHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/create_salon"
	deleteSalonHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/delete_salon"
	getAppointmentHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/get_calendar"
	getSalonHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/get_salon"
	getSalonMastersHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/get_salon_masters"
	getUserSettingsHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/get_user_settings"
	listSalonsHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/list_salons"
	loginHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/login"
	logoutHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/logout"
	registerHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/register"
	updateAppointmentHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/update_appointment_status"
	updateMasterHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/update_master"
	updateSalonHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/update_salon"
	updateUserSettingsHandler "github.com/olhgfsaw/salon-booking-service/internal/api/handlers/update_user_settings"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	"github.com/olhgfsaw/salon-booking-service/internal/app"
	"github.com/olhgfsaw/salon-booking-service/internal/config"
	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	appointmentRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/appointment"
	masterRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/master"
	salonRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/salon"
	settingsRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/settings"
	userRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/user"
	appointmentsService "github.com/olhgfsaw/salon-booking-service/internal/service/appointments"
	authService "github.com/olhgfsaw/salon-booking-service/internal/service/auth"
	mastersService "github.com/olhgfsaw/salon-booking-service/internal/service/masters"
	salonsService "github.com/olhgfsaw/salon-booking-service/internal/service/salons"
	settingsService "github.com/olhgfsaw/salon-booking-service/internal/service/settings"
	createAppointmentUC "github.com/olhgfsaw/salon-booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/olhgfsaw/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/olhgfsaw/salon-booking-service/pkg/dbmetrics"
	"github.com/olhgfsaw/salon-booking-service/pkg/logger"
	"github.com/olhgfsaw/salon-booking-service/pkg/metrics"
	"github.com/olhgfsaw/salon-booking-service/pkg/txmanager"
)

const migrationsPath = "migrations"

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

	log.Info("Starting salon-booking-service...")
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

	// Применяем миграции
	migrator, err := app.NewMigrator(db, migrationsPath, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository        *userRepo.Repository
		masterRepository      *masterRepo.Repository
		salonRepository       *salonRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		settingsRepository    *settingsRepo.Repository
		txMgr                 *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		masterRepository = masterRepo.NewRepository(wrappedDB)
		salonRepository = salonRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		masterRepository = masterRepo.NewRepository(db)
		salonRepository = salonRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		masterRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTL)*time.Second,
		log,
	)
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		masterRepository,
		txMgr,
		log,
	)
	masterSvc := mastersService.NewService(masterRepository, log)
	salonSvc := salonsService.NewService(salonRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		masterRepository,
		salonRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		masterRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(appointmentSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getSalonMasters := getSalonMastersHandler.NewHandler(masterSvc, log)
	createMaster := createMasterHandler.NewHandler(masterSvc, log)
	updateMaster := updateMasterHandler.NewHandler(masterSvc, log)
	createSalon := createSalonHandler.NewHandler(salonSvc, log)
	updateSalon := updateSalonHandler.NewHandler(salonSvc, log)
	deleteSalon := deleteSalonHandler.NewHandler(salonSvc, log)
	listSalons := listSalonsHandler.NewHandler(salonSvc, log)
	getSalon := getSalonHandler.NewHandler(salonSvc, log)
	getUserSettings := getUserSettingsHandler.NewHandler(settingsSvc, log)
	updateUserSettings := updateUserSettingsHandler.NewHandler(settingsSvc, log)

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

	// Регистрация нового пользователя
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	// Вход по email и паролю
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// Выход (отзыв токена)
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Записи ---
	// Календарь записей с фильтрами
	protected.HandleFunc("/appointments", getCalendar.Handle).Methods(http.MethodGet)

	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Частичное обновление записи (включая перенос времени)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Мастера ---
	// Доступные слоты мастера на дату (персонал салона)
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireRoles(log, domain.RoleAdmin, domain.RoleManager, domain.RoleMaster))
	staff.HandleFunc("/masters/{masterId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Салоны ---
	// Список салонов
	protected.HandleFunc("/salons", listSalons.Handle).Methods(http.MethodGet)

	// Салон по ID
	protected.HandleFunc("/salons/{salonId}", getSalon.Handle).Methods(http.MethodGet)

	// Мастера салона
	protected.HandleFunc("/salons/{salonId}/masters", getSalonMasters.Handle).Methods(http.MethodGet)

	// --- Настройки пользователя ---
	protected.HandleFunc("/users/{userId}/settings", getUserSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/settings", updateUserSettings.Handle).Methods(http.MethodPut)

	// --- Управление мастерами (администраторы и менеджеры) ---
	management := protected.PathPrefix("").Subrouter()
	management.Use(middleware.RequireRoles(log, domain.RoleAdmin, domain.RoleManager))
	management.HandleFunc("/masters", createMaster.Handle).Methods(http.MethodPost)
	management.HandleFunc("/masters/{masterId}", updateMaster.Handle).Methods(http.MethodPatch)

	// --- Управление салонами (только администраторы) ---
	adminOnly := protected.PathPrefix("").Subrouter()
	adminOnly.Use(middleware.RequireRoles(log, domain.RoleAdmin))
	adminOnly.HandleFunc("/salons", createSalon.Handle).Methods(http.MethodPost)
	adminOnly.HandleFunc("/salons/{salonId}", updateSalon.Handle).Methods(http.MethodPatch)
	adminOnly.HandleFunc("/salons/{salonId}", deleteSalon.Handle).Methods(http.MethodDelete)

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
