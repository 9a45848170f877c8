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

	blockDateRangeHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/block_date_range"
	checkAvailabilityHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/check_availability"
	checkDateRangeHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/check_date_range"
	deleteOverrideHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/delete_override"
	getCalendarHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/get_calendar"
	getPriceQuoteHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/get_price_quote"
	getStayConstraintsHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/get_stay_constraints"
	getSummaryHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/get_summary"
	suggestDatesHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/suggest_dates"
	upsertOverrideHandler "github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers/upsert_override"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/middleware"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/config"
	bookingRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/booking"
	overrideRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/override"
	pricingRuleRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/pricingrule"
	roomTypeRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/roomtype"
	pricingServiceClient "github.com/Vzyree-619/FindoTrip-sub006/internal/integrations/pricingservice"
	availabilityService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability"
	overridesService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/overrides"
	stayRulesService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/stayrules"
	checkAvailabilityUC "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/check_availability"
	checkDateRangeUC "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/check_date_range"
	getCalendarUC "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_calendar"
	getPriceQuoteUC "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_price_quote"
	getStayConstraintsUC "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_stay_constraints"
	getSummaryUC "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_summary"
	suggestDatesUC "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/suggest_dates"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/dbmetrics"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/logger"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/metrics"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/simpletxmanager"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/txmanager"
)

// TxManager - интерфейс для транзакционного менеджера
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting FindoTrip AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиент внешнего прайсинг-движка
	pricingClient := pricingServiceClient.NewClient(
		cfg.PricingService.URL,
		time.Duration(cfg.PricingService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PricingService=%s, timeout=%ds)",
		cfg.PricingService.URL, cfg.PricingService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		roomTypeRepository    *roomTypeRepo.Repository
		overrideRepository    *overrideRepo.Repository
		bookingRepository     *bookingRepo.Repository
		pricingRuleRepository *pricingRuleRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomTypeRepository = roomTypeRepo.NewRepository(wrappedDB)
		overrideRepository = overrideRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		pricingRuleRepository = pricingRuleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomTypeRepository = roomTypeRepo.NewRepository(db)
		overrideRepository = overrideRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		pricingRuleRepository = pricingRuleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		roomTypeRepository,
		overrideRepository,
		bookingRepository,
		log,
	)
	stayRulesSvc := stayRulesService.NewService(
		roomTypeRepository,
		overrideRepository,
		pricingRuleRepository,
		log,
	)
	overridesSvc := overridesService.NewService(
		roomTypeRepository,
		overrideRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(availabilitySvc, stayRulesSvc, log)
	checkDateRangeUseCase := checkDateRangeUC.NewUseCase(availabilitySvc, stayRulesSvc, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(availabilitySvc, log)
	suggestDatesUseCase := suggestDatesUC.NewUseCase(availabilitySvc, stayRulesSvc, log)
	getSummaryUseCase := getSummaryUC.NewUseCase(availabilitySvc, log)
	getStayConstraintsUseCase := getStayConstraintsUC.NewUseCase(stayRulesSvc, log)
	getPriceQuoteUseCase := getPriceQuoteUC.NewUseCase(availabilitySvc, pricingClient, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	checkDateRange := checkDateRangeHandler.NewHandler(checkDateRangeUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	suggestDates := suggestDatesHandler.NewHandler(suggestDatesUseCase, log)
	getSummary := getSummaryHandler.NewHandler(getSummaryUseCase, log)
	getStayConstraints := getStayConstraintsHandler.NewHandler(getStayConstraintsUseCase, log)
	getPriceQuote := getPriceQuoteHandler.NewHandler(getPriceQuoteUseCase, log)
	upsertOverride := upsertOverrideHandler.NewHandler(overridesSvc, log)
	deleteOverride := deleteOverrideHandler.NewHandler(overridesSvc, log)
	blockDateRange := blockDateRangeHandler.NewHandler(overridesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности диапазона дат
	api.HandleFunc("/room-types/{roomTypeId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Проверка диапазона с полным списком конфликтов
	api.HandleFunc("/room-types/{roomTypeId}/availability/range",
		checkDateRange.Handle).Methods(http.MethodGet)

	// Посуточный календарь доступности
	api.HandleFunc("/room-types/{roomTypeId}/calendar",
		getCalendar.Handle).Methods(http.MethodGet)

	// Альтернативные окна дат
	api.HandleFunc("/room-types/{roomTypeId}/suggestions",
		suggestDates.Handle).Methods(http.MethodGet)

	// Сводка доступности по диапазону
	api.HandleFunc("/room-types/{roomTypeId}/summary",
		getSummary.Handle).Methods(http.MethodGet)

	// Ограничения длительности проживания на дату
	api.HandleFunc("/room-types/{roomTypeId}/stay-constraints",
		getStayConstraints.Handle).Methods(http.MethodGet)

	// Расчет стоимости проживания
	api.HandleFunc("/room-types/{roomTypeId}/quote",
		getPriceQuote.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление переопределениями дат (для владельцев объектов) ---
	// Блокировка диапазона дат
	protected.HandleFunc("/room-types/{roomTypeId}/overrides/block-range",
		blockDateRange.Handle).Methods(http.MethodPost)

	// Создание или обновление переопределения на дату
	protected.HandleFunc("/room-types/{roomTypeId}/overrides/{date}",
		upsertOverride.Handle).Methods(http.MethodPut)

	// Удаление переопределения
	protected.HandleFunc("/room-types/{roomTypeId}/overrides/{date}",
		deleteOverride.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
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
