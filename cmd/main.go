package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
	"github.com/oklog/run"

	checkAvailabilityHandler "github.com/m04kA/SMC-ReservationClient/internal/api/handlers/check_availability"
	closeWorkflowHandler "github.com/m04kA/SMC-ReservationClient/internal/api/handlers/close_workflow"
	getAccommodationHandler "github.com/m04kA/SMC-ReservationClient/internal/api/handlers/get_accommodation"
	getServiceEndpointsHandler "github.com/m04kA/SMC-ReservationClient/internal/api/handlers/get_service_endpoints"
	getWorkflowHandler "github.com/m04kA/SMC-ReservationClient/internal/api/handlers/get_workflow"
	openWorkflowHandler "github.com/m04kA/SMC-ReservationClient/internal/api/handlers/open_workflow"
	submitReservationHandler "github.com/m04kA/SMC-ReservationClient/internal/api/handlers/submit_reservation"
	"github.com/m04kA/SMC-ReservationClient/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationClient/internal/config"
	accommodationServiceClient "github.com/m04kA/SMC-ReservationClient/internal/integrations/accommodationservice"
	reservationServiceClient "github.com/m04kA/SMC-ReservationClient/internal/integrations/reservationservice"
	workflowsService "github.com/m04kA/SMC-ReservationClient/internal/service/workflows"
	getAccommodationUC "github.com/m04kA/SMC-ReservationClient/internal/usecase/get_accommodation"
	"github.com/m04kA/SMC-ReservationClient/internal/usecase/reservation_workflow"
	"github.com/m04kA/SMC-ReservationClient/pkg/logger"
	"github.com/m04kA/SMC-ReservationClient/pkg/metrics"
	"github.com/m04kA/SMC-ReservationClient/pkg/tracing"
)

func main() {
	// Загружаем конфигурацию (.env, затем TOML)
	cfg, err := config.Load(config.DefaultPath)
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

	log.Info("Starting SMC-ReservationClient...")

	// Трассировка
	shutdownTracing, err := tracing.Init(cfg.Tracing.Enabled, cfg.Tracing.PrettyPrint)
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Error("Failed to flush traces: %v", err)
		}
	}()

	// Метрики (если включены)
	var (
		collector        metrics.Collector = metrics.Nop{}
		metricsCollector *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		collector = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	reservationClient := reservationServiceClient.NewClient(
		cfg.Services.Reservation.URL,
		cfg.Services.Reservation.TimeoutDuration(),
		log,
		collector,
	)
	accommodationClient := accommodationServiceClient.NewClient(
		cfg.Services.Accommodation.URL,
		cfg.Services.Accommodation.TimeoutDuration(),
		log,
		collector,
	)
	log.Info("Integration clients initialized (ReservationService=%s, AccommodationService=%s)",
		cfg.Services.Reservation.URL, cfg.Services.Accommodation.URL)

	// Сервисы и use cases
	workflowSvc := workflowsService.NewService(
		reservationClient,
		clock.New(),
		workflowsService.Config{
			Workflow: reservation_workflow.Config{
				FeedbackWindow: cfg.Workflow.FeedbackWindow(),
				CheckOutTime:   cfg.Workflow.CheckOutTime,
			},
			SessionTTL: cfg.Workflow.SessionTTL(),
		},
		log,
		collector,
	)
	getAccommodationUseCase := getAccommodationUC.NewUseCase(accommodationClient, log)

	// Инициализируем handlers
	openWorkflow := openWorkflowHandler.NewHandler(workflowSvc, log)
	getWorkflow := getWorkflowHandler.NewHandler(workflowSvc, log)
	submitReservation := submitReservationHandler.NewHandler(workflowSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(workflowSvc, log)
	closeWorkflow := closeWorkflowHandler.NewHandler(workflowSvc, log)
	getAccommodation := getAccommodationHandler.NewHandler(getAccommodationUseCase, log)
	getServiceEndpoints := getServiceEndpointsHandler.NewHandler(cfg.Services)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (токен опционален)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Карточка размещения
	public.HandleFunc("/accommodations/{accommodationId}", getAccommodation.Handle).Methods(http.MethodGet)

	// Адреса backend-сервисов для браузерного приложения
	public.HandleFunc("/config/endpoints", getServiceEndpoints.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/accommodations/{accommodationId}/workflows", openWorkflow.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/workflows/{workflowId}", getWorkflow.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/workflows/{workflowId}/reservation", submitReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/workflows/{workflowId}/availability", checkAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/workflows/{workflowId}", closeWorkflow.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.Server.CORSOrigins)(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	g := &run.Group{}

	// HTTP сервер
	g.Add(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func(error) {
		log.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server forced to shutdown: %v", err)
		}
	})

	// Очистка брошенных сессий
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	g.Add(func() error {
		return workflowSvc.RunSweeper(sweepCtx, cfg.Workflow.SweepInterval)
	}, func(error) {
		stopSweep()
	})

	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	err = g.Run()

	// Закрываем все workflow: таймеры сброса отменяются
	workflowSvc.CloseAll()

	var signalErr run.SignalError
	if err != nil && !errors.As(err, &signalErr) {
		log.Fatal("Service stopped with error: %v", err)
	}

	log.Info("Server stopped gracefully")
}
