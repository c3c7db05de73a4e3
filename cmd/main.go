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

	createAppointmentHandler "github.com/petmimo/PTG-AgendaService/internal/api/handlers/create_appointment"
	createSubscriptionHandler "github.com/petmimo/PTG-AgendaService/internal/api/handlers/create_subscription"
	deleteAppointmentHandler "github.com/petmimo/PTG-AgendaService/internal/api/handlers/delete_appointment"
	getAgendaHandler "github.com/petmimo/PTG-AgendaService/internal/api/handlers/get_agenda"
	getAppointmentHandler "github.com/petmimo/PTG-AgendaService/internal/api/handlers/get_appointment"
	getChargeGroupHandler "github.com/petmimo/PTG-AgendaService/internal/api/handlers/get_charge_group"
	getHistoryHandler "github.com/petmimo/PTG-AgendaService/internal/api/handlers/get_history"
	updateStatusHandler "github.com/petmimo/PTG-AgendaService/internal/api/handlers/update_status"
	"github.com/petmimo/PTG-AgendaService/internal/api/middleware"
	"github.com/petmimo/PTG-AgendaService/internal/config"
	"github.com/petmimo/PTG-AgendaService/internal/infra/audit"
	appointmentRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/appointment"
	catalogRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/catalog"
	subscriptionRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/subscription"
	transactionRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/transaction"
	automationClient "github.com/petmimo/PTG-AgendaService/internal/integrations/automationservice"
	appointmentsService "github.com/petmimo/PTG-AgendaService/internal/service/appointments"
	ledgerService "github.com/petmimo/PTG-AgendaService/internal/service/ledger"
	agendaViewUC "github.com/petmimo/PTG-AgendaService/internal/usecase/agenda_view"
	chargeGroupUC "github.com/petmimo/PTG-AgendaService/internal/usecase/charge_group"
	createAppointmentUC "github.com/petmimo/PTG-AgendaService/internal/usecase/create_appointment"
	createSubscriptionUC "github.com/petmimo/PTG-AgendaService/internal/usecase/create_subscription"
	"github.com/petmimo/PTG-AgendaService/pkg/dbmetrics"
	"github.com/petmimo/PTG-AgendaService/pkg/logger"
	"github.com/petmimo/PTG-AgendaService/pkg/metrics"
	"github.com/petmimo/PTG-AgendaService/pkg/simpletxmanager"
	"github.com/petmimo/PTG-AgendaService/pkg/txmanager"
)

func main() {
	// Carrega a configuração
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializa o logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PTG-AgendaService...")
	log.Info("Configuration loaded from config.toml")

	// Inicializa as métricas (se habilitadas)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Conecta no banco de dados
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configura o connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verifica a conexão
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Inicializa o cliente de hooks de automação
	automation := automationClient.NewClient(
		cfg.AutomationService.URL,
		time.Duration(cfg.AutomationService.Timeout)*time.Second,
		log,
	)
	log.Info("Automation client initialized (url=%s, timeout=%ds)",
		cfg.AutomationService.URL, cfg.AutomationService.Timeout)

	// Inicializa repositórios, auditoria e transaction manager
	// (com ou sem métricas)
	var (
		appointmentRepository  *appointmentRepo.Repository
		subscriptionRepository *subscriptionRepo.Repository
		transactionRepository  *transactionRepo.Repository
		catalogRepository      *catalogRepo.Repository
		auditWriter            *audit.Writer
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		subscriptionRepository = subscriptionRepo.NewRepository(wrappedDB)
		transactionRepository = transactionRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		auditWriter = audit.NewWriter(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		subscriptionRepository = subscriptionRepo.NewRepository(db)
		transactionRepository = transactionRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		auditWriter = audit.NewWriter(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Inicializa os use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		automation,
		auditWriter,
		log,
	)

	chargeGroupUseCase := chargeGroupUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		time.Duration(cfg.ChargeGroups.CacheTTL)*time.Second,
		log,
	)

	agendaViewUseCase := agendaViewUC.NewUseCase(appointmentRepository, log)

	// Inicializa os serviços
	ledgerSvc := ledgerService.NewService(transactionRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		automation,
		ledgerSvc,
		chargeGroupUseCase,
		log,
	)

	createSubscriptionUseCase := createSubscriptionUC.NewUseCase(
		subscriptionRepository,
		appointmentRepository,
		catalogRepository,
		ledgerSvc,
		automation,
		auditWriter,
		txMgr,
		log,
	)

	// Inicializa os handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createSubscription := createSubscriptionHandler.NewHandler(createSubscriptionUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAgenda := getAgendaHandler.NewHandler(agendaViewUseCase, log)
	getHistory := getHistoryHandler.NewHandler(agendaViewUseCase, log)
	getChargeGroup := getChargeGroupHandler.NewHandler(chargeGroupUseCase, log)

	// Configura o roteador
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(
			metricsCollector.Registry,
			promhttp.HandlerOpts{},
		)).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (sem autenticação)
	// ============================================================

	// Consulta de agendamento
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Grupo de cobrança do agendamento
	api.HandleFunc("/appointments/{appointmentId}/charge-group", getChargeGroup.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (exigem header X-User-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Agendamentos ---
	// Criação de agendamento simples ou passado
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Mudança de status (máquina de estados)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Exclusão com hook e limpeza do caixa
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Assinaturas ---
	// Criação de assinatura com geração do ciclo
	protected.HandleFunc("/subscriptions", createSubscription.Handle).Methods(http.MethodPost)

	// --- Visões da agenda ---
	// Agenda operacional (atrasados / finalizados de hoje / próximos)
	protected.HandleFunc("/agenda", getAgenda.Handle).Methods(http.MethodGet)

	// Linha do tempo do cliente
	protected.HandleFunc("/clients/{clientId}/appointments/history", getHistory.Handle).Methods(http.MethodGet)

	// Cria o servidor HTTP
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

	// Aguarda o sinal de término
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Para a coleta de métricas do connection pool
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
