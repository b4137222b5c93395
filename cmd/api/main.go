package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/database/postgres"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/ghl"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/ghl/ghlclient"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/googleads"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/googleads/googleclient"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/metaclient"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/oauthclient"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/sheets"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository"
	"github.com/stevetowers08/reporting-workspace-api/internal/api"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/scheduler"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/authenticating"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/insighting"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/integrating"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/venue"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	venueRepo := repository.NewVenueRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	integrationRepo := repository.NewIntegrationRepository(pgConn)
	adInsightRepo := repository.NewAdInsightRepository(pgConn)
	eventInsightRepo := repository.NewEventInsightRepository(pgConn)
	monthlyAdInsightRepo := repository.NewMonthlyAdInsightRepository(pgConn)
	monthlyEventInsightRepo := repository.NewMonthlyEventInsightRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, venueRepo, cfg)

	// Cliente HTTP resiliente compartilhado pelos integradores
	req := requester.New(requester.Options{
		Timeout:     time.Duration(cfg.Requester.TimeoutSeconds) * time.Second,
		MaxAttempts: cfg.Requester.MaxAttempts,
		BackoffBase: time.Duration(cfg.Requester.BackoffBaseMs) * time.Millisecond,
		CacheTTL:    time.Duration(cfg.Requester.CacheTTLSeconds) * time.Second,
	})

	metaTokenManager := metaclient.NewTokenManager(cfg, req, integrationRepo)
	metaTokenManager.InitToken(ctx)
	// O loop de renovação bloqueia até o contexto encerrar
	go metaTokenManager.StartAutoRefresh(ctx)
	defer metaTokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, req, metaTokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	googleTokenManager := oauthclient.NewTokenManager(cfg, req, integrationRepo, domain.PlatformGoogleAds)
	googleClient := googleclient.NewClient(cfg, req, googleTokenManager)
	googleIntegrator := googleads.New(cfg, googleClient)

	ghlTokenManager := oauthclient.NewTokenManager(cfg, req, integrationRepo, domain.PlatformGoHighLevel)
	ghlClient := ghlclient.NewClient(cfg, req, ghlTokenManager)
	ghlIntegrator := ghl.New(cfg, ghlClient)

	sheetsTokenManager := oauthclient.NewTokenManager(cfg, req, integrationRepo, domain.PlatformGoogleSheets)
	sheetsClient := sheetsclient.NewClient(cfg, req, sheetsTokenManager)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	venueService := venue.NewService(venueRepo, metaIntegrator, googleIntegrator, cfg)
	integrationService := integrating.NewService(cfg, integrationRepo, req)

	// Inicializa o serviço de insights com suporte a cache
	insightService := insighting.NewService(
		cfg,
		metaIntegrator,
		googleIntegrator,
		ghlIntegrator,
		sheetsIntegrator,
		venueRepo,
	)
	cachedInsightService := insightService.(*insighting.Service).WithCache(
		adInsightRepo,
		eventInsightRepo,
		monthlyAdInsightRepo,
		monthlyEventInsightRepo,
	)

	// Inicializa os agendadores de sincronização separados
	metaInsightSyncService := scheduler.NewMetaInsightSyncService(
		venueRepo,
		adInsightRepo,
		cachedInsightService, // Implementa AdInsighter
		cfg,
	)

	googleInsightSyncService := scheduler.NewGoogleInsightSyncService(
		venueRepo,
		adInsightRepo,
		cachedInsightService, // Implementa AdInsighter
		cfg,
	)

	// Inicializa o agendador de sincronização mensal
	monthlyInsightsSyncService := scheduler.NewMonthlyInsightsSyncService(
		venueRepo,
		monthlyAdInsightRepo,
		monthlyEventInsightRepo,
		eventInsightRepo,
		cachedInsightService, // Implementa AdInsighter
		cachedInsightService, // Implementa EventInsighter
		cfg,
	)

	// Inicia os agendadores em background
	if err := metaInsightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights do Meta")
	} else {
		logrus.Info("Agendador de sincronização de insights do Meta iniciado com sucesso")
	}

	if err := googleInsightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights do Google Ads")
	} else {
		logrus.Info("Agendador de sincronização de insights do Google Ads iniciado com sucesso")
	}

	if err := monthlyInsightsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização mensal de insights")
	} else {
		logrus.Info("Agendador de sincronização mensal de insights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedInsightService,
		venueService,
		integrationService,
		authenticator,
		metaInsightSyncService,     // Serviço de sincronização Meta
		googleInsightSyncService,   // Serviço de sincronização Google Ads
		monthlyInsightsSyncService, // Serviço de sincronização mensal
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
