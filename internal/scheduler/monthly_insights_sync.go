package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/insighting"
)

// MonthlyInsightsSyncConfig representa a configuração do agendador de insights mensais
type MonthlyInsightsSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
	MonthLookBack       int
	RetentionDays       int
	EventRetentionDays  int
}

// MonthlyInsightsSyncService consolida as métricas do mês fechado de cada venue
// nas tabelas mensais usadas pelos relatórios
type MonthlyInsightsSyncService struct {
	scheduler               *gocron.Scheduler
	config                  MonthlyInsightsSyncConfig
	appConfig               *config.Config
	venueRepo               repository.VenueRepository
	monthlyAdInsightRepo    repository.MonthlyAdInsightRepository
	monthlyEventInsightRepo repository.MonthlyEventInsightRepository
	eventInsightRepo        repository.EventInsightRepository
	adInsighter             insighting.AdInsighter
	eventInsighter          insighting.EventInsighter
	syncRunning             bool
	syncMutex               sync.Mutex
	lastSyncStartedAt       time.Time
	lastSyncCompletedAt     time.Time
}

// NewMonthlyInsightsSyncService cria uma nova instância do serviço de sincronização mensal de insights
func NewMonthlyInsightsSyncService(
	venueRepo repository.VenueRepository,
	monthlyAdInsightRepo repository.MonthlyAdInsightRepository,
	monthlyEventInsightRepo repository.MonthlyEventInsightRepository,
	eventInsightRepo repository.EventInsightRepository,
	adInsighter insighting.AdInsighter,
	eventInsighter insighting.EventInsighter,
	appConfig *config.Config,
) *MonthlyInsightsSyncService {
	insightConfig := MonthlyInsightsSyncConfig{
		CronSchedule:        appConfig.MonthlyInsightsSync.CronSchedule,
		RequestDelaySeconds: appConfig.MonthlyInsightsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MonthlyInsightsSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.MonthlyInsightsSync.Enabled,
		MonthLookBack:       appConfig.MonthlyInsightsSync.MonthLookBack,
		RetentionDays:       appConfig.InsightRetention.MonthlyDays,
		EventRetentionDays:  appConfig.InsightRetention.DailyDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         insightConfig.CronSchedule,
		"request_delay_seconds": insightConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   insightConfig.MaxConcurrentJobs,
		"sync_enabled":          insightConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights mensais carregada")

	return &MonthlyInsightsSyncService{
		scheduler:               scheduler,
		config:                  insightConfig,
		appConfig:               appConfig,
		venueRepo:               venueRepo,
		monthlyAdInsightRepo:    monthlyAdInsightRepo,
		monthlyEventInsightRepo: monthlyEventInsightRepo,
		eventInsightRepo:        eventInsightRepo,
		adInsighter:             adInsighter,
		eventInsighter:          eventInsighter,
		syncRunning:             false,
	}
}

// Start inicia o agendador
func (s *MonthlyInsightsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização mensal de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização mensal de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyInsights()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização mensal de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização mensal de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyInsights consolida os insights mensais de todos os venues ativos
func (s *MonthlyInsightsSyncService) syncMonthlyInsights() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização mensal de insights já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização mensal de insights para todos os venues ativos")

	activeVenues, err := s.venueRepo.List([]domain.VenueStatus{domain.VenueStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de venues para sincronização mensal de insights")
		return
	}

	if len(activeVenues) == 0 {
		logrus.Info("Nenhum venue ativo encontrado para sincronização mensal de insights")
		return
	}

	for i := 1; i <= s.config.MonthLookBack; i++ {
		now := time.Now()
		month := now.AddDate(0, -i, 0)
		firstDayOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
		lastDayOfMonth := time.Date(month.Year(), month.Month()+1, 1, 0, 0, 0, 0, month.Location()).AddDate(0, 0, -1)

		logrus.WithFields(logrus.Fields{
			"start_date": firstDayOfMonth.Format(time.DateOnly),
			"end_date":   lastDayOfMonth.Format(time.DateOnly),
		}).Info("Período para sincronização mensal de insights")

		s.processMonthlyInsights(activeVenues, firstDayOfMonth, lastDayOfMonth)
	}

	s.cleanupOldInsights()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"venues":   len(activeVenues),
	}).Info("Sincronização mensal de insights concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processMonthlyInsights processa os insights mensais para todos os venues
func (s *MonthlyInsightsSyncService) processMonthlyInsights(venues []*domain.Venue, startDate, endDate time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, venue := range venues {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(v *domain.Venue) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"venue_id":   v.ID,
				"venue_name": v.Name,
				"start_date": startDate.Format(time.DateOnly),
				"end_date":   endDate.Format(time.DateOnly),
			}).Info("Processando insights mensais para venue")

			filters := &domain.InsightFilters{
				StartDate: &startDate,
				EndDate:   &endDate,
			}

			for _, platform := range []string{domain.PlatformFacebookAds, domain.PlatformGoogleAds} {
				if !v.HasPlatform(platform) {
					continue
				}

				if err := s.processMonthlyAdMetrics(v, platform, filters); err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"venue_id":   v.ID,
						"platform":   platform,
						"start_date": startDate.Format(time.DateOnly),
						"end_date":   endDate.Format(time.DateOnly),
					}).Error("Erro ao processar métricas mensais de anúncios")
				}
			}

			if v.HasPlatform(domain.PlatformGoHighLevel) || v.HasPlatform(domain.PlatformGoogleSheets) {
				if err := s.processMonthlyEventMetrics(v, filters); err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"venue_id":   v.ID,
						"start_date": startDate.Format(time.DateOnly),
						"end_date":   endDate.Format(time.DateOnly),
					}).Error("Erro ao processar métricas mensais de eventos")
				}
			}

			// Aguardar antes do próximo venue para evitar excesso de requisições
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(venue)
	}

	wg.Wait()
}

// processMonthlyAdMetrics consolida as métricas de anúncios do mês para um venue e plataforma
func (s *MonthlyInsightsSyncService) processMonthlyAdMetrics(venue *domain.Venue, platform string, filters *domain.InsightFilters) error {
	adMetrics, err := s.adInsighter.GetAdMetrics(context.Background(), venue.ID, platform, filters)
	if err != nil {
		return fmt.Errorf("erro ao obter métricas de anúncios: %w", err)
	}

	if adMetrics == nil {
		return fmt.Errorf("nenhuma métrica de anúncios encontrada")
	}

	period := repository.FormatPeriod(*filters.StartDate)

	monthlyInsight := &domain.MonthlyAdInsight{
		VenueID:  venue.ID,
		Platform: platform,
		Period:   period,
		Metrics:  adMetrics,
	}

	if err := s.monthlyAdInsightRepo.SaveOrUpdate(monthlyInsight); err != nil {
		return fmt.Errorf("erro ao salvar métricas mensais de anúncios: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"venue_id": venue.ID,
		"platform": platform,
		"period":   period,
	}).Info("Métricas mensais de anúncios salvas com sucesso")

	return nil
}

// processMonthlyEventMetrics consolida as métricas de eventos do mês para um venue
func (s *MonthlyInsightsSyncService) processMonthlyEventMetrics(venue *domain.Venue, filters *domain.InsightFilters) error {
	eventMetrics, err := s.eventInsighter.GetEventMetrics(context.Background(), venue.ID, filters)
	if err != nil {
		return fmt.Errorf("erro ao obter métricas de eventos: %w", err)
	}

	if eventMetrics == nil {
		return fmt.Errorf("nenhuma métrica de eventos encontrada")
	}

	period := repository.FormatPeriod(*filters.StartDate)

	monthlyInsight := &domain.MonthlyEventInsight{
		VenueID: venue.ID,
		Period:  period,
		Metrics: eventMetrics,
	}

	if err := s.monthlyEventInsightRepo.SaveOrUpdate(monthlyInsight); err != nil {
		return fmt.Errorf("erro ao salvar métricas mensais de eventos: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"venue_id": venue.ID,
		"period":   period,
	}).Info("Métricas mensais de eventos salvas com sucesso")

	return nil
}

// cleanupOldInsights remove os consolidados mensais e o cache diário de
// eventos além das janelas de retenção
func (s *MonthlyInsightsSyncService) cleanupOldInsights() {
	if s.config.RetentionDays > 0 {
		if removed, err := s.monthlyAdInsightRepo.DeleteOlderThan(s.config.RetentionDays); err != nil {
			logrus.WithError(err).Error("Erro ao remover insights mensais de anúncios antigos")
		} else if removed > 0 {
			logrus.WithFields(logrus.Fields{
				"removed":        removed,
				"retention_days": s.config.RetentionDays,
			}).Info("Insights mensais de anúncios antigos removidos")
		}

		if removed, err := s.monthlyEventInsightRepo.DeleteOlderThan(s.config.RetentionDays); err != nil {
			logrus.WithError(err).Error("Erro ao remover insights mensais de eventos antigos")
		} else if removed > 0 {
			logrus.WithFields(logrus.Fields{
				"removed":        removed,
				"retention_days": s.config.RetentionDays,
			}).Info("Insights mensais de eventos antigos removidos")
		}
	}

	if s.config.EventRetentionDays > 0 {
		if removed, err := s.eventInsightRepo.DeleteOlderThan(s.config.EventRetentionDays); err != nil {
			logrus.WithError(err).Error("Erro ao remover cache diário de eventos antigo")
		} else if removed > 0 {
			logrus.WithFields(logrus.Fields{
				"removed":        removed,
				"retention_days": s.config.EventRetentionDays,
			}).Info("Cache diário de eventos antigo removido")
		}
	}
}

// TriggerManualSync inicia manualmente uma sincronização de insights mensais
func (s *MonthlyInsightsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização mensal de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de insights mensais")
	go s.syncMonthlyInsights()
}

// GetStatus retorna o status atual da sincronização
func (s *MonthlyInsightsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"sync_month_lookback":    s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
