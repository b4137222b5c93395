package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/insighting"
)

// AdInsightSyncConfig representa a configuração do agendador de insights de anúncios
type AdInsightSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
	RetentionDays       int
}

// AdInsightSyncService gerencia o agendamento e execução da sincronização diária
// de insights de anúncios de uma plataforma (Meta ou Google Ads)
type AdInsightSyncService struct {
	scheduler           *gocron.Scheduler
	platform            string
	config              AdInsightSyncConfig
	appConfig           *config.Config
	venueRepo           repository.VenueRepository
	adInsightRepo       repository.AdInsightRepository
	insightService      insighting.AdInsighter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMetaInsightSyncService cria o serviço de sincronização de insights do Meta
func NewMetaInsightSyncService(
	venueRepo repository.VenueRepository,
	adInsightRepo repository.AdInsightRepository,
	insightService insighting.AdInsighter,
	appConfig *config.Config,
) *AdInsightSyncService {
	return newAdInsightSyncService(
		domain.PlatformFacebookAds,
		AdInsightSyncConfig{
			CronSchedule:        appConfig.MetaInsightSync.CronSchedule,
			LookbackDays:        appConfig.MetaInsightSync.LookbackDays,
			RequestDelaySeconds: appConfig.MetaInsightSync.RequestDelaySeconds,
			MaxConcurrentJobs:   appConfig.MetaInsightSync.MaxConcurrentJobs,
			SyncEnabled:         appConfig.MetaInsightSync.Enabled,
			RetentionDays:       appConfig.InsightRetention.DailyDays,
		},
		venueRepo, adInsightRepo, insightService, appConfig,
	)
}

// NewGoogleInsightSyncService cria o serviço de sincronização de insights do Google Ads
func NewGoogleInsightSyncService(
	venueRepo repository.VenueRepository,
	adInsightRepo repository.AdInsightRepository,
	insightService insighting.AdInsighter,
	appConfig *config.Config,
) *AdInsightSyncService {
	return newAdInsightSyncService(
		domain.PlatformGoogleAds,
		AdInsightSyncConfig{
			CronSchedule:        appConfig.GoogleInsightSync.CronSchedule,
			LookbackDays:        appConfig.GoogleInsightSync.LookbackDays,
			RequestDelaySeconds: appConfig.GoogleInsightSync.RequestDelaySeconds,
			MaxConcurrentJobs:   appConfig.GoogleInsightSync.MaxConcurrentJobs,
			SyncEnabled:         appConfig.GoogleInsightSync.Enabled,
			RetentionDays:       appConfig.InsightRetention.DailyDays,
		},
		venueRepo, adInsightRepo, insightService, appConfig,
	)
}

func newAdInsightSyncService(
	platform string,
	insightConfig AdInsightSyncConfig,
	venueRepo repository.VenueRepository,
	adInsightRepo repository.AdInsightRepository,
	insightService insighting.AdInsighter,
	appConfig *config.Config,
) *AdInsightSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"platform":              platform,
		"cron_schedule":         insightConfig.CronSchedule,
		"lookback_days":         insightConfig.LookbackDays,
		"request_delay_seconds": insightConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   insightConfig.MaxConcurrentJobs,
		"sync_enabled":          insightConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights de anúncios carregada")

	return &AdInsightSyncService{
		scheduler:      scheduler,
		platform:       platform,
		config:         insightConfig,
		appConfig:      appConfig,
		venueRepo:      venueRepo,
		adInsightRepo:  adInsightRepo,
		insightService: insightService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *AdInsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.WithField("platform", s.platform).Info("Sincronização de insights de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"platform": s.platform,
		"cron":     s.config.CronSchedule,
	}).Info("Iniciando agendador de sincronização de insights de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllInsights()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("platform", s.platform).Info("Parando agendador de sincronização de insights de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllInsights sincroniza os insights da plataforma para todos os venues ativos
func (s *AdInsightSyncService) syncAllInsights() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("platform", s.platform).Info("Sincronização de insights já em andamento, ignorando")
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

	logrus.WithField("platform", s.platform).Info("Iniciando sincronização de insights de anúncios para todos os venues ativos")

	activeVenues, err := s.getActiveVenues()
	if err != nil {
		logrus.WithError(err).WithField("platform", s.platform).Error("Erro ao buscar lista de venues para sincronização de insights")
		return
	}

	if len(activeVenues) == 0 {
		logrus.WithField("platform", s.platform).Info("Nenhum venue ativo encontrado para sincronização de insights")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"platform":   s.platform,
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para sincronização de insights de anúncios")

	s.processInsightsForDates(activeVenues, dates)

	s.cleanupOldInsights()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"platform": s.platform,
		"duration": duration.String(),
		"venues":   len(activeVenues),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de insights de anúncios concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveVenues busca os venues ativos que possuem conta na plataforma
func (s *AdInsightSyncService) getActiveVenues() ([]*domain.Venue, error) {
	activeVenues, err := s.venueRepo.List([]domain.VenueStatus{domain.VenueStatusActive})
	if err != nil {
		return nil, err
	}

	venues := make([]*domain.Venue, 0, len(activeVenues))
	for _, venue := range activeVenues {
		if venue.HasPlatform(s.platform) {
			venues = append(venues, venue)
		}
	}

	logrus.WithFields(logrus.Fields{
		"platform":      s.platform,
		"active_venues": len(venues),
	}).Info("Venues encontrados para sincronização de insights de anúncios")

	return venues, nil
}

// getDatesToProcess cria um conjunto de datas para processar, de ontem para trás
func (s *AdInsightSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1)
	}
	return dates
}

// processInsightsForDates processa insights para cada venue e todas as suas datas
func (s *AdInsightSyncService) processInsightsForDates(venues []*domain.Venue, dates []time.Time) {
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
				"platform":    s.platform,
				"venue_id":    v.ID,
				"venue_name":  v.Name,
				"total_dates": len(dates),
			}).Info("Processando insights de anúncios para venue")

			s.processVenueForAllDates(v, dates)
		}(venue)
	}

	wg.Wait()
}

// processVenueForAllDates processa os insights de um venue em todas as datas, da mais antiga à mais recente
func (s *AdInsightSyncService) processVenueForAllDates(venue *domain.Venue, dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	for _, date := range dates {
		s.processVenueInsights(venue, date)

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processVenueInsights processa os insights de um venue em uma data específica
func (s *AdInsightSyncService) processVenueInsights(venue *domain.Venue, date time.Time) {
	filters := &domain.InsightFilters{
		StartDate: &date,
		EndDate:   &date,
	}

	logrus.WithFields(logrus.Fields{
		"platform":   s.platform,
		"venue_id":   venue.ID,
		"venue_name": venue.Name,
		"date":       date.Format(time.DateOnly),
	}).Info("Obtendo insights de anúncios para venue e data")

	adMetrics, err := s.insightService.GetAdMetrics(context.Background(), venue.ID, s.platform, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": s.platform,
			"venue_id": venue.ID,
			"date":     date.Format(time.DateOnly),
			"error":    err.Error(),
		}).Error("Erro ao obter insights de anúncios para venue e data")
		return
	}

	if adMetrics == nil {
		logrus.WithFields(logrus.Fields{
			"platform": s.platform,
			"venue_id": venue.ID,
			"date":     date.Format(time.DateOnly),
		}).Warn("Nenhum insight de anúncios obtido para venue e data")
		return
	}

	entry := &domain.AdInsightEntry{
		VenueID:  venue.ID,
		Platform: s.platform,
		Date:     date,
		Metrics:  adMetrics,
	}

	if err := s.adInsightRepo.SaveOrUpdate(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": s.platform,
			"venue_id": venue.ID,
			"date":     date.Format(time.DateOnly),
			"error":    err.Error(),
		}).Error("Erro ao salvar insights de anúncios no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"platform": s.platform,
		"venue_id": venue.ID,
		"date":     date.Format(time.DateOnly),
	}).Info("Insights de anúncios salvos com sucesso para venue e data")
}

// cleanupOldInsights remove do cache os insights diários além da janela de retenção
func (s *AdInsightSyncService) cleanupOldInsights() {
	if s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.adInsightRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).WithField("platform", s.platform).Error("Erro ao remover insights de anúncios antigos")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"platform":       s.platform,
			"removed":        removed,
			"retention_days": s.config.RetentionDays,
		}).Info("Insights de anúncios antigos removidos do cache")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de insights
func (s *AdInsightSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("platform", s.platform).Info("Sincronização de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.WithField("platform", s.platform).Info("Iniciando sincronização manual de insights de anúncios")
	go s.syncAllInsights()
}

// GetStatus retorna o status atual do agendador
func (s *AdInsightSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"platform":               s.platform,
		"sync_running":           s.syncRunning,
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_retention_days":    s.config.RetentionDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
