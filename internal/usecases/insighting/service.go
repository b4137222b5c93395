package insighting

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/ghl"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/googleads"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/sheets"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
)

// Service implementa a interface CombinedInsighter combinando as plataformas
// de anúncios (Meta e Google Ads) com as fontes de eventos (GoHighLevel e Sheets)
type Service struct {
	cfg                           *config.Config
	metaService                   meta.Integrator
	googleService                 googleads.Integrator
	ghlService                    ghl.Integrator
	sheetsService                 sheets.Integrator
	venueRepository               repository.VenueRepository
	adInsightRepository           repository.AdInsightRepository
	eventInsightRepository        repository.EventInsightRepository
	monthlyAdInsightRepository    repository.MonthlyAdInsightRepository
	monthlyEventInsightRepository repository.MonthlyEventInsightRepository
	useCache                      bool
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	cfg *config.Config,
	metaService meta.Integrator,
	googleService googleads.Integrator,
	ghlService ghl.Integrator,
	sheetsService sheets.Integrator,
	venueRepo repository.VenueRepository,
) CombinedInsighter {
	return &Service{
		cfg:             cfg,
		metaService:     metaService,
		googleService:   googleService,
		ghlService:      ghlService,
		sheetsService:   sheetsService,
		venueRepository: venueRepo,
		useCache:        false,
	}
}

// WithCache habilita o uso de cache diário de insights no banco de dados
func (s *Service) WithCache(
	adInsightRepo repository.AdInsightRepository,
	eventInsightRepo repository.EventInsightRepository,
	monthlyAdInsightRepo repository.MonthlyAdInsightRepository,
	monthlyEventInsightRepo repository.MonthlyEventInsightRepository,
) *Service {
	s.adInsightRepository = adInsightRepo
	s.eventInsightRepository = eventInsightRepo
	s.monthlyAdInsightRepository = monthlyAdInsightRepo
	s.monthlyEventInsightRepository = monthlyEventInsightRepo
	s.useCache = (s.adInsightRepository != nil && s.eventInsightRepository != nil)
	return s
}

func validateFilters(filters *domain.InsightFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}

func (s *Service) getVenue(venueID string) (*domain.Venue, error) {
	venue, err := s.venueRepository.GetByID(venueID)
	if err != nil {
		logrus.WithError(err).WithField("venue_id", venueID).Error("Erro ao buscar venue no repositório")
		return nil, err
	}

	if venue == nil {
		return nil, fmt.Errorf("venue não encontrado: %s", venueID)
	}

	return venue, nil
}

// adPlatforms retorna as plataformas de anúncios conectadas ao venue
func adPlatforms(venue *domain.Venue) []string {
	platforms := make([]string, 0, 2)
	for _, platform := range []string{domain.PlatformFacebookAds, domain.PlatformGoogleAds} {
		if venue.HasPlatform(platform) {
			platforms = append(platforms, platform)
		}
	}

	return platforms
}

// eventSources retorna as fontes de eventos conectadas ao venue
func eventSources(venue *domain.Venue) []string {
	sources := make([]string, 0, 2)
	for _, source := range []string{domain.PlatformGoHighLevel, domain.PlatformGoogleSheets} {
		if venue.HasPlatform(source) {
			sources = append(sources, source)
		}
	}

	return sources
}

// GetDashboard obtém todas as métricas (anúncios e eventos) de um venue específico
func (s *Service) GetDashboard(ctx context.Context, venueID string, filters *domain.InsightFilters) (*domain.DashboardResponse, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	venue, err := s.getVenue(venueID)
	if err != nil {
		return nil, err
	}

	allDates := generateDateRange(filters.StartDate, filters.EndDate)
	if len(allDates) == 0 {
		return nil, fmt.Errorf("período de datas inválido")
	}

	var (
		adMetrics    = make(map[string]*domain.AdMetrics)
		eventMetrics *domain.EventMetrics
		mutex        sync.Mutex
	)

	wg := sync.WaitGroup{}

	// Uma goroutine por plataforma de anúncios conectada
	for _, platform := range adPlatforms(venue) {
		wg.Add(1)

		go func(platform string) {
			defer wg.Done()

			metrics, err := s.getAdMetricsForPlatform(ctx, venue, platform, filters, allDates)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"venue_id": venue.ID,
					"platform": platform,
				}).Warn("Erro ao obter métricas de anúncios da plataforma")
				return
			}

			if metrics == nil {
				return
			}

			mutex.Lock()
			adMetrics[platform] = metrics
			mutex.Unlock()
		}(platform)
	}

	// Uma goroutine por fonte de eventos conectada
	for _, source := range eventSources(venue) {
		wg.Add(1)

		go func(source string) {
			defer wg.Done()

			metrics, err := s.getEventMetricsForSource(ctx, venue, source, filters, allDates)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"venue_id": venue.ID,
					"source":   source,
				}).Warn("Erro ao obter métricas de eventos da fonte")
				return
			}

			if metrics == nil {
				return
			}

			mutex.Lock()
			eventMetrics = domain.CombineEventMetrics(eventMetrics, metrics)
			mutex.Unlock()
		}(source)
	}

	wg.Wait()

	return domain.CombineInsights(venue, adMetrics, eventMetrics, filters), nil
}

// getAdMetricsForPlatform busca as métricas de anúncios de uma plataforma usando o
// cache diário quando habilitado, preenchendo as datas faltantes via API
func (s *Service) getAdMetricsForPlatform(
	ctx context.Context,
	venue *domain.Venue,
	platform string,
	filters *domain.InsightFilters,
	allDates []time.Time,
) (*domain.AdMetrics, error) {
	if !s.useCache {
		return s.fetchAdMetricsFromAPI(ctx, venue, platform, filters)
	}

	entries, err := s.getAdEntriesWithCache(ctx, venue, platform, filters, allDates)
	if err != nil {
		return nil, err
	}

	return combineAdEntries(entries), nil
}

// getAdEntriesWithCache busca insights de anúncios do banco e preenche datas faltantes via API
func (s *Service) getAdEntriesWithCache(
	ctx context.Context,
	venue *domain.Venue,
	platform string,
	filters *domain.InsightFilters,
	allDates []time.Time,
) ([]*domain.AdInsightEntry, error) {
	existingDates := make(map[string]bool)
	entries := make([]*domain.AdInsightEntry, 0, len(allDates))

	// 1. Buscar todos os insights já persistidos para o período completo
	periodEntries, err := s.adInsightRepository.GetByDateRange(venue.ID, platform, *filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"venue_id":   venue.ID,
			"platform":   platform,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Warn("Erro ao buscar insights de anúncios do banco de dados para o período")
	} else {
		for _, entry := range periodEntries {
			entries = append(entries, entry)
			existingDates[entry.Date.Format(time.DateOnly)] = true
		}
	}

	// 2. Determinar quais datas estão faltando para buscar da API
	var missingDates []time.Time
	for _, date := range allDates {
		if !existingDates[date.Format(time.DateOnly)] {
			missingDates = append(missingDates, date)
		}
	}

	if len(missingDates) == 0 {
		return entries, nil
	}

	logrus.WithFields(logrus.Fields{
		"venue_id":      venue.ID,
		"platform":      platform,
		"missing_dates": len(missingDates),
		"total_dates":   len(allDates),
		"first_missing": missingDates[0].Format(time.DateOnly),
		"last_missing":  missingDates[len(missingDates)-1].Format(time.DateOnly),
	}).Info("Buscando insights de anúncios da API para datas faltantes")

	// 3. Buscar cada data faltante na API, com limite de chamadas simultâneas
	const maxConcurrent = 5
	semaphore := make(chan struct{}, maxConcurrent)

	var fetchWg sync.WaitGroup
	var mutex sync.Mutex

	for _, date := range missingDates {
		fetchWg.Add(1)

		go func(date time.Time) {
			defer fetchWg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			dayFilters := &domain.InsightFilters{StartDate: &date, EndDate: &date}

			metrics, err := s.fetchAdMetricsFromAPI(ctx, venue, platform, dayFilters)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"venue_id": venue.ID,
					"platform": platform,
					"date":     date.Format(time.DateOnly),
				}).Warn("Erro ao obter insights de anúncios da API")
				return
			}

			if metrics == nil {
				return
			}

			entry := &domain.AdInsightEntry{
				VenueID:  venue.ID,
				Platform: platform,
				Date:     date,
				Metrics:  metrics,
			}

			// O dia corrente ainda está em andamento, não persistir
			if date.Format(time.DateOnly) != time.Now().Format(time.DateOnly) {
				if err := s.adInsightRepository.SaveOrUpdate(entry); err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"venue_id": venue.ID,
						"platform": platform,
						"date":     date.Format(time.DateOnly),
					}).Warn("Erro ao salvar insights de anúncios no banco de dados")
				}
			}

			mutex.Lock()
			entries = append(entries, entry)
			mutex.Unlock()
		}(date)
	}

	fetchWg.Wait()

	return entries, nil
}

// fetchAdMetricsFromAPI busca as métricas diretamente na API da plataforma
func (s *Service) fetchAdMetricsFromAPI(
	ctx context.Context,
	venue *domain.Venue,
	platform string,
	filters *domain.InsightFilters,
) (*domain.AdMetrics, error) {
	switch platform {
	case domain.PlatformFacebookAds:
		return s.metaService.GetAdMetrics(ctx, *venue.MetaAdAccountID, filters)
	case domain.PlatformGoogleAds:
		return s.googleService.GetAdMetrics(ctx, *venue.GoogleCustomerID, filters)
	}

	return nil, fmt.Errorf("plataforma de anúncios desconhecida: %s", platform)
}

// getEventMetricsForSource busca as métricas de eventos de uma fonte usando o
// cache diário quando habilitado
func (s *Service) getEventMetricsForSource(
	ctx context.Context,
	venue *domain.Venue,
	source string,
	filters *domain.InsightFilters,
	allDates []time.Time,
) (*domain.EventMetrics, error) {
	if !s.useCache {
		return s.fetchEventMetricsFromAPI(ctx, venue, source, filters)
	}

	entries, err := s.getEventEntriesWithCache(ctx, venue, source, filters, allDates)
	if err != nil {
		return nil, err
	}

	return combineEventEntries(entries), nil
}

func (s *Service) getEventEntriesWithCache(
	ctx context.Context,
	venue *domain.Venue,
	source string,
	filters *domain.InsightFilters,
	allDates []time.Time,
) ([]*domain.EventInsightEntry, error) {
	existingDates := make(map[string]bool)
	entries := make([]*domain.EventInsightEntry, 0, len(allDates))

	periodEntries, err := s.eventInsightRepository.GetByDateRange(venue.ID, source, *filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"venue_id":   venue.ID,
			"source":     source,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Warn("Erro ao buscar insights de eventos do banco de dados para o período")
	} else {
		for _, entry := range periodEntries {
			entries = append(entries, entry)
			existingDates[entry.Date.Format(time.DateOnly)] = true
		}
	}

	var missingDates []time.Time
	for _, date := range allDates {
		if !existingDates[date.Format(time.DateOnly)] {
			missingDates = append(missingDates, date)
		}
	}

	if len(missingDates) == 0 {
		return entries, nil
	}

	const maxConcurrent = 5
	semaphore := make(chan struct{}, maxConcurrent)

	var fetchWg sync.WaitGroup
	var mutex sync.Mutex

	for _, date := range missingDates {
		fetchWg.Add(1)

		go func(date time.Time) {
			defer fetchWg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			dayFilters := &domain.InsightFilters{StartDate: &date, EndDate: &date}

			metrics, err := s.fetchEventMetricsFromAPI(ctx, venue, source, dayFilters)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"venue_id": venue.ID,
					"source":   source,
					"date":     date.Format(time.DateOnly),
				}).Warn("Erro ao obter insights de eventos da API")
				return
			}

			if metrics == nil {
				return
			}

			entry := &domain.EventInsightEntry{
				VenueID: venue.ID,
				Source:  source,
				Date:    date,
				Metrics: metrics,
			}

			if date.Format(time.DateOnly) != time.Now().Format(time.DateOnly) {
				if err := s.eventInsightRepository.SaveOrUpdate(entry); err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"venue_id": venue.ID,
						"source":   source,
						"date":     date.Format(time.DateOnly),
					}).Warn("Erro ao salvar insights de eventos no banco de dados")
				}
			}

			mutex.Lock()
			entries = append(entries, entry)
			mutex.Unlock()
		}(date)
	}

	fetchWg.Wait()

	return entries, nil
}

// fetchEventMetricsFromAPI busca as métricas de eventos diretamente na fonte
func (s *Service) fetchEventMetricsFromAPI(
	ctx context.Context,
	venue *domain.Venue,
	source string,
	filters *domain.InsightFilters,
) (*domain.EventMetrics, error) {
	switch source {
	case domain.PlatformGoHighLevel:
		return s.ghlService.GetEventMetrics(ctx, *venue.GHLLocationID, filters)
	case domain.PlatformGoogleSheets:
		valueRange := ""
		if venue.SheetRange != nil {
			valueRange = *venue.SheetRange
		}
		return s.sheetsService.GetEventMetrics(ctx, *venue.SheetID, valueRange, filters)
	}

	return nil, fmt.Errorf("fonte de eventos desconhecida: %s", source)
}

// combineAdEntries combina múltiplas entradas diárias de anúncios em uma única métrica
func combineAdEntries(entries []*domain.AdInsightEntry) *domain.AdMetrics {
	if len(entries) == 0 {
		return nil
	}

	var combined *domain.AdMetrics
	for _, entry := range entries {
		if entry.Metrics == nil {
			continue
		}

		combined = domain.CombineAdMetrics(combined, entry.Metrics)
	}

	return combined
}

// combineEventEntries combina múltiplas entradas diárias de eventos em uma única métrica
func combineEventEntries(entries []*domain.EventInsightEntry) *domain.EventMetrics {
	if len(entries) == 0 {
		return nil
	}

	var combined *domain.EventMetrics
	for _, entry := range entries {
		if entry.Metrics == nil {
			continue
		}

		combined = domain.CombineEventMetrics(combined, entry.Metrics)
	}

	return combined
}

// Métodos para a interface AdInsighter

// GetAdMetrics obtém as métricas de anúncios de uma plataforma específica, direto da API
func (s *Service) GetAdMetrics(ctx context.Context, venueID, platform string, filters *domain.InsightFilters) (*domain.AdMetrics, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	venue, err := s.getVenue(venueID)
	if err != nil {
		return nil, err
	}

	if !venue.HasPlatform(platform) {
		return nil, fmt.Errorf("venue %s não possui conta conectada na plataforma %s", venueID, platform)
	}

	logrus.WithFields(logrus.Fields{
		"venue_id":   venueID,
		"platform":   platform,
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDate.Format(time.DateOnly),
	}).Info("Obtendo métricas de anúncios da plataforma")

	return s.fetchAdMetricsFromAPI(ctx, venue, platform, filters)
}

// Métodos para a interface EventInsighter

// GetEventMetrics obtém as métricas de eventos combinadas de todas as fontes do venue
func (s *Service) GetEventMetrics(ctx context.Context, venueID string, filters *domain.InsightFilters) (*domain.EventMetrics, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	venue, err := s.getVenue(venueID)
	if err != nil {
		return nil, err
	}

	var combined *domain.EventMetrics
	for _, source := range eventSources(venue) {
		metrics, err := s.fetchEventMetricsFromAPI(ctx, venue, source, filters)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"venue_id": venueID,
				"source":   source,
			}).Warn("Erro ao obter métricas de eventos da fonte")
			continue
		}

		combined = domain.CombineEventMetrics(combined, metrics)
	}

	return combined, nil
}

// GetDemographics obtém a distribuição demográfica combinada das plataformas de anúncios
func (s *Service) GetDemographics(ctx context.Context, venueID string, filters *domain.InsightFilters) (*domain.DemographicBreakdown, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	venue, err := s.getVenue(venueID)
	if err != nil {
		return nil, err
	}

	var (
		cells []domain.DemographicCell
		mutex sync.Mutex
	)

	wg := sync.WaitGroup{}

	if venue.HasPlatform(domain.PlatformFacebookAds) {
		wg.Add(1)

		go func() {
			defer wg.Done()

			metaCells, err := s.metaService.GetDemographics(ctx, *venue.MetaAdAccountID, filters)
			if err != nil {
				logrus.WithError(err).WithField("venue_id", venueID).Warn("Erro ao obter demografia do Meta")
				return
			}

			mutex.Lock()
			cells = append(cells, metaCells...)
			mutex.Unlock()
		}()
	}

	if venue.HasPlatform(domain.PlatformGoogleAds) {
		wg.Add(1)

		go func() {
			defer wg.Done()

			googleCells, err := s.googleService.GetDemographics(ctx, *venue.GoogleCustomerID, filters)
			if err != nil {
				logrus.WithError(err).WithField("venue_id", venueID).Warn("Erro ao obter demografia do Google Ads")
				return
			}

			mutex.Lock()
			cells = append(cells, googleCells...)
			mutex.Unlock()
		}()
	}

	wg.Wait()

	return domain.BuildDemographicBreakdown(cells), nil
}

// GetPlatformBreakdown obtém a distribuição de veiculação por plataforma de publicação.
// As plataformas de publicação do Meta (facebook, instagram, audience_network) vêm do
// breakdown da API; o Google Ads entra como uma plataforma única
func (s *Service) GetPlatformBreakdown(ctx context.Context, venueID string, filters *domain.InsightFilters) (*domain.PlatformBreakdown, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	venue, err := s.getVenue(venueID)
	if err != nil {
		return nil, err
	}

	var (
		stats []domain.PlatformStat
		mutex sync.Mutex
	)

	wg := sync.WaitGroup{}

	if venue.HasPlatform(domain.PlatformFacebookAds) {
		wg.Add(1)

		go func() {
			defer wg.Done()

			metaStats, err := s.metaService.GetPlatformStats(ctx, *venue.MetaAdAccountID, filters)
			if err != nil {
				logrus.WithError(err).WithField("venue_id", venueID).Warn("Erro ao obter veiculação por plataforma do Meta")
				return
			}

			mutex.Lock()
			stats = append(stats, metaStats...)
			mutex.Unlock()
		}()
	}

	if venue.HasPlatform(domain.PlatformGoogleAds) {
		wg.Add(1)

		go func() {
			defer wg.Done()

			metrics, err := s.googleService.GetAdMetrics(ctx, *venue.GoogleCustomerID, filters)
			if err != nil {
				logrus.WithError(err).WithField("venue_id", venueID).Warn("Erro ao obter métricas do Google Ads")
				return
			}

			if metrics == nil || metrics.IsEmpty() {
				return
			}

			mutex.Lock()
			stats = append(stats, domain.PlatformStat{
				Platform:    "google",
				Impressions: metrics.Impressions,
				Clicks:      metrics.Clicks,
				Spend:       metrics.Spend,
			})
			mutex.Unlock()
		}()
	}

	wg.Wait()

	return domain.BuildPlatformBreakdown(stats), nil
}

// GetMonthlyInsightsByPeriod obtém os insights mensais de todos os venues em um período específico
func (s *Service) GetMonthlyInsightsByPeriod(period string) ([]*domain.MonthlyInsightReport, error) {
	if s.monthlyAdInsightRepository == nil || s.monthlyEventInsightRepository == nil {
		return nil, fmt.Errorf("repositórios de insights mensais não estão disponíveis")
	}

	activeVenues, err := s.venueRepository.List([]domain.VenueStatus{domain.VenueStatusActive})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar venues: %w", err)
	}

	t := parseMonthYearToPeriod(period)

	reports := make([]*domain.MonthlyInsightReport, 0, len(activeVenues))

	for _, venue := range activeVenues {
		adInsights, err := s.monthlyAdInsightRepository.GetByVenueAndPeriod(venue.ID, t)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"venue_id": venue.ID,
				"period":   period,
			}).Error("erro ao buscar insights mensais de anúncios")
			continue
		}

		eventInsight, err := s.monthlyEventInsightRepository.GetByVenueAndPeriod(venue.ID, t)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"venue_id": venue.ID,
				"period":   period,
			}).Error("erro ao buscar insights mensais de eventos")
		}

		if len(adInsights) == 0 && eventInsight == nil {
			continue
		}

		report := &domain.MonthlyInsightReport{
			VenueID:   venue.ID,
			VenueName: venue.Name,
			Period:    period,
		}

		if len(adInsights) > 0 {
			report.AdMetrics = make(map[string]*domain.AdMetrics, len(adInsights))

			var total *domain.AdMetrics
			for _, insight := range adInsights {
				report.AdMetrics[insight.Platform] = insight.Metrics
				total = domain.CombineAdMetrics(total, insight.Metrics)
			}
			report.TotalMetrics = total
		}

		if eventInsight != nil {
			report.EventMetrics = eventInsight.Metrics
		}

		if report.TotalMetrics != nil && report.EventMetrics != nil {
			report.ResultMetrics = domain.CalculateResultMetrics(report.TotalMetrics, report.EventMetrics)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// parseMonthYearToPeriod converte um período no formato "mm-yyyy" para time.Time
func parseMonthYearToPeriod(period string) time.Time {
	t, err := time.Parse("01-2006", period)
	if err != nil {
		logrus.WithError(err).WithField("period", period).Error("erro ao converter período para data")
		return time.Now()
	}
	return t
}

// GetAvailableMonthlyPeriods retorna os períodos (meses e anos) disponíveis nas tabelas de insights mensais
func (s *Service) GetAvailableMonthlyPeriods() (*domain.AvailablePeriods, error) {
	if s.monthlyAdInsightRepository == nil || s.monthlyEventInsightRepository == nil {
		return nil, fmt.Errorf("repositórios de insights mensais não estão disponíveis")
	}

	adPeriods, err := s.monthlyAdInsightRepository.GetAllPeriods()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar períodos de insights de anúncios: %w", err)
	}

	eventPeriods, err := s.monthlyEventInsightRepository.GetAllPeriods()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar períodos de insights de eventos: %w", err)
	}

	periodMap := make(map[string]bool)
	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	collect := func(periods []string) {
		for _, period := range periods {
			periodMap[period] = true

			// Extrair mês e ano do período (formato mm-yyyy)
			if len(period) == 7 {
				monthMap[period[:2]] = true
				yearMap[period[3:]] = true
			}
		}
	}

	collect(adPeriods)
	collect(eventPeriods)

	periods := make([]string, 0, len(periodMap))
	for period := range periodMap {
		periods = append(periods, period)
	}

	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}

	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}

	sort.Strings(periods)
	sort.Strings(years)
	sort.Strings(months)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}

// generateDateRange gera um slice de datas entre startDate e endDate (inclusive)
func generateDateRange(startDate, endDate *time.Time) []time.Time {
	if startDate == nil || endDate == nil || startDate.After(*endDate) {
		return []time.Time{}
	}

	var dates []time.Time

	currentDate := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	endDateTime := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())

	for !currentDate.After(endDateTime) {
		dates = append(dates, currentDate)
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return dates
}
