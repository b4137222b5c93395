package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	ghlmocks "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/ghl/mocks"
	googlemocks "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/googleads/mocks"
	metamocks "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/mocks"
	sheetsmocks "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/sheets/mocks"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository/mocks"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)
	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockGoogle := googlemocks.NewMockIntegrator(ctrl)
	mockGHL := ghlmocks.NewMockIntegrator(ctrl)
	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)

	// Service sem cache: todas as métricas vêm direto das APIs
	service := &Service{
		metaService:     mockMeta,
		googleService:   mockGoogle,
		ghlService:      mockGHL,
		sheetsService:   mockSheets,
		venueRepository: mockVenueRepo,
		useCache:        false,
	}

	startDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	filters := &domain.InsightFilters{
		StartDate: timePtr(startDate),
		EndDate:   timePtr(endDate),
	}

	tests := []struct {
		name     string
		venueID  string
		filters  *domain.InsightFilters
		setup    func()
		validate func(t *testing.T, result *domain.DashboardResponse, err error)
	}{
		{
			name:    "Venue com Meta e GoHighLevel - deve combinar anúncios e eventos",
			venueID: "VEN001",
			filters: filters,
			setup: func() {
				mockVenueRepo.EXPECT().
					GetByID("VEN001").
					Return(&domain.Venue{
						ID:              "VEN001",
						Name:            "Venue A",
						Status:          domain.VenueStatusActive,
						MetaAdAccountID: stringPtr("act_123"),
						GHLLocationID:   stringPtr("loc_456"),
					}, nil)

				mockMeta.EXPECT().
					GetAdMetrics(gomock.Any(), "act_123", gomock.Any()).
					Return(&domain.AdMetrics{
						Impressions: 1000,
						Clicks:      100,
						Spend:       50.0,
						Leads:       10,
					}, nil)

				mockGHL.EXPECT().
					GetEventMetrics(gomock.Any(), "loc_456", gomock.Any()).
					Return(&domain.EventMetrics{
						TotalEvents: 5,
						TotalLeads:  8,
						GuestCount:  120,
						Revenue:     2400.0,
					}, nil)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, "VEN001", result.VenueID)
				assert.Equal(t, "Venue A", result.VenueName)

				assert.Len(t, result.AdMetrics, 1)
				assert.Equal(t, 1000, result.AdMetrics[domain.PlatformFacebookAds].Impressions)
				assert.Equal(t, 1000, result.TotalMetrics.Impressions)
				assert.Equal(t, 100, result.TotalMetrics.Clicks)

				assert.NotNil(t, result.EventMetrics)
				assert.Equal(t, 8, result.EventMetrics.TotalLeads)
				assert.Equal(t, 2400.0, result.EventMetrics.Revenue)

				// Com anúncios e eventos presentes, as métricas de resultado são calculadas
				assert.NotNil(t, result.ResultMetrics)
			},
		},
		{
			name:    "Venue com Meta e Google Ads - deve somar as métricas das plataformas",
			venueID: "VEN002",
			filters: filters,
			setup: func() {
				mockVenueRepo.EXPECT().
					GetByID("VEN002").
					Return(&domain.Venue{
						ID:               "VEN002",
						Name:             "Venue B",
						Status:           domain.VenueStatusActive,
						MetaAdAccountID:  stringPtr("act_123"),
						GoogleCustomerID: stringPtr("999-888-7777"),
					}, nil)

				mockMeta.EXPECT().
					GetAdMetrics(gomock.Any(), "act_123", gomock.Any()).
					Return(&domain.AdMetrics{Impressions: 1000, Clicks: 100, Spend: 50.0}, nil)

				mockGoogle.EXPECT().
					GetAdMetrics(gomock.Any(), "999-888-7777", gomock.Any()).
					Return(&domain.AdMetrics{Impressions: 500, Clicks: 25, Spend: 30.0}, nil)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result.AdMetrics, 2)
				assert.Equal(t, 1500, result.TotalMetrics.Impressions)
				assert.Equal(t, 125, result.TotalMetrics.Clicks)
				assert.Equal(t, 80.0, result.TotalMetrics.Spend)

				// Sem fontes de eventos conectadas não há métricas de resultado
				assert.Nil(t, result.EventMetrics)
				assert.Nil(t, result.ResultMetrics)
			},
		},
		{
			name:    "Falha em uma plataforma não derruba o dashboard",
			venueID: "VEN003",
			filters: filters,
			setup: func() {
				mockVenueRepo.EXPECT().
					GetByID("VEN003").
					Return(&domain.Venue{
						ID:               "VEN003",
						Name:             "Venue C",
						Status:           domain.VenueStatusActive,
						MetaAdAccountID:  stringPtr("act_123"),
						GoogleCustomerID: stringPtr("999-888-7777"),
					}, nil)

				mockMeta.EXPECT().
					GetAdMetrics(gomock.Any(), "act_123", gomock.Any()).
					Return(nil, assert.AnError)

				mockGoogle.EXPECT().
					GetAdMetrics(gomock.Any(), "999-888-7777", gomock.Any()).
					Return(&domain.AdMetrics{Impressions: 500, Clicks: 25, Spend: 30.0}, nil)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result.AdMetrics, 1)
				assert.Equal(t, 500, result.TotalMetrics.Impressions)
			},
		},
		{
			name:    "Venue inexistente retorna erro",
			venueID: "VEN404",
			filters: filters,
			setup: func() {
				mockVenueRepo.EXPECT().
					GetByID("VEN404").
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), "venue não encontrado")
			},
		},
		{
			name:    "Filtros sem datas retornam erro de validação",
			venueID: "VEN001",
			filters: &domain.InsightFilters{},
			setup:   func() {},
			validate: func(t *testing.T, result *domain.DashboardResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:    "Data de início posterior à data de fim retorna erro",
			venueID: "VEN001",
			filters: &domain.InsightFilters{
				StartDate: timePtr(endDate),
				EndDate:   timePtr(startDate),
			},
			setup: func() {},
			validate: func(t *testing.T, result *domain.DashboardResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GetDashboard(context.Background(), tt.venueID, tt.filters)
			tt.validate(t, result, err)
		})
	}
}

func TestService_GetDashboard_ComCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)
	mockAdInsightRepo := mocks.NewMockAdInsightRepository(ctrl)
	mockEventInsightRepo := mocks.NewMockEventInsightRepository(ctrl)
	mockMeta := metamocks.NewMockIntegrator(ctrl)

	service := &Service{
		metaService:            mockMeta,
		venueRepository:        mockVenueRepo,
		adInsightRepository:    mockAdInsightRepo,
		eventInsightRepository: mockEventInsightRepo,
		useCache:               true,
	}

	// Datas passadas para que os dados obtidos da API sejam persistidos
	day1 := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)
	filters := &domain.InsightFilters{
		StartDate: timePtr(day1),
		EndDate:   timePtr(day2),
	}

	venue := &domain.Venue{
		ID:              "VEN001",
		Name:            "Venue A",
		Status:          domain.VenueStatusActive,
		MetaAdAccountID: stringPtr("act_123"),
	}

	t.Run("Período totalmente em cache não chama a API", func(t *testing.T) {
		mockVenueRepo.EXPECT().GetByID("VEN001").Return(venue, nil)

		mockAdInsightRepo.EXPECT().
			GetByDateRange("VEN001", domain.PlatformFacebookAds, day1, day2).
			Return([]*domain.AdInsightEntry{
				{VenueID: "VEN001", Platform: domain.PlatformFacebookAds, Date: day1, Metrics: &domain.AdMetrics{Impressions: 100, Clicks: 10, Spend: 5.0}},
				{VenueID: "VEN001", Platform: domain.PlatformFacebookAds, Date: day2, Metrics: &domain.AdMetrics{Impressions: 200, Clicks: 20, Spend: 7.0}},
			}, nil)

		result, err := service.GetDashboard(context.Background(), "VEN001", filters)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 300, result.TotalMetrics.Impressions)
		assert.Equal(t, 30, result.TotalMetrics.Clicks)
		assert.Equal(t, 12.0, result.TotalMetrics.Spend)
	})

	t.Run("Datas faltantes são buscadas na API e persistidas", func(t *testing.T) {
		mockVenueRepo.EXPECT().GetByID("VEN001").Return(venue, nil)

		// Apenas o primeiro dia está em cache
		mockAdInsightRepo.EXPECT().
			GetByDateRange("VEN001", domain.PlatformFacebookAds, day1, day2).
			Return([]*domain.AdInsightEntry{
				{VenueID: "VEN001", Platform: domain.PlatformFacebookAds, Date: day1, Metrics: &domain.AdMetrics{Impressions: 100, Clicks: 10, Spend: 5.0}},
			}, nil)

		// O segundo dia vem da API
		mockMeta.EXPECT().
			GetAdMetrics(gomock.Any(), "act_123", gomock.Any()).
			Return(&domain.AdMetrics{Impressions: 200, Clicks: 20, Spend: 7.0}, nil)

		// Dia passado deve ser persistido
		mockAdInsightRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(entry *domain.AdInsightEntry) error {
				assert.Equal(t, "VEN001", entry.VenueID)
				assert.Equal(t, domain.PlatformFacebookAds, entry.Platform)
				assert.Equal(t, day2.Format(time.DateOnly), entry.Date.Format(time.DateOnly))
				return nil
			})

		result, err := service.GetDashboard(context.Background(), "VEN001", filters)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 300, result.TotalMetrics.Impressions)
	})
}

func TestService_GetDemographics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)
	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockGoogle := googlemocks.NewMockIntegrator(ctrl)

	service := &Service{
		metaService:     mockMeta,
		googleService:   mockGoogle,
		venueRepository: mockVenueRepo,
	}

	startDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	filters := &domain.InsightFilters{
		StartDate: timePtr(startDate),
		EndDate:   timePtr(endDate),
	}

	t.Run("Combina células das duas plataformas e calcula percentuais", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			GetByID("VEN001").
			Return(&domain.Venue{
				ID:               "VEN001",
				Name:             "Venue A",
				MetaAdAccountID:  stringPtr("act_123"),
				GoogleCustomerID: stringPtr("999-888-7777"),
			}, nil)

		mockMeta.EXPECT().
			GetDemographics(gomock.Any(), "act_123", gomock.Any()).
			Return([]domain.DemographicCell{
				{AgeRange: "25-34", Gender: "female", Impressions: 600},
			}, nil)

		mockGoogle.EXPECT().
			GetDemographics(gomock.Any(), "999-888-7777", gomock.Any()).
			Return([]domain.DemographicCell{
				{AgeRange: "25-34", Gender: "male", Impressions: 400},
			}, nil)

		breakdown, err := service.GetDemographics(context.Background(), "VEN001", filters)

		assert.NoError(t, err)
		assert.NotNil(t, breakdown)
		assert.Equal(t, 1000, breakdown.Total)
		assert.Len(t, breakdown.Cells, 2)
		assert.InDelta(t, 60.0, breakdown.ByGender["female"], 0.01)
		assert.InDelta(t, 40.0, breakdown.ByGender["male"], 0.01)
		assert.InDelta(t, 100.0, breakdown.ByAge["25-34"], 0.01)
	})

	t.Run("Sem impressões os percentuais ficam zerados", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			GetByID("VEN001").
			Return(&domain.Venue{
				ID:              "VEN001",
				MetaAdAccountID: stringPtr("act_123"),
			}, nil)

		mockMeta.EXPECT().
			GetDemographics(gomock.Any(), "act_123", gomock.Any()).
			Return([]domain.DemographicCell{
				{AgeRange: "18-24", Gender: "female", Impressions: 0},
			}, nil)

		breakdown, err := service.GetDemographics(context.Background(), "VEN001", filters)

		assert.NoError(t, err)
		assert.NotNil(t, breakdown)
		assert.Equal(t, 0, breakdown.Total)
		for _, cell := range breakdown.Cells {
			assert.Equal(t, 0.0, cell.Percentage)
		}
	})
}

func TestService_GetPlatformBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)
	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockGoogle := googlemocks.NewMockIntegrator(ctrl)

	service := &Service{
		metaService:     mockMeta,
		googleService:   mockGoogle,
		venueRepository: mockVenueRepo,
	}

	startDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	filters := &domain.InsightFilters{
		StartDate: timePtr(startDate),
		EndDate:   timePtr(endDate),
	}

	t.Run("Posicionamentos do Meta somados ao Google como plataforma única", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			GetByID("VEN001").
			Return(&domain.Venue{
				ID:               "VEN001",
				MetaAdAccountID:  stringPtr("act_123"),
				GoogleCustomerID: stringPtr("999-888-7777"),
			}, nil)

		mockMeta.EXPECT().
			GetPlatformStats(gomock.Any(), "act_123", gomock.Any()).
			Return([]domain.PlatformStat{
				{Platform: "facebook", Impressions: 300},
				{Platform: "instagram", Impressions: 500},
			}, nil)

		mockGoogle.EXPECT().
			GetAdMetrics(gomock.Any(), "999-888-7777", gomock.Any()).
			Return(&domain.AdMetrics{Impressions: 200, Clicks: 20, Spend: 10.0}, nil)

		breakdown, err := service.GetPlatformBreakdown(context.Background(), "VEN001", filters)

		assert.NoError(t, err)
		assert.NotNil(t, breakdown)
		assert.Equal(t, 1000, breakdown.Total)
		assert.Len(t, breakdown.Stats, 3)

		byPlatform := make(map[string]domain.PlatformStat)
		for _, stat := range breakdown.Stats {
			byPlatform[stat.Platform] = stat
		}

		assert.InDelta(t, 30.0, byPlatform["facebook"].Percentage, 0.01)
		assert.InDelta(t, 50.0, byPlatform["instagram"].Percentage, 0.01)
		assert.InDelta(t, 20.0, byPlatform["google"].Percentage, 0.01)
	})
}

func TestService_GetAvailableMonthlyPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonthlyAdRepo := mocks.NewMockMonthlyAdInsightRepository(ctrl)
	mockMonthlyEventRepo := mocks.NewMockMonthlyEventInsightRepository(ctrl)

	service := &Service{
		monthlyAdInsightRepository:    mockMonthlyAdRepo,
		monthlyEventInsightRepository: mockMonthlyEventRepo,
	}

	t.Run("Períodos das duas tabelas são deduplicados e ordenados", func(t *testing.T) {
		mockMonthlyAdRepo.EXPECT().
			GetAllPeriods().
			Return([]string{"01-2025", "02-2025"}, nil)

		mockMonthlyEventRepo.EXPECT().
			GetAllPeriods().
			Return([]string{"02-2025", "12-2024"}, nil)

		periods, err := service.GetAvailableMonthlyPeriods()

		assert.NoError(t, err)
		assert.NotNil(t, periods)
		assert.Len(t, periods.Periods, 3)
		assert.Contains(t, periods.Periods, "12-2024")
		assert.Contains(t, periods.Years, "2024")
		assert.Contains(t, periods.Years, "2025")
		assert.Contains(t, periods.Months, "01")
		assert.Contains(t, periods.Months, "02")
		assert.Contains(t, periods.Months, "12")
	})
}
