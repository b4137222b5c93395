package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository/mocks"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	insightingmocks "github.com/stevetowers08/reporting-workspace-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func TestMonthlyInsightsSyncService_SyncMonthlyInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)
	mockMonthlyAdRepo := mocks.NewMockMonthlyAdInsightRepository(ctrl)
	mockMonthlyEventRepo := mocks.NewMockMonthlyEventInsightRepository(ctrl)
	mockAdInsighter := insightingmocks.NewMockAdInsighter(ctrl)
	mockEventInsighter := insightingmocks.NewMockEventInsighter(ctrl)

	service := &MonthlyInsightsSyncService{
		config: MonthlyInsightsSyncConfig{
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			SyncEnabled:         true,
			MonthLookBack:       1,
		},
		venueRepo:               mockVenueRepo,
		monthlyAdInsightRepo:    mockMonthlyAdRepo,
		monthlyEventInsightRepo: mockMonthlyEventRepo,
		adInsighter:             mockAdInsighter,
		eventInsighter:          mockEventInsighter,
	}

	// O período consolidado é sempre o mês anterior fechado
	lastMonth := time.Now().AddDate(0, -1, 0)
	expectedPeriod := repository.FormatPeriod(time.Date(lastMonth.Year(), lastMonth.Month(), 1, 0, 0, 0, 0, lastMonth.Location()))

	t.Run("Consolida anúncios e eventos do mês fechado por venue", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			List([]domain.VenueStatus{domain.VenueStatusActive}).
			Return([]*domain.Venue{
				{
					ID:              "VEN001",
					Name:            "Venue A",
					Status:          domain.VenueStatusActive,
					MetaAdAccountID: stringPtr("act_123"),
					GHLLocationID:   stringPtr("loc_456"),
				},
			}, nil)

		mockAdInsighter.EXPECT().
			GetAdMetrics(gomock.Any(), "VEN001", domain.PlatformFacebookAds, gomock.Any()).
			Return(&domain.AdMetrics{Impressions: 5000, Clicks: 300, Spend: 150.0}, nil)

		mockMonthlyAdRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(insight *domain.MonthlyAdInsight) error {
				assert.Equal(t, "VEN001", insight.VenueID)
				assert.Equal(t, domain.PlatformFacebookAds, insight.Platform)
				assert.Equal(t, expectedPeriod, insight.Period)
				assert.Equal(t, 5000, insight.Metrics.Impressions)
				return nil
			})

		mockEventInsighter.EXPECT().
			GetEventMetrics(gomock.Any(), "VEN001", gomock.Any()).
			Return(&domain.EventMetrics{TotalEvents: 12, TotalLeads: 40, Revenue: 8000.0}, nil)

		mockMonthlyEventRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(insight *domain.MonthlyEventInsight) error {
				assert.Equal(t, "VEN001", insight.VenueID)
				assert.Equal(t, expectedPeriod, insight.Period)
				assert.Equal(t, 12, insight.Metrics.TotalEvents)
				return nil
			})

		service.syncMonthlyInsights()

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
	})

	t.Run("Venue sem fontes de eventos consolida apenas anúncios", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			List([]domain.VenueStatus{domain.VenueStatusActive}).
			Return([]*domain.Venue{
				{
					ID:               "VEN002",
					Name:             "Venue B",
					Status:           domain.VenueStatusActive,
					GoogleCustomerID: stringPtr("999-888-7777"),
				},
			}, nil)

		mockAdInsighter.EXPECT().
			GetAdMetrics(gomock.Any(), "VEN002", domain.PlatformGoogleAds, gomock.Any()).
			Return(&domain.AdMetrics{Impressions: 900}, nil)

		mockMonthlyAdRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		service.syncMonthlyInsights()
	})

	t.Run("Janela de retenção remove consolidados e cache diário antigos", func(t *testing.T) {
		mockEventRepo := mocks.NewMockEventInsightRepository(ctrl)

		retentionService := &MonthlyInsightsSyncService{
			config: MonthlyInsightsSyncConfig{
				MaxConcurrentJobs:  2,
				SyncEnabled:        true,
				MonthLookBack:      1,
				RetentionDays:      730,
				EventRetentionDays: 365,
			},
			venueRepo:               mockVenueRepo,
			monthlyAdInsightRepo:    mockMonthlyAdRepo,
			monthlyEventInsightRepo: mockMonthlyEventRepo,
			eventInsightRepo:        mockEventRepo,
			adInsighter:             mockAdInsighter,
			eventInsighter:          mockEventInsighter,
		}

		mockVenueRepo.EXPECT().
			List([]domain.VenueStatus{domain.VenueStatusActive}).
			Return([]*domain.Venue{
				{
					ID:              "VEN001",
					Name:            "Venue A",
					Status:          domain.VenueStatusActive,
					MetaAdAccountID: stringPtr("act_123"),
				},
			}, nil)

		mockAdInsighter.EXPECT().
			GetAdMetrics(gomock.Any(), "VEN001", domain.PlatformFacebookAds, gomock.Any()).
			Return(&domain.AdMetrics{Impressions: 100}, nil)

		mockMonthlyAdRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		mockMonthlyAdRepo.EXPECT().
			DeleteOlderThan(730).
			Return(int64(3), nil)

		mockMonthlyEventRepo.EXPECT().
			DeleteOlderThan(730).
			Return(int64(1), nil)

		mockEventRepo.EXPECT().
			DeleteOlderThan(365).
			Return(int64(40), nil)

		retentionService.syncMonthlyInsights()
	})

	t.Run("Erro ao obter métricas de anúncios não persiste o consolidado", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			List([]domain.VenueStatus{domain.VenueStatusActive}).
			Return([]*domain.Venue{
				{
					ID:              "VEN003",
					Name:            "Venue C",
					Status:          domain.VenueStatusActive,
					MetaAdAccountID: stringPtr("act_123"),
				},
			}, nil)

		mockAdInsighter.EXPECT().
			GetAdMetrics(gomock.Any(), "VEN003", domain.PlatformFacebookAds, gomock.Any()).
			Return(nil, assert.AnError)

		service.syncMonthlyInsights()
	})
}
