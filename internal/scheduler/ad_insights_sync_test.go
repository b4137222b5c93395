package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository/mocks"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	insightingmocks "github.com/stevetowers08/reporting-workspace-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestAdInsightSyncService_SyncAllInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)
	mockAdInsightRepo := mocks.NewMockAdInsightRepository(ctrl)
	mockInsighter := insightingmocks.NewMockAdInsighter(ctrl)

	service := &AdInsightSyncService{
		platform: domain.PlatformFacebookAds,
		config: AdInsightSyncConfig{
			LookbackDays:        2,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			SyncEnabled:         true,
		},
		venueRepo:      mockVenueRepo,
		adInsightRepo:  mockAdInsightRepo,
		insightService: mockInsighter,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T)
	}{
		{
			name: "Apenas venues com conta na plataforma são sincronizados",
			setup: func() {
				mockVenueRepo.EXPECT().
					List([]domain.VenueStatus{domain.VenueStatusActive}).
					Return([]*domain.Venue{
						{
							ID:              "VEN001",
							Name:            "Venue A",
							Status:          domain.VenueStatusActive,
							MetaAdAccountID: stringPtr("act_123"),
						},
						{
							ID:     "VEN002",
							Name:   "Venue B",
							Status: domain.VenueStatusActive,
							// Sem conta Meta: deve ser ignorado
						},
					}, nil)

				// Uma chamada por data do período de retrocesso, somente para o venue com conta
				mockInsighter.EXPECT().
					GetAdMetrics(gomock.Any(), "VEN001", domain.PlatformFacebookAds, gomock.Any()).
					Return(&domain.AdMetrics{Impressions: 100, Clicks: 10, Spend: 5.0}, nil).
					Times(2)

				mockAdInsightRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(entry *domain.AdInsightEntry) error {
						assert.Equal(t, "VEN001", entry.VenueID)
						assert.Equal(t, domain.PlatformFacebookAds, entry.Platform)
						assert.NotNil(t, entry.Metrics)
						return nil
					}).
					Times(2)
			},
			validate: func(t *testing.T) {
				status := service.GetStatus()
				assert.Equal(t, false, status["sync_running"])
				assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
			},
		},
		{
			name: "Erro ao buscar venues interrompe a sincronização",
			setup: func() {
				mockVenueRepo.EXPECT().
					List([]domain.VenueStatus{domain.VenueStatusActive}).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T) {
				status := service.GetStatus()
				assert.Equal(t, false, status["sync_running"])
			},
		},
		{
			name: "Falha em uma data não impede a persistência das demais",
			setup: func() {
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

				gomock.InOrder(
					mockInsighter.EXPECT().
						GetAdMetrics(gomock.Any(), "VEN001", domain.PlatformFacebookAds, gomock.Any()).
						Return(nil, assert.AnError),
					mockInsighter.EXPECT().
						GetAdMetrics(gomock.Any(), "VEN001", domain.PlatformFacebookAds, gomock.Any()).
						Return(&domain.AdMetrics{Impressions: 50}, nil),
				)

				mockAdInsightRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil).
					Times(1)
			},
			validate: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.syncAllInsights()
			tt.validate(t)
		})
	}
}

func TestAdInsightSyncService_SyncAllInsights_LimpezaDeRetencao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)
	mockAdInsightRepo := mocks.NewMockAdInsightRepository(ctrl)
	mockInsighter := insightingmocks.NewMockAdInsighter(ctrl)

	service := &AdInsightSyncService{
		platform: domain.PlatformFacebookAds,
		config: AdInsightSyncConfig{
			LookbackDays:      1,
			MaxConcurrentJobs: 1,
			SyncEnabled:       true,
			RetentionDays:     90,
		},
		venueRepo:      mockVenueRepo,
		adInsightRepo:  mockAdInsightRepo,
		insightService: mockInsighter,
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

	mockInsighter.EXPECT().
		GetAdMetrics(gomock.Any(), "VEN001", domain.PlatformFacebookAds, gomock.Any()).
		Return(&domain.AdMetrics{Impressions: 10}, nil)

	mockAdInsightRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil)

	// Ao final da sincronização, os insights além da janela de retenção são removidos
	mockAdInsightRepo.EXPECT().
		DeleteOlderThan(90).
		Return(int64(12), nil)

	service.syncAllInsights()
}

func TestAdInsightSyncService_GetStatus(t *testing.T) {
	service := &AdInsightSyncService{
		platform: domain.PlatformGoogleAds,
		config: AdInsightSyncConfig{
			CronSchedule:      "0 3 * * *",
			LookbackDays:      7,
			MaxConcurrentJobs: 3,
			SyncEnabled:       true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, domain.PlatformGoogleAds, status["platform"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
}
