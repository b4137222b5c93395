package venue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	googlemocks "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/googleads/mocks"
	metamocks "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/mocks"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository/mocks"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestService_SyncVenues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)
	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockGoogle := googlemocks.NewMockIntegrator(ctrl)

	service := &Service{
		venueRepository: mockVenueRepo,
		metaService:     mockMeta,
		googleService:   mockGoogle,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, response *domain.SyncVenuesResponse, err error)
	}{
		{
			name: "Contas novas das duas integrações criam venues inativos",
			setup: func() {
				mockMeta.EXPECT().
					GetAdAccounts(gomock.Any()).
					Return([]*domain.DiscoveredAccount{
						{ExternalID: "act_111", Name: "Conta Meta", Platform: domain.PlatformFacebookAds},
					}, nil)

				mockGoogle.EXPECT().
					GetAdAccounts(gomock.Any()).
					Return([]*domain.DiscoveredAccount{
						{ExternalID: "123-456-7890", Name: "Conta Google", Platform: domain.PlatformGoogleAds},
					}, nil)

				mockVenueRepo.EXPECT().
					ListMap().
					Return(map[string]struct{}{}, nil)

				// As duas contas novas entram no banco em uma única transação
				mockVenueRepo.EXPECT().
					CreateMany(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, venues []*domain.Venue) error {
						assert.Len(t, venues, 2)
						for _, venue := range venues {
							assert.Equal(t, domain.VenueStatusInactive, venue.Status)
							assert.NotEmpty(t, venue.ID)
						}
						return nil
					})
			},
			validate: func(t *testing.T, response *domain.SyncVenuesResponse, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, 2, response.Quantity)
				assert.False(t, response.Error)
			},
		},
		{
			name: "Contas já cadastradas não são recriadas",
			setup: func() {
				mockMeta.EXPECT().
					GetAdAccounts(gomock.Any()).
					Return([]*domain.DiscoveredAccount{
						{ExternalID: "act_111", Name: "Conta Meta", Platform: domain.PlatformFacebookAds},
					}, nil)

				mockGoogle.EXPECT().
					GetAdAccounts(gomock.Any()).
					Return(nil, nil)

				mockVenueRepo.EXPECT().
					ListMap().
					Return(map[string]struct{}{"act_111": {}}, nil)

				mockVenueRepo.EXPECT().
					CreateMany(gomock.Any(), gomock.Len(0)).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.SyncVenuesResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, response.Quantity)
			},
		},
		{
			name: "Falha no Meta interrompe a sincronização",
			setup: func() {
				mockMeta.EXPECT().
					GetAdAccounts(gomock.Any()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, response *domain.SyncVenuesResponse, err error) {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrMetaIntegration)
				assert.True(t, response.Error)
			},
		},
		{
			name: "Falha no Google Ads permite sincronização parcial",
			setup: func() {
				mockMeta.EXPECT().
					GetAdAccounts(gomock.Any()).
					Return([]*domain.DiscoveredAccount{
						{ExternalID: "act_222", Name: "Conta Meta Nova", Platform: domain.PlatformFacebookAds},
					}, nil)

				mockGoogle.EXPECT().
					GetAdAccounts(gomock.Any()).
					Return(nil, assert.AnError)

				mockVenueRepo.EXPECT().
					ListMap().
					Return(map[string]struct{}{}, nil)

				mockVenueRepo.EXPECT().
					CreateMany(gomock.Any(), gomock.Len(1)).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.SyncVenuesResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, response.Quantity)
			},
		},
		{
			name: "Falha na transação de inserção não sincroniza nenhum venue",
			setup: func() {
				mockMeta.EXPECT().
					GetAdAccounts(gomock.Any()).
					Return([]*domain.DiscoveredAccount{
						{ExternalID: "act_333", Name: "Conta Meta", Platform: domain.PlatformFacebookAds},
					}, nil)

				mockGoogle.EXPECT().
					GetAdAccounts(gomock.Any()).
					Return(nil, nil)

				mockVenueRepo.EXPECT().
					ListMap().
					Return(map[string]struct{}{}, nil)

				mockVenueRepo.EXPECT().
					CreateMany(gomock.Any(), gomock.Len(1)).
					Return(assert.AnError)
			},
			validate: func(t *testing.T, response *domain.SyncVenuesResponse, err error) {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
				assert.True(t, response.Error)
				assert.Equal(t, 0, response.Quantity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			response, err := service.SyncVenues(context.Background())
			tt.validate(t, response, err)
		})
	}
}

func TestService_CreateVenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)

	service := &Service{venueRepository: mockVenueRepo}

	t.Run("Cria venue ativo com as contas informadas", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(venue *domain.Venue) error {
				assert.NotEmpty(t, venue.ID)
				assert.Equal(t, "Venue A", venue.Name)
				assert.Equal(t, domain.VenueStatusActive, venue.Status)
				assert.Equal(t, "act_123", *venue.MetaAdAccountID)
				return nil
			})

		venue, err := service.CreateVenue(&domain.CreateVenueRequest{
			Name:            "Venue A",
			MetaAdAccountID: stringPtr("act_123"),
		})

		assert.NoError(t, err)
		assert.NotNil(t, venue)
	})

	t.Run("Nome vazio retorna erro", func(t *testing.T) {
		venue, err := service.CreateVenue(&domain.CreateVenueRequest{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrVenueNameRequired)
		assert.Nil(t, venue)
	})
}

func TestService_UpdateVenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)

	service := &Service{venueRepository: mockVenueRepo}

	t.Run("Atualiza venue existente", func(t *testing.T) {
		request := &domain.UpdateVenueRequest{
			ID:   "VEN001",
			Name: stringPtr("Novo Nome"),
		}

		mockVenueRepo.EXPECT().
			GetByID("VEN001").
			Return(&domain.Venue{ID: "VEN001", Name: "Venue A"}, nil)

		mockVenueRepo.EXPECT().
			Update(request).
			Return(nil)

		err := service.UpdateVenue(request)

		assert.NoError(t, err)
	})

	t.Run("Venue inexistente retorna erro", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			GetByID("VEN404").
			Return(nil, nil)

		err := service.UpdateVenue(&domain.UpdateVenueRequest{ID: "VEN404"})

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("ID vazio retorna erro", func(t *testing.T) {
		err := service.UpdateVenue(&domain.UpdateVenueRequest{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrVenueIDRequired)
	})
}

func TestService_GetConversionActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)
	mockMeta := metamocks.NewMockIntegrator(ctrl)
	mockGoogle := googlemocks.NewMockIntegrator(ctrl)

	service := &Service{
		venueRepository: mockVenueRepo,
		metaService:     mockMeta,
		googleService:   mockGoogle,
	}

	t.Run("Combina ações de conversão das duas plataformas", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			GetByID("VEN001").
			Return(&domain.Venue{
				ID:               "VEN001",
				MetaAdAccountID:  stringPtr("act_123"),
				GoogleCustomerID: stringPtr("999-888-7777"),
			}, nil)

		mockMeta.EXPECT().
			GetConversionActions(gomock.Any(), "act_123").
			Return(map[string]string{"lead": "Cadastro no site"}, nil)

		mockGoogle.EXPECT().
			GetConversionActions(gomock.Any(), "999-888-7777").
			Return(map[string]string{"customers/999/conversionActions/1": "Formulário"}, nil)

		actions, err := service.GetConversionActions(context.Background(), "VEN001")

		assert.NoError(t, err)
		assert.Len(t, actions, 2)
		assert.Equal(t, "Cadastro no site", actions["lead"])
	})

	t.Run("Falha em uma plataforma não derruba a listagem", func(t *testing.T) {
		mockVenueRepo.EXPECT().
			GetByID("VEN001").
			Return(&domain.Venue{
				ID:              "VEN001",
				MetaAdAccountID: stringPtr("act_123"),
			}, nil)

		mockMeta.EXPECT().
			GetConversionActions(gomock.Any(), "act_123").
			Return(nil, assert.AnError)

		actions, err := service.GetConversionActions(context.Background(), "VEN001")

		assert.NoError(t, err)
		assert.Empty(t, actions)
	})
}
