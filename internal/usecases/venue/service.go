package venue

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/googleads"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/apiErrors"
	"github.com/stevetowers08/reporting-workspace-api/pkg/utils"
)

type VenueService interface {
	GetVenue(venueID string) (*domain.Venue, error)
	ListVenues(availableStatus []domain.VenueStatus) ([]*domain.VenueResponse, error)
	CreateVenue(request *domain.CreateVenueRequest) (*domain.Venue, error)
	UpdateVenue(request *domain.UpdateVenueRequest) error
	SyncVenues(ctx context.Context) (*domain.SyncVenuesResponse, error)
	GetConversionActions(ctx context.Context, venueID string) (map[string]string, error)
}

type Service struct {
	venueRepository repository.VenueRepository
	metaService     meta.Integrator
	googleService   googleads.Integrator
	cfg             *config.Config
}

func NewService(
	venueRepository repository.VenueRepository,
	metaService meta.Integrator,
	googleService googleads.Integrator,
	cfg *config.Config,
) VenueService {
	return &Service{
		venueRepository: venueRepository,
		metaService:     metaService,
		googleService:   googleService,
		cfg:             cfg,
	}
}

func (s *Service) GetVenue(venueID string) (*domain.Venue, error) {
	if venueID == "" {
		return nil, ErrVenueIDRequired
	}

	venue, err := s.venueRepository.GetByID(venueID)
	if err != nil {
		logrus.Error("Error getting venue by id on the repository:", err)
		return nil, NewVenueError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar venue no banco de dados")
	}

	if venue == nil {
		return nil, NewVenueErrorWithID(ErrVenueNotFound, apiErrors.ErrInvalidRequest, venueID, "Venue não encontrado")
	}

	return venue, nil
}

func (s *Service) ListVenues(availableStatus []domain.VenueStatus) ([]*domain.VenueResponse, error) {
	venues, err := s.venueRepository.List(availableStatus)
	if err != nil {
		return nil, NewVenueError(ErrFetchVenues, apiErrors.ErrDatabaseOperation, "Falha ao listar venues no banco de dados")
	}

	// Transforma os venues para o formato de resposta da API
	venuesResponse := make([]*domain.VenueResponse, 0, len(venues))
	for _, venue := range venues {
		platforms := make([]string, 0, len(domain.Platforms))
		for _, platform := range domain.Platforms {
			if venue.HasPlatform(platform) {
				platforms = append(platforms, platform)
			}
		}

		venuesResponse = append(venuesResponse, &domain.VenueResponse{
			ID:               venue.ID,
			Name:             venue.Name,
			LogoURL:          venue.LogoURL,
			Status:           venue.Status,
			MetaAdAccountID:  venue.MetaAdAccountID,
			GoogleCustomerID: venue.GoogleCustomerID,
			GHLLocationID:    venue.GHLLocationID,
			SheetID:          venue.SheetID,
			Platforms:        platforms,
		})
	}

	return venuesResponse, nil
}

func (s *Service) CreateVenue(request *domain.CreateVenueRequest) (*domain.Venue, error) {
	if request == nil || request.Name == "" {
		return nil, NewVenueError(ErrVenueNameRequired, apiErrors.ErrMissingRequiredData, "O nome do venue é obrigatório")
	}

	venueID, err := utils.GenerateID()
	if err != nil {
		return nil, NewVenueError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para venue")
	}

	venue := &domain.Venue{
		ID:               venueID,
		Name:             request.Name,
		LogoURL:          request.LogoURL,
		Status:           domain.VenueStatusActive,
		MetaAdAccountID:  request.MetaAdAccountID,
		GoogleCustomerID: request.GoogleCustomerID,
		GHLLocationID:    request.GHLLocationID,
		SheetID:          request.SheetID,
		SheetRange:       request.SheetRange,
	}

	if err := s.venueRepository.Create(venue); err != nil {
		logrus.Error("Error creating venue on the repository:", err)
		return nil, NewVenueError(ErrCreateVenue, apiErrors.ErrDatabaseOperation, "Falha ao criar venue no banco de dados")
	}

	return venue, nil
}

func (s *Service) UpdateVenue(request *domain.UpdateVenueRequest) error {
	if request == nil || request.ID == "" {
		return ErrVenueIDRequired
	}

	// Busca o venue para verificar se existe
	venue, err := s.venueRepository.GetByID(request.ID)
	if err != nil {
		logrus.Error("Error getting venue by id on the repository:", err)
		return NewVenueError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar venue no banco de dados")
	}

	if venue == nil {
		return NewVenueErrorWithID(ErrVenueNotFound, apiErrors.ErrInvalidRequest, request.ID, "Venue não encontrado")
	}

	if err := s.venueRepository.Update(request); err != nil {
		logrus.Error("Error updating venue on the repository:", err)
		return NewVenueErrorWithID(ErrUpdateVenue, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar venue no banco de dados")
	}

	return nil
}

// SyncVenues descobre contas de anúncio conectadas nas integrações e cria venues
// inativos para as que ainda não estão cadastradas
func (s *Service) SyncVenues(ctx context.Context) (*domain.SyncVenuesResponse, error) {
	response := &domain.SyncVenuesResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar venues",
		Error:    true,
	}

	discovered := make([]*domain.DiscoveredAccount, 0)

	metaAccounts, err := s.metaService.GetAdAccounts(ctx)
	if err != nil {
		logrus.Error("Error getting ad accounts from integrator meta:", err)
		return response, NewVenueError(ErrMetaIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da API do Meta")
	}
	discovered = append(discovered, metaAccounts...)

	googleAccounts, err := s.googleService.GetAdAccounts(ctx)
	if err != nil {
		// Sincronização parcial é melhor que nenhuma quando só uma integração falha
		logrus.WithError(err).Warn("Error getting customers from integrator google ads")
	} else {
		discovered = append(discovered, googleAccounts...)
	}

	existingVenues, err := s.venueRepository.ListMap()
	if err != nil {
		logrus.WithField("error", err).Error("Error getting venues from database")
		return response, NewVenueError(ErrFetchVenues, apiErrors.ErrDatabaseOperation, "Falha ao consultar venues existentes no banco de dados")
	}

	newVenues := make([]*domain.Venue, 0, len(discovered))
	for _, acc := range discovered {
		if _, exists := existingVenues[acc.ExternalID]; exists {
			continue
		}

		venueID, err := utils.GenerateID()
		if err != nil {
			return response, NewVenueError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para venue")
		}

		externalID := acc.ExternalID
		venue := &domain.Venue{
			ID:     venueID,
			Name:   acc.Name,
			Status: domain.VenueStatusInactive,
		}

		switch acc.Platform {
		case domain.PlatformFacebookAds:
			venue.MetaAdAccountID = &externalID
		case domain.PlatformGoogleAds:
			venue.GoogleCustomerID = &externalID
		default:
			continue
		}

		existingVenues[acc.ExternalID] = struct{}{}
		newVenues = append(newVenues, venue)
	}

	// Insere tudo em uma transação: ou o lote inteiro entra, ou nada entra
	if err := s.venueRepository.CreateMany(ctx, newVenues); err != nil {
		logrus.WithError(err).WithField("quantity", len(newVenues)).Error("Error creating venues during sync")
		return response, NewVenueError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar venues")
	}

	quantity := len(newVenues)
	logrus.Infof("%d venues were successfully synced", quantity)

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d venues foram sincronizados com sucesso", quantity)
	response.Error = false

	return response, nil
}

// GetConversionActions lista as ações de conversão disponíveis nas plataformas do venue,
// usadas na configuração de quais conversões contam como lead
func (s *Service) GetConversionActions(ctx context.Context, venueID string) (map[string]string, error) {
	venue, err := s.GetVenue(venueID)
	if err != nil {
		return nil, err
	}

	actions := make(map[string]string)

	if venue.HasPlatform(domain.PlatformFacebookAds) {
		metaActions, err := s.metaService.GetConversionActions(ctx, *venue.MetaAdAccountID)
		if err != nil {
			logrus.WithError(err).WithField("venue_id", venueID).Warn("Erro ao obter ações de conversão do Meta")
		} else {
			for id, name := range metaActions {
				actions[id] = name
			}
		}
	}

	if venue.HasPlatform(domain.PlatformGoogleAds) {
		googleActions, err := s.googleService.GetConversionActions(ctx, *venue.GoogleCustomerID)
		if err != nil {
			logrus.WithError(err).WithField("venue_id", venueID).Warn("Erro ao obter ações de conversão do Google Ads")
		} else {
			for id, name := range googleActions {
				actions[id] = name
			}
		}
	}

	return actions, nil
}
