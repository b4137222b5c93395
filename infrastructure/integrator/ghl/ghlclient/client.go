package ghlclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	ghldomain "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/ghl/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
)

// Limite de páginas seguidas na listagem de contatos
const maxContactPages = 50

// TokenSource fornece um access token válido do GoHighLevel, renovado
// quando necessário
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type Client interface {
	GetContacts(ctx context.Context, locationID string, filters *domain.InsightFilters) ([]ghldomain.Contact, error)
	GetAppointments(ctx context.Context, locationID string, filters *domain.InsightFilters) ([]ghldomain.Appointment, error)
}

type GHLClient struct {
	Cfg       *config.Config
	Requester *requester.Requester
	Tokens    TokenSource
}

func NewClient(cfg *config.Config, req *requester.Requester, tokens TokenSource) Client {
	return &GHLClient{
		Cfg:       cfg,
		Requester: req,
		Tokens:    tokens,
	}
}

func (c *GHLClient) header(ctx context.Context) (http.Header, error) {
	token, err := c.Tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	header.Set("Version", c.Cfg.GoHighLevel.APIVersion)
	header.Set("Accept", "application/json")

	return header, nil
}

// GetContacts lista os contatos criados no período, seguindo a paginação
// por startAfterId
func (c *GHLClient) GetContacts(ctx context.Context, locationID string, filters *domain.InsightFilters) ([]ghldomain.Contact, error) {
	header, err := c.header(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]ghldomain.Contact, 0)
	startAfterID := ""

	for page := 0; page < maxContactPages; page++ {
		query := url.Values{}
		query.Set("locationId", locationID)
		query.Set("limit", "100")
		query.Set("startAfter", fmt.Sprintf("%d", filters.StartDate.UnixMilli()))
		if startAfterID != "" {
			query.Set("startAfterId", startAfterID)
		}

		requestURL := fmt.Sprintf("%s/contacts/?%s", c.Cfg.GoHighLevel.URL, query.Encode())

		body, err := c.Requester.Get(ctx, requestURL, header)
		if err != nil {
			logrus.WithError(err).WithField("location_id", locationID).Error("Erro ao listar contatos do GoHighLevel")
			return nil, err
		}

		var response ghldomain.ContactsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
		}

		// O filtro fino por período é aplicado aqui, já que a API só
		// aceita o marco inicial
		for _, contact := range response.Contacts {
			if contact.DateAdded.Before(*filters.StartDate) || contact.DateAdded.After(filters.EndDate.Add(24*time.Hour)) {
				continue
			}
			contacts = append(contacts, contact)
		}

		if len(response.Contacts) < 100 || response.Meta.StartAfterID == "" {
			break
		}
		startAfterID = response.Meta.StartAfterID
	}

	return contacts, nil
}

// GetAppointments lista os agendamentos do calendário no período
func (c *GHLClient) GetAppointments(ctx context.Context, locationID string, filters *domain.InsightFilters) ([]ghldomain.Appointment, error) {
	header, err := c.header(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("locationId", locationID)
	query.Set("startTime", fmt.Sprintf("%d", filters.StartDate.UnixMilli()))
	query.Set("endTime", fmt.Sprintf("%d", filters.EndDate.Add(24*time.Hour).UnixMilli()))

	requestURL := fmt.Sprintf("%s/calendars/events?%s", c.Cfg.GoHighLevel.URL, query.Encode())

	body, err := c.Requester.Get(ctx, requestURL, header)
	if err != nil {
		logrus.WithError(err).WithField("location_id", locationID).Error("Erro ao listar agendamentos do GoHighLevel")
		return nil, err
	}

	var response ghldomain.AppointmentsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return response.Events, nil
}
