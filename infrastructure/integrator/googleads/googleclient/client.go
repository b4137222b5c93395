package googleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	googledomain "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/googleads/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
)

// Limite de páginas seguidas via nextPageToken
const maxSearchPages = 25

type Client interface {
	Search(ctx context.Context, customerID, query string) ([]googledomain.Result, error)
	ListAccessibleCustomers(ctx context.Context) ([]string, error)
}

// TokenSource fornece um access token válido, renovado quando necessário
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type GoogleAdsClient struct {
	Cfg       *config.Config
	Requester *requester.Requester
	Tokens    TokenSource
}

func NewClient(cfg *config.Config, req *requester.Requester, tokens TokenSource) Client {
	return &GoogleAdsClient{
		Cfg:       cfg,
		Requester: req,
		Tokens:    tokens,
	}
}

// header monta os cabeçalhos exigidos pela API: Bearer token,
// developer-token e, quando configurado, o login-customer-id da MCC
func (c *GoogleAdsClient) header(ctx context.Context) (http.Header, error) {
	token, err := c.Tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	header.Set("Content-Type", "application/json")

	if c.Cfg.GoogleAds.LoginCustomer != "" {
		header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomer)
	}

	return header, nil
}

// Search executa uma consulta GAQL via googleAds:search, seguindo a
// paginação por nextPageToken
func (c *GoogleAdsClient) Search(ctx context.Context, customerID, query string) ([]googledomain.Result, error) {
	header, err := c.header(ctx)
	if err != nil {
		return nil, err
	}

	// IDs de cliente chegam às vezes com hífens (123-456-7890)
	customerID = strings.ReplaceAll(customerID, "-", "")

	requestURL := fmt.Sprintf("%s/%s/customers/%s/googleAds:search",
		c.Cfg.GoogleAds.URL, c.Cfg.GoogleAds.Version, customerID)

	results := make([]googledomain.Result, 0)
	pageToken := ""

	for page := 0; page < maxSearchPages; page++ {
		payload, err := json.Marshal(googledomain.SearchRequest{
			Query:     query,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar consulta: %w", err)
		}

		body, err := c.Requester.Post(ctx, requestURL, header, payload)
		if err != nil {
			logrus.WithError(err).WithField("customer_id", customerID).Error("Erro ao executar consulta GAQL")
			return nil, err
		}

		var response googledomain.SearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
		}

		results = append(results, response.Results...)

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	return results, nil
}

// ListAccessibleCustomers lista os IDs de cliente acessíveis pelo usuário autorizado
func (c *GoogleAdsClient) ListAccessibleCustomers(ctx context.Context) ([]string, error) {
	header, err := c.header(ctx)
	if err != nil {
		return nil, err
	}

	requestURL := fmt.Sprintf("%s/%s/customers:listAccessibleCustomers",
		c.Cfg.GoogleAds.URL, c.Cfg.GoogleAds.Version)

	body, err := c.Requester.Get(ctx, requestURL, header)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes acessíveis do Google Ads")
		return nil, err
	}

	var response googledomain.ListAccessibleCustomersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	// resourceNames chegam no formato customers/1234567890
	customerIDs := make([]string, 0, len(response.ResourceNames))
	for _, resourceName := range response.ResourceNames {
		customerIDs = append(customerIDs, strings.TrimPrefix(resourceName, "customers/"))
	}

	return customerIDs, nil
}
