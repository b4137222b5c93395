package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
)

type Client interface {
	GetInsights(ctx context.Context, accountID string, filters *domain.InsightFilters, params url.Values) ([]metadomain.InsightRow, error)
	GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error)
	GetBusinesses(ctx context.Context) ([]metadomain.BusinessManager, error)
	GetAdAccountsByBusinessID(ctx context.Context, businessID string) ([]metadomain.AdAccount, error)
	GetCustomConversions(ctx context.Context, accountID string) ([]metadomain.CustomConversion, error)
	RefreshToken(ctx context.Context) error
	EnsureValidToken(ctx context.Context) error
}

type MetaClient struct {
	Cfg          *config.Config
	Requester    *requester.Requester
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, req *requester.Requester, tokenManager *TokenManager) Client {
	return &MetaClient{
		Cfg:          cfg,
		Requester:    req,
		TokenManager: tokenManager,
	}
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken(ctx context.Context) error {
	return c.TokenManager.RefreshToken(ctx)
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken(ctx context.Context) error {
	return c.TokenManager.EnsureValidToken(ctx)
}
