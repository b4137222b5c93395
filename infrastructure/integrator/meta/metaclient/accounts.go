package metaclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	metadomain "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/domain"
)

// GetAdAccounts lista as contas de anúncio acessíveis diretamente pelo usuário
func (c *MetaClient) GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error) {
	if err := c.EnsureValidToken(ctx); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	requestURL := fmt.Sprintf("%s/me/adaccounts?fields=id,account_id,name&limit=100&access_token=%s", c.Cfg.Meta.URL, c.Cfg.Meta.AccessToken)

	body, err := c.Requester.Get(ctx, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas de anúncio do usuário")
		return nil, err
	}

	var response metadomain.AdAccountsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return response.Data, nil
}

// GetBusinesses lista os business managers acessíveis pelo usuário
func (c *MetaClient) GetBusinesses(ctx context.Context) ([]metadomain.BusinessManager, error) {
	if err := c.EnsureValidToken(ctx); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	requestURL := fmt.Sprintf("%s/me/businesses?limit=100&access_token=%s", c.Cfg.Meta.URL, c.Cfg.Meta.AccessToken)

	body, err := c.Requester.Get(ctx, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar business managers")
		return nil, err
	}

	var response metadomain.BusinessesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return response.Data, nil
}

// GetAdAccountsByBusinessID lista as contas de anúncio de um business manager
func (c *MetaClient) GetAdAccountsByBusinessID(ctx context.Context, businessID string) ([]metadomain.AdAccount, error) {
	if err := c.EnsureValidToken(ctx); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	requestURL := fmt.Sprintf("%s/%s/owned_ad_accounts?fields=id,account_id,name&limit=100&access_token=%s", c.Cfg.Meta.URL, businessID, c.Cfg.Meta.AccessToken)

	body, err := c.Requester.Get(ctx, requestURL, nil)
	if err != nil {
		logrus.WithError(err).WithField("business_id", businessID).Error("Erro ao listar contas do business manager")
		return nil, err
	}

	var response metadomain.AdAccountsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return response.Data, nil
}

// GetCustomConversions lista as conversões personalizadas configuradas na conta
func (c *MetaClient) GetCustomConversions(ctx context.Context, accountID string) ([]metadomain.CustomConversion, error) {
	if err := c.EnsureValidToken(ctx); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	requestURL := fmt.Sprintf("%s/act_%s/customconversions?fields=id,name,custom_event_type&limit=100&access_token=%s", c.Cfg.Meta.URL, accountID, c.Cfg.Meta.AccessToken)

	body, err := c.Requester.Get(ctx, requestURL, nil)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao listar conversões personalizadas")
		return nil, err
	}

	var response metadomain.CustomConversionsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return response.Data, nil
}
