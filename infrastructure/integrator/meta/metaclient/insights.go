package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
)

// Limite de páginas percorridas via paging.next para não ficar preso em
// uma resposta paginada malformada
const maxInsightPages = 25

// GetInsights consulta /act_<id>/insights seguindo a paginação via paging.next.
// Os params definem fields, breakdowns e demais parâmetros da consulta.
func (c *MetaClient) GetInsights(ctx context.Context, accountID string, filters *domain.InsightFilters, params url.Values) ([]metadomain.InsightRow, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(ctx); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))

	params.Set("time_range", timeRange)
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	rows := make([]metadomain.InsightRow, 0)
	for page := 0; requestURL != "" && page < maxInsightPages; page++ {
		body, err := c.Requester.Get(ctx, requestURL, nil)
		if err != nil {
			// Token expirado no meio da consulta: renova e refaz a página
			if IsTokenError(err) {
				if refreshErr := c.RefreshToken(ctx); refreshErr != nil {
					return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
				}

				params.Set("access_token", c.Cfg.Meta.AccessToken)
				requestURL = baseURL + "?" + params.Encode()

				body, err = c.Requester.Get(ctx, requestURL, nil)
				if err != nil {
					return nil, err
				}
			} else {
				logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao consultar insights do Meta")
				return nil, err
			}
		}

		var response metadomain.InsightsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de insights")
			return nil, err
		}

		rows = append(rows, response.Data...)
		requestURL = response.Paging.Next
	}

	return rows, nil
}
