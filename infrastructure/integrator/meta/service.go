package meta

import (
	"context"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"
	metadomain "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/domain"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/metaclient"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/utils"
)

type Integrator interface {
	GetAdMetrics(ctx context.Context, accountID string, filters *domain.InsightFilters) (*domain.AdMetrics, error)
	GetDemographics(ctx context.Context, accountID string, filters *domain.InsightFilters) ([]domain.DemographicCell, error)
	GetPlatformStats(ctx context.Context, accountID string, filters *domain.InsightFilters) ([]domain.PlatformStat, error)
	GetAdAccounts(ctx context.Context) ([]*domain.DiscoveredAccount, error)
	GetConversionActions(ctx context.Context, accountID string) (map[string]string, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Lista usada quando a consulta de conversões personalizadas falha,
// com os eventos padrão do pixel que o dashboard entende
var fallbackConversionActions = map[string]string{
	"lead":     "Lead",
	"purchase": "Purchase",
	"complete_registration": "CompleteRegistration",
	"schedule": "Schedule",
	"contact":  "Contact",
}

// GetAdMetrics consulta as métricas do período com uma linha por dia
// (time_increment=1) e agrega no formato do dashboard
func (s *MetaIntegrator) GetAdMetrics(ctx context.Context, accountID string, filters *domain.InsightFilters) (*domain.AdMetrics, error) {
	params := url.Values{}
	params.Set("fields", "account_id,account_name,impressions,clicks,spend,reach,actions")
	params.Set("time_increment", "1")
	params.Set("limit", "100")

	rows, err := s.Client.GetInsights(ctx, accountID, filters, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad account insights from API")
		return nil, err
	}

	metrics := &domain.AdMetrics{
		LeadsByDate: make(map[string]int),
		SpendByDate: make(map[string]float64),
	}

	for _, row := range rows {
		impressions := utils.ParseIntOrZero(row.Impressions)
		clicks := utils.ParseIntOrZero(row.Clicks)
		spend := utils.ParseFloatOrZero(row.Spend)
		leads := row.LeadCount()

		metrics.Impressions += impressions
		metrics.Clicks += clicks
		metrics.Spend += spend
		metrics.Leads += leads
		metrics.Reach += utils.ParseIntOrZero(row.Reach)

		if row.DateStart != "" {
			metrics.LeadsByDate[row.DateStart] += leads
			metrics.SpendByDate[row.DateStart] += spend
		}
	}

	metrics.RecalculateDerived()

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"impressions": metrics.Impressions,
		"spend":       metrics.Spend,
	}).Debug("insights: successfully retrieved ad account metrics")

	return metrics, nil
}

// GetDemographics consulta as métricas quebradas por faixa etária e gênero
func (s *MetaIntegrator) GetDemographics(ctx context.Context, accountID string, filters *domain.InsightFilters) ([]domain.DemographicCell, error) {
	params := url.Values{}
	params.Set("fields", "impressions,clicks,spend")
	params.Set("breakdowns", "age,gender")
	params.Set("limit", "200")

	rows, err := s.Client.GetInsights(ctx, accountID, filters, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get demographic breakdown from API")
		return nil, err
	}

	cells := make([]domain.DemographicCell, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, domain.DemographicCell{
			AgeRange:    row.Age,
			Gender:      row.Gender,
			Impressions: utils.ParseIntOrZero(row.Impressions),
			Clicks:      utils.ParseIntOrZero(row.Clicks),
			Spend:       utils.ParseFloatOrZero(row.Spend),
		})
	}

	return cells, nil
}

// GetPlatformStats consulta as métricas quebradas por posicionamento
// (facebook, instagram, audience_network, messenger)
func (s *MetaIntegrator) GetPlatformStats(ctx context.Context, accountID string, filters *domain.InsightFilters) ([]domain.PlatformStat, error) {
	params := url.Values{}
	params.Set("fields", "impressions,clicks,spend")
	params.Set("breakdowns", "publisher_platform")
	params.Set("limit", "100")

	rows, err := s.Client.GetInsights(ctx, accountID, filters, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get platform breakdown from API")
		return nil, err
	}

	stats := make([]domain.PlatformStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.PlatformStat{
			Platform:    row.PublisherPlatform,
			Impressions: utils.ParseIntOrZero(row.Impressions),
			Clicks:      utils.ParseIntOrZero(row.Clicks),
			Spend:       utils.ParseFloatOrZero(row.Spend),
		})
	}

	return stats, nil
}

// GetAdAccounts descobre todas as contas acessíveis: as diretas do usuário e
// as de cada business manager, consultadas em paralelo com erros coletados
// por ramo para que uma falha não derrube a descoberta inteira
func (s *MetaIntegrator) GetAdAccounts(ctx context.Context) ([]*domain.DiscoveredAccount, error) {
	bms, err := s.Client.GetBusinesses(ctx)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to get business managers")
		bms = nil
	}

	type branchResult struct {
		accounts []metadomain.AdAccount
		err      error
		origin   string
	}

	results := make([]branchResult, len(bms)+1)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		accounts, err := s.Client.GetAdAccounts(ctx)
		results[0] = branchResult{accounts: accounts, err: err, origin: "me/adaccounts"}
	}()

	for i, b := range bms {
		wg.Add(1)
		go func(idx int, businessID, businessName string) {
			defer wg.Done()
			accounts, err := s.Client.GetAdAccountsByBusinessID(ctx, businessID)
			results[idx+1] = branchResult{accounts: accounts, err: err, origin: businessName}
		}(i, b.ID, b.Name)
	}

	wg.Wait()

	seen := make(map[string]struct{})
	discovered := make([]*domain.DiscoveredAccount, 0)

	for _, result := range results {
		if result.err != nil {
			logrus.WithFields(logrus.Fields{
				"origin": result.origin,
				"error":  result.err.Error(),
			}).Error("insights: failed to get ad accounts for branch")
			continue
		}

		for _, account := range result.accounts {
			externalID := account.AccountID
			if externalID == "" {
				externalID = account.ID
			}

			if _, ok := seen[externalID]; ok {
				continue
			}
			seen[externalID] = struct{}{}

			discovered = append(discovered, &domain.DiscoveredAccount{
				ExternalID: externalID,
				Name:       account.Name,
				Platform:   domain.PlatformFacebookAds,
			})
		}
	}

	logrus.WithField("total_accounts", len(discovered)).Info("insights: successfully retrieved all ad accounts")

	return discovered, nil
}

// GetConversionActions mapeia as conversões personalizadas da conta. Quando a
// consulta falha, devolve a lista padrão para o dashboard não ficar vazio.
func (s *MetaIntegrator) GetConversionActions(ctx context.Context, accountID string) (map[string]string, error) {
	conversions, err := s.Client.GetCustomConversions(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("insights: failed to get custom conversions, using fallback list")

		fallback := make(map[string]string, len(fallbackConversionActions))
		for k, v := range fallbackConversionActions {
			fallback[k] = v
		}

		return fallback, nil
	}

	actions := make(map[string]string, len(conversions))
	for _, conversion := range conversions {
		actions[conversion.ID] = conversion.Name
	}

	return actions, nil
}
