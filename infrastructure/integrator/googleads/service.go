package googleads

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/googleads/googleclient"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/utils"
)

type Integrator interface {
	GetAdMetrics(ctx context.Context, customerID string, filters *domain.InsightFilters) (*domain.AdMetrics, error)
	GetDemographics(ctx context.Context, customerID string, filters *domain.InsightFilters) ([]domain.DemographicCell, error)
	GetAdAccounts(ctx context.Context) ([]*domain.DiscoveredAccount, error)
	GetConversionActions(ctx context.Context, customerID string) (map[string]string, error)
}

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client googleclient.Client
}

func New(cfg *config.Config, client googleclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAdMetrics consulta as métricas de campanha segmentadas por dia e agrega
// no formato do dashboard. cost_micros vem em milionésimos da moeda.
func (s *GoogleAdsIntegrator) GetAdMetrics(ctx context.Context, customerID string, filters *domain.InsightFilters) (*domain.AdMetrics, error) {
	query := fmt.Sprintf(`
		SELECT
			segments.date,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros,
			metrics.conversions
		FROM campaign
		WHERE segments.date BETWEEN '%s' AND '%s'`,
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)

	results, err := s.Client.Search(ctx, customerID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("insights: failed to get google ads metrics from API")
		return nil, err
	}

	metrics := &domain.AdMetrics{
		LeadsByDate: make(map[string]int),
		SpendByDate: make(map[string]float64),
	}

	for _, result := range results {
		if result.Metrics == nil {
			continue
		}

		spend := float64(utils.ParseIntOrZero(result.Metrics.CostMicros)) / 1e6
		leads := int(result.Metrics.Conversions)

		metrics.Impressions += utils.ParseIntOrZero(result.Metrics.Impressions)
		metrics.Clicks += utils.ParseIntOrZero(result.Metrics.Clicks)
		metrics.Spend += spend
		metrics.Leads += leads

		if result.Segments != nil && result.Segments.Date != "" {
			metrics.LeadsByDate[result.Segments.Date] += leads
			metrics.SpendByDate[result.Segments.Date] += spend
		}
	}

	metrics.RecalculateDerived()

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"impressions": metrics.Impressions,
		"spend":       metrics.Spend,
	}).Debug("insights: successfully retrieved google ads metrics")

	return metrics, nil
}

// GetDemographics consulta as visões de faixa etária e gênero. O Google Ads
// não cruza as duas dimensões em uma única consulta, então cada célula traz
// uma dimensão preenchida e a outra como "all".
func (s *GoogleAdsIntegrator) GetDemographics(ctx context.Context, customerID string, filters *domain.InsightFilters) ([]domain.DemographicCell, error) {
	dateClause := fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)

	ageQuery := fmt.Sprintf(`
		SELECT
			ad_group_criterion.age_range.type,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros
		FROM age_range_view
		WHERE %s`, dateClause)

	genderQuery := fmt.Sprintf(`
		SELECT
			ad_group_criterion.gender.type,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros
		FROM gender_view
		WHERE %s`, dateClause)

	cells := make([]domain.DemographicCell, 0)

	ageResults, err := s.Client.Search(ctx, customerID, ageQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("insights: failed to get age breakdown from google ads")
		return nil, err
	}

	for _, result := range ageResults {
		if result.Metrics == nil || result.AdGroupCriterion == nil || result.AdGroupCriterion.AgeRange == nil {
			continue
		}

		cells = append(cells, domain.DemographicCell{
			AgeRange:    normalizeAgeRange(result.AdGroupCriterion.AgeRange.Type),
			Gender:      "all",
			Impressions: utils.ParseIntOrZero(result.Metrics.Impressions),
			Clicks:      utils.ParseIntOrZero(result.Metrics.Clicks),
			Spend:       float64(utils.ParseIntOrZero(result.Metrics.CostMicros)) / 1e6,
		})
	}

	genderResults, err := s.Client.Search(ctx, customerID, genderQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("insights: failed to get gender breakdown from google ads")
		return nil, err
	}

	for _, result := range genderResults {
		if result.Metrics == nil || result.AdGroupCriterion == nil || result.AdGroupCriterion.Gender == nil {
			continue
		}

		cells = append(cells, domain.DemographicCell{
			AgeRange:    "all",
			Gender:      strings.ToLower(result.AdGroupCriterion.Gender.Type),
			Impressions: utils.ParseIntOrZero(result.Metrics.Impressions),
			Clicks:      utils.ParseIntOrZero(result.Metrics.Clicks),
			Spend:       float64(utils.ParseIntOrZero(result.Metrics.CostMicros)) / 1e6,
		})
	}

	return cells, nil
}

// normalizeAgeRange converte AGE_RANGE_25_34 para 25-34, o formato usado pelo dashboard
func normalizeAgeRange(ageRangeType string) string {
	normalized := strings.TrimPrefix(ageRangeType, "AGE_RANGE_")
	normalized = strings.ReplaceAll(normalized, "_UP", "+")
	normalized = strings.ReplaceAll(normalized, "_", "-")

	return strings.ToLower(normalized)
}

// GetAdAccounts descobre os clientes acessíveis e busca o nome de cada um
func (s *GoogleAdsIntegrator) GetAdAccounts(ctx context.Context) ([]*domain.DiscoveredAccount, error) {
	customerIDs, err := s.Client.ListAccessibleCustomers(ctx)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to list accessible google ads customers")
		return nil, err
	}

	discovered := make([]*domain.DiscoveredAccount, 0, len(customerIDs))
	for _, customerID := range customerIDs {
		name := customerID

		results, err := s.Client.Search(ctx, customerID, "SELECT customer.id, customer.descriptive_name FROM customer")
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Warn("insights: failed to get customer name, using id")
		} else if len(results) > 0 && results[0].Customer != nil && results[0].Customer.DescriptiveName != "" {
			name = results[0].Customer.DescriptiveName
		}

		discovered = append(discovered, &domain.DiscoveredAccount{
			ExternalID: customerID,
			Name:       name,
			Platform:   domain.PlatformGoogleAds,
		})
	}

	logrus.WithField("total_accounts", len(discovered)).Info("insights: successfully retrieved google ads customers")

	return discovered, nil
}

// GetConversionActions mapeia as ações de conversão configuradas no cliente
func (s *GoogleAdsIntegrator) GetConversionActions(ctx context.Context, customerID string) (map[string]string, error) {
	results, err := s.Client.Search(ctx, customerID, "SELECT conversion_action.id, conversion_action.name FROM conversion_action")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("insights: failed to get conversion actions from google ads")
		return nil, err
	}

	actions := make(map[string]string, len(results))
	for _, result := range results {
		if result.ConversionAction == nil {
			continue
		}
		actions[result.ConversionAction.ID] = result.ConversionAction.Name
	}

	return actions, nil
}
