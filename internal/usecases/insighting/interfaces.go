package insighting

import (
	"context"

	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
)

// AdInsighter define a interface para obter métricas de anúncios de um venue
type AdInsighter interface {
	// GetAdMetrics obtém as métricas de anúncios de uma plataforma específica
	GetAdMetrics(ctx context.Context, venueID, platform string, filters *domain.InsightFilters) (*domain.AdMetrics, error)
}

// EventInsighter define a interface para obter métricas de eventos e leads do CRM
type EventInsighter interface {
	// GetEventMetrics obtém as métricas de eventos combinadas de todas as fontes do venue
	GetEventMetrics(ctx context.Context, venueID string, filters *domain.InsightFilters) (*domain.EventMetrics, error)
}

// CombinedInsighter é a interface completa que combina anúncios, eventos e relatórios
type CombinedInsighter interface {
	AdInsighter
	EventInsighter

	// GetDashboard obtém todas as métricas (anúncios e eventos) de um venue específico
	GetDashboard(ctx context.Context, venueID string, filters *domain.InsightFilters) (*domain.DashboardResponse, error)

	// GetDemographics obtém a distribuição demográfica combinada das plataformas de anúncios
	GetDemographics(ctx context.Context, venueID string, filters *domain.InsightFilters) (*domain.DemographicBreakdown, error)

	// GetPlatformBreakdown obtém a distribuição de veiculação por plataforma de publicação
	GetPlatformBreakdown(ctx context.Context, venueID string, filters *domain.InsightFilters) (*domain.PlatformBreakdown, error)

	// GetMonthlyInsightsByPeriod obtém os insights mensais de todos os venues em um período específico
	GetMonthlyInsightsByPeriod(period string) ([]*domain.MonthlyInsightReport, error)

	// GetAvailableMonthlyPeriods retorna os períodos (meses e anos) disponíveis nas tabelas de insights mensais
	GetAvailableMonthlyPeriods() (*domain.AvailablePeriods, error)
}
