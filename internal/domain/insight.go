package domain

import (
	"time"

	"github.com/stevetowers08/reporting-workspace-api/pkg/utils"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// AdMetrics representa as métricas de anúncios de uma plataforma em um período
type AdMetrics struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
	Leads       int     `json:"leads"`
	Reach       int     `json:"reach"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	CostPerLead float64 `json:"cost_per_lead"`

	LeadsByDate map[string]int     `json:"leads_by_date,omitempty"`
	SpendByDate map[string]float64 `json:"spend_by_date,omitempty"`
}

func (m *AdMetrics) IsEmpty() bool {
	if m == nil {
		return true
	}

	return m.Impressions == 0 && m.Clicks == 0 && m.Spend == 0 && m.Leads == 0
}

// RecalculateDerived recalcula as métricas derivadas a partir dos totais,
// protegendo todas as divisões contra denominador zero
func (m *AdMetrics) RecalculateDerived() {
	if m == nil {
		return
	}

	m.CTR = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(m.Clicks), float64(m.Impressions)) * 100)
	m.CPC = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(m.Spend, float64(m.Clicks)))
	m.CPM = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(m.Spend, float64(m.Impressions)) * 1000)
	m.CostPerLead = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(m.Spend, float64(m.Leads)))
	m.Spend = utils.RoundWithTwoDecimalPlace(m.Spend)
}

// CombineAdMetrics soma duas métricas de anúncios e recalcula as derivadas
func CombineAdMetrics(a, b *AdMetrics) *AdMetrics {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &AdMetrics{}
	}
	if b == nil {
		b = &AdMetrics{}
	}

	combined := &AdMetrics{
		Impressions: a.Impressions + b.Impressions,
		Clicks:      a.Clicks + b.Clicks,
		Spend:       a.Spend + b.Spend,
		Leads:       a.Leads + b.Leads,
		Reach:       a.Reach + b.Reach,
	}

	combined.LeadsByDate = mergeIntByDate(a.LeadsByDate, b.LeadsByDate)
	combined.SpendByDate = mergeFloatByDate(a.SpendByDate, b.SpendByDate)
	combined.RecalculateDerived()

	return combined
}

func mergeIntByDate(a, b map[string]int) map[string]int {
	if a == nil && b == nil {
		return nil
	}

	out := make(map[string]int, len(a)+len(b))
	for k, v := range a {
		out[k] += v
	}
	for k, v := range b {
		out[k] += v
	}

	return out
}

func mergeFloatByDate(a, b map[string]float64) map[string]float64 {
	if a == nil && b == nil {
		return nil
	}

	out := make(map[string]float64, len(a)+len(b))
	for k, v := range a {
		out[k] += v
	}
	for k, v := range b {
		out[k] += v
	}

	return out
}

// EventMetrics representa as métricas de eventos/CRM de um venue em um período
type EventMetrics struct {
	TotalEvents int            `json:"total_events"`
	TotalLeads  int            `json:"total_leads"`
	GuestCount  int            `json:"guest_count"`
	Revenue     float64        `json:"revenue"`
	BySource    map[string]int `json:"by_source,omitempty"`
}

func (m *EventMetrics) IsEmpty() bool {
	if m == nil {
		return true
	}

	return m.TotalEvents == 0 && m.TotalLeads == 0 && m.Revenue == 0
}

// CombineEventMetrics soma métricas de eventos vindas de fontes diferentes
func CombineEventMetrics(a, b *EventMetrics) *EventMetrics {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		a = &EventMetrics{}
	}
	if b == nil {
		b = &EventMetrics{}
	}

	return &EventMetrics{
		TotalEvents: a.TotalEvents + b.TotalEvents,
		TotalLeads:  a.TotalLeads + b.TotalLeads,
		GuestCount:  a.GuestCount + b.GuestCount,
		Revenue:     utils.RoundWithTwoDecimalPlace(a.Revenue + b.Revenue),
		BySource:    mergeIntByDate(a.BySource, b.BySource),
	}
}

type ResultMetrics struct {
	ConversionRate float64 `json:"conversion_rate"`
	ROAS           float64 `json:"roas"`
}

// CalculateResultMetrics calcula métricas de resultado combinando anúncios e eventos
func CalculateResultMetrics(adMetrics *AdMetrics, eventMetrics *EventMetrics) *ResultMetrics {
	if adMetrics == nil || eventMetrics == nil {
		return nil
	}

	// Conversão: porcentagem de leads de anúncio que viraram eventos
	conversion := 0.0
	if adMetrics.Leads > 0 {
		conversion = (float64(eventMetrics.TotalEvents) / float64(adMetrics.Leads)) * 100
	}

	// ROAS: receita de eventos sobre o investimento em anúncios
	roas := 0.0
	if adMetrics.Spend > 0 {
		roas = eventMetrics.Revenue / adMetrics.Spend
	}

	return &ResultMetrics{
		ConversionRate: utils.RoundWithTwoDecimalPlace(conversion),
		ROAS:           utils.RoundWithTwoDecimalPlace(roas),
	}
}

// DashboardResponse é a resposta combinada consumida pelo dashboard do venue
type DashboardResponse struct {
	VenueID       string                `json:"venue_id"`
	VenueName     string                `json:"venue_name"`
	AdMetrics     map[string]*AdMetrics `json:"ad_metrics"`
	TotalMetrics  *AdMetrics            `json:"total_metrics"`
	EventMetrics  *EventMetrics         `json:"event_metrics"`
	ResultMetrics *ResultMetrics        `json:"result_metrics"`
	Filters       *InsightFilters       `json:"filters"`
}

// CombineInsights monta a resposta do dashboard a partir das métricas por plataforma
func CombineInsights(venue *Venue, adMetrics map[string]*AdMetrics, eventMetrics *EventMetrics, filters *InsightFilters) *DashboardResponse {
	response := &DashboardResponse{
		VenueID:   venue.ID,
		VenueName: venue.Name,
		AdMetrics: adMetrics,
		Filters:   filters,
	}

	var total *AdMetrics
	for _, metrics := range adMetrics {
		total = CombineAdMetrics(total, metrics)
	}
	response.TotalMetrics = total

	if eventMetrics != nil {
		response.EventMetrics = eventMetrics
	}

	if total != nil && eventMetrics != nil {
		response.ResultMetrics = CalculateResultMetrics(total, eventMetrics)
	}

	return response
}
