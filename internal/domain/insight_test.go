package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombineAdMetrics(t *testing.T) {
	tests := []struct {
		name     string
		a        *AdMetrics
		b        *AdMetrics
		validate func(t *testing.T, result *AdMetrics)
	}{
		{
			name: "Ambos nulos retorna nulo",
			a:    nil,
			b:    nil,
			validate: func(t *testing.T, result *AdMetrics) {
				assert.Nil(t, result)
			},
		},
		{
			name: "Soma totais e recalcula derivadas",
			a: &AdMetrics{
				Impressions: 10000,
				Clicks:      200,
				Spend:       150.0,
				Leads:       20,
			},
			b: &AdMetrics{
				Impressions: 5000,
				Clicks:      100,
				Spend:       50.0,
				Leads:       5,
			},
			validate: func(t *testing.T, result *AdMetrics) {
				assert.Equal(t, 15000, result.Impressions)
				assert.Equal(t, 300, result.Clicks)
				assert.Equal(t, 200.0, result.Spend)
				assert.Equal(t, 25, result.Leads)
				assert.Equal(t, 2.0, result.CTR)              // 300/15000 * 100
				assert.InDelta(t, 0.67, result.CPC, 0.001)    // 200/300
				assert.InDelta(t, 13.33, result.CPM, 0.001)   // 200/15000 * 1000
				assert.Equal(t, 8.0, result.CostPerLead)      // 200/25
			},
		},
		{
			name: "Métricas zeradas não geram divisão por zero",
			a:    &AdMetrics{},
			b:    &AdMetrics{},
			validate: func(t *testing.T, result *AdMetrics) {
				assert.Equal(t, 0.0, result.CTR)
				assert.Equal(t, 0.0, result.CPC)
				assert.Equal(t, 0.0, result.CPM)
				assert.Equal(t, 0.0, result.CostPerLead)
			},
		},
		{
			name: "Mapas por data são mesclados somando valores",
			a: &AdMetrics{
				LeadsByDate: map[string]int{"2025-01-01": 3},
				SpendByDate: map[string]float64{"2025-01-01": 10.0},
			},
			b: &AdMetrics{
				LeadsByDate: map[string]int{"2025-01-01": 2, "2025-01-02": 4},
				SpendByDate: map[string]float64{"2025-01-02": 5.0},
			},
			validate: func(t *testing.T, result *AdMetrics) {
				assert.Equal(t, 5, result.LeadsByDate["2025-01-01"])
				assert.Equal(t, 4, result.LeadsByDate["2025-01-02"])
				assert.Equal(t, 10.0, result.SpendByDate["2025-01-01"])
				assert.Equal(t, 5.0, result.SpendByDate["2025-01-02"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CombineAdMetrics(tt.a, tt.b))
		})
	}
}

func TestCalculateResultMetrics(t *testing.T) {
	t.Run("Calcula conversão e ROAS", func(t *testing.T) {
		adMetrics := &AdMetrics{Leads: 50, Spend: 200.0}
		eventMetrics := &EventMetrics{TotalEvents: 10, Revenue: 500.0}

		result := CalculateResultMetrics(adMetrics, eventMetrics)

		assert.NotNil(t, result)
		assert.Equal(t, 20.0, result.ConversionRate) // 10/50 * 100
		assert.Equal(t, 2.5, result.ROAS)            // 500/200
	})

	t.Run("Leads e spend zerados não geram NaN", func(t *testing.T) {
		result := CalculateResultMetrics(&AdMetrics{}, &EventMetrics{TotalEvents: 5, Revenue: 100})

		assert.NotNil(t, result)
		assert.Equal(t, 0.0, result.ConversionRate)
		assert.Equal(t, 0.0, result.ROAS)
	})

	t.Run("Entrada nula retorna nulo", func(t *testing.T) {
		assert.Nil(t, CalculateResultMetrics(nil, &EventMetrics{}))
		assert.Nil(t, CalculateResultMetrics(&AdMetrics{}, nil))
	})
}

func TestCombineInsights(t *testing.T) {
	startDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	filters := &InsightFilters{StartDate: &startDate, EndDate: &endDate}

	venue := &Venue{ID: "v1", Name: "Venue Teste"}

	adMetrics := map[string]*AdMetrics{
		PlatformFacebookAds: {Impressions: 1000, Clicks: 50, Spend: 100.0, Leads: 10},
		PlatformGoogleAds:   {Impressions: 2000, Clicks: 100, Spend: 300.0, Leads: 30},
	}
	eventMetrics := &EventMetrics{TotalEvents: 8, Revenue: 1200.0}

	response := CombineInsights(venue, adMetrics, eventMetrics, filters)

	assert.Equal(t, "v1", response.VenueID)
	assert.Equal(t, 3000, response.TotalMetrics.Impressions)
	assert.Equal(t, 400.0, response.TotalMetrics.Spend)
	assert.Equal(t, 40, response.TotalMetrics.Leads)
	assert.Equal(t, eventMetrics, response.EventMetrics)
	assert.NotNil(t, response.ResultMetrics)
	assert.Equal(t, 20.0, response.ResultMetrics.ConversionRate) // 8/40 * 100
	assert.Equal(t, 3.0, response.ResultMetrics.ROAS)            // 1200/400
	assert.Equal(t, filters, response.Filters)
}

func TestCombineInsights_SemEventos(t *testing.T) {
	venue := &Venue{ID: "v1", Name: "Venue Teste"}
	adMetrics := map[string]*AdMetrics{
		PlatformFacebookAds: {Impressions: 1000, Clicks: 50, Spend: 100.0},
	}

	response := CombineInsights(venue, adMetrics, nil, &InsightFilters{})

	assert.NotNil(t, response.TotalMetrics)
	assert.Nil(t, response.EventMetrics)
	assert.Nil(t, response.ResultMetrics)
}
