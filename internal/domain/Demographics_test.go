package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDemographicBreakdown(t *testing.T) {
	t.Run("Percentuais somam 100 quando há impressões", func(t *testing.T) {
		cells := []DemographicCell{
			{AgeRange: "25-34", Gender: "male", Impressions: 250},
			{AgeRange: "25-34", Gender: "female", Impressions: 250},
			{AgeRange: "35-44", Gender: "male", Impressions: 300},
			{AgeRange: "35-44", Gender: "female", Impressions: 200},
		}

		breakdown := BuildDemographicBreakdown(cells)

		assert.Equal(t, 1000, breakdown.Total)

		sum := 0.0
		for _, cell := range breakdown.Cells {
			sum += cell.Percentage
		}
		assert.InDelta(t, 100.0, sum, 0.05)

		assert.Equal(t, 25.0, breakdown.Cells[0].Percentage)
		assert.Equal(t, 30.0, breakdown.Cells[2].Percentage)

		assert.Equal(t, 50.0, breakdown.ByAge["25-34"])
		assert.Equal(t, 50.0, breakdown.ByAge["35-44"])
		assert.Equal(t, 55.0, breakdown.ByGender["male"])
		assert.Equal(t, 45.0, breakdown.ByGender["female"])
	})

	t.Run("Total zero resulta em percentuais zerados", func(t *testing.T) {
		cells := []DemographicCell{
			{AgeRange: "25-34", Gender: "male", Impressions: 0},
			{AgeRange: "35-44", Gender: "female", Impressions: 0},
		}

		breakdown := BuildDemographicBreakdown(cells)

		assert.Equal(t, 0, breakdown.Total)
		for _, cell := range breakdown.Cells {
			assert.Equal(t, 0.0, cell.Percentage)
		}
		for _, pct := range breakdown.ByAge {
			assert.Equal(t, 0.0, pct)
		}
	})

	t.Run("Lista vazia não quebra", func(t *testing.T) {
		breakdown := BuildDemographicBreakdown(nil)

		assert.Equal(t, 0, breakdown.Total)
		assert.Empty(t, breakdown.Cells)
	})
}

func TestBuildPlatformBreakdown(t *testing.T) {
	t.Run("Percentuais somam 100 quando há impressões", func(t *testing.T) {
		stats := []PlatformStat{
			{Platform: "facebook", Impressions: 600},
			{Platform: "instagram", Impressions: 300},
			{Platform: "audience_network", Impressions: 100},
		}

		breakdown := BuildPlatformBreakdown(stats)

		assert.Equal(t, 1000, breakdown.Total)
		assert.Equal(t, 60.0, breakdown.Stats[0].Percentage)
		assert.Equal(t, 30.0, breakdown.Stats[1].Percentage)
		assert.Equal(t, 10.0, breakdown.Stats[2].Percentage)

		sum := 0.0
		for _, stat := range breakdown.Stats {
			sum += stat.Percentage
		}
		assert.InDelta(t, 100.0, sum, 0.05)
	})

	t.Run("Total zero resulta em percentuais zerados", func(t *testing.T) {
		stats := []PlatformStat{
			{Platform: "facebook", Impressions: 0},
			{Platform: "instagram", Impressions: 0},
		}

		breakdown := BuildPlatformBreakdown(stats)

		for _, stat := range breakdown.Stats {
			assert.Equal(t, 0.0, stat.Percentage)
		}
	})
}
