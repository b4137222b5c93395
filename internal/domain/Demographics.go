package domain

import (
	"github.com/stevetowers08/reporting-workspace-api/pkg/utils"
)

// DemographicCell representa uma célula faixa etária × gênero retornada pelas plataformas
type DemographicCell struct {
	AgeRange    string  `json:"age_range"`
	Gender      string  `json:"gender"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
	Percentage  float64 `json:"percentage"`
}

type DemographicBreakdown struct {
	Cells    []DemographicCell  `json:"cells"`
	ByAge    map[string]float64 `json:"by_age"`
	ByGender map[string]float64 `json:"by_gender"`
	Total    int                `json:"total_impressions"`
}

// BuildDemographicBreakdown calcula os percentuais de cada célula sobre o total
// de impressões. Total zero resulta em percentuais zerados, nunca NaN.
func BuildDemographicBreakdown(cells []DemographicCell) *DemographicBreakdown {
	breakdown := &DemographicBreakdown{
		Cells:    make([]DemographicCell, 0, len(cells)),
		ByAge:    make(map[string]float64),
		ByGender: make(map[string]float64),
	}

	total := 0
	for _, cell := range cells {
		total += cell.Impressions
	}
	breakdown.Total = total

	ageTotals := make(map[string]int)
	genderTotals := make(map[string]int)

	for _, cell := range cells {
		cell.Percentage = percentageOf(cell.Impressions, total)
		breakdown.Cells = append(breakdown.Cells, cell)

		ageTotals[cell.AgeRange] += cell.Impressions
		genderTotals[cell.Gender] += cell.Impressions
	}

	for age, count := range ageTotals {
		breakdown.ByAge[age] = percentageOf(count, total)
	}
	for gender, count := range genderTotals {
		breakdown.ByGender[gender] = percentageOf(count, total)
	}

	return breakdown
}

// PlatformStat representa as métricas de um posicionamento (facebook, instagram, etc)
type PlatformStat struct {
	Platform    string  `json:"platform"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
	Percentage  float64 `json:"percentage"`
}

type PlatformBreakdown struct {
	Stats []PlatformStat `json:"stats"`
	Total int            `json:"total_impressions"`
}

// BuildPlatformBreakdown calcula o percentual de impressões de cada posicionamento
func BuildPlatformBreakdown(stats []PlatformStat) *PlatformBreakdown {
	breakdown := &PlatformBreakdown{
		Stats: make([]PlatformStat, 0, len(stats)),
	}

	total := 0
	for _, stat := range stats {
		total += stat.Impressions
	}
	breakdown.Total = total

	for _, stat := range stats {
		stat.Percentage = percentageOf(stat.Impressions, total)
		breakdown.Stats = append(breakdown.Stats, stat)
	}

	return breakdown
}

func percentageOf(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(part) / float64(total) * 100)
}
