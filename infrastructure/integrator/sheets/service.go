package sheets

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/utils"
)

type Integrator interface {
	GetEventMetrics(ctx context.Context, spreadsheetID, valueRange string, filters *domain.InsightFilters) (*domain.EventMetrics, error)
}

type SheetsIntegrator struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) *SheetsIntegrator {
	return &SheetsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Intervalo usado quando o venue não define um
const defaultValueRange = "A:Z"

// Formatos de data aceitos nas planilhas de eventos
var sheetDateFormats = []string{"2006-01-02", "01/02/2006", "1/2/2006", "02/01/2006"}

// GetEventMetrics lê as linhas de eventos da planilha e agrega o período.
// A primeira linha é o cabeçalho; as colunas são localizadas pelo nome.
func (s *SheetsIntegrator) GetEventMetrics(ctx context.Context, spreadsheetID, valueRange string, filters *domain.InsightFilters) (*domain.EventMetrics, error) {
	if valueRange == "" {
		valueRange = defaultValueRange
	}

	rows, err := s.Client.GetValues(ctx, spreadsheetID, valueRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"spreadsheet_id": spreadsheetID,
			"error":          err.Error(),
		}).Error("insights: failed to get event rows from sheet")
		return nil, err
	}

	metrics := &domain.EventMetrics{
		BySource: make(map[string]int),
	}

	if len(rows) < 2 {
		return metrics, nil
	}

	columns := mapColumns(rows[0])

	for _, row := range rows[1:] {
		date, ok := parseSheetDate(cell(row, columns["date"]))
		if !ok {
			continue
		}

		if filters.StartDate != nil && date.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && date.After(*filters.EndDate) {
			continue
		}

		metrics.TotalEvents++
		metrics.GuestCount += utils.ParseIntOrZero(cell(row, columns["guests"]))
		metrics.Revenue += utils.ParseFloatOrZero(cleanMoney(cell(row, columns["revenue"])))
		metrics.TotalLeads += utils.ParseIntOrZero(cell(row, columns["leads"]))

		if source := cell(row, columns["source"]); source != "" {
			metrics.BySource[source]++
		}
	}

	metrics.Revenue = utils.RoundWithTwoDecimalPlace(metrics.Revenue)

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": spreadsheetID,
		"total_events":   metrics.TotalEvents,
		"revenue":        metrics.Revenue,
	}).Debug("insights: successfully retrieved sheet event metrics")

	return metrics, nil
}

// mapColumns localiza as colunas conhecidas pelo nome no cabeçalho
func mapColumns(header []string) map[string]int {
	columns := map[string]int{
		"date":    -1,
		"guests":  -1,
		"revenue": -1,
		"leads":   -1,
		"source":  -1,
	}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date", "data", "event date":
			columns["date"] = i
		case "guests", "guest count", "attendees":
			columns["guests"] = i
		case "revenue", "total revenue", "value":
			columns["revenue"] = i
		case "leads", "lead count":
			columns["leads"] = i
		case "source", "origin":
			columns["source"] = i
		}
	}

	return columns
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[index])
}

func parseSheetDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, format := range sheetDateFormats {
		if date, err := time.Parse(format, value); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}

// cleanMoney remove símbolos de moeda e separadores de milhar
func cleanMoney(value string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "$")
	value = strings.TrimPrefix(value, "R$")
	value = strings.ReplaceAll(value, ",", "")

	return value
}
