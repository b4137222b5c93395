package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/insighting"
	"github.com/stevetowers08/reporting-workspace-api/pkg/apiErrors"
	"github.com/stevetowers08/reporting-workspace-api/pkg/log"
)

// GetMonthlyInsightReport retorna o relatório mensal consolidado de todos os
// venues para o período informado via query string (month + year)
func GetMonthlyInsightReport(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		monthStr := r.URL.Query().Get("month")
		yearStr := r.URL.Query().Get("year")
		if monthStr == "" || yearStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os parâmetros month e year são obrigatórios", nil)
			return
		}

		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido: informe um valor entre 01 e 12", nil)
			return
		}

		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 1000 || year > 9999 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido: informe um valor com quatro dígitos", nil)
			return
		}

		period := fmt.Sprintf("%02d-%04d", month, year)

		logger.WithFields(log.Fields{
			"period": period,
		}).Info("monthly-insights: gerando relatório mensal")

		insights, err := service.GetMonthlyInsightsByPeriod(period)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"period": period,
			}).Error("monthly-insights: erro ao buscar relatório mensal")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório mensal", map[string]interface{}{
				"period": period,
			})
			return
		}

		logger.WithFields(log.Fields{
			"period":          period,
			"venues_returned": len(insights),
		}).Info("monthly-insights: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithError(err).Error("monthly-insights: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetAvailableMonthlyPeriods retorna os períodos com relatório mensal disponível
func GetAvailableMonthlyPeriods(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		availablePeriods, err := service.GetAvailableMonthlyPeriods()
		if err != nil {
			logger.WithError(err).Error("insights-periods: erro ao buscar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar períodos disponíveis", nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(availablePeriods.Periods),
		}).Info("insights-periods: períodos disponíveis recuperados")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(availablePeriods); err != nil {
			logger.WithError(err).Error("insights-periods: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
