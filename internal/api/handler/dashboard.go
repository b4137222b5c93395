package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/insighting"
	"github.com/stevetowers08/reporting-workspace-api/pkg/log"
	"github.com/stevetowers08/reporting-workspace-api/pkg/utils"
)

// parseInsightFilters extrai e valida start_date e end_date da query string
func parseInsightFilters(r *http.Request) (*domain.InsightFilters, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	return &domain.InsightFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func GetVenueDashboard(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("venue_id", id).Info("dashboard: fetching venue dashboard by ID")

		filters, err := parseInsightFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"venue_id":   id,
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("dashboard: invalid date parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithFields(log.Fields{
			"venue_id":   id,
			"start_date": utils.FormatDate(filters.StartDate),
			"end_date":   utils.FormatDate(filters.EndDate),
		}).Debug("dashboard: fetching dashboard with filters")

		dashboard, err := service.GetDashboard(r.Context(), id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"venue_id":   id,
				"start_date": utils.FormatDate(filters.StartDate),
				"end_date":   utils.FormatDate(filters.EndDate),
				"error":      err.Error(),
			}).Error("dashboard: failed to get dashboard for venue")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if dashboard != nil {
			logger.WithFields(log.Fields{
				"venue_id":   id,
				"venue_name": dashboard.VenueName,
			}).Info("dashboard: successfully retrieved venue dashboard")
		} else {
			logger.WithField("venue_id", id).Info("dashboard: no data found for venue")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithFields(log.Fields{
				"venue_id": id,
				"error":    err.Error(),
			}).Error("dashboard: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetVenueDemographics(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("venue_id", id).Info("demographics: fetching demographic breakdown by venue ID")

		filters, err := parseInsightFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"venue_id": id,
				"error":    err.Error(),
			}).Warn("demographics: invalid date parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		breakdown, err := service.GetDemographics(r.Context(), id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"venue_id": id,
				"error":    err.Error(),
			}).Error("demographics: failed to get demographic breakdown")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"venue_id":          id,
			"total_impressions": breakdown.Total,
			"cells":             len(breakdown.Cells),
		}).Info("demographics: breakdown retrieved successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(breakdown); err != nil {
			logger.WithFields(log.Fields{
				"venue_id": id,
				"error":    err.Error(),
			}).Error("demographics: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetVenuePlatformBreakdown(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("venue_id", id).Info("platforms: fetching platform breakdown by venue ID")

		filters, err := parseInsightFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"venue_id": id,
				"error":    err.Error(),
			}).Warn("platforms: invalid date parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		breakdown, err := service.GetPlatformBreakdown(r.Context(), id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"venue_id": id,
				"error":    err.Error(),
			}).Error("platforms: failed to get platform breakdown")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"venue_id":          id,
			"total_impressions": breakdown.Total,
			"platforms":         len(breakdown.Stats),
		}).Info("platforms: breakdown retrieved successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(breakdown); err != nil {
			logger.WithFields(log.Fields{
				"venue_id": id,
				"error":    err.Error(),
			}).Error("platforms: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
