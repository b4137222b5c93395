package ghl

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/ghl/ghlclient"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
)

type Integrator interface {
	GetEventMetrics(ctx context.Context, locationID string, filters *domain.InsightFilters) (*domain.EventMetrics, error)
}

type GHLIntegrator struct {
	cfg    *config.Config
	Client ghlclient.Client
}

func New(cfg *config.Config, client ghlclient.Client) *GHLIntegrator {
	return &GHLIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetEventMetrics monta as métricas de CRM do período: leads por origem a
// partir dos contatos e eventos a partir dos agendamentos confirmados
func (s *GHLIntegrator) GetEventMetrics(ctx context.Context, locationID string, filters *domain.InsightFilters) (*domain.EventMetrics, error) {
	contacts, err := s.Client.GetContacts(ctx, locationID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"location_id": locationID,
			"error":       err.Error(),
		}).Error("insights: failed to get contacts from gohighlevel")
		return nil, err
	}

	metrics := &domain.EventMetrics{
		BySource: make(map[string]int),
	}

	metrics.TotalLeads = len(contacts)
	for _, contact := range contacts {
		source := contact.Source
		if source == "" {
			source = "unknown"
		}
		metrics.BySource[source]++
	}

	appointments, err := s.Client.GetAppointments(ctx, locationID, filters)
	if err != nil {
		// Agendamentos indisponíveis não invalidam a contagem de leads
		logrus.WithFields(logrus.Fields{
			"location_id": locationID,
			"error":       err.Error(),
		}).Warn("insights: failed to get appointments from gohighlevel")
	} else {
		for _, appointment := range appointments {
			if appointment.Status == "cancelled" || appointment.Status == "noshow" {
				continue
			}
			metrics.TotalEvents++
		}
	}

	logrus.WithFields(logrus.Fields{
		"location_id":  locationID,
		"total_leads":  metrics.TotalLeads,
		"total_events": metrics.TotalEvents,
	}).Debug("insights: successfully retrieved gohighlevel metrics")

	return metrics, nil
}
