package domain

import (
	"time"
)

// MonthlyAdInsight representa o consolidado mensal de anúncios de um venue
type MonthlyAdInsight struct {
	ID        int64      `json:"id"`
	VenueID   string     `json:"venue_id"`
	Platform  string     `json:"platform"`
	Period    string     `json:"period"` // Período no formato mm-yyyy
	Metrics   *AdMetrics `json:"metrics"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MonthlyEventInsight representa o consolidado mensal de eventos de um venue
type MonthlyEventInsight struct {
	ID        int64         `json:"id"`
	VenueID   string        `json:"venue_id"`
	Period    string        `json:"period"`
	Metrics   *EventMetrics `json:"metrics"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// MonthlyInsightReport representa o relatório mensal combinado de um venue,
// payload consumido pela exportação de relatórios
type MonthlyInsightReport struct {
	VenueID       string                `json:"venue_id"`
	VenueName     string                `json:"venue_name,omitempty"`
	Period        string                `json:"period"`
	AdMetrics     map[string]*AdMetrics `json:"ad_metrics,omitempty"`
	TotalMetrics  *AdMetrics            `json:"total_metrics,omitempty"`
	EventMetrics  *EventMetrics         `json:"event_metrics,omitempty"`
	ResultMetrics *ResultMetrics        `json:"result_metrics,omitempty"`
}
