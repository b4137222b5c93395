package domain

import (
	"time"
)

// EventInsightEntry representa as métricas diárias de eventos/CRM de um venue armazenadas no banco
type EventInsightEntry struct {
	ID        int64         `json:"id"`
	VenueID   string        `json:"venue_id"`
	Source    string        `json:"source"`
	Date      time.Time     `json:"date"`
	Metrics   *EventMetrics `json:"metrics"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
