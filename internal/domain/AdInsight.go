package domain

import (
	"time"
)

// AdInsightEntry representa as métricas diárias de anúncios de um venue armazenadas no banco
type AdInsightEntry struct {
	ID        int64      `json:"id"`
	VenueID   string     `json:"venue_id"`
	Platform  string     `json:"platform"`
	Date      time.Time  `json:"date"`
	Metrics   *AdMetrics `json:"metrics"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
