package domain

import (
	"time"
)

type VenueStatus string

const (
	VenueStatusActive   VenueStatus = "ACTIVE"
	VenueStatusInactive VenueStatus = "INACTIVE"
	VenueStatusPaused   VenueStatus = "PAUSED"
)

// Venue representa um cliente do dashboard com suas contas conectadas
type Venue struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	LogoURL           *string           `json:"logo_url"`
	Status            VenueStatus       `json:"status"`
	MetaAdAccountID   *string           `json:"meta_ad_account_id"`
	GoogleCustomerID  *string           `json:"google_customer_id"`
	GHLLocationID     *string           `json:"ghl_location_id"`
	SheetID           *string           `json:"sheet_id"`
	SheetRange        *string           `json:"sheet_range"`
	ConversionActions map[string]string `json:"conversion_actions"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// HasPlatform indica se o venue possui conta conectada na plataforma informada
func (v *Venue) HasPlatform(platform string) bool {
	switch platform {
	case PlatformFacebookAds:
		return v.MetaAdAccountID != nil && *v.MetaAdAccountID != ""
	case PlatformGoogleAds:
		return v.GoogleCustomerID != nil && *v.GoogleCustomerID != ""
	case PlatformGoHighLevel:
		return v.GHLLocationID != nil && *v.GHLLocationID != ""
	case PlatformGoogleSheets:
		return v.SheetID != nil && *v.SheetID != ""
	}

	return false
}

type CreateVenueRequest struct {
	Name             string  `json:"name"`
	LogoURL          *string `json:"logo_url,omitempty"`
	MetaAdAccountID  *string `json:"meta_ad_account_id,omitempty"`
	GoogleCustomerID *string `json:"google_customer_id,omitempty"`
	GHLLocationID    *string `json:"ghl_location_id,omitempty"`
	SheetID          *string `json:"sheet_id,omitempty"`
	SheetRange       *string `json:"sheet_range,omitempty"`
}

type UpdateVenueRequest struct {
	ID                string            `json:"id"`
	Name              *string           `json:"name,omitempty"`
	LogoURL           *string           `json:"logo_url,omitempty"`
	Status            *string           `json:"status,omitempty"`
	MetaAdAccountID   *string           `json:"meta_ad_account_id,omitempty"`
	GoogleCustomerID  *string           `json:"google_customer_id,omitempty"`
	GHLLocationID     *string           `json:"ghl_location_id,omitempty"`
	SheetID           *string           `json:"sheet_id,omitempty"`
	SheetRange        *string           `json:"sheet_range,omitempty"`
	ConversionActions map[string]string `json:"conversion_actions,omitempty"`
}

type VenueResponse struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	LogoURL          *string     `json:"logo_url"`
	Status           VenueStatus `json:"status"`
	MetaAdAccountID  *string     `json:"meta_ad_account_id"`
	GoogleCustomerID *string     `json:"google_customer_id"`
	GHLLocationID    *string     `json:"ghl_location_id"`
	SheetID          *string     `json:"sheet_id"`
	Platforms        []string    `json:"platforms"`
}

type SyncVenuesResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}

// DiscoveredAccount representa uma conta de anúncio encontrada durante o sync
type DiscoveredAccount struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Platform   string `json:"platform"`
}
