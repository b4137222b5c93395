package domain

import (
	"time"
)

const (
	PlatformFacebookAds  = "facebook_ads"
	PlatformGoogleAds    = "google_ads"
	PlatformGoHighLevel  = "gohighlevel"
	PlatformGoogleSheets = "google_sheets"
)

// Platforms lista as plataformas suportadas na ordem de exibição do dashboard
var Platforms = []string{
	PlatformFacebookAds,
	PlatformGoogleAds,
	PlatformGoHighLevel,
	PlatformGoogleSheets,
}

func KnownPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}

	return false
}

// Integration guarda as credenciais OAuth de uma plataforma conectada
type Integration struct {
	ID           int64      `json:"id"`
	Platform     string     `json:"platform"`
	AccessToken  string     `json:"-"`
	RefreshToken *string    `json:"-"`
	ExpiresAt    *time.Time `json:"expires_at"`
	Connected    bool       `json:"connected"`
	AccountID    *string    `json:"account_id"`
	AccountName  *string    `json:"account_name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsExpired indica se o token expira dentro da margem informada
func (i *Integration) IsExpired(margin time.Duration) bool {
	if i.ExpiresAt == nil {
		return false
	}

	return time.Now().Add(margin).After(*i.ExpiresAt)
}

type IntegrationStatus struct {
	Platform    string     `json:"platform"`
	Connected   bool       `json:"connected"`
	AccountID   *string    `json:"account_id,omitempty"`
	AccountName *string    `json:"account_name,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// OAuthState é o conteúdo serializado em base64 no parâmetro state da URL de autorização
type OAuthState struct {
	UserID    int    `json:"userId"`
	Platform  string `json:"platform"`
	Timestamp int64  `json:"timestamp"`
	Nonce     string `json:"nonce"`
}

type AuthorizeURLResponse struct {
	URL          string `json:"url"`
	State        string `json:"state"`
	CodeVerifier string `json:"code_verifier,omitempty"`
}

type OAuthCallbackRequest struct {
	Code         string `json:"code"`
	State        string `json:"state"`
	CodeVerifier string `json:"code_verifier,omitempty"`
}
