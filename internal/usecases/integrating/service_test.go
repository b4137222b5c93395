package integrating

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository/mocks"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			AppID:     "meta-app-id",
			AppSecret: "meta-app-secret",
		},
		OAuth: config.OAuth{
			GoogleClientID: "google-client-id",
			GoogleAuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
			MetaAuthURL:    "https://www.facebook.com/v21.0/dialog/oauth",
			GHLClientID:    "ghl-client-id",
			GHLAuthURL:     "https://marketplace.gohighlevel.com/oauth/chooselocation",
			RedirectURI:    "https://app.example.com/oauth/callback",
		},
	}
}

// forgeState monta um state arbitrário para simular callbacks antigos ou adulterados
func forgeState(t *testing.T, userID int, platform string, timestamp int64) string {
	t.Helper()

	payload, err := json.Marshal(domain.OAuthState{
		UserID:    userID,
		Platform:  platform,
		Timestamp: timestamp,
		Nonce:     "nonce",
	})
	assert.NoError(t, err)

	return base64.RawURLEncoding.EncodeToString(payload)
}

func TestService_AuthorizeURL(t *testing.T) {
	service := &Service{cfg: testConfig()}

	t.Run("Google Ads usa PKCE e state decodificável", func(t *testing.T) {
		response, err := service.AuthorizeURL(42, domain.PlatformGoogleAds)

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.NotEmpty(t, response.CodeVerifier)
		assert.Contains(t, response.URL, "code_challenge=")
		assert.Contains(t, response.URL, "code_challenge_method=S256")
		assert.Contains(t, response.URL, "access_type=offline")

		state, err := decodeState(response.State)
		assert.NoError(t, err)
		assert.Equal(t, 42, state.UserID)
		assert.Equal(t, domain.PlatformGoogleAds, state.Platform)
		assert.NotEmpty(t, state.Nonce)
	})

	t.Run("Meta não usa PKCE", func(t *testing.T) {
		response, err := service.AuthorizeURL(42, domain.PlatformFacebookAds)

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Empty(t, response.CodeVerifier)
		assert.Contains(t, response.URL, "client_id=meta-app-id")
		assert.NotEmpty(t, response.State)
	})

	t.Run("GoHighLevel monta URL com client_id próprio", func(t *testing.T) {
		response, err := service.AuthorizeURL(42, domain.PlatformGoHighLevel)

		assert.NoError(t, err)
		assert.Contains(t, response.URL, "client_id=ghl-client-id")
	})

	t.Run("Plataforma desconhecida retorna erro", func(t *testing.T) {
		response, err := service.AuthorizeURL(42, "tiktok_ads")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownPlatform)
		assert.Nil(t, response)
	})
}

func TestService_HandleCallback_Validacao(t *testing.T) {
	service := &Service{cfg: testConfig()}

	tests := []struct {
		name     string
		request  *domain.OAuthCallbackRequest
		validate func(t *testing.T, err error)
	}{
		{
			name:    "Código ausente retorna erro",
			request: &domain.OAuthCallbackRequest{State: "qualquer"},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMissingCode)
			},
		},
		{
			name:    "State adulterado retorna erro",
			request: &domain.OAuthCallbackRequest{Code: "abc", State: "###inválido###"},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
		{
			name: "State expirado retorna erro",
			request: &domain.OAuthCallbackRequest{
				Code:  "abc",
				State: forgeState(t, 42, domain.PlatformGoogleAds, time.Now().Add(-time.Hour).Unix()),
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrExpiredState)
			},
		},
		{
			name: "Google sem code verifier retorna erro",
			request: &domain.OAuthCallbackRequest{
				Code:  "abc",
				State: forgeState(t, 42, domain.PlatformGoogleAds, time.Now().Unix()),
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMissingVerifier)
			},
		},
		{
			name: "Plataforma desconhecida no state retorna erro",
			request: &domain.OAuthCallbackRequest{
				Code:  "abc",
				State: forgeState(t, 42, "tiktok_ads", time.Now().Unix()),
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnknownPlatform)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := service.HandleCallback(context.Background(), tt.request)

			assert.Error(t, err)
			assert.Nil(t, status)
			tt.validate(t, err)
		})
	}
}

func TestService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrationRepo := mocks.NewMockIntegrationRepository(ctrl)

	service := &Service{
		cfg:             testConfig(),
		integrationRepo: mockIntegrationRepo,
	}

	t.Run("Todas as plataformas aparecem mesmo sem integração persistida", func(t *testing.T) {
		accountID := "loc_123"
		mockIntegrationRepo.EXPECT().
			List().
			Return([]*domain.Integration{
				{Platform: domain.PlatformGoHighLevel, Connected: true, AccountID: &accountID},
			}, nil)

		statuses, err := service.Status()

		assert.NoError(t, err)
		assert.Len(t, statuses, len(domain.Platforms))

		byPlatform := make(map[string]*domain.IntegrationStatus)
		for _, status := range statuses {
			byPlatform[status.Platform] = status
		}

		assert.True(t, byPlatform[domain.PlatformGoHighLevel].Connected)
		assert.Equal(t, "loc_123", *byPlatform[domain.PlatformGoHighLevel].AccountID)
		assert.False(t, byPlatform[domain.PlatformFacebookAds].Connected)
		assert.False(t, byPlatform[domain.PlatformGoogleAds].Connected)
	})

	t.Run("Erro no banco de dados é propagado", func(t *testing.T) {
		mockIntegrationRepo.EXPECT().
			List().
			Return(nil, assert.AnError)

		statuses, err := service.Status()

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrDatabaseFailure)
		assert.Nil(t, statuses)
	})
}

func TestService_Disconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrationRepo := mocks.NewMockIntegrationRepository(ctrl)

	service := &Service{
		cfg:             testConfig(),
		integrationRepo: mockIntegrationRepo,
		requester:       requester.New(requester.Options{}),
	}

	t.Run("Desconecta plataforma conhecida", func(t *testing.T) {
		mockIntegrationRepo.EXPECT().
			Disconnect(domain.PlatformFacebookAds).
			Return(nil)

		err := service.Disconnect(domain.PlatformFacebookAds)

		assert.NoError(t, err)
	})

	t.Run("Plataforma desconhecida retorna erro", func(t *testing.T) {
		err := service.Disconnect("tiktok_ads")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownPlatform)
	})
}
