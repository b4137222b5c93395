package oauthclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/oauthclient/mocks"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestRequester() *requester.Requester {
	return requester.New(requester.Options{
		Timeout:     5 * time.Second,
		MaxAttempts: 1,
	})
}

func TestTokenManager_AccessToken_UsaTokenPersistidoValido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockTokenStore(ctrl)
	store.EXPECT().GetByPlatform(domain.PlatformGoogleSheets).Return(&domain.Integration{
		Platform:    domain.PlatformGoogleSheets,
		Connected:   true,
		AccessToken: "token-valido",
		ExpiresAt:   timePtr(time.Now().Add(time.Hour)),
	}, nil)

	tm := NewTokenManager(&config.Config{}, newTestRequester(), store, domain.PlatformGoogleSheets)

	token, err := tm.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-valido", token)

	// Segunda chamada serve da memória, sem novo acesso ao banco
	token, err = tm.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-valido", token)
}

func TestTokenManager_AccessToken_RenovaTokenExpiradoDoSheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var tokenCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenCalls, 1)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-google", r.PostForm.Get("client_id"))
		assert.Equal(t, "refresh-sheets", r.PostForm.Get("refresh_token"))

		w.Write([]byte(`{"access_token":"token-renovado","expires_in":3600,"token_type":"Bearer"}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		OAuth: config.OAuth{
			GoogleClientID:     "client-google",
			GoogleClientSecret: "secret-google",
			GoogleTokenURL:     server.URL,
		},
	}

	expired := time.Now().Add(-time.Hour)
	store := mocks.NewMockTokenStore(ctrl)
	store.EXPECT().GetByPlatform(domain.PlatformGoogleSheets).Return(&domain.Integration{
		Platform:     domain.PlatformGoogleSheets,
		Connected:    true,
		AccessToken:  "token-antigo",
		RefreshToken: stringPtr("refresh-sheets"),
		ExpiresAt:    &expired,
	}, nil)

	// O Google não rotaciona o refresh token, então ele não é sobrescrito
	store.EXPECT().
		UpdateTokens(domain.PlatformGoogleSheets, "token-renovado", gomock.Nil(), gomock.Any()).
		Return(nil)

	tm := NewTokenManager(cfg, newTestRequester(), store, domain.PlatformGoogleSheets)

	token, err := tm.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-renovado", token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))

	// O token renovado fica em memória e é reutilizado sem novo grant
	token, err = tm.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-renovado", token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestTokenManager_AccessToken_GHLRotacionaRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client-ghl", r.PostForm.Get("client_id"))
		assert.Equal(t, "refresh-ghl", r.PostForm.Get("refresh_token"))

		w.Write([]byte(`{"access_token":"token-ghl-novo","expires_in":86400,"refresh_token":"refresh-ghl-novo"}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		OAuth: config.OAuth{
			GHLClientID:     "client-ghl",
			GHLClientSecret: "secret-ghl",
			GHLTokenURL:     server.URL,
		},
	}

	store := mocks.NewMockTokenStore(ctrl)
	store.EXPECT().GetByPlatform(domain.PlatformGoHighLevel).Return(&domain.Integration{
		Platform:     domain.PlatformGoHighLevel,
		Connected:    true,
		AccessToken:  "token-ghl-antigo",
		RefreshToken: stringPtr("refresh-ghl"),
		ExpiresAt:    timePtr(time.Now().Add(-time.Minute)),
	}, nil)

	store.EXPECT().
		UpdateTokens(domain.PlatformGoHighLevel, "token-ghl-novo", gomock.Any(), gomock.Any()).
		DoAndReturn(func(platform, accessToken string, refreshToken *string, expiresAt *time.Time) error {
			require.NotNil(t, refreshToken)
			assert.Equal(t, "refresh-ghl-novo", *refreshToken)
			require.NotNil(t, expiresAt)
			assert.True(t, expiresAt.After(time.Now()))
			return nil
		})

	tm := NewTokenManager(cfg, newTestRequester(), store, domain.PlatformGoHighLevel)

	token, err := tm.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-ghl-novo", token)
}

func TestTokenManager_AccessToken_Falhas(t *testing.T) {
	testCases := []struct {
		name        string
		platform    string
		integration *domain.Integration
		storeErr    error
		expectedMsg string
	}{
		{
			name:        "integração não conectada",
			platform:    domain.PlatformGoogleSheets,
			integration: &domain.Integration{Platform: domain.PlatformGoogleSheets, Connected: false},
			expectedMsg: "não está conectada",
		},
		{
			name:        "integração inexistente",
			platform:    domain.PlatformGoHighLevel,
			integration: nil,
			expectedMsg: "não está conectada",
		},
		{
			name:     "token expirado sem refresh token",
			platform: domain.PlatformGoogleSheets,
			integration: &domain.Integration{
				Platform:    domain.PlatformGoogleSheets,
				Connected:   true,
				AccessToken: "token-expirado",
				ExpiresAt:   timePtr(time.Now().Add(-time.Hour)),
			},
			expectedMsg: "não possui refresh token",
		},
		{
			name:        "erro ao consultar o banco",
			platform:    domain.PlatformGoogleAds,
			storeErr:    assert.AnError,
			expectedMsg: "erro ao carregar credenciais",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockTokenStore(ctrl)
			store.EXPECT().GetByPlatform(tc.platform).Return(tc.integration, tc.storeErr)

			tm := NewTokenManager(&config.Config{}, newTestRequester(), store, tc.platform)

			_, err := tm.AccessToken(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedMsg)
		})
	}
}

func TestTokenManager_AccessToken_PlataformaSemSuporte(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockTokenStore(ctrl)
	store.EXPECT().GetByPlatform(domain.PlatformFacebookAds).Return(&domain.Integration{
		Platform:     domain.PlatformFacebookAds,
		Connected:    true,
		AccessToken:  "token-meta",
		RefreshToken: stringPtr("refresh-meta"),
		ExpiresAt:    timePtr(time.Now().Add(-time.Hour)),
	}, nil)

	tm := NewTokenManager(&config.Config{}, newTestRequester(), store, domain.PlatformFacebookAds)

	_, err := tm.AccessToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plataforma sem suporte a renovação de token")
}
