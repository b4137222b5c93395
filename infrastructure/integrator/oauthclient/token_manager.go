package oauthclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
)

// TokenStore persiste as credenciais renovadas da plataforma
type TokenStore interface {
	GetByPlatform(platform string) (*domain.Integration, error)
	UpdateTokens(platform, accessToken string, refreshToken *string, expiresAt *time.Time) error
}

// Margem antes da expiração para renovar o access token proativamente
const refreshMargin = 5 * time.Minute

// TokenManager renova o access token de uma plataforma OAuth via
// refresh_token grant. O refresh token fica guardado na tabela de
// integrations e o access token corrente em memória. Cobre Google Ads,
// Google Sheets e GoHighLevel; o Meta usa o fluxo fb_exchange_token e
// tem gerenciador próprio.
type TokenManager struct {
	cfg       *config.Config
	requester *requester.Requester
	store     TokenStore
	platform  string

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewTokenManager(cfg *config.Config, req *requester.Requester, store TokenStore, platform string) *TokenManager {
	return &TokenManager{
		cfg:       cfg,
		requester: req,
		store:     store,
		platform:  platform,
	}
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
}

// credentials resolve o client e o endpoint de token da plataforma.
// Ads e Sheets compartilham o mesmo app OAuth do Google.
func (tm *TokenManager) credentials() (clientID, clientSecret, tokenURL string, err error) {
	switch tm.platform {
	case domain.PlatformGoogleAds, domain.PlatformGoogleSheets:
		return tm.cfg.OAuth.GoogleClientID, tm.cfg.OAuth.GoogleClientSecret, tm.cfg.OAuth.GoogleTokenURL, nil
	case domain.PlatformGoHighLevel:
		return tm.cfg.OAuth.GHLClientID, tm.cfg.OAuth.GHLClientSecret, tm.cfg.OAuth.GHLTokenURL, nil
	}

	return "", "", "", fmt.Errorf("plataforma sem suporte a renovação de token: %s", tm.platform)
}

// AccessToken devolve um access token válido, renovando quando necessário
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.accessToken != "" && time.Now().Add(refreshMargin).Before(tm.expiresAt) {
		return tm.accessToken, nil
	}

	integration, err := tm.store.GetByPlatform(tm.platform)
	if err != nil {
		return "", fmt.Errorf("erro ao carregar credenciais de %s: %w", tm.platform, err)
	}

	if integration == nil || !integration.Connected {
		return "", fmt.Errorf("integração de %s não está conectada", tm.platform)
	}

	// Token persistido ainda válido serve direto
	if integration.AccessToken != "" && integration.ExpiresAt != nil &&
		time.Now().Add(refreshMargin).Before(*integration.ExpiresAt) {
		tm.accessToken = integration.AccessToken
		tm.expiresAt = *integration.ExpiresAt
		return tm.accessToken, nil
	}

	if integration.RefreshToken == nil || *integration.RefreshToken == "" {
		return "", fmt.Errorf("integração de %s não possui refresh token, é necessário reautorizar", tm.platform)
	}

	return tm.refresh(ctx, *integration.RefreshToken)
}

// refresh troca o refresh token por um novo access token.
// O chamador deve segurar o mutex.
func (tm *TokenManager) refresh(ctx context.Context, refreshToken string) (string, error) {
	clientID, clientSecret, tokenURL, err := tm.credentials()
	if err != nil {
		return "", err
	}

	logrus.WithField("platform", tm.platform).Info("Renovando access token da plataforma...")

	form := url.Values{}
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)
	form.Set("refresh_token", refreshToken)
	form.Set("grant_type", "refresh_token")

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := tm.requester.Post(ctx, tokenURL, header, []byte(form.Encode()))
	if err != nil {
		if strings.Contains(err.Error(), "invalid_grant") {
			return "", fmt.Errorf("refresh token de %s foi revogado, é necessário reautorizar: %w", tm.platform, err)
		}
		return "", fmt.Errorf("erro ao renovar access token de %s: %w", tm.platform, err)
	}

	var tokenResp refreshResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta de token: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("access token retornado por %s é vazio", tm.platform)
	}

	tm.accessToken = tokenResp.AccessToken
	tm.expiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	// O GoHighLevel rotaciona o refresh token a cada renovação;
	// quando vier um novo, persiste junto
	var rotated *string
	if tokenResp.RefreshToken != "" {
		rotated = &tokenResp.RefreshToken
	}

	expiresAt := tm.expiresAt
	if err := tm.store.UpdateTokens(tm.platform, tm.accessToken, rotated, &expiresAt); err != nil {
		logrus.WithError(err).WithField("platform", tm.platform).Error("Erro ao persistir access token renovado")
	}

	// Respostas em cache podem ter vindo com o token antigo
	tm.requester.InvalidateCache()

	logrus.WithFields(logrus.Fields{
		"platform":   tm.platform,
		"expires_at": tm.expiresAt.Format(time.RFC3339),
	}).Info("Access token renovado")

	return tm.accessToken, nil
}
