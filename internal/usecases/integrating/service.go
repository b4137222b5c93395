package integrating

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/metaclient"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/apiErrors"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
)

// Idade máxima aceita para o state antes de considerá-lo expirado
const stateMaxAge = 10 * time.Minute

// Escopos solicitados por plataforma durante a autorização
var oauthScopes = map[string]string{
	domain.PlatformGoogleAds:    "https://www.googleapis.com/auth/adwords",
	domain.PlatformGoogleSheets: "https://www.googleapis.com/auth/spreadsheets.readonly",
	domain.PlatformFacebookAds:  "ads_read,business_management",
	domain.PlatformGoHighLevel:  "contacts.readonly calendars/events.readonly locations.readonly",
}

type IntegrationService interface {
	AuthorizeURL(userID int, platform string) (*domain.AuthorizeURLResponse, error)
	HandleCallback(ctx context.Context, request *domain.OAuthCallbackRequest) (*domain.IntegrationStatus, error)
	Status() ([]*domain.IntegrationStatus, error)
	Disconnect(platform string) error
}

type Service struct {
	cfg             *config.Config
	integrationRepo repository.IntegrationRepository
	requester       *requester.Requester
}

func NewService(cfg *config.Config, integrationRepo repository.IntegrationRepository, req *requester.Requester) IntegrationService {
	return &Service{
		cfg:             cfg,
		integrationRepo: integrationRepo,
		requester:       req,
	}
}

// AuthorizeURL monta a URL de autorização da plataforma, com state assinado
// no tempo e PKCE para os fluxos do Google
func (s *Service) AuthorizeURL(userID int, platform string) (*domain.AuthorizeURLResponse, error) {
	if !domain.KnownPlatform(platform) {
		return nil, NewIntegrationError(ErrUnknownPlatform, apiErrors.ErrUnknownPlatform, platform, "Plataforma não suportada")
	}

	state, err := encodeState(userID, platform)
	if err != nil {
		return nil, NewIntegrationError(err, apiErrors.ErrInternalServer, platform, "Falha ao gerar state de autorização")
	}

	switch platform {
	case domain.PlatformGoogleAds, domain.PlatformGoogleSheets:
		verifier, challenge, err := generatePKCE()
		if err != nil {
			return nil, NewIntegrationError(err, apiErrors.ErrInternalServer, platform, "Falha ao gerar code verifier")
		}

		params := url.Values{}
		params.Set("client_id", s.cfg.OAuth.GoogleClientID)
		params.Set("redirect_uri", s.cfg.OAuth.RedirectURI)
		params.Set("response_type", "code")
		params.Set("scope", oauthScopes[platform])
		params.Set("access_type", "offline")
		params.Set("prompt", "consent")
		params.Set("state", state)
		params.Set("code_challenge", challenge)
		params.Set("code_challenge_method", "S256")

		return &domain.AuthorizeURLResponse{
			URL:          fmt.Sprintf("%s?%s", s.cfg.OAuth.GoogleAuthURL, params.Encode()),
			State:        state,
			CodeVerifier: verifier,
		}, nil

	case domain.PlatformFacebookAds:
		params := url.Values{}
		params.Set("client_id", s.cfg.Meta.AppID)
		params.Set("redirect_uri", s.cfg.OAuth.RedirectURI)
		params.Set("scope", oauthScopes[platform])
		params.Set("state", state)

		return &domain.AuthorizeURLResponse{
			URL:   fmt.Sprintf("%s?%s", s.cfg.OAuth.MetaAuthURL, params.Encode()),
			State: state,
		}, nil

	case domain.PlatformGoHighLevel:
		params := url.Values{}
		params.Set("response_type", "code")
		params.Set("client_id", s.cfg.OAuth.GHLClientID)
		params.Set("redirect_uri", s.cfg.OAuth.RedirectURI)
		params.Set("scope", oauthScopes[platform])
		params.Set("state", state)

		return &domain.AuthorizeURLResponse{
			URL:   fmt.Sprintf("%s?%s", s.cfg.OAuth.GHLAuthURL, params.Encode()),
			State: state,
		}, nil
	}

	return nil, NewIntegrationError(ErrUnknownPlatform, apiErrors.ErrUnknownPlatform, platform, "Plataforma não suportada")
}

// HandleCallback troca o código de autorização por tokens e persiste a integração
func (s *Service) HandleCallback(ctx context.Context, request *domain.OAuthCallbackRequest) (*domain.IntegrationStatus, error) {
	if request == nil || request.Code == "" {
		return nil, NewIntegrationError(ErrMissingCode, apiErrors.ErrMissingRequiredData, "", "O código de autorização é obrigatório")
	}

	state, err := decodeState(request.State)
	if err != nil {
		return nil, NewIntegrationError(ErrInvalidState, apiErrors.ErrInvalidRequest, "", err.Error())
	}

	if time.Since(time.Unix(state.Timestamp, 0)) > stateMaxAge {
		return nil, NewIntegrationError(ErrExpiredState, apiErrors.ErrInvalidRequest, state.Platform, "Reinicie o fluxo de autorização")
	}

	var integration *domain.Integration

	switch state.Platform {
	case domain.PlatformGoogleAds, domain.PlatformGoogleSheets:
		integration, err = s.exchangeGoogleCode(ctx, state.Platform, request)
	case domain.PlatformFacebookAds:
		integration, err = s.exchangeMetaCode(ctx, request)
	case domain.PlatformGoHighLevel:
		integration, err = s.exchangeGHLCode(ctx, request)
	default:
		return nil, NewIntegrationError(ErrUnknownPlatform, apiErrors.ErrUnknownPlatform, state.Platform, "Plataforma não suportada")
	}

	if err != nil {
		logrus.WithError(err).WithField("platform", state.Platform).Error("Erro na troca do código de autorização por token")

		if errors.Is(err, ErrMissingVerifier) {
			return nil, NewIntegrationError(ErrMissingVerifier, apiErrors.ErrMissingRequiredData, state.Platform, "O code verifier é obrigatório para esta plataforma")
		}

		if errors.Is(err, ErrEmptyAccessToken) {
			return nil, NewIntegrationError(ErrEmptyAccessToken, apiErrors.ErrOAuthExchange, state.Platform, "A plataforma retornou um access token vazio")
		}

		return nil, NewIntegrationError(ErrExchangeFailed, apiErrors.ErrOAuthExchange, state.Platform, err.Error())
	}

	if err := s.integrationRepo.SaveOrUpdate(integration); err != nil {
		return nil, NewIntegrationError(ErrDatabaseFailure, apiErrors.ErrDatabaseOperation, state.Platform, "Falha ao salvar credenciais da integração")
	}

	// Respostas cacheadas com o token antigo não servem mais
	s.requester.InvalidateCache()

	logrus.WithFields(logrus.Fields{
		"platform": state.Platform,
		"user_id":  state.UserID,
	}).Info("Integração conectada com sucesso")

	return &domain.IntegrationStatus{
		Platform:    integration.Platform,
		Connected:   true,
		AccountID:   integration.AccountID,
		AccountName: integration.AccountName,
		ExpiresAt:   integration.ExpiresAt,
	}, nil
}

type googleTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

func (s *Service) exchangeGoogleCode(ctx context.Context, platform string, request *domain.OAuthCallbackRequest) (*domain.Integration, error) {
	if request.CodeVerifier == "" {
		return nil, ErrMissingVerifier
	}

	form := url.Values{}
	form.Set("client_id", s.cfg.OAuth.GoogleClientID)
	form.Set("client_secret", s.cfg.OAuth.GoogleClientSecret)
	form.Set("code", request.Code)
	form.Set("code_verifier", request.CodeVerifier)
	form.Set("redirect_uri", s.cfg.OAuth.RedirectURI)
	form.Set("grant_type", "authorization_code")

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := s.requester.Post(ctx, s.cfg.OAuth.GoogleTokenURL, header, []byte(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao trocar código por token no Google: %w", err)
	}

	var tokenResp googleTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token do Google: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, ErrEmptyAccessToken
	}

	expiresAt := time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	integration := &domain.Integration{
		Platform:    platform,
		AccessToken: tokenResp.AccessToken,
		ExpiresAt:   &expiresAt,
		Connected:   true,
	}

	if tokenResp.RefreshToken != "" {
		integration.RefreshToken = &tokenResp.RefreshToken
	}

	return integration, nil
}

func (s *Service) exchangeMetaCode(ctx context.Context, request *domain.OAuthCallbackRequest) (*domain.Integration, error) {
	params := url.Values{}
	params.Set("client_id", s.cfg.Meta.AppID)
	params.Set("client_secret", s.cfg.Meta.AppSecret)
	params.Set("redirect_uri", s.cfg.OAuth.RedirectURI)
	params.Set("code", request.Code)

	endpoint := fmt.Sprintf("%s/oauth/access_token?%s", s.cfg.Meta.URL, params.Encode())

	body, err := s.requester.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao trocar código por token no Meta: %w", err)
	}

	var tokenResp metaclient.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token do Meta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, ErrEmptyAccessToken
	}

	// O token de curta duração é trocado imediatamente por um de longa duração
	longLived, err := metaclient.GetLongLivedToken(
		ctx,
		s.requester,
		tokenResp.AccessToken,
		s.cfg.Meta.AppID,
		s.cfg.Meta.AppSecret,
		s.cfg.Meta.BaseURL,
		s.cfg.Meta.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de longa duração do Meta: %w", err)
	}

	expiresAt := metaclient.CalculateTokenExpiration(longLived.ExpiresIn)

	return &domain.Integration{
		Platform:    domain.PlatformFacebookAds,
		AccessToken: longLived.AccessToken,
		ExpiresAt:   &expiresAt,
		Connected:   true,
	}, nil
}

type ghlTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	LocationID   string `json:"locationId"`
	UserType     string `json:"userType"`
}

func (s *Service) exchangeGHLCode(ctx context.Context, request *domain.OAuthCallbackRequest) (*domain.Integration, error) {
	form := url.Values{}
	form.Set("client_id", s.cfg.OAuth.GHLClientID)
	form.Set("client_secret", s.cfg.OAuth.GHLClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", request.Code)
	form.Set("redirect_uri", s.cfg.OAuth.RedirectURI)

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := s.requester.Post(ctx, s.cfg.OAuth.GHLTokenURL, header, []byte(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao trocar código por token no GoHighLevel: %w", err)
	}

	var tokenResp ghlTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token do GoHighLevel: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, ErrEmptyAccessToken
	}

	expiresAt := time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	integration := &domain.Integration{
		Platform:    domain.PlatformGoHighLevel,
		AccessToken: tokenResp.AccessToken,
		ExpiresAt:   &expiresAt,
		Connected:   true,
	}

	if tokenResp.RefreshToken != "" {
		integration.RefreshToken = &tokenResp.RefreshToken
	}

	if tokenResp.LocationID != "" {
		locationID := tokenResp.LocationID
		integration.AccountID = &locationID
	}

	return integration, nil
}

// Status lista o estado de conexão de todas as plataformas suportadas
func (s *Service) Status() ([]*domain.IntegrationStatus, error) {
	integrations, err := s.integrationRepo.List()
	if err != nil {
		return nil, NewIntegrationError(ErrDatabaseFailure, apiErrors.ErrDatabaseOperation, "", "Falha ao listar integrações")
	}

	byPlatform := make(map[string]*domain.Integration, len(integrations))
	for _, integration := range integrations {
		byPlatform[integration.Platform] = integration
	}

	statuses := make([]*domain.IntegrationStatus, 0, len(domain.Platforms))
	for _, platform := range domain.Platforms {
		status := &domain.IntegrationStatus{Platform: platform}

		if integration, ok := byPlatform[platform]; ok && integration.Connected {
			status.Connected = true
			status.AccountID = integration.AccountID
			status.AccountName = integration.AccountName
			status.ExpiresAt = integration.ExpiresAt
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}

// Disconnect desconecta a plataforma e descarta os tokens persistidos
func (s *Service) Disconnect(platform string) error {
	if !domain.KnownPlatform(platform) {
		return NewIntegrationError(ErrUnknownPlatform, apiErrors.ErrUnknownPlatform, platform, "Plataforma não suportada")
	}

	if err := s.integrationRepo.Disconnect(platform); err != nil {
		return NewIntegrationError(ErrDatabaseFailure, apiErrors.ErrDatabaseOperation, platform, "Falha ao desconectar integração")
	}

	s.requester.InvalidateCache()

	return nil
}

// encodeState serializa o state como JSON em base64 URL-safe
func encodeState(userID int, platform string) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	state := domain.OAuthState{
		UserID:    userID,
		Platform:  platform,
		Timestamp: time.Now().Unix(),
		Nonce:     base64.RawURLEncoding.EncodeToString(nonce),
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(payload), nil
}

func decodeState(encoded string) (*domain.OAuthState, error) {
	if encoded == "" {
		return nil, fmt.Errorf("state vazio")
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("state não é base64 válido: %w", err)
	}

	var state domain.OAuthState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("state não é JSON válido: %w", err)
	}

	if state.Platform == "" {
		return nil, fmt.Errorf("state sem plataforma")
	}

	return &state, nil
}

// generatePKCE cria o par verifier/challenge do fluxo S256
func generatePKCE() (verifier, challenge string, err error) {
	raw := make([]byte, 32)
	if _, err = rand.Read(raw); err != nil {
		return "", "", err
	}

	verifier = base64.RawURLEncoding.EncodeToString(raw)

	sum := sha256.Sum256([]byte(verifier))
	challenge = base64.RawURLEncoding.EncodeToString(sum[:])

	return verifier, challenge, nil
}
