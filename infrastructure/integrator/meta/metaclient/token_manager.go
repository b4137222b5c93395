package metaclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/stevetowers08/reporting-workspace-api/infrastructure/integrator/meta/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
)

// TokenStore persiste as credenciais renovadas. É satisfeita pelo
// repositório de integrations sem acoplar o client ao banco.
type TokenStore interface {
	GetByPlatform(platform string) (*domain.Integration, error)
	UpdateTokens(platform, accessToken string, refreshToken *string, expiresAt *time.Time) error
}

// TokenManager gerencia tokens de acesso da API do Meta
type TokenManager struct {
	cfg               *config.Config
	requester         *requester.Requester
	store             TokenStore
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config, req *requester.Requester, store TokenStore) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		requester:   req,
		store:       store,
		stopRefresh: make(chan struct{}),
	}
}

// InitToken carrega o token persistido e garante um token de longa duração válido
func (tm *TokenManager) InitToken(ctx context.Context) {
	integration, err := tm.store.GetByPlatform(domain.PlatformFacebookAds)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao carregar credenciais do Meta do banco")
	}

	if integration != nil && integration.Connected && integration.AccessToken != "" {
		tm.cfg.Meta.AccessToken = integration.AccessToken
		tm.cfg.Meta.LongLivedToken = integration.AccessToken
		if integration.ExpiresAt != nil {
			tm.cfg.Meta.TokenExpiresAt = *integration.ExpiresAt
		}
	}

	if tm.cfg.Meta.LongLivedToken == "" {
		logrus.Info("Token de longa duração não encontrado. Iniciando processo de obtenção...")
		if err := tm.InitiateToken(ctx); err != nil {
			logrus.Errorf("Falha ao inicializar token de longa duração: %v", err)
			logrus.Warn("A API Meta pode ter funcionalidade limitada até que o token seja configurado corretamente")
			return
		}

		logrus.Info("Token de longa duração inicializado com sucesso")
		return
	}

	if tm.cfg.Meta.TokenExpiresAt.IsZero() {
		// Token de longa duração existente sem data de expiração conhecida
		logrus.Info("Validando token de longa duração existente...")
		if err := tm.ValidateExistingToken(ctx); err != nil {
			logrus.Errorf("Falha ao validar token existente: %v", err)
			logrus.Warn("Tentando renovar o token...")
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Falha ao renovar token: %v", err)
				logrus.Warn("A API Meta pode ter funcionalidade limitada até que o token seja renovado")
			}
		} else {
			logrus.Info("Token de longa duração validado com sucesso")
		}
		return
	}

	if err := tm.EnsureValidToken(ctx); err != nil {
		logrus.Errorf("Erro ao verificar validade do token: %v", err)
	}
}

// StartAutoRefresh inicia uma goroutine que atualiza o token periodicamente
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	// Renovação diária, um pouco antes de completar 24h
	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)

				// Se falhar, tenta novamente em um intervalo mais curto
				ticker.Reset(1 * time.Hour)
			} else {
				logrus.Info("Renovação periódica do token concluída com sucesso")
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		case <-ctx.Done():
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// InitiateToken obtém um token de longa duração a partir do token de curta duração
func (tm *TokenManager) InitiateToken(ctx context.Context) error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Outra goroutine pode ter inicializado enquanto aguardávamos o lock
	if tm.cfg.Meta.LongLivedToken != "" {
		return nil
	}

	tokenResponse, err := GetLongLivedToken(
		ctx,
		tm.requester,
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		return fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	tm.applyToken(tokenResponse)

	logrus.Infof("Token de longa duração inicializado com sucesso. Expira em: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// ValidateExistingToken valida um token existente e atualiza as informações de expiração
func (tm *TokenManager) ValidateExistingToken(ctx context.Context) error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	isValid, err := CheckTokenValidity(ctx, tm.requester, tm.cfg.Meta.LongLivedToken, tm.cfg.Meta.URL)
	if err != nil {
		return fmt.Errorf("erro ao verificar validade do token de longa duração: %w", err)
	}

	if !isValid {
		return tm.refreshTokenInternal(ctx)
	}

	// Sem a data exata de expiração, renova pela troca fb_exchange_token,
	// que devolve o expires_in junto
	return tm.refreshTokenInternal(ctx)
}

// RefreshToken obtém um novo token de longa duração
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	return tm.refreshTokenInternal(ctx)
}

// refreshTokenInternal é a implementação interna do refresh de token.
// O chamador deve segurar o TokenRefreshMutex.
func (tm *TokenManager) refreshTokenInternal(ctx context.Context) error {
	if !tm.cfg.Meta.TokenExpiresAt.IsZero() && time.Until(tm.cfg.Meta.TokenExpiresAt) < 1*time.Hour {
		logrus.Warn("Token está muito próximo da expiração ou já expirou - pode ser necessária reautorização manual")
	}

	logrus.Info("Iniciando renovação do token...")
	tokenResponse, err := GetLongLivedToken(
		ctx,
		tm.requester,
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		errMsg := err.Error()

		if strings.Contains(errMsg, "Error validating access token") ||
			strings.Contains(errMsg, "Session has expired") ||
			strings.Contains(errMsg, "The session has been invalidated") {

			logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")

			return fmt.Errorf("o token de acesso expirou e não pode ser renovado automaticamente. "+
				"É necessário reautorizar o aplicativo através do processo de autenticação OAuth: %w", err)
		}

		logrus.Errorf("Erro ao renovar token: %v", err)
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	oldToken := tm.cfg.Meta.LongLivedToken
	tm.applyToken(tokenResponse)

	if oldToken != tm.cfg.Meta.LongLivedToken {
		logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s",
			tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))
	} else {
		logrus.Info("Token renovado, mas não mudou. Isso pode indicar um problema na API da Meta")
	}

	return nil
}

// applyToken atualiza a configuração em memória, persiste no banco e
// descarta o cache de respostas obtidas com o token antigo
func (tm *TokenManager) applyToken(tokenResponse *TokenResponse) {
	tm.cfg.Meta.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

	expiresAt := tm.cfg.Meta.TokenExpiresAt
	if err := tm.store.UpdateTokens(domain.PlatformFacebookAds, tm.cfg.Meta.AccessToken, nil, &expiresAt); err != nil {
		logrus.WithError(err).Error("Erro ao persistir token renovado do Meta")
	}

	tm.requester.InvalidateCache()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (tm *TokenManager) EnsureValidToken(ctx context.Context) error {
	if tm.cfg.Meta.AccessToken == "" {
		logrus.Info("Token não inicializado. Inicializando...")
		return tm.InitiateToken(ctx)
	}

	// Renova proativamente quando faltam menos de 24 horas
	if time.Until(tm.cfg.Meta.TokenExpiresAt) < 24*time.Hour {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		return tm.RefreshToken(ctx)
	}

	return nil
}

// IsTokenError verifica se o erro retornado pelo Graph API indica token expirado
func IsTokenError(err error) bool {
	var reqErr *requester.RequestError
	if !errors.As(err, &reqErr) {
		return false
	}

	errorResp, parseErr := metadomain.ParseErrorResponse(reqErr.Body)
	if parseErr != nil {
		return containsTokenExpirationMessage(string(reqErr.Body))
	}

	return errorResp.IsTokenExpired()
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
