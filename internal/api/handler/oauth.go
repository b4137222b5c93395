package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/integrating"
	"github.com/stevetowers08/reporting-workspace-api/pkg/apiErrors"
	"github.com/stevetowers08/reporting-workspace-api/pkg/log"
	"github.com/stevetowers08/reporting-workspace-api/pkg/middleware"
)

// GetAuthorizeURL monta a URL de autorização OAuth para a plataforma informada
func GetAuthorizeURL(service integrating.IntegrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		platform := httprouter.ParamsFromContext(r.Context()).ByName("platform")
		if platform == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Plataforma não especificada", nil)
			return
		}

		logger.WithFields(log.Fields{
			"platform": platform,
			"user_id":  userClaims.UserID,
		}).Info("oauth: gerando URL de autorização")

		resp, err := service.AuthorizeURL(userClaims.UserID, platform)
		if err != nil {
			logger.WithError(err).WithField("platform", platform).Error("oauth: erro ao gerar URL de autorização")

			if errors.Is(err, integrating.ErrUnknownPlatform) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Plataforma de integração desconhecida", map[string]interface{}{
					"platform": platform,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar URL de autorização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error("oauth: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// OAuthCallback finaliza o fluxo de autorização trocando o código por tokens.
// O frontend recebe o redirect do provedor e envia code, state e code_verifier
// no corpo da requisição.
func OAuthCallback(service integrating.IntegrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.OAuthCallbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("oauth: corpo de callback inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código de autorização ausente", nil)
			return
		}

		status, err := service.HandleCallback(r.Context(), &req)
		if err != nil {
			logger.WithError(err).Error("oauth: erro ao finalizar autorização")

			switch {
			case errors.Is(err, integrating.ErrInvalidState) || errors.Is(err, integrating.ErrExpiredState):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

			case errors.Is(err, integrating.ErrUnknownPlatform):
				apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Plataforma de integração desconhecida", nil)

			case errors.Is(err, integrating.ErrMissingVerifier):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

			case errors.Is(err, integrating.ErrExchangeFailed) || errors.Is(err, integrating.ErrEmptyAccessToken):
				apiErrors.WriteError(w, apiErrors.ErrOAuthExchange, "Falha na troca do código por token", nil)

			case errors.Is(err, integrating.ErrDatabaseFailure):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao persistir credenciais da integração", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao finalizar autorização", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"platform":  status.Platform,
			"connected": status.Connected,
		}).Info("oauth: integração conectada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("oauth: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetIntegrationsStatus retorna o estado de conexão de todas as plataformas
func GetIntegrationsStatus(service integrating.IntegrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		statuses, err := service.Status()
		if err != nil {
			logger.WithError(err).Error("integrations: erro ao consultar status das integrações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar status das integrações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statuses); err != nil {
			logger.WithError(err).Error("integrations: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// DisconnectIntegration remove as credenciais de uma plataforma conectada
func DisconnectIntegration(service integrating.IntegrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform := httprouter.ParamsFromContext(r.Context()).ByName("platform")
		if platform == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Plataforma não especificada", nil)
			return
		}

		logger.WithField("platform", platform).Info("integrations: desconectando plataforma")

		if err := service.Disconnect(platform); err != nil {
			logger.WithError(err).WithField("platform", platform).Error("integrations: erro ao desconectar plataforma")

			switch {
			case errors.Is(err, integrating.ErrUnknownPlatform):
				apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Plataforma de integração desconhecida", map[string]interface{}{
					"platform": platform,
				})

			case errors.Is(err, integrating.ErrNotConnected):
				apiErrors.WriteError(w, apiErrors.ErrIntegrationNotConnected, "Integração não está conectada", map[string]interface{}{
					"platform": platform,
				})

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao desconectar integração", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"message":  "Integração desconectada com sucesso",
			"platform": platform,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
