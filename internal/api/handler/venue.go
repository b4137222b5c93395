package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/venue"
	"github.com/stevetowers08/reporting-workspace-api/pkg/apiErrors"
)

func VenueList(service venue.VenueService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		var availableStatusList []string
		availableStatus := make([]domain.VenueStatus, 0)
		if filterStatus != "" {
			availableStatusList = strings.Split(filterStatus, ",")

			for _, status := range availableStatusList {
				availableStatus = append(availableStatus, domain.VenueStatus(status))
			}
		}

		venues, err := service.ListVenues(availableStatus)
		if err != nil {
			logrus.Error("Error listing venues:", err)

			// Verificar se é um VenueError para obter detalhes específicos do erro
			var venueErr *venue.VenueError
			if errors.As(err, &venueErr) {
				apiErrors.WriteError(w, venueErr.Code, venueErr.Error(), nil)
				return
			}

			// Caso não seja um VenueError específico, verificar erros comuns
			if errors.Is(err, venue.ErrFetchVenues) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar venues no banco de dados", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar venues", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(venues); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateVenue(service venue.VenueService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateVenue")

		w.Header().Set("Content-Type", "application/json")

		var createRequest domain.CreateVenueRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateVenue(&createRequest)
		if err != nil {
			logrus.Error("Error creating venue:", err)

			switch {
			case errors.Is(err, venue.ErrVenueNameRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do venue é obrigatório", nil)

			case errors.Is(err, venue.ErrGenerateID):
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador único", nil)

			case errors.Is(err, venue.ErrDatabaseOperation) || errors.Is(err, venue.ErrCreateVenue):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar venue no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao criar venue", nil)
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SyncVenues(service venue.VenueService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncVenues")

		resp, err := service.SyncVenues(r.Context())
		if err != nil {
			logrus.Error("Error syncing venues:", err)

			// Verificar se é um VenueError para obter detalhes específicos do erro
			var venueErr *venue.VenueError
			if errors.As(err, &venueErr) {
				apiErrors.WriteError(w, venueErr.Code, venueErr.Error(), nil)
				return
			}

			switch {
			case errors.Is(err, venue.ErrMetaIntegration):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao obter contas de anúncio do serviço Meta", nil)

			case errors.Is(err, venue.ErrGoogleIntegration):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao obter contas de anúncio do Google Ads", nil)

			case errors.Is(err, venue.ErrFetchVenues) || errors.Is(err, venue.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar venues no banco de dados", nil)

			case errors.Is(err, venue.ErrGenerateID):
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificadores únicos", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar venues", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateVenue(service venue.VenueService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateVenue")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do venue é obrigatório", nil)
			return
		}

		// Decodifica o corpo da requisição
		var updateRequest domain.UpdateVenueRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		err := service.UpdateVenue(&updateRequest)
		if err != nil {
			logrus.Error("Error updating venue:", err)

			// Verificar se é um VenueError para obter detalhes específicos do erro
			var venueErr *venue.VenueError
			if errors.As(err, &venueErr) {
				apiErrors.WriteError(w, venueErr.Code, venueErr.Error(), map[string]interface{}{
					"venue_id":   venueErr.VenueID,
					"error_type": venueErr.Err.Error(),
				})
				return
			}

			switch {
			case errors.Is(err, venue.ErrVenueIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do venue é obrigatório", nil)

			case errors.Is(err, venue.ErrVenueNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Venue não encontrado", map[string]interface{}{
					"venue_id":   id,
					"error_type": "venue_not_found",
				})

			case errors.Is(err, venue.ErrDatabaseOperation) || errors.Is(err, venue.ErrUpdateVenue):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar venue no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao atualizar venue", nil)
			}
			return
		}

		response := map[string]interface{}{
			"message":  "Venue atualizado com sucesso",
			"venue_id": id,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetVenueConversionActions lista as ações de conversão disponíveis nas plataformas
// de anúncio do venue, para seleção de quais contam como lead
func GetVenueConversionActions(service venue.VenueService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetVenueConversionActions")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do venue é obrigatório", nil)
			return
		}

		actions, err := service.GetConversionActions(r.Context(), id)
		if err != nil {
			logrus.Error("Error fetching conversion actions:", err)

			switch {
			case errors.Is(err, venue.ErrVenueNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Venue não encontrado", map[string]interface{}{
					"venue_id": id,
				})

			case errors.Is(err, venue.ErrMetaIntegration) || errors.Is(err, venue.ErrGoogleIntegration):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar ações de conversão nas plataformas", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar ações de conversão", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(actions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
