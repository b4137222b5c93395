package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/internal/scheduler"
	"github.com/stevetowers08/reporting-workspace-api/pkg/apiErrors"
	"github.com/stevetowers08/reporting-workspace-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMeta    = "meta"
	CronJobTypeGoogle  = "google"
	CronJobTypeMonthly = "monthly"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MetaInsightSyncService     *scheduler.AdInsightSyncService
	GoogleInsightSyncService   *scheduler.AdInsightSyncService
	MonthlyInsightsSyncService *scheduler.MonthlyInsightsSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeMeta:
			// Executar sincronização do Meta
			if services.MetaInsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do Meta não disponível", nil)
				return
			}
			services.MetaInsightSyncService.TriggerManualSync()

		case CronJobTypeGoogle:
			// Executar sincronização do Google Ads
			if services.GoogleInsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do Google Ads não disponível", nil)
				return
			}
			services.GoogleInsightSyncService.TriggerManualSync()

		case CronJobTypeMonthly:
			// Executar sincronização mensal
			if services.MonthlyInsightsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização mensal não disponível", nil)
				return
			}
			services.MonthlyInsightsSyncService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar todas as sincronizações disponíveis
			if services.MetaInsightSyncService != nil {
				services.MetaInsightSyncService.TriggerManualSync()
			}
			if services.GoogleInsightSyncService != nil {
				services.GoogleInsightSyncService.TriggerManualSync()
			}
			if services.MonthlyInsightsSyncService != nil {
				services.MonthlyInsightsSyncService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: meta, google, monthly, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{}

		if services.MetaInsightSyncService != nil {
			status["meta"] = services.MetaInsightSyncService.GetStatus()
		}

		if services.GoogleInsightSyncService != nil {
			status["google"] = services.GoogleInsightSyncService.GetStatus()
		}

		if services.MonthlyInsightsSyncService != nil {
			status["monthly"] = services.MonthlyInsightsSyncService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
