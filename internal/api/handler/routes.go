package handler

import (
	"net/http"

	"github.com/stevetowers08/reporting-workspace-api/internal/api/handler/router"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/authenticating"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/insighting"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/integrating"
	"github.com/stevetowers08/reporting-workspace-api/internal/usecases/venue"
	"github.com/stevetowers08/reporting-workspace-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Venues(service venue.VenueService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/venues",
			Method:      http.MethodGet,
			Handler:     VenueList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/venues",
			Method:      http.MethodPost,
			Handler:     CreateVenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/venues/sync",
			Method:      http.MethodPost,
			Handler:     SyncVenues(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/venues/:id",
			Method:      http.MethodPut,
			Handler:     UpdateVenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/venues/:id/conversion-actions",
			Method:      http.MethodGet,
			Handler:     GetVenueConversionActions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Insights(service insighting.CombinedInsighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/venues/:id/dashboard",
			Method:      http.MethodGet,
			Handler:     GetVenueDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/venues/:id/insights/demographics",
			Method:      http.MethodGet,
			Handler:     GetVenueDemographics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/venues/:id/insights/platforms",
			Method:      http.MethodGet,
			Handler:     GetVenuePlatformBreakdown(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/report",
			Method:      http.MethodGet,
			Handler:     GetMonthlyInsightReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/insights/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailableMonthlyPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// UserVenues retorna as rotas para gerenciamento de venues vinculados a usuários
func UserVenues(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/venues",
			Method:      http.MethodGet,
			Handler:     GetUserVenues(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/venues",
			Method:      http.MethodPut,
			Handler:     UpdateUserVenues(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/venues/link",
			Method:      http.MethodPost,
			Handler:     LinkUserVenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/venues/:venue_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserVenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// OAuth retorna as rotas do fluxo de autorização e gerenciamento das integrações
func OAuth(service integrating.IntegrationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/oauth/:platform/authorize-url",
			Method:      http.MethodGet,
			Handler:     GetAuthorizeURL(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:    "/v1/oauth/callback",
			Method:  http.MethodPost,
			Handler: OAuthCallback(service),
		},
		{
			Path:        "/v1/integrations/status",
			Method:      http.MethodGet,
			Handler:     GetIntegrationsStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/integrations/:platform",
			Method:      http.MethodDelete,
			Handler:     DisconnectIntegration(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
