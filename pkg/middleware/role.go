package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"github.com/stevetowers08/reporting-workspace-api/pkg/apiErrors"
)

// IDs dos roles conforme a tabela roles
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// RequireRoles restringe o acesso aos roles informados. Depende do middleware
// de autenticação ter colocado as claims no contexto da requisição.
func RequireRoles(allowedRoles ...int) func(http.Handler) http.Handler {
	allowed := make(map[int]bool, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !allowed[claims.UserRoleID] {
				logrus.WithFields(logrus.Fields{
					"user_id": claims.UserID,
					"role_id": claims.UserRoleID,
					"path":    r.URL.Path,
				}).Warning("Acesso negado por role insuficiente")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin)
}

// AdminOrSupervisor permite acesso para administradores e supervisores
func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin, RoleSupervisor)
}

// AllRoles permite acesso para qualquer usuário autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin, RoleSupervisor, RoleClient)
}
