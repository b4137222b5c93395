package integrating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de integrações OAuth
var (
	ErrUnknownPlatform  = errors.New("plataforma de integração desconhecida")
	ErrInvalidState     = errors.New("state de autorização inválido")
	ErrExpiredState     = errors.New("state de autorização expirado")
	ErrMissingCode      = errors.New("código de autorização ausente")
	ErrExchangeFailed   = errors.New("falha na troca do código por token")
	ErrNotConnected     = errors.New("integração não está conectada")
	ErrDatabaseFailure  = errors.New("erro ao persistir credenciais da integração")
	ErrMissingVerifier  = errors.New("code verifier ausente para troca PKCE")
	ErrEmptyAccessToken = errors.New("a plataforma retornou um access token vazio")
)

// IntegrationError é um erro com contexto adicional para integrações
type IntegrationError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	Platform string // Plataforma envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *IntegrationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *IntegrationError) Unwrap() error {
	return e.Err
}

// NewIntegrationError cria um novo IntegrationError
func NewIntegrationError(err error, code string, platform string, details string) *IntegrationError {
	return &IntegrationError{
		Err:      err,
		Code:     code,
		Platform: platform,
		Details:  details,
	}
}
