package venue

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de venues
var (
	// Erros de validação
	ErrVenueIDRequired   = errors.New("venue ID is required")
	ErrVenueNameRequired = errors.New("venue name is required")
	ErrVenueNotFound     = errors.New("venue not found")

	// Erros de serviços externos
	ErrMetaIntegration   = errors.New("error fetching ad accounts from Meta")
	ErrGoogleIntegration = errors.New("error fetching customers from Google Ads")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrCreateVenue       = errors.New("error creating venue")
	ErrUpdateVenue       = errors.New("error updating venue")
	ErrFetchVenues       = errors.New("error fetching venues from database")

	// Erros de sincronização
	ErrGenerateID = errors.New("error generating venue ID")
)

// VenueError é um erro com contexto adicional para venues
type VenueError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	VenueID string // ID do venue envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *VenueError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *VenueError) Unwrap() error {
	return e.Err
}

// NewVenueError cria um novo VenueError
func NewVenueError(err error, code string, details string) *VenueError {
	return &VenueError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewVenueErrorWithID cria um novo VenueError com ID do venue
func NewVenueErrorWithID(err error, code string, venueID string, details string) *VenueError {
	return &VenueError{
		Err:     err,
		Code:    code,
		VenueID: venueID,
		Details: details,
	}
}
