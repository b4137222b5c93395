package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/database/postgres"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
)

const (
	integrationsTable = "integrations i"
)

type IntegrationRepository interface {
	GetByPlatform(platform string) (*domain.Integration, error)
	List() ([]*domain.Integration, error)
	SaveOrUpdate(integration *domain.Integration) error
	UpdateTokens(platform, accessToken string, refreshToken *string, expiresAt *time.Time) error
	Disconnect(platform string) error
}

type integrationRepository struct {
	conn *postgres.Connection
}

func NewIntegrationRepository(conn *postgres.Connection) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

const integrationColumns = "i.id, i.platform, i.access_token, i.refresh_token, i.expires_at, i.connected, i.account_id, i.account_name, i.created_at, i.updated_at"

func (r *integrationRepository) GetByPlatform(platform string) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select(integrationColumns).
		From(integrationsTable).
		Where(squirrel.Eq{"i.platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	integration := &domain.Integration{}
	err = row.Scan(
		&integration.ID,
		&integration.Platform,
		&integration.AccessToken,
		&integration.RefreshToken,
		&integration.ExpiresAt,
		&integration.Connected,
		&integration.AccountID,
		&integration.AccountName,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear integration: %w", err)
	}

	return integration, nil
}

func (r *integrationRepository) List() ([]*domain.Integration, error) {
	query, args, err := squirrel.
		Select(integrationColumns).
		From(integrationsTable).
		OrderBy("i.platform ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		integration := &domain.Integration{}
		if err := rows.Scan(
			&integration.ID,
			&integration.Platform,
			&integration.AccessToken,
			&integration.RefreshToken,
			&integration.ExpiresAt,
			&integration.Connected,
			&integration.AccountID,
			&integration.AccountName,
			&integration.CreatedAt,
			&integration.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear integration: %w", err)
		}
		integrations = append(integrations, integration)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return integrations, nil
}

func (r *integrationRepository) SaveOrUpdate(integration *domain.Integration) error {
	query := squirrel.StatementBuilder.
		Insert("integrations").
		Columns("platform", "access_token", "refresh_token", "expires_at", "connected", "account_id", "account_name").
		Values(
			integration.Platform,
			integration.AccessToken,
			integration.RefreshToken,
			integration.ExpiresAt,
			integration.Connected,
			integration.AccountID,
			integration.AccountName,
		).
		Suffix(`
			ON CONFLICT (platform) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				expires_at = EXCLUDED.expires_at,
				connected = EXCLUDED.connected,
				account_id = EXCLUDED.account_id,
				account_name = EXCLUDED.account_name,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// UpdateTokens atualiza apenas as credenciais após um refresh de token
func (r *integrationRepository) UpdateTokens(platform, accessToken string, refreshToken *string, expiresAt *time.Time) error {
	queryBuilder := squirrel.
		Update("integrations").
		Set("access_token", accessToken).
		Set("expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"platform": platform})

	if refreshToken != nil {
		queryBuilder = queryBuilder.Set("refresh_token", *refreshToken)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *integrationRepository) Disconnect(platform string) error {
	query, args, err := squirrel.
		Update("integrations").
		Set("connected", false).
		Set("access_token", "").
		Set("refresh_token", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
