package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/database/postgres"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
)

const (
	venuesTable = "venues v"
)

type VenueRepository interface {
	GetByID(venueID string) (*domain.Venue, error)
	List(availableStatus []domain.VenueStatus) ([]*domain.Venue, error)
	ListMap() (map[string]struct{}, error)
	Create(venue *domain.Venue) error
	CreateMany(ctx context.Context, venues []*domain.Venue) error
	Update(venue *domain.UpdateVenueRequest) error
}

type venueRepository struct {
	conn *postgres.Connection
}

func NewVenueRepository(conn *postgres.Connection) VenueRepository {
	return &venueRepository{
		conn: conn,
	}
}

const venueColumns = "v.id, v.name, v.logo_url, v.status, v.meta_ad_account_id, v.google_customer_id, v.ghl_location_id, v.sheet_id, v.sheet_range, v.conversion_actions, v.created_at, v.updated_at"

func (r *venueRepository) GetByID(venueID string) (*domain.Venue, error) {
	query, args, err := squirrel.
		Select(venueColumns).
		From(venuesTable).
		Where(squirrel.Eq{"v.id": venueID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	venue, err := r.scanVenue(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return venue, nil
}

func (r *venueRepository) List(availableStatus []domain.VenueStatus) ([]*domain.Venue, error) {
	queryBuilder := squirrel.
		Select(venueColumns).
		From(venuesTable).
		OrderBy("v.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"v.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
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

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		venue, err := r.scanVenueRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venue: %w", err)
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return venues, nil
}

// ListMap retorna os IDs já cadastrados para deduplicação durante o sync
func (r *venueRepository) ListMap() (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("v.meta_ad_account_id", "v.google_customer_id").
		From(venuesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	known := make(map[string]struct{})
	for rows.Next() {
		var metaID, googleID *string
		if err := rows.Scan(&metaID, &googleID); err != nil {
			return nil, err
		}
		if metaID != nil && *metaID != "" {
			known[*metaID] = struct{}{}
		}
		if googleID != nil && *googleID != "" {
			known[*googleID] = struct{}{}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return known, nil
}

func buildVenueInsert(venue *domain.Venue) (string, []interface{}, error) {
	conversionActionsJSON, err := marshalConversionActions(venue.ConversionActions)
	if err != nil {
		return "", nil, err
	}

	query, args, err := squirrel.
		Insert("venues").
		Columns("id", "name", "logo_url", "status", "meta_ad_account_id", "google_customer_id", "ghl_location_id", "sheet_id", "sheet_range", "conversion_actions").
		Values(
			venue.ID,
			venue.Name,
			venue.LogoURL,
			venue.Status,
			venue.MetaAdAccountID,
			venue.GoogleCustomerID,
			venue.GHLLocationID,
			venue.SheetID,
			venue.SheetRange,
			conversionActionsJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return query, args, nil
}

func (r *venueRepository) Create(venue *domain.Venue) error {
	query, args, err := buildVenueInsert(venue)
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// CreateMany insere os venues em uma única transação, revertendo todos em caso de falha
func (r *venueRepository) CreateMany(ctx context.Context, venues []*domain.Venue) error {
	if len(venues) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, venue := range venues {
			query, args, err := buildVenueInsert(venue)
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}

func (r *venueRepository) Update(venue *domain.UpdateVenueRequest) error {
	queryBuilder := squirrel.
		Update("venues").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": venue.ID})

	if venue.Name != nil {
		queryBuilder = queryBuilder.Set("name", *venue.Name)
	}

	if venue.LogoURL != nil {
		queryBuilder = queryBuilder.Set("logo_url", *venue.LogoURL)
	}

	if venue.Status != nil {
		queryBuilder = queryBuilder.Set("status", *venue.Status)
	}

	if venue.MetaAdAccountID != nil {
		queryBuilder = queryBuilder.Set("meta_ad_account_id", *venue.MetaAdAccountID)
	}

	if venue.GoogleCustomerID != nil {
		queryBuilder = queryBuilder.Set("google_customer_id", *venue.GoogleCustomerID)
	}

	if venue.GHLLocationID != nil {
		queryBuilder = queryBuilder.Set("ghl_location_id", *venue.GHLLocationID)
	}

	if venue.SheetID != nil {
		queryBuilder = queryBuilder.Set("sheet_id", *venue.SheetID)
	}

	if venue.SheetRange != nil {
		queryBuilder = queryBuilder.Set("sheet_range", *venue.SheetRange)
	}

	if venue.ConversionActions != nil {
		conversionActionsJSON, err := marshalConversionActions(venue.ConversionActions)
		if err != nil {
			return err
		}
		queryBuilder = queryBuilder.Set("conversion_actions", conversionActionsJSON)
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

func marshalConversionActions(actions map[string]string) ([]byte, error) {
	if actions == nil {
		return nil, nil
	}

	b, err := json.Marshal(actions)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar conversion_actions para JSON: %w", err)
	}

	return b, nil
}

func (r *venueRepository) scanVenue(row *sql.Row) (*domain.Venue, error) {
	venue := &domain.Venue{}
	var conversionActionsJSON []byte

	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.LogoURL,
		&venue.Status,
		&venue.MetaAdAccountID,
		&venue.GoogleCustomerID,
		&venue.GHLLocationID,
		&venue.SheetID,
		&venue.SheetRange,
		&conversionActionsJSON,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalConversionActions(conversionActionsJSON, venue); err != nil {
		return nil, err
	}

	return venue, nil
}

func (r *venueRepository) scanVenueRows(rows *sql.Rows) (*domain.Venue, error) {
	venue := &domain.Venue{}
	var conversionActionsJSON []byte

	err := rows.Scan(
		&venue.ID,
		&venue.Name,
		&venue.LogoURL,
		&venue.Status,
		&venue.MetaAdAccountID,
		&venue.GoogleCustomerID,
		&venue.GHLLocationID,
		&venue.SheetID,
		&venue.SheetRange,
		&conversionActionsJSON,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalConversionActions(conversionActionsJSON, venue); err != nil {
		return nil, err
	}

	return venue, nil
}

func unmarshalConversionActions(data []byte, venue *domain.Venue) error {
	if data == nil {
		return nil
	}

	actions := make(map[string]string)
	if err := json.Unmarshal(data, &actions); err != nil {
		return fmt.Errorf("erro ao deserializar JSON de conversion_actions: %w", err)
	}
	venue.ConversionActions = actions

	return nil
}
