package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/database/postgres"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
)

const (
	adInsightsTable = "ad_insights ai"
)

type AdInsightRepository interface {
	GetByVenueAndDate(venueID, platform string, date time.Time) (*domain.AdInsightEntry, error)
	GetByDateRange(venueID, platform string, startDate, endDate time.Time) ([]*domain.AdInsightEntry, error)
	SaveOrUpdate(insight *domain.AdInsightEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type adInsightRepository struct {
	conn *postgres.Connection
}

func NewAdInsightRepository(conn *postgres.Connection) AdInsightRepository {
	return &adInsightRepository{
		conn: conn,
	}
}

const adInsightColumns = "ai.id, ai.venue_id, ai.platform, ai.date, ai.metrics, ai.created_at, ai.updated_at"

func (r *adInsightRepository) GetByVenueAndDate(venueID, platform string, date time.Time) (*domain.AdInsightEntry, error) {
	query, args, err := squirrel.
		Select(adInsightColumns).
		From(adInsightsTable).
		Where(squirrel.Eq{"ai.venue_id": venueID, "ai.platform": platform, "ai.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	insight, err := r.scanInsight(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight: %w", err)
	}

	return insight, nil
}

func (r *adInsightRepository) GetByDateRange(venueID, platform string, startDate, endDate time.Time) ([]*domain.AdInsightEntry, error) {
	query, args, err := squirrel.
		Select(adInsightColumns).
		From(adInsightsTable).
		Where(squirrel.Eq{"ai.venue_id": venueID, "ai.platform": platform}).
		Where(squirrel.GtOrEq{"ai.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ai.date": endDate.Format("2006-01-02")}).
		OrderBy("ai.date ASC").
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
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	insights := make([]*domain.AdInsightEntry, 0)
	for rows.Next() {
		insight, err := r.scanInsightRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ad insights: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *adInsightRepository) SaveOrUpdate(insight *domain.AdInsightEntry) error {
	var metricsJSON []byte
	var err error

	if insight.Metrics != nil {
		metricsJSON, err = json.Marshal(insight.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("ad_insights").
		Columns("venue_id", "platform", "date", "metrics").
		Values(
			insight.VenueID,
			insight.Platform,
			insight.Date.Format("2006-01-02"),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (venue_id, platform, date) DO UPDATE SET
				metrics = EXCLUDED.metrics,
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

func (r *adInsightRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("ad_insights").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *adInsightRepository) scanInsight(row *sql.Row) (*domain.AdInsightEntry, error) {
	insight := &domain.AdInsightEntry{}
	var metricsJSON []byte
	var dateStr string

	err := row.Scan(
		&insight.ID,
		&insight.VenueID,
		&insight.Platform,
		&dateStr,
		&metricsJSON,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data: %w", err)
	}
	insight.Date = date

	if metricsJSON != nil {
		metrics := &domain.AdMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		insight.Metrics = metrics
	}

	return insight, nil
}

func (r *adInsightRepository) scanInsightRows(rows *sql.Rows) (*domain.AdInsightEntry, error) {
	insight := &domain.AdInsightEntry{}
	var metricsJSON []byte

	err := rows.Scan(
		&insight.ID,
		&insight.VenueID,
		&insight.Platform,
		&insight.Date,
		&metricsJSON,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		metrics := &domain.AdMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		insight.Metrics = metrics
	}

	return insight, nil
}
