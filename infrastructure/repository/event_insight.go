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
	eventInsightsTable = "event_insights ei"
)

type EventInsightRepository interface {
	GetByVenueAndDate(venueID, source string, date time.Time) (*domain.EventInsightEntry, error)
	GetByDateRange(venueID, source string, startDate, endDate time.Time) ([]*domain.EventInsightEntry, error)
	SaveOrUpdate(insight *domain.EventInsightEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type eventInsightRepository struct {
	conn *postgres.Connection
}

func NewEventInsightRepository(conn *postgres.Connection) EventInsightRepository {
	return &eventInsightRepository{
		conn: conn,
	}
}

const eventInsightColumns = "ei.id, ei.venue_id, ei.source, ei.date, ei.metrics, ei.created_at, ei.updated_at"

func (r *eventInsightRepository) GetByVenueAndDate(venueID, source string, date time.Time) (*domain.EventInsightEntry, error) {
	query, args, err := squirrel.
		Select(eventInsightColumns).
		From(eventInsightsTable).
		Where(squirrel.Eq{"ei.venue_id": venueID, "ei.source": source, "ei.date": date.Format("2006-01-02")}).
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

func (r *eventInsightRepository) GetByDateRange(venueID, source string, startDate, endDate time.Time) ([]*domain.EventInsightEntry, error) {
	query, args, err := squirrel.
		Select(eventInsightColumns).
		From(eventInsightsTable).
		Where(squirrel.Eq{"ei.venue_id": venueID, "ei.source": source}).
		Where(squirrel.GtOrEq{"ei.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ei.date": endDate.Format("2006-01-02")}).
		OrderBy("ei.date ASC").
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

	insights := make([]*domain.EventInsightEntry, 0)
	for rows.Next() {
		insight, err := r.scanInsightRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear event insights: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *eventInsightRepository) SaveOrUpdate(insight *domain.EventInsightEntry) error {
	var metricsJSON []byte
	var err error

	if insight.Metrics != nil {
		metricsJSON, err = json.Marshal(insight.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("event_insights").
		Columns("venue_id", "source", "date", "metrics").
		Values(
			insight.VenueID,
			insight.Source,
			insight.Date.Format("2006-01-02"),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (venue_id, source, date) DO UPDATE SET
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

func (r *eventInsightRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("event_insights").
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

func (r *eventInsightRepository) scanInsight(row *sql.Row) (*domain.EventInsightEntry, error) {
	insight := &domain.EventInsightEntry{}
	var metricsJSON []byte
	var dateStr string

	err := row.Scan(
		&insight.ID,
		&insight.VenueID,
		&insight.Source,
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
		metrics := &domain.EventMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		insight.Metrics = metrics
	}

	return insight, nil
}

func (r *eventInsightRepository) scanInsightRows(rows *sql.Rows) (*domain.EventInsightEntry, error) {
	insight := &domain.EventInsightEntry{}
	var metricsJSON []byte

	err := rows.Scan(
		&insight.ID,
		&insight.VenueID,
		&insight.Source,
		&insight.Date,
		&metricsJSON,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		metrics := &domain.EventMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		insight.Metrics = metrics
	}

	return insight, nil
}
