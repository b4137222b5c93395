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
	monthlyEventInsightsTable = "monthly_event_insights mei"
)

type MonthlyEventInsightRepository interface {
	GetByVenueAndPeriod(venueID string, date time.Time) (*domain.MonthlyEventInsight, error)
	SaveOrUpdate(insight *domain.MonthlyEventInsight) error
	DeleteOlderThan(months int) (int64, error)
	GetAllPeriods() ([]string, error)
}

type monthlyEventInsightRepository struct {
	conn *postgres.Connection
}

func NewMonthlyEventInsightRepository(conn *postgres.Connection) MonthlyEventInsightRepository {
	return &monthlyEventInsightRepository{
		conn: conn,
	}
}

func (r *monthlyEventInsightRepository) GetByVenueAndPeriod(venueID string, date time.Time) (*domain.MonthlyEventInsight, error) {
	period := FormatPeriod(date)

	query, args, err := squirrel.
		Select("mei.id, mei.venue_id, mei.period, mei.metrics, mei.created_at, mei.updated_at").
		From(monthlyEventInsightsTable).
		Where(squirrel.Eq{"mei.venue_id": venueID, "mei.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	insight := &domain.MonthlyEventInsight{}
	var metricsJSON []byte

	err = row.Scan(
		&insight.ID,
		&insight.VenueID,
		&insight.Period,
		&metricsJSON,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight mensal: %w", err)
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

func (r *monthlyEventInsightRepository) SaveOrUpdate(insight *domain.MonthlyEventInsight) error {
	var metricsJSON []byte
	var err error

	if insight.Metrics != nil {
		metricsJSON, err = json.Marshal(insight.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_event_insights").
		Columns("venue_id", "period", "metrics").
		Values(
			insight.VenueID,
			insight.Period,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (venue_id, period) DO UPDATE SET
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

func (r *monthlyEventInsightRepository) DeleteOlderThan(months int) (int64, error) {
	cutoffTime := time.Now().AddDate(0, -months, 0)
	cutoffPeriod := FormatPeriod(cutoffTime)

	query, args, err := squirrel.
		Delete("monthly_event_insights").
		Where(squirrel.Lt{"period": cutoffPeriod}).
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

func (r *monthlyEventInsightRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("monthly_event_insights").
		OrderBy("period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}
