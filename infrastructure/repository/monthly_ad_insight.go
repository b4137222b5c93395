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
	monthlyAdInsightsTable = "monthly_ad_insights mai"
)

type MonthlyAdInsightRepository interface {
	GetByVenueAndPeriod(venueID string, date time.Time) ([]*domain.MonthlyAdInsight, error)
	SaveOrUpdate(insight *domain.MonthlyAdInsight) error
	DeleteOlderThan(months int) (int64, error)
	GetAllPeriods() ([]string, error)
}

type monthlyAdInsightRepository struct {
	conn *postgres.Connection
}

func NewMonthlyAdInsightRepository(conn *postgres.Connection) MonthlyAdInsightRepository {
	return &monthlyAdInsightRepository{
		conn: conn,
	}
}

// FormatPeriod converte uma data para o período mm-yyyy usado nas tabelas mensais
func FormatPeriod(date time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(date.Month()), date.Year())
}

// GetByVenueAndPeriod retorna os consolidados do mês (um registro por plataforma)
func (r *monthlyAdInsightRepository) GetByVenueAndPeriod(venueID string, date time.Time) ([]*domain.MonthlyAdInsight, error) {
	period := FormatPeriod(date)

	query, args, err := squirrel.
		Select("mai.id, mai.venue_id, mai.platform, mai.period, mai.metrics, mai.created_at, mai.updated_at").
		From(monthlyAdInsightsTable).
		Where(squirrel.Eq{"mai.venue_id": venueID, "mai.period": period}).
		OrderBy("mai.platform ASC").
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

	insights := make([]*domain.MonthlyAdInsight, 0)
	for rows.Next() {
		insight, err := r.scanInsightRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear monthly ad insights: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *monthlyAdInsightRepository) SaveOrUpdate(insight *domain.MonthlyAdInsight) error {
	var metricsJSON []byte
	var err error

	if insight.Metrics != nil {
		metricsJSON, err = json.Marshal(insight.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_ad_insights").
		Columns("venue_id", "platform", "period", "metrics").
		Values(
			insight.VenueID,
			insight.Platform,
			insight.Period,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (venue_id, platform, period) DO UPDATE SET
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

func (r *monthlyAdInsightRepository) DeleteOlderThan(months int) (int64, error) {
	cutoffTime := time.Now().AddDate(0, -months, 0)
	cutoffPeriod := FormatPeriod(cutoffTime)

	query, args, err := squirrel.
		Delete("monthly_ad_insights").
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

// GetAllPeriods retorna todos os períodos disponíveis no formato mm-yyyy
func (r *monthlyAdInsightRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("monthly_ad_insights").
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

func (r *monthlyAdInsightRepository) scanInsightRows(rows *sql.Rows) (*domain.MonthlyAdInsight, error) {
	insight := &domain.MonthlyAdInsight{}
	var metricsJSON []byte

	err := rows.Scan(
		&insight.ID,
		&insight.VenueID,
		&insight.Platform,
		&insight.Period,
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
