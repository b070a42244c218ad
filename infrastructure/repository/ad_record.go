package repository

//go:generate mockgen -source=ad_record.go -destination=mocks/ad_record_repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/traffic-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-report-api/internal/domain"
)

const (
	adDailyInsightsTable = "ad_daily_insights adi"
	dateLayout           = "2006-01-02"
)

var adRecordColumns = []string{
	"adi.date",
	"adi.ad_id",
	"adi.ad_name",
	"adi.spend",
	"adi.value",
	"adi.impressions",
	"adi.reach",
	"adi.clicks",
	"adi.landing_page_views",
	"adi.purchases",
	"adi.video_views_3s",
}

// AdRecordRepository lê as linhas diárias por anúncio de uma conta
type AdRecordRepository interface {
	GetByDateRange(ctx context.Context, accountID string, startDate, endDate time.Time) (domain.Series, error)
	GetLatestDate(ctx context.Context, accountID string) (*time.Time, error)
	ListAccountIDs(ctx context.Context) ([]string, error)
}

type adRecordRepository struct {
	conn postgres.Queryer
}

func NewAdRecordRepository(conn postgres.Queryer) AdRecordRepository {
	return &adRecordRepository{
		conn: conn,
	}
}

func (r *adRecordRepository) GetByDateRange(ctx context.Context, accountID string, startDate, endDate time.Time) (domain.Series, error) {
	query, args, err := squirrel.
		Select(adRecordColumns...).
		From(adDailyInsightsTable).
		Where(squirrel.Eq{"adi.account_id": accountID}).
		Where(squirrel.GtOrEq{"adi.date": startDate.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"adi.date": endDate.Format(dateLayout)}).
		OrderBy("adi.date ASC", "adi.ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	series := make(domain.Series, 0)
	for rows.Next() {
		record, err := scanAdRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha diária: %w", err)
		}
		series = append(series, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return series, nil
}

// GetLatestDate retorna nil quando a conta não tem linhas
func (r *adRecordRepository) GetLatestDate(ctx context.Context, accountID string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(adi.date)").
		From(adDailyInsightsTable).
		Where(squirrel.Eq{"adi.account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&latest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapQueryError(err)
	}

	if !latest.Valid {
		return nil, nil
	}

	d := domain.NormalizeDate(latest.Time)
	return &d, nil
}

func (r *adRecordRepository) ListAccountIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT adi.account_id").
		From(adDailyInsightsTable).
		OrderBy("adi.account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func scanAdRecord(rows *sql.Rows) (domain.DailyAdRecord, error) {
	var (
		record domain.DailyAdRecord
		adName sql.NullString
	)

	err := rows.Scan(
		&record.Date,
		&record.AdID,
		&adName,
		&record.Spend,
		&record.Value,
		&record.Impressions,
		&record.Reach,
		&record.Clicks,
		&record.Visits,
		&record.Purchases,
		&record.VideoViews3s,
	)
	if err != nil {
		return domain.DailyAdRecord{}, err
	}

	record.Date = domain.NormalizeDate(record.Date)
	record.AdName = adName.String

	return record, nil
}

func wrapQueryError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
