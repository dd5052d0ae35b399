package storage

import (
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/query"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// PricesRepository defines the contract for all financial_data table access.
// It is the only component that touches the store; callers pass an explicit
// handle at construction instead of reaching for a process-global engine.
type PricesRepository interface {
	// ListPrices returns rows matching the query's optional filters,
	// ascending by date. The query's page value is applied directly as the
	// SQL row offset (not page*limit); this mirrors the documented API
	// contract and must not be "fixed" silently.
	ListPrices(q query.ListQuery) ([]models.PricePoint, error)

	// ComputeStatistics averages open/close price and volume over the rows
	// matching the symbol and inclusive date range. Returns (nil, nil) when
	// no rows match.
	ComputeStatistics(q query.StatisticsQuery) (*models.Statistics, error)

	// UpsertPrices writes the records keyed by (symbol, date). Existing rows
	// get open_price, close_price and volume overwritten and the updated
	// timestamp refreshed; created is preserved. Returns rows affected.
	UpsertPrices(recs []models.PriceRecord) (int64, error)
}

type pricesRepository struct {
	db *sql.DB
}

func NewPricesRepository(db *sql.DB) PricesRepository {
	return &pricesRepository{db: db}
}

func (r *pricesRepository) ListPrices(q query.ListQuery) ([]models.PricePoint, error) {
	// Build conjunctive conditions with positional args; only provided
	// filters contribute a clause.
	var conditions []string
	var args []interface{}

	if q.Symbol != "" {
		args = append(args, q.Symbol)
		conditions = append(conditions, fmt.Sprintf("symbol = $%d", len(args)))
	}
	if q.StartDate != nil {
		args = append(args, *q.StartDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if q.EndDate != nil {
		args = append(args, *q.EndDate)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, q.Limit)
	limitPos := len(args)
	args = append(args, q.Page) // page acts as a plain row offset
	offsetPos := len(args)

	stmt := fmt.Sprintf(`
		SELECT id, symbol, date, open_price, close_price, volume, created, updated
		FROM financial_data%s
		ORDER BY date ASC
		LIMIT $%d OFFSET $%d`, where, limitPos, offsetPos)

	rows, err := r.db.Query(stmt, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.PricePoint
	for rows.Next() {
		var p models.PricePoint
		if err := rows.Scan(&p.ID, &p.Symbol, &p.Date, &p.OpenPrice, &p.ClosePrice, &p.Volume, &p.Created, &p.Updated); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *pricesRepository) ComputeStatistics(q query.StatisticsQuery) (*models.Statistics, error) {
	const stmt = `
		SELECT AVG(open_price) AS avg_open, AVG(close_price) AS avg_close, AVG(volume) AS avg_volume
		FROM financial_data
		WHERE symbol = $1 AND date >= $2 AND date <= $3`

	var avgOpen, avgClose, avgVolume sql.NullFloat64
	err := r.db.QueryRow(stmt, q.Symbol, q.StartDate, q.EndDate).Scan(&avgOpen, &avgClose, &avgVolume)
	if err != nil {
		return nil, err
	}

	// All NULL means zero rows matched; the caller treats nil as "no data".
	if !avgOpen.Valid && !avgClose.Valid && !avgVolume.Valid {
		return nil, nil
	}

	return &models.Statistics{
		Symbol:            q.Symbol,
		AverageOpenPrice:  avgOpen.Float64 / 100,
		AverageClosePrice: avgClose.Float64 / 100,
		AverageVolume:     int64(math.Round(avgVolume.Float64)),
	}, nil
}

func (r *pricesRepository) UpsertPrices(recs []models.PriceRecord) (int64, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	// One multi-row INSERT per call; each call is its own transaction so a
	// chunked ingestion run commits chunk by chunk.
	placeholders := make([]string, 0, len(recs))
	args := make([]interface{}, 0, len(recs)*5)

	for i, rec := range recs {
		open, err := models.ParseCents(rec.OpenPrice)
		if err != nil {
			return 0, fmt.Errorf("open price for %s %s: %w", rec.Symbol, rec.Date.Format("2006-01-02"), err)
		}
		closing, err := models.ParseCents(rec.ClosePrice)
		if err != nil {
			return 0, fmt.Errorf("close price for %s %s: %w", rec.Symbol, rec.Date.Format("2006-01-02"), err)
		}

		base := i * 5
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, rec.Symbol, rec.Date, open, closing, rec.Volume)
	}

	stmt := fmt.Sprintf(`
		INSERT INTO financial_data (symbol, date, open_price, close_price, volume)
		VALUES %s
		ON CONFLICT (symbol, date)
		DO UPDATE SET open_price = EXCLUDED.open_price,
					  close_price = EXCLUDED.close_price,
					  volume = EXCLUDED.volume,
					  updated = NOW()`, strings.Join(placeholders, ", "))

	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	res, err := tx.Exec(stmt, args...)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return affected, nil
}
