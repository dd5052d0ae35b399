package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/logger"
	"github.com/finpulse/finpulse/internal/storage"
)

const (
	// defaultChunkSize bounds the number of rows per upsert statement so a
	// large run does not overload a single call. Each chunk commits in its
	// own transaction: a mid-run failure leaves earlier chunks persisted
	// (at-least-once, the upsert key makes re-runs safe).
	defaultChunkSize = 300

	// maxFetchParallel bounds concurrent provider requests.
	maxFetchParallel = 4
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.PricesRepository {
	return storage.NewPricesRepository(db)
}

// Run executes one ingestion pass: fetch the daily series for every tracked
// symbol, normalize the trailing window, and upsert the accumulated records
// in bounded-size chunks.
//
// The fetch phase uses a bounded errgroup; the first failing symbol cancels
// the remaining fetches and aborts the run before anything is written.
func Run(ctx context.Context, db *sql.DB, client *Client, symbols []string, days int) error {
	return run(ctx, repoCtor(db), client, symbols, days, defaultChunkSize)
}

func run(ctx context.Context, repo storage.PricesRepository, client *Client, symbols []string, days int, chunkSize int) error {
	if len(symbols) == 0 {
		return fmt.Errorf("no symbols configured")
	}
	if days < 1 {
		days = 1
	}

	logger.L().Info().Strs("symbols", symbols).Int("days", days).Msg("ingestion start")

	// Fetch + normalize each symbol; results land in a per-symbol slot so
	// the final ordering is deterministic and nothing is shared mutably.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxFetchParallel)
	perSymbol := make([][]models.PriceRecord, len(symbols))

	for i, symbol := range symbols {
		idx, sym := i, symbol
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()

			series, err := client.FetchDailySeries(gctx, sym)
			if err != nil {
				logger.L().Error().Str("symbol", sym).Err(err).Msg("fetch failed")
				return fmt.Errorf("fetch %s: %w", sym, err)
			}

			recs, err := Normalize(series, days, time.Now().UTC())
			if err != nil {
				logger.L().Error().Str("symbol", sym).Err(err).Msg("normalize failed")
				return fmt.Errorf("normalize %s: %w", sym, err)
			}

			logger.L().Info().Str("symbol", sym).Int("records", len(recs)).Dur("elapsed", time.Since(start)).Msg("symbol fetched")
			perSymbol[idx] = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var all []models.PriceRecord
	for _, recs := range perSymbol {
		all = append(all, recs...)
	}

	var total int64
	for start := 0; start < len(all); start += chunkSize {
		end := min(start+chunkSize, len(all))
		n, err := repo.UpsertPrices(all[start:end])
		if err != nil {
			return fmt.Errorf("upsert chunk starting at row %d: %w", start, err)
		}
		total += n
	}

	logger.L().Info().Int("records", len(all)).Int64("rows_affected", total).Msg("ingestion completed")
	return nil
}
