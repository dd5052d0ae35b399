package ingestion

import (
	"fmt"
	"strconv"
	"time"

	"github.com/finpulse/finpulse/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Normalize converts a provider daily series into storage-ready records for
// the trailing window of daysNeeded calendar days, ending at now's date.
//
// Days absent from the series (market holidays, weekends) are skipped, not
// emitted as null-filled records. Prices stay as the provider's decimal
// strings; conversion to cents happens at upsert. Volume is parsed here
// because the provider sends it as a string.
func Normalize(series *DailySeries, daysNeeded int, now time.Time) ([]models.PriceRecord, error) {
	if daysNeeded < 1 {
		daysNeeded = 1
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := day.AddDate(0, 0, -daysNeeded)

	out := make([]models.PriceRecord, 0, daysNeeded)
	for ; day.After(cutoff); day = day.AddDate(0, 0, -1) {
		quote, ok := series.Days[day.Format(dateLayout)]
		if !ok {
			continue
		}
		volume, err := strconv.ParseInt(quote.Volume, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid volume %q for %s on %s: %w", quote.Volume, series.MetaData.Symbol, day.Format(dateLayout), err)
		}
		out = append(out, models.PriceRecord{
			Symbol:     series.MetaData.Symbol,
			Date:       day,
			OpenPrice:  quote.Open,
			ClosePrice: quote.Close,
			Volume:     volume,
		})
	}
	return out, nil
}
