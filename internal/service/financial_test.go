package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/query"
)

type fakeRepo struct {
	points    []models.PricePoint
	stats     *models.Statistics
	err       error
	lastList  *query.ListQuery
	lastStats *query.StatisticsQuery
}

func (f *fakeRepo) ListPrices(q query.ListQuery) ([]models.PricePoint, error) {
	f.lastList = &q
	return f.points, f.err
}

func (f *fakeRepo) ComputeStatistics(q query.StatisticsQuery) (*models.Statistics, error) {
	f.lastStats = &q
	return f.stats, f.err
}

func (f *fakeRepo) UpsertPrices([]models.PriceRecord) (int64, error) { return 0, nil }

func TestGetFinancialData_Success(t *testing.T) {
	day := time.Date(2023, 3, 17, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{points: []models.PricePoint{
		{Symbol: "IBM", Date: day, OpenPrice: 12408, ClosePrice: 12369, Volume: 37400167},
	}}
	svc := NewFinancialService(repo)

	params := url.Values{"symbol": {"IBM"}, "page": {"1"}, "limit": {"3"}}
	resp, err := svc.GetFinancialData(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Info.Error != "" {
		t.Fatalf("unexpected validation error: %q", resp.Info.Error)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("data len=%d", len(resp.Data))
	}
	row := resp.Data[0]
	if row.Symbol != "IBM" || row.Date != "2023-03-17" || row.OpenPrice != "124.08" || row.ClosePrice != "123.69" || row.Volume != 37400167 {
		t.Fatalf("unexpected row: %+v", row)
	}
	if resp.Pagination.Page != 1 || resp.Pagination.Limit != 3 || resp.Pagination.Count != 1 || resp.Pagination.Pages != 1 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	// the raw page value must be handed to storage untouched
	if repo.lastList == nil || repo.lastList.Page != 1 || repo.lastList.Limit != 3 {
		t.Fatalf("repo query: %+v", repo.lastList)
	}
}

func TestGetFinancialData_ValidationErrorDegrades(t *testing.T) {
	repo := &fakeRepo{points: []models.PricePoint{{Symbol: "IBM"}}}
	svc := NewFinancialService(repo)

	params := url.Values{"start_date": {"2023-03-17"}, "end_date": {"2023-03-01"}}
	resp, err := svc.GetFinancialData(context.Background(), params)
	if err != nil {
		t.Fatalf("validation failures must not surface as errors: %v", err)
	}
	if resp.Info.Error == "" {
		t.Fatalf("expected error annotation")
	}
	if len(resp.Data) != 0 {
		t.Fatalf("data must be empty on validation failure, got %d rows", len(resp.Data))
	}
	if repo.lastList != nil {
		t.Fatalf("storage must not be queried after a validation failure")
	}
	// pagination falls back to defaults
	if resp.Pagination.Page != 0 || resp.Pagination.Limit != query.DefaultLimit || resp.Pagination.Count != 0 || resp.Pagination.Pages != 0 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
}

func TestGetFinancialData_StorageErrorPropagates(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}
	svc := NewFinancialService(repo)

	_, err := svc.GetFinancialData(context.Background(), url.Values{})
	if err == nil {
		t.Fatalf("expected storage error")
	}
}

func TestGetFinancialStatistics_Success(t *testing.T) {
	repo := &fakeRepo{stats: &models.Statistics{
		Symbol:            "IBM",
		AverageOpenPrice:  123.45,
		AverageClosePrice: 123.98,
		AverageVolume:     36250000,
	}}
	svc := NewFinancialService(repo)

	params := url.Values{"symbol": {"IBM"}, "start_date": {"2023-03-01"}, "end_date": {"2023-03-17"}}
	resp, err := svc.GetFinancialStatistics(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	d := resp.Data
	if d.Symbol != "IBM" || d.StartDate != "2023-03-01" || d.EndDate != "2023-03-17" {
		t.Fatalf("echoed fields wrong: %+v", d)
	}
	if d.AverageDailyOpenPrice == nil || *d.AverageDailyOpenPrice != 123.45 {
		t.Fatalf("avg open: %v", d.AverageDailyOpenPrice)
	}
	if d.AverageDailyClosePrice == nil || *d.AverageDailyClosePrice != 123.98 {
		t.Fatalf("avg close: %v", d.AverageDailyClosePrice)
	}
	if d.AverageDailyVolume == nil || *d.AverageDailyVolume != 36250000 {
		t.Fatalf("avg volume: %v", d.AverageDailyVolume)
	}
	if resp.Info.Error != "" {
		t.Fatalf("unexpected error annotation: %q", resp.Info.Error)
	}
}

func TestGetFinancialStatistics_ValidationError(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewFinancialService(repo)

	resp, err := svc.GetFinancialStatistics(context.Background(), url.Values{"symbol": {"IBM"}})
	if err != nil {
		t.Fatalf("validation failures must not surface as errors: %v", err)
	}
	if resp.Info.Error == "" {
		t.Fatalf("expected error annotation")
	}
	if resp.Data.Symbol != "" || resp.Data.StartDate != "" || resp.Data.EndDate != "" || resp.Data.AverageDailyVolume != nil {
		t.Fatalf("data must be empty on validation failure: %+v", resp.Data)
	}
	if repo.lastStats != nil {
		t.Fatalf("storage must not be queried after a validation failure")
	}
}

func TestGetFinancialStatistics_NoRowsOmitsAverages(t *testing.T) {
	repo := &fakeRepo{stats: nil}
	svc := NewFinancialService(repo)

	params := url.Values{"symbol": {"IBM"}, "start_date": {"2023-03-01"}, "end_date": {"2023-03-17"}}
	resp, err := svc.GetFinancialStatistics(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	d := resp.Data
	if d.Symbol != "IBM" || d.StartDate != "2023-03-01" || d.EndDate != "2023-03-17" {
		t.Fatalf("range must still be echoed: %+v", d)
	}
	if d.AverageDailyOpenPrice != nil || d.AverageDailyClosePrice != nil || d.AverageDailyVolume != nil {
		t.Fatalf("averages must be omitted when no rows match: %+v", d)
	}
	if resp.Info.Error != "" {
		t.Fatalf("no-data is not an error: %q", resp.Info.Error)
	}
}

func TestGetFinancialStatistics_StorageErrorPropagates(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}
	svc := NewFinancialService(repo)

	params := url.Values{"symbol": {"IBM"}, "start_date": {"2023-03-01"}, "end_date": {"2023-03-17"}}
	if _, err := svc.GetFinancialStatistics(context.Background(), params); err == nil {
		t.Fatalf("expected storage error")
	}
}

func TestPaginationInfo_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		count     int
		page      int
		limit     int
		wantPages int
	}{
		{name: "exact multiple", count: 10, page: 0, limit: 5, wantPages: 2},
		{name: "partial last page", count: 11, page: 0, limit: 5, wantPages: 3},
		{name: "empty", count: 0, page: 0, limit: 5, wantPages: 0},
		{name: "limit one", count: 3, page: 2, limit: 1, wantPages: 3},
		{name: "limit zero degrades to count", count: 7, page: 0, limit: 0, wantPages: 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := paginationInfo(tc.count, tc.page, tc.limit)
			if p.Pages != tc.wantPages {
				t.Fatalf("pages=%d, want %d", p.Pages, tc.wantPages)
			}
			if p.Count != tc.count || p.Page != tc.page || p.Limit != tc.limit {
				t.Fatalf("echo fields wrong: %+v", p)
			}
		})
	}
}
