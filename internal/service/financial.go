package service

import (
	"context"
	"net/url"

	"github.com/finpulse/finpulse/internal/domain/dto"
	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/query"
	"github.com/finpulse/finpulse/internal/storage"
)

const dateLayout = "2006-01-02"

// FinancialService composes validation, storage access and response
// assembly for the two API operations.
//
// Validation failures are swallowed into the response's info.error field
// and degrade the request to an empty result; only storage-layer faults
// are returned as errors.
type FinancialService interface {
	GetFinancialData(ctx context.Context, params url.Values) (dto.FinancialDataResponse, error)
	GetFinancialStatistics(ctx context.Context, params url.Values) (dto.StatisticsResponse, error)
}

type financialService struct {
	repo storage.PricesRepository
}

func NewFinancialService(repo storage.PricesRepository) FinancialService {
	return &financialService{repo: repo}
}

func (s *financialService) GetFinancialData(ctx context.Context, params url.Values) (dto.FinancialDataResponse, error) {
	q, verr := query.ParseListQuery(params)

	var points []models.PricePoint
	if verr == nil {
		var err error
		points, err = s.repo.ListPrices(q)
		if err != nil {
			return dto.FinancialDataResponse{}, err
		}
	}

	resp := dto.FinancialDataResponse{
		Data:       make([]dto.PricePointResponse, 0, len(points)),
		Pagination: paginationInfo(len(points), q.Page, q.Limit),
	}
	if verr != nil {
		resp.Info.Error = verr.Error()
	}
	for _, p := range points {
		resp.Data = append(resp.Data, dto.PricePointResponse{
			Symbol:     p.Symbol,
			Date:       p.Date.Format(dateLayout),
			OpenPrice:  models.CentsToDecimal(p.OpenPrice),
			ClosePrice: models.CentsToDecimal(p.ClosePrice),
			Volume:     p.Volume,
		})
	}
	return resp, nil
}

func (s *financialService) GetFinancialStatistics(ctx context.Context, params url.Values) (dto.StatisticsResponse, error) {
	q, verr := query.ParseStatisticsQuery(params)
	if verr != nil {
		// data stays {}; the error text is the only signal
		return dto.StatisticsResponse{Info: dto.Info{Error: verr.Error()}}, nil
	}

	stats, err := s.repo.ComputeStatistics(q)
	if err != nil {
		return dto.StatisticsResponse{}, err
	}

	data := dto.StatisticsData{
		Symbol:    q.Symbol,
		StartDate: q.StartDate.Format(dateLayout),
		EndDate:   q.EndDate.Format(dateLayout),
	}
	// nil stats means no rows matched: the range is echoed, the averages
	// are left out rather than fabricated as zeros.
	if stats != nil {
		data.AverageDailyOpenPrice = &stats.AverageOpenPrice
		data.AverageDailyClosePrice = &stats.AverageClosePrice
		data.AverageDailyVolume = &stats.AverageVolume
	}

	return dto.StatisticsResponse{Data: data}, nil
}

// paginationInfo builds the pagination block from the result count and the
// requested page window. pages is ceil(count/limit), degrading to count
// when limit is 0.
func paginationInfo(count, page, limit int) dto.Pagination {
	pages := count
	if limit != 0 {
		pages = (count + limit - 1) / limit
	}
	return dto.Pagination{
		Count: count,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
