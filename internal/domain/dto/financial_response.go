package dto

// PricePointResponse is one element of the data array returned by
// GET /api/financial_data. Prices are serialized as decimal strings
// (cents rescaled to two decimals).
type PricePointResponse struct {
	Symbol     string `json:"symbol" example:"IBM"`
	Date       string `json:"date" example:"2023-03-17"`
	OpenPrice  string `json:"open_price" example:"124.08"`
	ClosePrice string `json:"close_price" example:"123.69"`
	Volume     int64  `json:"volume" example:"37400167"`
}

// Pagination describes the page window applied to a list response.
//
// Pages is ceil(count/limit); when limit is 0 it degrades to count.
type Pagination struct {
	Count int `json:"count" example:"42"`
	Page  int `json:"page" example:"0"`
	Limit int `json:"limit" example:"5"`
	Pages int `json:"pages" example:"9"`
}

// Info carries the validation error text of a request. An empty string
// means the request validated cleanly. Validation failures are reported
// here instead of via HTTP status codes; both endpoints always answer 200
// unless the storage layer fails.
type Info struct {
	Error string `json:"error" example:""`
}

// FinancialDataResponse is the full body of GET /api/financial_data.
type FinancialDataResponse struct {
	Data       []PricePointResponse `json:"data"`
	Pagination Pagination           `json:"pagination"`
	Info       Info                 `json:"info"`
}

// StatisticsData is the data object of GET /api/statistics. When the query
// fails validation it serializes as {}. When no rows match the range, the
// echoed symbol and dates are present and the three average fields are
// omitted.
type StatisticsData struct {
	Symbol                 string   `json:"symbol,omitempty" example:"IBM"`
	StartDate              string   `json:"start_date,omitempty" example:"2023-03-01"`
	EndDate                string   `json:"end_date,omitempty" example:"2023-03-17"`
	AverageDailyOpenPrice  *float64 `json:"average_daily_open_price,omitempty" example:"123.45"`
	AverageDailyClosePrice *float64 `json:"average_daily_close_price,omitempty" example:"123.98"`
	AverageDailyVolume     *int64   `json:"average_daily_volume,omitempty" example:"36250000"`
}

// StatisticsResponse is the full body of GET /api/statistics.
type StatisticsResponse struct {
	Data StatisticsData `json:"data"`
	Info Info           `json:"info"`
}
