// Package query converts raw URL query parameters into typed, constrained
// query objects. Each parse function runs an ordered sequence of field
// validators, stopping at the first violation, and applies the cross-field
// date-range rule only once every field has validated.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultLimit is the page size applied when the limit parameter is absent.
	DefaultLimit = 5

	dateLayout = "2006-01-02"
)

// ListQuery is the validated form of a GET /api/financial_data request.
// Nil dates mean the bound was not provided.
type ListQuery struct {
	Symbol    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// StatisticsQuery is the validated form of a GET /api/statistics request.
// All three fields are mandatory.
type StatisticsQuery struct {
	Symbol    string
	StartDate time.Time
	EndDate   time.Time
}

// ParseListQuery validates url parameters for the list endpoint.
//
// On failure the returned error describes the first violation encountered
// and the returned query keeps the page/limit defaults so the caller can
// still build a pagination block.
func ParseListQuery(params url.Values) (ListQuery, error) {
	q := ListQuery{Page: 0, Limit: DefaultLimit}

	limit, err := intField(params, "limit", DefaultLimit, 1)
	if err != nil {
		return q, err
	}
	q.Limit = limit

	page, err := intField(params, "page", 0, 0)
	if err != nil {
		return q, err
	}
	q.Page = page

	start, err := optionalDateField(params, "start_date")
	if err != nil {
		return q, err
	}
	q.StartDate = start

	end, err := optionalDateField(params, "end_date")
	if err != nil {
		return q, err
	}
	q.EndDate = end

	q.Symbol = strings.TrimSpace(params.Get("symbol"))

	if err := checkDateRange(q.StartDate, q.EndDate); err != nil {
		return q, err
	}
	return q, nil
}

// ParseStatisticsQuery validates url parameters for the statistics endpoint.
// Dates are validated in strict mode: an empty string is a failure, not an
// absent field.
func ParseStatisticsQuery(params url.Values) (StatisticsQuery, error) {
	var q StatisticsQuery

	start, err := requiredDateField(params, "start_date")
	if err != nil {
		return q, err
	}
	q.StartDate = start

	end, err := requiredDateField(params, "end_date")
	if err != nil {
		return q, err
	}
	q.EndDate = end

	q.Symbol = strings.TrimSpace(params.Get("symbol"))
	if q.Symbol == "" {
		return q, fmt.Errorf("symbol is required")
	}

	if err := checkDateRange(&q.StartDate, &q.EndDate); err != nil {
		return q, err
	}
	return q, nil
}

// intField parses an optional integer parameter with a lower bound.
// Absent means the default; malformed or below the bound is an error.
func intField(params url.Values, name string, def, minValue int) (int, error) {
	raw := params.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("%s (%s) is not a valid integer", name, raw)
	}
	if v < minValue {
		return def, fmt.Errorf("%s must be greater than or equal to %d, got %d", name, minValue, v)
	}
	return v, nil
}

// optionalDateField parses a date parameter in non-strict mode: both an
// absent parameter and an empty string mean "not provided".
func optionalDateField(params url.Values, name string) (*time.Time, error) {
	raw := params.Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(name, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// requiredDateField parses a date parameter in strict mode: empty or absent
// is a failure.
func requiredDateField(params url.Values, name string) (time.Time, error) {
	raw := params.Get(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	return parseDate(name, raw)
}

func parseDate(name, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s (%s) does not conform to format: YYYY-MM-DD", name, raw)
	}
	return t, nil
}

// checkDateRange enforces start_date <= end_date when both are present.
func checkDateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return fmt.Errorf(
			"start_date (%s) is not allowed to be greater than end_date (%s)",
			start.Format(dateLayout), end.Format(dateLayout),
		)
	}
	return nil
}
