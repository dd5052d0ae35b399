package models

// Statistics holds the aggregate values computed over the price rows
// matching a symbol and inclusive date range.
//
// Average prices are already rescaled from cents to decimal; the average
// volume is rounded to the nearest integer.
type Statistics struct {
	Symbol            string
	AverageOpenPrice  float64
	AverageClosePrice float64
	AverageVolume     int64
}
