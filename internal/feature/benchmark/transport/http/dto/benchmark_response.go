// Package dto defines response objects for the benchmark feature's
// HTTP endpoints.
package dto

// IndexPointResponse is one base-100 observation.
type IndexPointResponse struct {
	Date  string  `json:"date"`
	Index float64 `json:"index"`
}

// BenchmarkSeriesResponse is one benchmark's normalized series.
type BenchmarkSeriesResponse struct {
	Symbol string               `json:"symbol"`
	Points []IndexPointResponse `json:"points"`
}

// ComparisonResponse pairs the normalized benchmark series with the
// portfolio's flat reference line (100 + mean return).
type ComparisonResponse struct {
	Benchmarks     []BenchmarkSeriesResponse `json:"benchmarks"`
	FlatReturnPct  float64                   `json:"flat_return_pct"`
	ReferenceIndex float64                   `json:"reference_index"`
	SkippedSymbols []string                  `json:"skipped_symbols"`
	Warnings       []string                  `json:"warnings"`
}

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
