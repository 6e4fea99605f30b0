// Package dto defines response objects for the marketdata feature's
// HTTP endpoints.
package dto

// HistoryPointResponse is one close observation with its rolling
// average. SMA20 is null until the 20-point window is full.
type HistoryPointResponse struct {
	Date  string   `json:"date"`
	Close float64  `json:"close"`
	SMA20 *float64 `json:"sma20"`
}

// HistoryResponse is the close-price series for one symbol.
type HistoryResponse struct {
	Symbol string                 `json:"symbol"`
	Period string                 `json:"period"`
	Points []HistoryPointResponse `json:"points"`
}

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
