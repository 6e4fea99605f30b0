package dto

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HoldingResponse echoes one stored holding.
type HoldingResponse struct {
	Ticker        string  `json:"ticker"`
	Quantity      int64   `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
}

// AddHoldingResponse returns the stored holding together with the
// session the client must present on subsequent requests.
type AddHoldingResponse struct {
	SessionID string          `json:"session_id"`
	Holding   HoldingResponse `json:"holding"`
}

// ValuationRow is one holding valued at the current price.
type ValuationRow struct {
	Ticker        string  `json:"ticker"`
	Quantity      int64   `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentPrice  float64 `json:"current_price"`
	CurrentValue  float64 `json:"current_value"`
}

// ValuationResponse is the current-value report. Warnings lists the
// tickers excluded because no price could be resolved.
type ValuationResponse struct {
	Holdings []ValuationRow `json:"holdings"`
	Warnings []string       `json:"warnings"`
}
