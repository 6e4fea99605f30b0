package dto

// WeightRow is one ticker's share of total portfolio value.
type WeightRow struct {
	Ticker    string  `json:"ticker"`
	Value     float64 `json:"value"`
	WeightPct float64 `json:"weight_pct"`
}

// DiversificationResponse is the concentration report. Overweight lists
// tickers whose weight strictly exceeds the threshold; Warnings lists
// tickers excluded for lack of a price.
type DiversificationResponse struct {
	Weights      []WeightRow `json:"weights"`
	ThresholdPct float64     `json:"threshold_pct"`
	Overweight   []string    `json:"overweight"`
	Warnings     []string    `json:"warnings"`
}
