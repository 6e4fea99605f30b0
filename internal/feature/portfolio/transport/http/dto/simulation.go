package dto

// ScenarioInput names one percentage price shock. PctChange is signed:
// -20 means a 20% drop.
type ScenarioInput struct {
	Name      string  `json:"name" binding:"required"`
	PctChange float64 `json:"pct_change"`
}

// SimulateRequest lists the scenarios to evaluate, in the order results
// should be reported. An empty list means the server-side defaults.
type SimulateRequest struct {
	Scenarios []ScenarioInput `json:"scenarios"`
}

// ScenarioResultRow is one holding projected under one scenario.
type ScenarioResultRow struct {
	Ticker         string  `json:"ticker"`
	Scenario       string  `json:"scenario"`
	CurrentValue   float64 `json:"current_value"`
	ProjectedValue float64 `json:"projected_value"`
	Delta          float64 `json:"delta"`
	ReturnPct      float64 `json:"return_pct"`
}

// ScenarioSummaryRow aggregates one scenario over the whole portfolio.
type ScenarioSummaryRow struct {
	Scenario         string  `json:"scenario"`
	TotalFutureValue float64 `json:"total_future_value"`
	TotalDelta       float64 `json:"total_delta"`
	TotalReturnPct   float64 `json:"total_return_pct"`
}

// SimulateResponse is the full simulation report.
type SimulateResponse struct {
	Results  []ScenarioResultRow  `json:"results"`
	Summary  []ScenarioSummaryRow `json:"summary"`
	Warnings []string             `json:"warnings"`
}
