package usecase

import (
	"context"
	"log/slog"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/shared/money"
)

// Scenario is a named percentage price-shock hypothesis applied
// uniformly to the current price. PctChange is signed: -20 means -20%.
type Scenario struct {
	Name      string
	PctChange float64
}

// ScenarioResult is the projection of one holding under one scenario.
type ScenarioResult struct {
	Ticker         string
	ScenarioName   string
	CurrentValue   float64
	ProjectedValue float64
	Delta          float64
	ReturnPct      float64
}

// ScenarioSummary aggregates one scenario over every included holding.
type ScenarioSummary struct {
	ScenarioName     string
	TotalFutureValue float64
	TotalDelta       float64
	TotalReturnPct   float64
}

// SimulationReport holds per-holding results, per-scenario aggregates
// and the tickers that were skipped for lack of a price. Results and
// summaries preserve the caller-supplied scenario order.
type SimulationReport struct {
	Results   []ScenarioResult
	Summaries []ScenarioSummary
	Warnings  []string
}

// ScenarioUsecase projects holding values under named percentage
// shocks.
type ScenarioUsecase struct {
	prices PriceSource
}

// NewScenarioUsecase creates a ScenarioUsecase backed by the given
// price source.
func NewScenarioUsecase(prices PriceSource) *ScenarioUsecase {
	return &ScenarioUsecase{prices: prices}
}

// Simulate evaluates every scenario against every holding with a
// resolvable price. A holding whose price cannot be resolved is skipped
// with one warning and excluded from every scenario and from the
// aggregates. An empty scenario list yields an empty report, not an
// error.
func (u *ScenarioUsecase) Simulate(ctx context.Context, portfolio entity.Portfolio, scenarios []Scenario) SimulationReport {
	report := SimulationReport{
		Results:   []ScenarioResult{},
		Summaries: []ScenarioSummary{},
	}
	if len(scenarios) == 0 {
		return report
	}

	// Aggregates are keyed by position so caller order survives.
	futureTotals := make([]float64, len(scenarios))
	var currentTotal float64
	warned := map[string]bool{}

	for _, h := range portfolio {
		price, ok := u.prices.LatestPrice(ctx, h.Ticker)
		if !ok {
			if !warned[h.Ticker] {
				warned[h.Ticker] = true
				slog.Warn("no price data for ticker, omitting from simulation", "ticker", h.Ticker)
				report.Warnings = append(report.Warnings, h.Ticker)
			}
			continue
		}

		currentValue := float64(h.Quantity) * price
		currentTotal += currentValue

		for i, sc := range scenarios {
			projectedPrice := price * (1 + sc.PctChange/100)
			projectedValue := float64(h.Quantity) * projectedPrice
			delta := projectedValue - currentValue
			returnPct := 0.0
			if currentValue != 0 {
				returnPct = delta / currentValue * 100
			}
			futureTotals[i] += projectedValue

			report.Results = append(report.Results, ScenarioResult{
				Ticker:         h.Ticker,
				ScenarioName:   sc.Name,
				CurrentValue:   money.Round2(currentValue),
				ProjectedValue: money.Round2(projectedValue),
				Delta:          money.Round2(delta),
				ReturnPct:      money.Round2(returnPct),
			})
		}
	}

	for i, sc := range scenarios {
		totalDelta := futureTotals[i] - currentTotal
		totalReturnPct := 0.0
		if currentTotal != 0 {
			totalReturnPct = totalDelta / currentTotal * 100
		}
		report.Summaries = append(report.Summaries, ScenarioSummary{
			ScenarioName:     sc.Name,
			TotalFutureValue: money.Round2(futureTotals[i]),
			TotalDelta:       money.Round2(totalDelta),
			TotalReturnPct:   money.Round2(totalReturnPct),
		})
	}
	return report
}
