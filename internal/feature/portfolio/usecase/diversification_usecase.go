package usecase

import (
	"context"
	"log/slog"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/shared/money"
)

// DefaultConcentrationThresholdPct flags any ticker holding more than
// half of the portfolio's value.
const DefaultConcentrationThresholdPct = 50.0

// Weight is one ticker's share of total portfolio value. Duplicate
// positions for the same ticker are merged into a single entry.
type Weight struct {
	Ticker    string
	Value     float64 // Merged current value, rounded to 2 decimal places
	WeightPct float64 // Value / total * 100, rounded to 2 decimal places
}

// DiversificationReport lists per-ticker weights in first-seen ticker
// order, the tickers whose weight strictly exceeds the threshold, and
// the tickers skipped for lack of a price.
type DiversificationReport struct {
	Weights      []Weight
	ThresholdPct float64
	Overweight   []string
	Warnings     []string
}

// DiversificationUsecase computes concentration weights over the
// portfolio.
type DiversificationUsecase struct {
	prices PriceSource
}

// NewDiversificationUsecase creates a DiversificationUsecase backed by
// the given price source.
func NewDiversificationUsecase(prices PriceSource) *DiversificationUsecase {
	return &DiversificationUsecase{prices: prices}
}

// Analyze computes each ticker's weight as a fraction of total
// portfolio value. Values are merged by ticker before weighting, so a
// ticker held in several positions gets one combined entry; the
// valuation report keeps those positions as separate rows. If
// thresholdPct is not positive the default of 50% applies. When no
// holding has a resolvable price the report carries empty weights and
// no overweight tickers.
func (u *DiversificationUsecase) Analyze(ctx context.Context, portfolio entity.Portfolio, thresholdPct float64) DiversificationReport {
	if thresholdPct <= 0 {
		thresholdPct = DefaultConcentrationThresholdPct
	}
	report := DiversificationReport{
		Weights:      []Weight{},
		ThresholdPct: thresholdPct,
	}

	// First-seen ticker order, values merged across duplicate positions.
	var order []string
	values := map[string]float64{}
	warned := map[string]bool{}
	var total float64

	for _, h := range portfolio {
		price, ok := u.prices.LatestPrice(ctx, h.Ticker)
		if !ok {
			if !warned[h.Ticker] {
				warned[h.Ticker] = true
				slog.Warn("no price data for ticker, omitting from diversification", "ticker", h.Ticker)
				report.Warnings = append(report.Warnings, h.Ticker)
			}
			continue
		}
		value := float64(h.Quantity) * price
		if _, seen := values[h.Ticker]; !seen {
			order = append(order, h.Ticker)
		}
		values[h.Ticker] += value
		total += value
	}

	if total == 0 {
		return report
	}

	for _, ticker := range order {
		weightPct := values[ticker] / total * 100
		report.Weights = append(report.Weights, Weight{
			Ticker:    ticker,
			Value:     money.Round2(values[ticker]),
			WeightPct: money.Round2(weightPct),
		})
		if weightPct > thresholdPct {
			report.Overweight = append(report.Overweight, ticker)
		}
	}
	return report
}
