package usecase

import (
	"context"
	"log/slog"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/shared/money"
)

// HoldingValuation is one row of the current-value report for a single
// holding with a resolvable price.
type HoldingValuation struct {
	Ticker        string
	Quantity      int64
	PurchasePrice float64
	CurrentPrice  float64 // Rounded to 2 decimal places
	CurrentValue  float64 // Quantity * current price, rounded to 2 decimal places
}

// ValuationUsecase computes the current value of each holding from live
// prices.
type ValuationUsecase struct {
	prices PriceSource
}

// NewValuationUsecase creates a ValuationUsecase backed by the given
// price source.
func NewValuationUsecase(prices PriceSource) *ValuationUsecase {
	return &ValuationUsecase{prices: prices}
}

// ValueHoldings values every holding in display order. Holdings whose
// price cannot be resolved are omitted from the rows and reported once
// in the returned warning list, so the caller can tell exclusion apart
// from a zero value. An empty portfolio yields empty rows, not an error.
func (u *ValuationUsecase) ValueHoldings(ctx context.Context, portfolio entity.Portfolio) ([]HoldingValuation, []string) {
	rows := make([]HoldingValuation, 0, len(portfolio))
	var warnings []string
	warned := map[string]bool{}

	for _, h := range portfolio {
		price, ok := u.prices.LatestPrice(ctx, h.Ticker)
		if !ok {
			// One warning per ticker per pass, even with duplicate positions.
			if !warned[h.Ticker] {
				warned[h.Ticker] = true
				slog.Warn("no price data for ticker, omitting from valuation", "ticker", h.Ticker)
				warnings = append(warnings, h.Ticker)
			}
			continue
		}
		rows = append(rows, HoldingValuation{
			Ticker:        h.Ticker,
			Quantity:      h.Quantity,
			PurchasePrice: h.PurchasePrice,
			CurrentPrice:  money.Round2(price),
			CurrentValue:  money.Round2(float64(h.Quantity) * price),
		})
	}
	return rows, warnings
}
