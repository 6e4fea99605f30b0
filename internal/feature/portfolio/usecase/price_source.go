// Package usecase implements the valuation, scenario and
// diversification engines for the portfolio feature.
package usecase

import "context"

// PriceSource resolves the current price for a ticker symbol.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
//
// A lookup failure (unknown ticker, provider unreachable, empty result)
// is reported as ok=false, never as a zero price. Callers exclude the
// ticker from their results and emit a warning for it.
type PriceSource interface {
	LatestPrice(ctx context.Context, ticker string) (price float64, ok bool)
}
