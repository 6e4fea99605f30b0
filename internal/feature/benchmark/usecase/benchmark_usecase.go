// Package usecase implements benchmark normalization and the
// portfolio-versus-benchmark comparison.
package usecase

import (
	"context"
	"log/slog"

	marketentity "github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/shared/money"
)

// DefaultSymbols are the benchmarks compared against when the caller
// names none.
var DefaultSymbols = []string{"^GSPC", "^IXIC", "BTC-USD"}

// DefaultPeriod is the comparison window used when none is requested.
const DefaultPeriod = "6mo"

// PriceSource resolves the current price for a ticker symbol.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PriceSource interface {
	LatestPrice(ctx context.Context, ticker string) (price float64, ok bool)
}

// HistorySource fetches historical close series for several symbols at
// once. A symbol the provider cannot serve maps to an empty series.
type HistorySource interface {
	HistoryMulti(ctx context.Context, symbols []string, period string) (map[string][]marketentity.PricePoint, error)
}

// IndexPoint is one observation of a series rescaled to base 100.
type IndexPoint struct {
	Date  string  // Trading day, formatted 2006-01-02
	Index float64 // Price / first price * 100, rounded to 2 decimal places
}

// BenchmarkSeries is one benchmark's normalized series.
type BenchmarkSeries struct {
	Symbol string
	Points []IndexPoint
}

// ComparisonReport compares the portfolio's average return against
// normalized benchmark series. ReferenceIndex is the constant line
// 100 + FlatReturnPct drawn across the benchmark date range.
type ComparisonReport struct {
	Benchmarks     []BenchmarkSeries
	FlatReturnPct  float64
	ReferenceIndex float64
	SkippedSymbols []string // Benchmarks with no usable series
	Warnings       []string // Tickers excluded from the flat return
}

// BenchmarkUsecase rescales benchmark series to a base-100 index and
// computes the portfolio's flat reference return.
type BenchmarkUsecase struct {
	prices  PriceSource
	history HistorySource
}

// NewBenchmarkUsecase creates a BenchmarkUsecase with the given
// sources.
func NewBenchmarkUsecase(prices PriceSource, history HistorySource) *BenchmarkUsecase {
	return &BenchmarkUsecase{prices: prices, history: history}
}

// Normalize rescales a series so its first observation reads 100. An
// empty series, or one whose first price is zero, yields an empty
// result rather than dividing by an undefined base.
func Normalize(points []marketentity.PricePoint) []IndexPoint {
	if len(points) == 0 || points[0].Close == 0 {
		return []IndexPoint{}
	}
	base := points[0].Close
	out := make([]IndexPoint, 0, len(points))
	for _, p := range points {
		out = append(out, IndexPoint{
			Date:  p.Date.UTC().Format("2006-01-02"),
			Index: money.Round2(p.Close / base * 100),
		})
	}
	return out
}

// FlatReturn is the arithmetic mean of per-holding percentage returns
// (current - purchase) / purchase * 100. Holdings with no resolvable
// price are excluded and reported; a zero purchase price contributes a
// guarded 0 instead of dividing by zero. An empty input yields 0.
func (u *BenchmarkUsecase) FlatReturn(ctx context.Context, portfolio entity.Portfolio) (float64, []string) {
	var returns []float64
	var warnings []string
	warned := map[string]bool{}

	for _, h := range portfolio {
		price, ok := u.prices.LatestPrice(ctx, h.Ticker)
		if !ok {
			if !warned[h.Ticker] {
				warned[h.Ticker] = true
				slog.Warn("no price data for ticker, omitting from benchmark return", "ticker", h.Ticker)
				warnings = append(warnings, h.Ticker)
			}
			continue
		}
		if h.PurchasePrice == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (price-h.PurchasePrice)/h.PurchasePrice*100)
	}

	if len(returns) == 0 {
		return 0, warnings
	}
	var sum float64
	for _, r := range returns {
		sum += r
	}
	return sum / float64(len(returns)), warnings
}

// Compare fetches the benchmark series, normalizes each to base 100 and
// pairs them with the portfolio's flat reference line. Benchmarks with
// no usable series are skipped, never partially rendered. Defaults
// apply when symbols or period are empty.
func (u *BenchmarkUsecase) Compare(ctx context.Context, portfolio entity.Portfolio, symbols []string, period string) (ComparisonReport, error) {
	if len(symbols) == 0 {
		symbols = DefaultSymbols
	}
	if period == "" {
		period = DefaultPeriod
	}

	flat, warnings := u.FlatReturn(ctx, portfolio)
	report := ComparisonReport{
		Benchmarks:     []BenchmarkSeries{},
		FlatReturnPct:  money.Round2(flat),
		ReferenceIndex: money.Round2(100 + flat),
		Warnings:       warnings,
	}

	series, err := u.history.HistoryMulti(ctx, symbols, period)
	if err != nil {
		return ComparisonReport{}, err
	}

	for _, sym := range symbols {
		normalized := Normalize(series[sym])
		if len(normalized) == 0 {
			slog.Warn("no benchmark data for symbol", "symbol", sym)
			report.SkippedSymbols = append(report.SkippedSymbols, sym)
			continue
		}
		report.Benchmarks = append(report.Benchmarks, BenchmarkSeries{Symbol: sym, Points: normalized})
	}
	return report, nil
}
