// Package usecase implements the business logic for historical
// market-data operations.
package usecase

import (
	"context"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/shared/money"
)

const (
	// DefaultPeriod is the history window used when none is requested.
	DefaultPeriod = "6mo"
	// SMAWindow is the number of points in the rolling average series.
	SMAWindow = 20
)

// validPeriods maps the supported history windows to nothing; lookup
// only.
var validPeriods = map[string]struct{}{
	"1mo": {}, "3mo": {}, "6mo": {}, "1y": {},
}

// NormalizePeriod returns period if it is a supported history window,
// the default otherwise.
func NormalizePeriod(period string) string {
	if _, ok := validPeriods[period]; !ok {
		return DefaultPeriod
	}
	return period
}

// HistoryRepository abstracts the external historical-series provider.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
//
// Both methods report provider failure for a symbol as an empty series,
// never as a partial one.
type HistoryRepository interface {
	History(ctx context.Context, symbol, period string) ([]entity.PricePoint, error)
	HistoryMulti(ctx context.Context, symbols []string, period string) (map[string][]entity.PricePoint, error)
}

// SMAPoint is one point of the rolling-average series. Average is nil
// for the first SMAWindow-1 points, where the window is not yet full.
type SMAPoint struct {
	Date    string   // Trading day, formatted 2006-01-02
	Close   float64  // Closing price
	Average *float64 // Rolling mean over the last SMAWindow closes
}

// HistoryUsecase serves the close-price series with its rolling
// average.
type HistoryUsecase struct {
	history HistoryRepository
}

// NewHistoryUsecase creates a HistoryUsecase with the given repository.
func NewHistoryUsecase(history HistoryRepository) *HistoryUsecase {
	return &HistoryUsecase{history: history}
}

// GetHistory fetches the close series for one symbol and decorates it
// with a SMAWindow-point rolling average. An unknown period falls back
// to the default. A symbol with no data yields an empty series, not an
// error.
func (u *HistoryUsecase) GetHistory(ctx context.Context, symbol, period string) ([]SMAPoint, error) {
	period = NormalizePeriod(period)

	points, err := u.history.History(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	out := make([]SMAPoint, 0, len(points))
	var windowSum float64
	for i, p := range points {
		windowSum += p.Close
		sp := SMAPoint{
			Date:  p.Date.UTC().Format("2006-01-02"),
			Close: p.Close,
		}
		if i >= SMAWindow-1 {
			if i >= SMAWindow {
				windowSum -= points[i-SMAWindow].Close
			}
			avg := money.Round2(windowSum / SMAWindow)
			sp.Average = &avg
		}
		out = append(out, sp)
	}
	return out, nil
}
