package usecase_test

import (
	"context"
	"sync"
)

// stubPriceSource is a PriceSource backed by a fixed price table.
// Tickers missing from the table resolve as lookup failures. Calls
// counts every lookup, including failed ones.
type stubPriceSource struct {
	mu     sync.Mutex
	prices map[string]float64
	calls  int
}

func (s *stubPriceSource) LatestPrice(_ context.Context, ticker string) (float64, bool) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	price, ok := s.prices[ticker]
	return price, ok
}
